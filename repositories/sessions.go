package repositories

import (
  "github.com/rs/xid"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
  "chirper.local/chirper/models"
)

type SessionsRepository struct {
  Db *gorm.DB
}

func (r *SessionsRepository) Find(id string) (entity *models.Session, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *SessionsRepository) Apply(
  userID string,
  agent string,
  data map[string]interface{},
) (session *models.Session, err error) {
  session = &models.Session{
    ID:     xid.New().String(),
    UserID: userID,
    Agent:  agent,
    Data:   common.JSONMap(data),
    Status: 1,
  }
  err = r.Db.Create(&session).Error
  return
}
