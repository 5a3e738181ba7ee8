package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
  "chirper.local/chirper/models"
)

type UsersRepository struct {
  Db *gorm.DB
}

func (r *UsersRepository) Find(id string) (entity *models.User, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *UsersRepository) Get(name string) (entity *models.User, err error) {
  err = r.Db.Where("name", name).Take(&entity).Error
  return
}

func (r *UsersRepository) IsExists(name string) bool {
  var entity *models.User
  result := r.Db.Where("name", name).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *UsersRepository) Create(
  name string,
  password string,
  avatar string,
) (user *models.User, err error) {
  var entity models.User
  result := r.Db.Where("name", name).Take(&entity)
  if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return nil, errors.New("user already exists")
  }
  salt := common.GenerateSalt(16)
  hashedPassword := common.GeneratePassword(password, salt)

  user = &models.User{
    ID:       xid.New().String(),
    Name:     name,
    Avatar:   avatar,
    Password: hashedPassword,
    Salt:     salt,
    Status:   1,
  }
  err = r.Db.Create(&user).Error
  return
}
