package repositories

import (
  "database/sql"
  "encoding/json"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
  "chirper.local/chirper/config"
  "chirper.local/chirper/models"
)

type TweetsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

func (r *TweetsRepository) Find(id string) (entity *models.Tweet, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

// Timeline returns at most limit tweets in (created_at desc, id desc)
// order plus the cursor of the following page. The cursor names the row
// the page starts at; a cursor pointing at a missing tweet surfaces the
// lookup error untouched.
func (r *TweetsRepository) Timeline(
  conditions map[string]interface{},
  cursor string,
  limit int,
) (tweets []*models.Tweet, nextCursor string, err error) {
  query := r.Db.Model(&models.Tweet{})
  if _, ok := conditions["author"]; ok {
    subQuery := r.Db.Model(&models.User{}).Select([]string{"id"})
    subQuery.Where("name=?", conditions["author"].(string))
    query.Where("user_id IN(?)", subQuery)
  }
  if cursor != "" {
    var pivot *models.Tweet
    err = r.Db.First(&pivot, "id=?", cursor).Error
    if err != nil {
      return
    }
    query.Where(
      "created_at < @ts OR (created_at = @ts AND id <= @id)",
      sql.Named("ts", pivot.CreatedAt),
      sql.Named("id", pivot.ID),
    )
  }
  query.Order("created_at DESC, id DESC")
  err = query.Limit(limit + 1).Find(&tweets).Error
  if err != nil {
    return
  }
  if len(tweets) > limit {
    nextCursor = tweets[limit].ID
    tweets = tweets[:limit]
  }
  return
}

func (r *TweetsRepository) Create(
  userID string,
  content string,
) (tweet *models.Tweet, err error) {
  if err = common.ValidateTweetContent(content); err != nil {
    return
  }
  tweet = &models.Tweet{
    ID:      xid.New().String(),
    UserID:  userID,
    Content: content,
  }
  err = r.Db.Create(&tweet).Error
  if err == nil && r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "id":      tweet.ID,
      "user_id": userID,
    })
    r.Nats.Publish(config.NATS_TWEETS_CREATE, data)
    r.Nats.Flush()
  }
  return
}
