package repositories

import (
  "encoding/json"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "chirper.local/chirper/config"
  "chirper.local/chirper/models"
)

type LikesRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

func (r *LikesRepository) Count(tweetID string) int64 {
  var total int64
  r.Db.Model(&models.Like{}).Where("tweet_id", tweetID).Count(&total)
  return total
}

// Counts aggregates like totals for a page of tweets in one query.
func (r *LikesRepository) Counts(tweetIDs []string) map[string]int64 {
  type counting struct {
    TweetID string
    Total   int64
  }
  var rows []*counting
  r.Db.Model(&models.Like{}).Select([]string{
    "tweet_id",
    "COUNT(1) AS total",
  }).Where("tweet_id IN ?", tweetIDs).Group("tweet_id").Scan(&rows)
  totals := make(map[string]int64)
  for _, row := range rows {
    totals[row.TweetID] = row.Total
  }
  return totals
}

// Liked reports which of the given tweets carry a like by userID.
func (r *LikesRepository) Liked(tweetIDs []string, userID string) map[string]bool {
  liked := make(map[string]bool)
  if userID == "" {
    return liked
  }
  var likes []*models.Like
  r.Db.Where("tweet_id IN ? AND user_id = ?", tweetIDs, userID).Find(&likes)
  for _, like := range likes {
    liked[like.TweetID] = true
  }
  return liked
}

// Create inserts the (tweet, user) join row. Uniqueness is left to the
// index, a second like for the same pair comes back as the driver's
// unique violation untouched.
func (r *LikesRepository) Create(
  tweetID string,
  userID string,
) (like *models.Like, err error) {
  var tweet *models.Tweet
  if err = r.Db.First(&tweet, "id=?", tweetID).Error; err != nil {
    return
  }
  like = &models.Like{
    ID:      xid.New().String(),
    TweetID: tweetID,
    UserID:  userID,
  }
  err = r.Db.Create(&like).Error
  if err == nil && r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "tweet_id": tweetID,
      "user_id":  userID,
    })
    r.Nats.Publish(config.NATS_TWEETS_LIKE, data)
    r.Nats.Flush()
  }
  return
}

func (r *LikesRepository) Delete(
  tweetID string,
  userID string,
) (err error) {
  result := r.Db.Where(
    "tweet_id = ? AND user_id = ?",
    tweetID,
    userID,
  ).Delete(&models.Like{})
  if result.Error != nil {
    return result.Error
  }
  if result.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  if r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "tweet_id": tweetID,
      "user_id":  userID,
    })
    r.Nats.Publish(config.NATS_TWEETS_UNLIKE, data)
    r.Nats.Flush()
  }
  return
}
