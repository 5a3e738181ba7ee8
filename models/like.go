package models

import (
  "time"
)

// At most one like per (tweet, user) pair, enforced by the composite
// unique index rather than by any pre-check in the handlers.
type Like struct {
  ID        string    `gorm:"size:20;primaryKey"`
  TweetID   string    `gorm:"size:20;not null;uniqueIndex:idx_tweet_likes,priority:1"`
  UserID    string    `gorm:"size:20;not null;uniqueIndex:idx_tweet_likes,priority:2"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Like) TableName() string {
  return "tweet_likes"
}
