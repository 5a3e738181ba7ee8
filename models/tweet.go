package models

import (
  "time"
)

type Tweet struct {
  ID        string    `gorm:"size:20;primaryKey"`
  UserID    string    `gorm:"size:20;not null;index:idx_tweets_users,priority:1"`
  Content   string    `gorm:"size:280;not null"`
  CreatedAt time.Time `gorm:"not null;index:idx_tweets_created_at,priority:1"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Tweet) TableName() string {
  return "tweets"
}
