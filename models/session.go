package models

import (
  "gorm.io/datatypes"
  "time"
)

type Session struct {
  ID        string            `gorm:"size:20;primaryKey"`
  UserID    string            `gorm:"size:20;not null;index"`
  Agent     string            `gorm:"size:155;not null"`
  Data      datatypes.JSONMap `gorm:"not null"`
  Status    int               `gorm:"not null"`
  CreatedAt time.Time         `gorm:"not null"`
  UpdatedAt time.Time         `gorm:"not null"`
}

func (m *Session) TableName() string {
  return "sessions"
}
