package models

import (
  "time"
)

type User struct {
  ID        string    `gorm:"size:20;primaryKey"`
  Name      string    `gorm:"size:50;not null;uniqueIndex"`
  Avatar    string    `gorm:"size:200;not null"`
  Password  string    `gorm:"size:128;not null"`
  Salt      string    `gorm:"size:16;not null"`
  Status    int       `gorm:"not null"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *User) TableName() string {
  return "users"
}
