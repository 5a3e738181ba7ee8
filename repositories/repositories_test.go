package repositories

import (
  "fmt"
  "testing"

  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "chirper.local/chirper/models"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
  if err != nil {
    t.Fatal(err)
  }
  if err := db.AutoMigrate(
    &models.User{},
    &models.Tweet{},
    &models.Like{},
    &models.Session{},
  ); err != nil {
    t.Fatal(err)
  }
  return db
}
