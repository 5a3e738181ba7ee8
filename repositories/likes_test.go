package repositories

import (
  "errors"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
)

func TestLikesCreateConflict(t *testing.T) {
  db := newTestDB(t)
  users := &UsersRepository{Db: db}
  tweets := &TweetsRepository{Db: db}
  repository := &LikesRepository{Db: db}

  user, err := users.Create("alice", "secret", "")
  require.NoError(t, err)
  tweet, err := tweets.Create(user.ID, "hello")
  require.NoError(t, err)

  like, err := repository.Create(tweet.ID, user.ID)
  require.NoError(t, err)
  assert.Equal(t, user.ID, like.UserID)

  _, err = repository.Create(tweet.ID, user.ID)
  require.Error(t, err)
  assert.True(t, common.IsUniqueViolation(err))

  assert.Equal(t, int64(1), repository.Count(tweet.ID))
}

func TestLikesCreateUnknownTweet(t *testing.T) {
  db := newTestDB(t)
  users := &UsersRepository{Db: db}
  repository := &LikesRepository{Db: db}

  user, err := users.Create("alice", "secret", "")
  require.NoError(t, err)

  _, err = repository.Create("missing", user.ID)
  assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestLikesDelete(t *testing.T) {
  db := newTestDB(t)
  users := &UsersRepository{Db: db}
  tweets := &TweetsRepository{Db: db}
  repository := &LikesRepository{Db: db}

  user, err := users.Create("alice", "secret", "")
  require.NoError(t, err)
  tweet, err := tweets.Create(user.ID, "hello")
  require.NoError(t, err)

  err = repository.Delete(tweet.ID, user.ID)
  assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

  _, err = repository.Create(tweet.ID, user.ID)
  require.NoError(t, err)

  require.NoError(t, repository.Delete(tweet.ID, user.ID))
  assert.Equal(t, int64(0), repository.Count(tweet.ID))

  err = repository.Delete(tweet.ID, user.ID)
  assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestLikesCountsAndLiked(t *testing.T) {
  db := newTestDB(t)
  users := &UsersRepository{Db: db}
  tweets := &TweetsRepository{Db: db}
  repository := &LikesRepository{Db: db}

  alice, err := users.Create("alice", "secret", "")
  require.NoError(t, err)
  bob, err := users.Create("bob", "secret", "")
  require.NoError(t, err)

  first, err := tweets.Create(alice.ID, "first")
  require.NoError(t, err)
  second, err := tweets.Create(alice.ID, "second")
  require.NoError(t, err)

  _, err = repository.Create(first.ID, alice.ID)
  require.NoError(t, err)
  _, err = repository.Create(first.ID, bob.ID)
  require.NoError(t, err)
  _, err = repository.Create(second.ID, bob.ID)
  require.NoError(t, err)

  totals := repository.Counts([]string{first.ID, second.ID})
  assert.Equal(t, int64(2), totals[first.ID])
  assert.Equal(t, int64(1), totals[second.ID])

  liked := repository.Liked([]string{first.ID, second.ID}, alice.ID)
  assert.True(t, liked[first.ID])
  assert.False(t, liked[second.ID])

  assert.Empty(t, repository.Liked([]string{first.ID}, ""))
}
