package repositories

import (
  "context"
  "crypto/md5"
  "encoding/hex"
  "encoding/json"
  "fmt"
  "time"

  "github.com/go-redis/redis/v8"

  "chirper.local/chirper/config"
)

// TimelinesRepository holds the served timeline pages in redis so a
// like or unlike can patch them in place instead of refetching. Pages
// are keyed by viewer plus a digest of the exact query parameters, one
// hash field per page cursor. The cache is best effort, the database
// stays authoritative and every entry expires on its own.
type TimelinesRepository struct {
  Rdb *redis.Client
  Ctx context.Context
}

const timelinesTTL = 15 * time.Minute

func (r *TimelinesRepository) Key(
  viewer string,
  conditions map[string]interface{},
  limit int,
) string {
  if viewer == "" {
    viewer = "anonymous"
  }
  hash := md5.Sum([]byte(fmt.Sprintf("%v|%v", conditions, limit)))
  return fmt.Sprintf(
    config.REDIS_KEY_TIMELINES,
    viewer,
    hex.EncodeToString(hash[:]),
  )
}

func (r *TimelinesRepository) Get(key string, cursor string) (*TimelineInfo, error) {
  val, err := r.Rdb.HGet(r.Ctx, key, cursorField(cursor)).Result()
  if err != nil {
    return nil, err
  }
  var page *TimelineInfo
  if err := json.Unmarshal([]byte(val), &page); err != nil {
    return nil, err
  }
  return page, nil
}

func (r *TimelinesRepository) Set(key string, cursor string, page *TimelineInfo) error {
  data, err := json.Marshal(page)
  if err != nil {
    return err
  }
  if err := r.Rdb.HSet(r.Ctx, key, cursorField(cursor), data).Err(); err != nil {
    return err
  }
  return r.Rdb.Expire(r.Ctx, key, timelinesTTL).Err()
}

// Reconcile patches every page cached for the viewer after a like or
// unlike succeeded. Only the viewer's own entries are touched, other
// viewers pick the new count up on their next fetch.
func (r *TimelinesRepository) Reconcile(
  viewer string,
  action string,
  tweetID string,
  userID string,
) error {
  if viewer == "" {
    return nil
  }
  keys, err := r.Rdb.Keys(
    r.Ctx,
    fmt.Sprintf(config.REDIS_KEY_TIMELINES_VIEWER_SCAN, viewer),
  ).Result()
  if err != nil {
    return err
  }
  for _, key := range keys {
    entries, err := r.Rdb.HGetAll(r.Ctx, key).Result()
    if err != nil {
      continue
    }
    for field, val := range entries {
      var page *TimelineInfo
      if err := json.Unmarshal([]byte(val), &page); err != nil {
        continue
      }
      if !applyLikeDelta(page, action, tweetID, userID) {
        continue
      }
      if data, err := json.Marshal(page); err == nil {
        r.Rdb.HSet(r.Ctx, key, field, data)
      }
    }
  }
  return nil
}

func (r *TimelinesRepository) Invalidate() error {
  keys, err := r.Rdb.Keys(r.Ctx, config.REDIS_KEY_TIMELINES_SCAN).Result()
  if err != nil {
    return err
  }
  if len(keys) == 0 {
    return nil
  }
  return r.Rdb.Del(r.Ctx, keys...).Err()
}

func cursorField(cursor string) string {
  if cursor == "" {
    return "-"
  }
  return cursor
}

// applyLikeDelta flips the viewer's like membership on the matching
// tweet and moves the counter by one. The patch is a projection to a
// known state: a like that is already reflected, or an unlike with
// nothing to remove, changes nothing, so replaying the same mutation
// never drifts the counter.
func applyLikeDelta(
  page *TimelineInfo,
  action string,
  tweetID string,
  userID string,
) bool {
  var changed bool
  for _, tweet := range page.Tweets {
    if tweet.ID != tweetID {
      continue
    }
    if action == config.TIMELINE_ACTION_LIKE {
      if contains(tweet.Likes, userID) {
        continue
      }
      tweet.Likes = []string{userID}
      tweet.LikesCount += 1
      changed = true
    } else if action == config.TIMELINE_ACTION_UNLIKE {
      if !contains(tweet.Likes, userID) {
        continue
      }
      tweet.Likes = []string{}
      tweet.LikesCount -= 1
      changed = true
    }
  }
  return changed
}

func contains(items []string, target string) bool {
  for _, item := range items {
    if item == target {
      return true
    }
  }
  return false
}
