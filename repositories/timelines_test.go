package repositories

import (
  "testing"

  "github.com/stretchr/testify/assert"

  "chirper.local/chirper/config"
)

func timelinePage() *TimelineInfo {
  return &TimelineInfo{
    Tweets: []*TweetInfo{
      {
        ID:         "t1",
        Content:    "hello",
        Likes:      []string{},
        LikesCount: 3,
      },
      {
        ID:         "t2",
        Content:    "other",
        Likes:      []string{},
        LikesCount: 7,
      },
    },
  }
}

func TestTimelinesKeyDerivation(t *testing.T) {
  repository := &TimelinesRepository{}

  key := repository.Key("u1", map[string]interface{}{"author": "alice"}, 10)
  same := repository.Key("u1", map[string]interface{}{"author": "alice"}, 10)
  assert.Equal(t, key, same)

  otherLimit := repository.Key("u1", map[string]interface{}{"author": "alice"}, 5)
  assert.NotEqual(t, key, otherLimit)

  otherWhere := repository.Key("u1", map[string]interface{}{}, 10)
  assert.NotEqual(t, key, otherWhere)

  otherViewer := repository.Key("u2", map[string]interface{}{"author": "alice"}, 10)
  assert.NotEqual(t, key, otherViewer)

  anonymous := repository.Key("", map[string]interface{}{"author": "alice"}, 10)
  assert.Contains(t, anonymous, "anonymous")
}

func TestTimelinesApplyLikeDelta(t *testing.T) {
  page := timelinePage()

  changed := applyLikeDelta(page, config.TIMELINE_ACTION_LIKE, "t1", "u1")
  assert.True(t, changed)
  assert.Equal(t, int64(4), page.Tweets[0].LikesCount)
  assert.Equal(t, []string{"u1"}, page.Tweets[0].Likes)

  // untouched sibling
  assert.Equal(t, int64(7), page.Tweets[1].LikesCount)
  assert.Empty(t, page.Tweets[1].Likes)

  changed = applyLikeDelta(page, config.TIMELINE_ACTION_UNLIKE, "t1", "u1")
  assert.True(t, changed)
  assert.Equal(t, int64(3), page.Tweets[0].LikesCount)
  assert.Empty(t, page.Tweets[0].Likes)
}

func TestTimelinesApplyLikeDeltaIdempotence(t *testing.T) {
  page := timelinePage()

  assert.True(t, applyLikeDelta(page, config.TIMELINE_ACTION_LIKE, "t1", "u1"))
  assert.False(t, applyLikeDelta(page, config.TIMELINE_ACTION_LIKE, "t1", "u1"))
  assert.Equal(t, int64(4), page.Tweets[0].LikesCount)

  assert.True(t, applyLikeDelta(page, config.TIMELINE_ACTION_UNLIKE, "t1", "u1"))
  assert.False(t, applyLikeDelta(page, config.TIMELINE_ACTION_UNLIKE, "t1", "u1"))
  assert.Equal(t, int64(3), page.Tweets[0].LikesCount)
}

func TestTimelinesApplyLikeDeltaUnknownTweet(t *testing.T) {
  page := timelinePage()

  assert.False(t, applyLikeDelta(page, config.TIMELINE_ACTION_LIKE, "missing", "u1"))
  assert.Equal(t, int64(3), page.Tweets[0].LikesCount)
  assert.Equal(t, int64(7), page.Tweets[1].LikesCount)
}
