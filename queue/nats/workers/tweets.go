package workers

import (
  "fmt"
  "time"

  "github.com/nats-io/nats.go"
  "github.com/tidwall/gjson"

  "chirper.local/chirper/common"
  "chirper.local/chirper/config"
  "chirper.local/chirper/repositories"
)

// Tweets keeps the cached timeline pages honest: a created tweet drops
// every cached page, a like or unlike replays the same idempotent patch
// the api applied, covering the case where the api's own best effort
// write to redis was lost.
type Tweets struct {
  NatsContext *common.NatsContext
  Repository  *repositories.TimelinesRepository
}

func NewTweets(natsContext *common.NatsContext) *Tweets {
  h := &Tweets{
    NatsContext: natsContext,
  }
  h.Repository = &repositories.TimelinesRepository{
    Rdb: h.NatsContext.Rdb,
    Ctx: h.NatsContext.Ctx,
  }
  return h
}

func (h *Tweets) Subscribe() error {
  h.NatsContext.Conn.Subscribe(config.NATS_TWEETS_CREATE, h.Invalidate)
  h.NatsContext.Conn.Subscribe(config.NATS_TWEETS_LIKE, h.Like)
  h.NatsContext.Conn.Subscribe(config.NATS_TWEETS_UNLIKE, h.Unlike)
  return nil
}

func (h *Tweets) Invalidate(m *nats.Msg) {
  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    config.LOCKS_TIMELINES_INVALIDATE,
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  h.Repository.Invalidate()
}

func (h *Tweets) Like(m *nats.Msg) {
  h.reconcile(m, config.TIMELINE_ACTION_LIKE)
}

func (h *Tweets) Unlike(m *nats.Msg) {
  h.reconcile(m, config.TIMELINE_ACTION_UNLIKE)
}

func (h *Tweets) reconcile(m *nats.Msg, action string) {
  tweetID := gjson.GetBytes(m.Data, "tweet_id").String()
  userID := gjson.GetBytes(m.Data, "user_id").String()
  if tweetID == "" || userID == "" {
    return
  }

  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_TIMELINES_RECONCILE, tweetID),
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  h.Repository.Reconcile(userID, action, tweetID, userID)
}
