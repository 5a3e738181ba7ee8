package config

const (
  TWEET_CONTENT_MIN_LEN = 1
  TWEET_CONTENT_MAX_LEN = 280

  TIMELINE_LIMIT_DEFAULT = 10
  TIMELINE_LIMIT_MAX     = 10

  TIMELINE_ACTION_LIKE   = "like"
  TIMELINE_ACTION_UNLIKE = "unlike"

  REDIS_KEY_TIMELINES             = "chirper:timelines:%v:%v"
  REDIS_KEY_TIMELINES_SCAN        = "chirper:timelines:*"
  REDIS_KEY_TIMELINES_VIEWER_SCAN = "chirper:timelines:%v:*"

  LOCKS_TIMELINES_RECONCILE  = "locks:chirper:timelines:reconcile:%v"
  LOCKS_TIMELINES_INVALIDATE = "locks:chirper:timelines:invalidate"

  NATS_TWEETS_CREATE = "chirper.tweets.create"
  NATS_TWEETS_LIKE   = "chirper.tweets.like"
  NATS_TWEETS_UNLIKE = "chirper.tweets.unlike"

  ASYNQ_JOBS_TIMELINES_FLUSH = "timelines:flush"
  ASYNQ_QUEUE_TIMELINES      = "timelines"
)
