package repositories

type AuthorInfo struct {
  ID     string `json:"id"`
  Name   string `json:"name"`
  Avatar string `json:"avatar"`
}

type TweetInfo struct {
  ID         string      `json:"id"`
  Author     *AuthorInfo `json:"author"`
  Content    string      `json:"content"`
  Likes      []string    `json:"likes"`
  LikesCount int64       `json:"likes_count"`
  Timestamp  int64       `json:"timestamp"`
}

type TimelineInfo struct {
  Tweets     []*TweetInfo `json:"tweets"`
  NextCursor string       `json:"next_cursor,omitempty"`
}
