package common

import (
  "fmt"
  "unicode/utf8"

  "chirper.local/chirper/config"
)

type ValidationError struct {
  Message string
}

func (e *ValidationError) Error() string {
  return e.Message
}

// ValidateTweetContent is the single source of truth for tweet text rules.
// Both the request boundary and the write path call it, so the two can
// never drift apart.
func ValidateTweetContent(text string) error {
  length := utf8.RuneCountInString(text)
  if length < config.TWEET_CONTENT_MIN_LEN {
    return &ValidationError{Message: "tweet content is required"}
  }
  if length > config.TWEET_CONTENT_MAX_LEN {
    return &ValidationError{
      Message: fmt.Sprintf("tweet content can not exceed %d characters", config.TWEET_CONTENT_MAX_LEN),
    }
  }
  return nil
}
