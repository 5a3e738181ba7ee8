package common

import (
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestValidateTweetContent(t *testing.T) {
  assert.Error(t, ValidateTweetContent(""))
  assert.NoError(t, ValidateTweetContent("a"))
  assert.NoError(t, ValidateTweetContent(strings.Repeat("a", 280)))
  assert.Error(t, ValidateTweetContent(strings.Repeat("a", 281)))
}

func TestValidateTweetContentCountsRunes(t *testing.T) {
  // multi-byte characters count once
  assert.NoError(t, ValidateTweetContent(strings.Repeat("ä", 280)))
  assert.Error(t, ValidateTweetContent(strings.Repeat("ä", 281)))
}

func TestValidationErrorMessage(t *testing.T) {
  err := ValidateTweetContent("")
  var validationErr *ValidationError
  assert.ErrorAs(t, err, &validationErr)
  assert.Equal(t, "tweet content is required", validationErr.Error())
}
