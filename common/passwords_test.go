package common

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestPasswordRoundtrip(t *testing.T) {
  salt := GenerateSalt(16)
  assert.Len(t, salt, 16)

  hashed := GeneratePassword("hunter2", salt)
  assert.True(t, VerifyPassword("hunter2", salt, hashed))
  assert.False(t, VerifyPassword("hunter3", salt, hashed))
  assert.False(t, VerifyPassword("hunter2", GenerateSalt(16), hashed))
}

func TestGenerateSaltUniqueness(t *testing.T) {
  assert.NotEqual(t, GenerateSalt(16), GenerateSalt(16))
}
