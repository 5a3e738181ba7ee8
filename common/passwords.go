package common

import (
  "crypto/rand"
  "crypto/sha256"
  "crypto/subtle"
  "encoding/hex"

  "golang.org/x/crypto/pbkdf2"
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateSalt(size int) string {
  buf := make([]byte, size)
  rand.Read(buf)
  for i, b := range buf {
    buf[i] = saltChars[int(b)%len(saltChars)]
  }
  return string(buf)
}

func GeneratePassword(password string, salt string) string {
  hash := pbkdf2.Key([]byte(password), []byte(salt), 4096, 32, sha256.New)
  return hex.EncodeToString(hash)
}

func VerifyPassword(password string, salt string, hashed string) bool {
  return subtle.ConstantTimeCompare(
    []byte(GeneratePassword(password, salt)),
    []byte(hashed),
  ) == 1
}
