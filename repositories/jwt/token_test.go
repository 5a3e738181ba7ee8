package jwt

import (
  "encoding/json"
  "testing"
  "time"

  "github.com/lestrrat/go-jwx/jwa"
  "github.com/lestrrat/go-jwx/jws"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
  t.Setenv("CHIRPER_JWT_SECRET", "test-secret")

  repository := &TokenRepository{}

  token, err := repository.AccessToken("u1")
  require.NoError(t, err)

  userID, err := repository.Verify(token)
  require.NoError(t, err)
  assert.Equal(t, "u1", userID)

  refresh, err := repository.RefreshToken("u1")
  require.NoError(t, err)
  userID, err = repository.Verify(refresh)
  require.NoError(t, err)
  assert.Equal(t, "u1", userID)
}

func TestTokenExpired(t *testing.T) {
  t.Setenv("CHIRPER_JWT_SECRET", "test-secret")

  now := time.Now()
  payload, err := json.Marshal(&Claims{
    Sub: "u1",
    Typ: "access",
    Iat: now.Add(-2 * time.Hour).Unix(),
    Exp: now.Add(-time.Hour).Unix(),
  })
  require.NoError(t, err)
  buf, err := jws.Sign(payload, jwa.HS256, []byte("test-secret"))
  require.NoError(t, err)

  repository := &TokenRepository{}
  _, err = repository.Verify(string(buf))
  assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
  t.Setenv("CHIRPER_JWT_SECRET", "test-secret")

  payload, err := json.Marshal(&Claims{
    Sub: "u1",
    Typ: "access",
    Iat: time.Now().Unix(),
    Exp: time.Now().Add(time.Hour).Unix(),
  })
  require.NoError(t, err)
  buf, err := jws.Sign(payload, jwa.HS256, []byte("other-secret"))
  require.NoError(t, err)

  repository := &TokenRepository{}
  _, err = repository.Verify(string(buf))
  assert.Error(t, err)
}

func TestTokenMissingSubject(t *testing.T) {
  t.Setenv("CHIRPER_JWT_SECRET", "test-secret")

  payload, err := json.Marshal(map[string]interface{}{
    "exp": time.Now().Add(time.Hour).Unix(),
  })
  require.NoError(t, err)
  buf, err := jws.Sign(payload, jwa.HS256, []byte("test-secret"))
  require.NoError(t, err)

  repository := &TokenRepository{}
  _, err = repository.Verify(string(buf))
  assert.Error(t, err)
}
