package jwt

import (
  "encoding/json"
  "errors"
  "time"

  "github.com/lestrrat/go-jwx/jwa"
  "github.com/lestrrat/go-jwx/jws"
  "github.com/tidwall/gjson"

  "chirper.local/chirper/common"
)

type TokenRepository struct{}

type Claims struct {
  Sub string `json:"sub"`
  Typ string `json:"typ"`
  Iat int64  `json:"iat"`
  Exp int64  `json:"exp"`
}

func (r *TokenRepository) AccessToken(userID string) (string, error) {
  ttl := common.GetEnvInt("CHIRPER_ACCESS_TOKEN_TTL")
  if ttl == 0 {
    ttl = 900
  }
  return r.generate(userID, "access", time.Duration(ttl)*time.Second)
}

func (r *TokenRepository) RefreshToken(userID string) (string, error) {
  ttl := common.GetEnvInt("CHIRPER_REFRESH_TOKEN_TTL")
  if ttl == 0 {
    ttl = 2592000
  }
  return r.generate(userID, "refresh", time.Duration(ttl)*time.Second)
}

func (r *TokenRepository) Verify(token string) (userID string, err error) {
  payload, err := jws.Verify(
    []byte(token),
    jwa.HS256,
    []byte(common.GetEnvString("CHIRPER_JWT_SECRET")),
  )
  if err != nil {
    return "", err
  }
  if gjson.GetBytes(payload, "exp").Int() < time.Now().Unix() {
    return "", errors.New("token expired")
  }
  userID = gjson.GetBytes(payload, "sub").String()
  if userID == "" {
    return "", errors.New("token invalid")
  }
  return userID, nil
}

func (r *TokenRepository) generate(
  userID string,
  typ string,
  ttl time.Duration,
) (string, error) {
  now := time.Now()
  payload, err := json.Marshal(&Claims{
    Sub: userID,
    Typ: typ,
    Iat: now.Unix(),
    Exp: now.Add(ttl).Unix(),
  })
  if err != nil {
    return "", err
  }
  buf, err := jws.Sign(
    payload,
    jwa.HS256,
    []byte(common.GetEnvString("CHIRPER_JWT_SECRET")),
  )
  if err != nil {
    return "", err
  }
  return string(buf), nil
}
