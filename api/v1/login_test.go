package v1

import (
  "net/http"
  "net/url"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/tidwall/gjson"

  "chirper.local/chirper/models"
  "chirper.local/chirper/repositories"
  jwtRepositories "chirper.local/chirper/repositories/jwt"
)

func TestLogin(t *testing.T) {
  apiContext := newTestContext(t)
  router := NewLoginRouter(apiContext)

  users := &repositories.UsersRepository{Db: apiContext.Db}
  user, err := users.Create("alice", "secret", "")
  require.NoError(t, err)

  w := doForm(t, router, "POST", "/", url.Values{
    "name":     {"alice"},
    "password": {"secret"},
  }, "")
  require.Equal(t, http.StatusOK, w.Code)

  accessToken := gjson.Get(w.Body.String(), "data.access_token").String()
  require.NotEmpty(t, accessToken)
  assert.NotEmpty(t, gjson.Get(w.Body.String(), "data.refresh_token").String())

  userID, err := (&jwtRepositories.TokenRepository{}).Verify(accessToken)
  require.NoError(t, err)
  assert.Equal(t, user.ID, userID)

  // a session audit row is written per login
  var sessions []*models.Session
  require.NoError(t, apiContext.Db.Find(&sessions).Error)
  require.Len(t, sessions, 1)
  assert.Equal(t, user.ID, sessions[0].UserID)
}

func TestLoginWrongPassword(t *testing.T) {
  apiContext := newTestContext(t)
  router := NewLoginRouter(apiContext)

  users := &repositories.UsersRepository{Db: apiContext.Db}
  _, err := users.Create("alice", "secret", "")
  require.NoError(t, err)

  w := doForm(t, router, "POST", "/", url.Values{
    "name":     {"alice"},
    "password": {"wrong"},
  }, "")
  assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
  apiContext := newTestContext(t)
  router := NewLoginRouter(apiContext)

  w := doForm(t, router, "POST", "/", url.Values{
    "name":     {"nobody"},
    "password": {"secret"},
  }, "")
  assert.Equal(t, http.StatusForbidden, w.Code)
}
