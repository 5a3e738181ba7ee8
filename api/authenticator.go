package api

import (
  "context"
  "net/http"
  "strings"

  jwtRepositories "chirper.local/chirper/repositories/jwt"
)

type contextKey string

const CurrentUserKey contextKey = "current_user"

// Authenticator rejects requests without a valid bearer token.
func Authenticator(next http.Handler) http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    response := &ResponseHandler{
      Writer: w,
    }
    token := BearerToken(r)
    if token == "" {
      response.Error(http.StatusUnauthorized, 1001, "authorization required")
      return
    }
    repository := &jwtRepositories.TokenRepository{}
    userID, err := repository.Verify(token)
    if err != nil {
      response.Error(http.StatusUnauthorized, 1001, "token invalid")
      return
    }
    ctx := context.WithValue(r.Context(), CurrentUserKey, userID)
    next.ServeHTTP(w, r.WithContext(ctx))
  })
}

// Sessionizer resolves the caller's identity when a bearer token is
// present but lets anonymous requests through untouched. A token that
// is present and broken still fails, it is never downgraded to
// anonymous.
func Sessionizer(next http.Handler) http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    token := BearerToken(r)
    if token == "" {
      next.ServeHTTP(w, r)
      return
    }
    response := &ResponseHandler{
      Writer: w,
    }
    repository := &jwtRepositories.TokenRepository{}
    userID, err := repository.Verify(token)
    if err != nil {
      response.Error(http.StatusUnauthorized, 1001, "token invalid")
      return
    }
    ctx := context.WithValue(r.Context(), CurrentUserKey, userID)
    next.ServeHTTP(w, r.WithContext(ctx))
  })
}

func BearerToken(r *http.Request) string {
  header := r.Header.Get("Authorization")
  if !strings.HasPrefix(header, "Bearer ") {
    return ""
  }
  return strings.TrimPrefix(header, "Bearer ")
}

func CurrentUser(r *http.Request) string {
  userID, _ := r.Context().Value(CurrentUserKey).(string)
  return userID
}
