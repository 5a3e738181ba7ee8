package v1

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "chirper.local/chirper/api"
  "chirper.local/chirper/common"
  "chirper.local/chirper/config"
  "chirper.local/chirper/models"
  "chirper.local/chirper/repositories"
)

type TweetsHandler struct {
  ApiContext          *common.ApiContext
  Response            *api.ResponseHandler
  Repository          *repositories.TweetsRepository
  UsersRepository     *repositories.UsersRepository
  LikesRepository     *repositories.LikesRepository
  TimelinesRepository *repositories.TimelinesRepository
}

func NewTweetsRouter(apiContext *common.ApiContext) http.Handler {
  h := TweetsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.TweetsRepository{
    Db:   h.ApiContext.Db,
    Nats: h.ApiContext.Nats,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }
  h.LikesRepository = &repositories.LikesRepository{
    Db:   h.ApiContext.Db,
    Nats: h.ApiContext.Nats,
  }
  h.TimelinesRepository = &repositories.TimelinesRepository{
    Rdb: h.ApiContext.Rdb,
    Ctx: h.ApiContext.Ctx,
  }

  r := chi.NewRouter()
  r.With(api.Sessionizer).Get("/timeline", h.Timeline)
  r.With(api.Authenticator).Post("/", h.Create)
  r.With(api.Authenticator).Post("/{tweetId}/likes", h.Like)
  r.With(api.Authenticator).Delete("/{tweetId}/likes", h.Unlike)

  return r
}

func (h *TweetsHandler) Timeline(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  q := r.URL.Query()

  limit := config.TIMELINE_LIMIT_DEFAULT
  if q.Has("limit") {
    limit, _ = strconv.Atoi(q.Get("limit"))
  }
  if limit < 1 || limit > config.TIMELINE_LIMIT_MAX {
    h.Response.Error(http.StatusUnprocessableEntity, 1004, "limit not valid")
    return
  }

  conditions := make(map[string]interface{})
  if q.Get("author") != "" {
    conditions["author"] = q.Get("author")
  }

  cursor := q.Get("cursor")
  viewer := api.CurrentUser(r)

  cacheKey := h.TimelinesRepository.Key(viewer, conditions, limit)
  if page, err := h.TimelinesRepository.Get(cacheKey, cursor); err == nil {
    h.Response.Json(page)
    return
  }

  tweets, nextCursor, err := h.Repository.Timeline(conditions, cursor, limit)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1404, "cursor not found")
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  page := &repositories.TimelineInfo{
    Tweets:     h.tweetInfos(tweets, viewer),
    NextCursor: nextCursor,
  }
  h.TimelinesRepository.Set(cacheKey, cursor, page)

  h.Response.Json(page)
}

func (h *TweetsHandler) Create(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseForm()

  text := r.Form.Get("text")
  if err := common.ValidateTweetContent(text); err != nil {
    h.Response.Error(http.StatusUnprocessableEntity, 1004, err.Error())
    return
  }

  userID := api.CurrentUser(r)

  tweet, err := h.Repository.Create(userID, text)
  var validationErr *common.ValidationError
  if errors.As(err, &validationErr) {
    h.Response.Error(http.StatusUnprocessableEntity, 1004, validationErr.Error())
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(h.tweetInfos([]*models.Tweet{tweet}, userID)[0])
}

func (h *TweetsHandler) Like(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  tweetID := chi.URLParam(r, "tweetId")
  userID := api.CurrentUser(r)

  _, err := h.LikesRepository.Create(tweetID, userID)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1404, "tweet not found")
    return
  }
  if common.IsUniqueViolation(err) {
    h.Response.Error(http.StatusConflict, 1009, "tweet already liked")
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.TimelinesRepository.Reconcile(userID, config.TIMELINE_ACTION_LIKE, tweetID, userID)

  h.Response.Json(map[string]interface{}{
    "user_id": userID,
  })
}

func (h *TweetsHandler) Unlike(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  tweetID := chi.URLParam(r, "tweetId")
  userID := api.CurrentUser(r)

  err := h.LikesRepository.Delete(tweetID, userID)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1404, "like not found")
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.TimelinesRepository.Reconcile(userID, config.TIMELINE_ACTION_UNLIKE, tweetID, userID)

  h.Response.Json(map[string]interface{}{
    "user_id": userID,
  })
}

func (h *TweetsHandler) tweetInfos(
  tweets []*models.Tweet,
  viewer string,
) []*repositories.TweetInfo {
  tweetIDs := make([]string, len(tweets))
  for i, tweet := range tweets {
    tweetIDs[i] = tweet.ID
  }

  var totals map[string]int64
  var liked map[string]bool
  if len(tweetIDs) > 0 {
    totals = h.LikesRepository.Counts(tweetIDs)
    liked = h.LikesRepository.Liked(tweetIDs, viewer)
  }

  data := make([]*repositories.TweetInfo, len(tweets))
  for i, tweet := range tweets {
    likes := []string{}
    if liked[tweet.ID] {
      likes = append(likes, viewer)
    }
    data[i] = &repositories.TweetInfo{
      ID:         tweet.ID,
      Content:    tweet.Content,
      Likes:      likes,
      LikesCount: totals[tweet.ID],
      Timestamp:  tweet.CreatedAt.Unix(),
    }
    if user, err := h.UsersRepository.Find(tweet.UserID); err == nil {
      data[i].Author = &repositories.AuthorInfo{
        ID:     user.ID,
        Name:   user.Name,
        Avatar: user.Avatar,
      }
    }
  }
  return data
}
