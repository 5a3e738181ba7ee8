package workers

import (
  "context"

  "github.com/hibiken/asynq"

  "chirper.local/chirper/common"
  "chirper.local/chirper/config"
  "chirper.local/chirper/repositories"
)

type Timelines struct {
  AnsqContext *common.AnsqServerContext
  Repository  *repositories.TimelinesRepository
}

func NewTimelines(ansqContext *common.AnsqServerContext) *Timelines {
  h := &Timelines{
    AnsqContext: ansqContext,
  }
  h.Repository = &repositories.TimelinesRepository{
    Rdb: h.AnsqContext.Rdb,
    Ctx: h.AnsqContext.Ctx,
  }
  return h
}

func (h *Timelines) Flush(ctx context.Context, t *asynq.Task) error {
  return h.Repository.Invalidate()
}

func (h *Timelines) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_TIMELINES_FLUSH, h.Flush)
  return nil
}
