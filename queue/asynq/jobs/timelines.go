package jobs

import (
  "github.com/hibiken/asynq"

  "chirper.local/chirper/config"
)

type Timelines struct{}

func (h *Timelines) Flush() (*asynq.Task, error) {
  return asynq.NewTask(config.ASYNQ_JOBS_TIMELINES_FLUSH, nil), nil
}
