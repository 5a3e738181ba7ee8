package asynq

import (
  "chirper.local/chirper/common"
  "chirper.local/chirper/queue/asynq/workers"
)

type Workers struct {
  AnsqContext *common.AnsqServerContext
}

func NewWorkers(ansqContext *common.AnsqServerContext) *Workers {
  return &Workers{
    AnsqContext: ansqContext,
  }
}

func (h *Workers) Register() error {
  workers.NewTimelines(h.AnsqContext).Register()
  return nil
}
