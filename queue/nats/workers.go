package nats

import (
  "chirper.local/chirper/common"
  "chirper.local/chirper/queue/nats/workers"
)

type Workers struct {
  NatsContext *common.NatsContext
}

func NewWorkers(natsContext *common.NatsContext) *Workers {
  return &Workers{
    NatsContext: natsContext,
  }
}

func (h *Workers) Subscribe() error {
  workers.NewTweets(h.NatsContext).Subscribe()
  return nil
}
