package tasks

import (
  "log"
  "time"

  "github.com/hibiken/asynq"

  "chirper.local/chirper/common"
  "chirper.local/chirper/config"
  "chirper.local/chirper/queue/asynq/jobs"
)

type TimelinesTask struct {
  Job         *jobs.Timelines
  AnsqContext *common.AnsqClientContext
}

func NewTimelinesTask(ansqContext *common.AnsqClientContext) *TimelinesTask {
  return &TimelinesTask{
    AnsqContext: ansqContext,
  }
}

func (t *TimelinesTask) Flush() (err error) {
  log.Println("tasks timelines flush")
  if job, err := t.Job.Flush(); err == nil {
    t.AnsqContext.Conn.Enqueue(
      job,
      asynq.Queue(config.ASYNQ_QUEUE_TIMELINES),
      asynq.MaxRetry(0),
      asynq.Timeout(5*time.Minute),
    )
  }
  return
}
