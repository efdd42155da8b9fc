package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"barberia/services/mail"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeConfirmationMail = "mail:confirmation"
	MaxMailRetries       = 5
)

func NewConfirmationMailTask(msg mail.Message) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeConfirmationMail, b)
	opts := []asynq.Option{asynq.MaxRetry(MaxMailRetries)}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the queued dispatcher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuedDispatcher hands confirmation emails to the mail worker instead of
// sending them inline. Send succeeds once the task is enqueued.
type QueuedDispatcher struct {
	Queue  Enqueuer
	Logger *zap.Logger
}

func NewQueuedDispatcher(queue Enqueuer, logger *zap.Logger) *QueuedDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueuedDispatcher{Queue: queue, Logger: logger}
}

func (d *QueuedDispatcher) Send(ctx context.Context, msg mail.Message) error {
	task, opts, err := NewConfirmationMailTask(msg)
	if err != nil {
		return fmt.Errorf("failed to build mail task: %w", err)
	}
	info, err := d.Queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue mail task: %w", err)
	}
	d.Logger.Debug("Confirmation mail enqueued", zap.String("taskId", info.ID), zap.String("queue", info.Queue))
	return nil
}
