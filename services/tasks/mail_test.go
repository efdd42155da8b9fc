package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"barberia/services/mail"

	"github.com/hibiken/asynq"
)

type fakeQueue struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.task = task
	q.opts = opts
	return &asynq.TaskInfo{ID: "task-1", Queue: "default"}, nil
}

func TestQueuedDispatcherEnqueues(t *testing.T) {
	queue := &fakeQueue{}
	d := NewQueuedDispatcher(queue, nil)
	msg := mail.Message{ServiceID: "s", TemplateID: "t", PublicKey: "p", Params: map[string]string{"name": "Ana"}}

	if err := d.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if queue.task == nil || queue.task.Type() != TypeConfirmationMail {
		t.Fatalf("expected %s task, got %+v", TypeConfirmationMail, queue.task)
	}

	var got mail.Message
	if err := json.Unmarshal(queue.task.Payload(), &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.TemplateID != "t" || got.Params["name"] != "Ana" {
		t.Fatalf("unexpected payload %+v", got)
	}

	var retries interface{}
	for _, opt := range queue.opts {
		if opt.Type() == asynq.MaxRetryOpt {
			retries = opt.Value()
		}
	}
	if retries != MaxMailRetries {
		t.Fatalf("expected MaxRetry(%d), got %v", MaxMailRetries, retries)
	}
}

func TestQueuedDispatcherEnqueueFailure(t *testing.T) {
	cause := errors.New("redis down")
	d := NewQueuedDispatcher(&fakeQueue{err: cause}, nil)
	if err := d.Send(context.Background(), mail.Message{}); !errors.Is(err, cause) {
		t.Fatalf("expected wrapped enqueue error, got %v", err)
	}
}
