package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberia/config"
	"barberia/services/mail"
	"barberia/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const maxStartAttempts = 5

func startBackoff(attempt int) time.Duration {
	return time.Duration(attempt*2) * time.Second
}

// pingQueue reaches Redis through an inspector; Server.Start alone does not.
func pingQueue() error {
	inspector := asynq.NewInspector(QueueRedisOpt())
	defer inspector.Close()
	_, err := inspector.Queues()
	return err
}

// startWhenReachable retries ping with backoff, then calls start once. A
// server that failed to start cannot be started again, so start is never
// retried.
func startWhenReachable(ping, start func() error, attempts int, backoff func(int) time.Duration, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = ping(); err == nil {
			return start()
		}
		logger.Warn("[MailWorker] Queue unreachable",
			zap.Int("attempt", attempt), zap.Int("maxAttempts", attempts), zap.Error(err))
		if attempt < attempts {
			time.Sleep(backoff(attempt))
		}
	}
	return fmt.Errorf("queue unreachable after %d attempts: %w", attempts, err)
}

// QueueRedisOpt is the asynq connection for the mail queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitMailWorker starts the confirmation mail worker in the background. The
// returned server must be shut down by the caller.
func InitMailWorker(sender mail.Dispatcher, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeConfirmationMail, handleConfirmationMail(sender, logger))

	go func() {
		logger.Info("[MailWorker] Starting async worker...")
		err := startWhenReachable(pingQueue, func() error { return srv.Start(mux) },
			maxStartAttempts, startBackoff, logger)
		if err != nil {
			logger.Error("[MailWorker] Worker not started; queued mail will not be sent", zap.Error(err))
		}
	}()
	return srv
}

func handleConfirmationMail(sender mail.Dispatcher, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var msg mail.Message
		if err := json.Unmarshal(task.Payload(), &msg); err != nil {
			logger.Error("[MailHandler] Invalid payload", zap.Error(err))
			return fmt.Errorf("invalid mail payload: %v: %w", err, asynq.SkipRetry)
		}

		logger.Info("[MailHandler] Sending confirmation",
			zap.String("template", msg.TemplateID), zap.String("date", msg.Params["date"]), zap.String("time", msg.Params["time"]))

		if err := sender.Send(ctx, msg); err != nil {
			logger.Warn("[MailHandler] Send failed, will retry", zap.Error(err))
			return err
		}
		return nil
	}
}
