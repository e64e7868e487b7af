package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/katatrina/procurement-BE/internal/mailer"
	"github.com/rs/zerolog/log"
)

// PayloadSendNotification contain all data of the task that we want to store in Redis.
type PayloadSendNotification struct {
	RecipientID string `json:"recipient_id"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id"`
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *PayloadSendNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("recipient_id", payload.RecipientID).
		Str("notification_type", payload.Type).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	if payload.Email == "" {
		return fmt.Errorf("notification for %s has no email address: %w", payload.RecipientID, asynq.SkipRetry)
	}

	err := processor.mailer.SendEmail(ctx, mailer.EmailHeader{
		Subject: payload.Subject,
		To:      []string{payload.Email},
	}, payload.Body)
	if err != nil {
		log.Error().Err(err).Str("recipient_id", payload.RecipientID).Msg("failed to send notification")
		return err
	}

	log.Info().
		Str("type", task.Type()).
		Str("recipient_id", payload.RecipientID).
		Str("reference_id", payload.ReferenceID).
		Msg("task processed")

	return nil
}
