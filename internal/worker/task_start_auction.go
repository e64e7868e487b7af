package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type PayloadStartAuction struct {
	AuctionID uuid.UUID `json:"auction_id"`
}

// DistributeTaskStartAuction schedules the pending → active transition of an auction.
func (distributor *RedisTaskDistributor) DistributeTaskStartAuction(
	ctx context.Context,
	payload *PayloadStartAuction,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	taskID := fmt.Sprintf("auction:start:%s", payload.AuctionID.String())
	task := asynq.NewTask(TaskStartAuction, jsonPayload, append(opts, asynq.TaskID(taskID))...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("task_id", taskID).
		Str("auction_id", payload.AuctionID.String()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Time("process_at", info.NextProcessAt).
		Msg("auction start task scheduled")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskStartAuction(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadStartAuction
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Str("auction_id", payload.AuctionID.String()).
		Msg("processing auction start task")

	return processor.auctions.StartAuction(ctx, payload.AuctionID)
}
