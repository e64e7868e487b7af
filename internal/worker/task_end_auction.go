package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type PayloadEndAuction struct {
	AuctionID uuid.UUID `json:"auction_id"`
}

// DistributeTaskEndAuction schedules the active → completed transition of an auction.
func (distributor *RedisTaskDistributor) DistributeTaskEndAuction(
	ctx context.Context,
	payload *PayloadEndAuction,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	taskID := fmt.Sprintf("auction:end:%s", payload.AuctionID.String())
	task := asynq.NewTask(TaskEndAuction, jsonPayload, append(opts, asynq.TaskID(taskID))...)
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
		Msg("auction end task scheduled")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskEndAuction(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadEndAuction
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Str("auction_id", payload.AuctionID.String()).
		Msg("processing auction end task")

	return processor.auctions.EndAuction(ctx, payload.AuctionID)
}
