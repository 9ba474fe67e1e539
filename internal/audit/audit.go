package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeRecord = "audit:record"

// Entry is one activity-log line. Metadata is free-form and ends up in the
// jsonb column.
type Entry struct {
	ActorID     *uuid.UUID     `json:"actor_id,omitempty"`
	SubjectType string         `json:"subject_type"`
	SubjectID   string         `json:"subject_id"`
	Action      string         `json:"action"`
	Outcome     string         `json:"outcome"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Recorder accepts entries for asynchronous persistence. Implementations
// must not make the caller's operation fail: callers enqueue after commit
// and treat errors as log-and-continue.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// QueueRecorder enqueues entries on the task queue for the worker to persist.
type QueueRecorder struct {
	client *asynq.Client
}

func NewQueueRecorder(cfg *config.RedisConfig) (*QueueRecorder, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Activate and test the connection
	if err := client.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis queue: %w", err)
	}

	logging.Info("Connected to Redis task queue")

	return &QueueRecorder{client: client}, nil
}

func (r *QueueRecorder) Record(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	task := asynq.NewTask(TypeRecord, payload)

	if _, err := r.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue audit entry: %w", err)
	}
	return nil
}

func (r *QueueRecorder) Close() error {
	return r.client.Close()
}
