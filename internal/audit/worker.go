package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/hibiken/asynq"
)

// Worker consumes audit tasks and writes activity_logs rows.
type Worker struct {
	server  *asynq.Server
	queries *db.Queries
}

func NewWorker(cfg *config.RedisConfig, queries *db.Queries) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logging.Error("process task failed", "type", task.Type(), "payload", string(task.Payload()), "error", err)
			}),
		},
	)

	return &Worker{
		server:  server,
		queries: queries,
	}
}

// Run processes tasks until SIGTERM or SIGINT, then drains and returns.
func (w *Worker) Run() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRecord, w.HandleRecord)

	return w.server.Run(mux)
}

func (w *Worker) Close() {
	if w.server != nil {
		w.server.Shutdown()
	}
}

func (w *Worker) HandleRecord(ctx context.Context, t *asynq.Task) error {
	var entry Entry
	if err := json.Unmarshal(t.Payload(), &entry); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	var metadata []byte
	if entry.Metadata != nil {
		var err error
		metadata, err = json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("json.Marshal metadata failed: %v: %w", err, asynq.SkipRetry)
		}
	}

	if err := w.queries.InsertActivityLog(ctx, db.InsertActivityLogParams{
		ActorID:     entry.ActorID,
		SubjectType: entry.SubjectType,
		SubjectID:   entry.SubjectID,
		Action:      entry.Action,
		Outcome:     entry.Outcome,
		Metadata:    metadata,
	}); err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}

	return nil
}
