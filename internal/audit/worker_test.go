package audit_test

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/fieldstock/inventory-backend/internal/audit"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sharedDB *testutil.TestDatabase

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	t := &testing.T{}
	sharedDB = testutil.NewTestDatabase(t)
	sharedDB.RunMigrations(t)

	code := m.Run()

	if sharedDB.Pool() != nil {
		sharedDB.Pool().Close()
	}

	os.Exit(code)
}

func newTestWorker() *audit.Worker {
	// The redis address is never dialed: HandleRecord is invoked directly.
	return audit.NewWorker(&config.RedisConfig{Addr: "localhost:6379"}, sharedDB.Queries())
}

func TestWorker_HandleRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	t.Run("persists an activity log row", func(t *testing.T) {
		sharedDB.CleanupDatabase(t)
		worker := newTestWorker()

		actorID := uuid.New()
		entry := audit.Entry{
			ActorID:     &actorID,
			SubjectType: "item",
			SubjectID:   uuid.NewString(),
			Action:      "item.verify",
			Outcome:     "success",
			Metadata:    map[string]any{"from": "pending", "to": "verified"},
		}
		payload, err := json.Marshal(entry)
		require.NoError(t, err)

		err = worker.HandleRecord(ctx, asynq.NewTask(audit.TypeRecord, payload))
		require.NoError(t, err)

		var (
			gotActor   uuid.UUID
			gotAction  string
			gotOutcome string
			gotMeta    map[string]any
		)
		row := sharedDB.Pool().QueryRow(ctx,
			"SELECT actor_id, action, outcome, metadata FROM activity_logs WHERE subject_id = $1", entry.SubjectID)
		require.NoError(t, row.Scan(&gotActor, &gotAction, &gotOutcome, &gotMeta))
		assert.Equal(t, actorID, gotActor)
		assert.Equal(t, "item.verify", gotAction)
		assert.Equal(t, "success", gotOutcome)
		assert.Equal(t, "pending", gotMeta["from"])
	})

	t.Run("entry without actor or metadata persists", func(t *testing.T) {
		sharedDB.CleanupDatabase(t)
		worker := newTestWorker()

		entry := audit.Entry{
			SubjectType: "item",
			SubjectID:   uuid.NewString(),
			Action:      "item.create",
			Outcome:     "success",
		}
		payload, err := json.Marshal(entry)
		require.NoError(t, err)

		err = worker.HandleRecord(ctx, asynq.NewTask(audit.TypeRecord, payload))
		require.NoError(t, err)

		var count int
		row := sharedDB.Pool().QueryRow(ctx,
			"SELECT count(*) FROM activity_logs WHERE subject_id = $1", entry.SubjectID)
		require.NoError(t, row.Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("malformed payload is dropped without retry", func(t *testing.T) {
		sharedDB.CleanupDatabase(t)
		worker := newTestWorker()

		err := worker.HandleRecord(ctx, asynq.NewTask(audit.TypeRecord, []byte("{not json")))

		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
