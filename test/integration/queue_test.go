package integration

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/fincomply/vigil/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLifecycleCompletes(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastQueueConfig()

	executed := atomic.Int32{}
	pool := queue.NewWorkerPool("pod-a", client, cfg, map[job.Type]queue.Executor{
		job.TypeIndex: queue.ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			executed.Add(1)
			return map[string]any{"chunks": float64(7)}, nil
		}),
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	svc := queue.NewService(client, cfg)
	j, err := svc.Enqueue(ctx, job.TypeIndex, map[string]any{"repo_id": "r1"})
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)

	waitFor(t, 5*time.Second, func() bool {
		got, err := svc.Get(ctx, j.ID)
		return err == nil && got.Status == job.StatusCompleted
	})

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), executed.Load())
	assert.Equal(t, map[string]any{"chunks": float64(7)}, got.Result)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.Nil(t, got.LeaseExpiresAt)
}

func TestJobRetriesThenSucceeds(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastQueueConfig()

	attempts := atomic.Int32{}
	pool := queue.NewWorkerPool("pod-a", client, cfg, map[job.Type]queue.Executor{
		job.TypeIndex: queue.ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			if attempts.Add(1) == 1 {
				return nil, errors.New("transient clone failure")
			}
			return map[string]any{"ok": true}, nil
		}),
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	svc := queue.NewService(client, cfg)
	j, err := svc.Enqueue(ctx, job.TypeIndex, map[string]any{"repo_id": "r1"})
	require.NoError(t, err)

	waitFor(t, 5*time.Second, func() bool {
		got, err := svc.Get(ctx, j.ID)
		return err == nil && got.Status == job.StatusCompleted
	})

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, 1, got.Retries)
	// The error of the failed attempt stays recorded for observability.
	assert.Contains(t, *got.Error, "transient clone failure")
}

func TestJobFailsAfterRetryBudget(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastQueueConfig()
	cfg.MaxRetries = 1

	attempts := atomic.Int32{}
	pool := queue.NewWorkerPool("pod-a", client, cfg, map[job.Type]queue.Executor{
		job.TypeIndex: queue.ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			attempts.Add(1)
			return nil, errors.New("permanent breakage")
		}),
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	svc := queue.NewService(client, cfg)
	j, err := svc.Enqueue(ctx, job.TypeIndex, map[string]any{"repo_id": "r1"})
	require.NoError(t, err)

	waitFor(t, 5*time.Second, func() bool {
		got, err := svc.Get(ctx, j.ID)
		return err == nil && got.Status == job.StatusFailed
	})

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load()) // first run + one retry
	assert.Contains(t, *got.Error, "permanent breakage")
	assert.NotNil(t, got.CompletedAt)
}

func TestExpiredLeaseIsReclaimed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastQueueConfig()

	// A running job whose lease already expired, held by a vanished pod.
	past := time.Now().Add(-time.Minute)
	j, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetType(job.TypeIndex).
		SetPayload(map[string]any{"repo_id": "r1"}).
		SetStatus(job.StatusRunning).
		SetMaxRetries(3).
		SetTimeoutSeconds(60).
		SetWorkerID("pod-gone-worker-0").
		SetLeaseExpiresAt(past).
		SetCreatedAt(past).
		SetStartedAt(past).
		Save(ctx)
	require.NoError(t, err)

	done := atomic.Bool{}
	pool := queue.NewWorkerPool("pod-b", client, cfg, map[job.Type]queue.Executor{
		job.TypeIndex: queue.ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			done.Store(true)
			return map[string]any{"ok": true}, nil
		}),
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// The reclaim loop requeues the job, then a worker picks it up.
	waitFor(t, 5*time.Second, func() bool {
		got, err := client.Job.Get(ctx, j.ID)
		return err == nil && got.Status == job.StatusCompleted
	})

	got, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, done.Load())
	assert.Equal(t, 1, got.Retries)
}

func TestStartupOrphanRequeue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetType(job.TypeAudit).
		SetPayload(map[string]any{"case_id": "c1"}).
		SetStatus(job.StatusRunning).
		SetMaxRetries(3).
		SetTimeoutSeconds(60).
		SetWorkerID("pod-a-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Hour)).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	other, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetType(job.TypeAudit).
		SetPayload(map[string]any{"case_id": "c2"}).
		SetStatus(job.StatusRunning).
		SetMaxRetries(3).
		SetTimeoutSeconds(60).
		SetWorkerID("pod-b-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Hour)).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, queue.CleanupStartupOrphans(ctx, client, "pod-a"))

	got, err := client.Job.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, got.Status)
	assert.Equal(t, 1, got.Retries)
	assert.Nil(t, got.WorkerID)
	assert.Nil(t, got.LeaseExpiresAt)

	// The other pod's job is untouched; lease expiry handles it.
	untouched, err := client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
	assert.Equal(t, 0, untouched.Retries)
}
