package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(executors map[job.Type]Executor) *Worker {
	return NewWorker("pod-0-worker-0", "pod-0", nil, config.DefaultQueueConfig(), executors)
}

func TestPollIntervalWithinJitterRange(t *testing.T) {
	w := newTestWorker(nil)
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, base-jitter)
		assert.LessOrEqual(t, d, base+jitter)
	}
}

func TestPollIntervalWithoutJitter(t *testing.T) {
	w := newTestWorker(nil)
	w.config = &config.QueueConfig{PollInterval: time.Second}

	assert.Equal(t, time.Second, w.pollInterval())
}

func TestExecuteDispatchesByType(t *testing.T) {
	var got *ent.Job
	w := newTestWorker(map[job.Type]Executor{
		job.TypeIndex: ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			got = j
			return map[string]any{"chunks": 6}, nil
		}),
	})

	j := &ent.Job{ID: "j1", Type: job.TypeIndex, TimeoutSeconds: 60}
	result, err := w.execute(context.Background(), j)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"chunks": 6}, result)
	assert.Same(t, j, got)
}

func TestExecuteUnknownType(t *testing.T) {
	w := newTestWorker(map[job.Type]Executor{})

	_, err := w.execute(context.Background(), &ent.Job{Type: job.TypeAudit, TimeoutSeconds: 60})
	assert.ErrorIs(t, err, ErrUnknownJobType)
}

func TestExecuteReportsTimeout(t *testing.T) {
	w := newTestWorker(map[job.Type]Executor{
		job.TypeIndex: ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			<-ctx.Done()
			return nil, nil
		}),
	})

	// TimeoutSeconds of 0 expires the job context immediately.
	_, err := w.execute(context.Background(), &ent.Job{Type: job.TypeIndex, TimeoutSeconds: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestExecutePreservesExecutorError(t *testing.T) {
	boom := errors.New("provider unavailable")
	w := newTestWorker(map[job.Type]Executor{
		job.TypeIndex: ExecutorFunc(func(ctx context.Context, j *ent.Job) (map[string]any, error) {
			return nil, boom
		}),
	})

	_, err := w.execute(context.Background(), &ent.Job{Type: job.TypeIndex, TimeoutSeconds: 60})
	assert.ErrorIs(t, err, boom)
}

func TestWorkerHealthSnapshot(t *testing.T) {
	w := newTestWorker(nil)
	w.setStatus(WorkerStatusWorking, "j42")

	h := w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "j42", h.CurrentJobID)
}
