package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJob(t *testing.T, client *ent.Client, status job.Status, completedAt time.Time) *ent.Job {
	t.Helper()
	builder := client.Job.Create().
		SetID(uuid.NewString()).
		SetType(job.TypeIndex).
		SetPayload(map[string]any{"repo_id": "r1"}).
		SetStatus(status)
	if !completedAt.IsZero() {
		builder.SetCompletedAt(completedAt)
	}
	j, err := builder.Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestSweep(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	logs := caselog.NewService(client, nil)
	svc := NewService(client, logs, &config.RetentionConfig{
		CaseLogTTL:      time.Hour,
		JobResultTTL:    24 * time.Hour,
		JobFailureTTL:   7 * 24 * time.Hour,
		CleanupInterval: time.Minute,
	})

	// Terminal case whose log expiry has passed, and a live case's log.
	_, err := logs.Append(ctx, "case-old", "planner", "audit plan drafted")
	require.NoError(t, err)
	require.NoError(t, logs.ExpireAfter(ctx, "case-old", time.Now().Add(-time.Minute)))
	_, err = logs.Append(ctx, "case-live", "planner", "audit plan drafted")
	require.NoError(t, err)

	oldCompleted := seedJob(t, client, job.StatusCompleted, time.Now().Add(-48*time.Hour))
	freshCompleted := seedJob(t, client, job.StatusCompleted, time.Now().Add(-time.Hour))
	oldFailed := seedJob(t, client, job.StatusFailed, time.Now().Add(-8*24*time.Hour))
	freshFailed := seedJob(t, client, job.StatusFailed, time.Now().Add(-24*time.Hour))
	running := seedJob(t, client, job.StatusRunning, time.Time{})

	svc.Sweep(ctx)

	liveLog, err := logs.Read(ctx, "case-live", 0)
	require.NoError(t, err)
	assert.Len(t, liveLog, 1, "unexpired log survives")
	oldLog, err := logs.Read(ctx, "case-old", 0)
	require.NoError(t, err)
	assert.Empty(t, oldLog, "expired log deleted")

	assertJobExists(t, client, oldCompleted.ID, false)
	assertJobExists(t, client, freshCompleted.ID, true)
	assertJobExists(t, client, oldFailed.ID, false)
	assertJobExists(t, client, freshFailed.ID, true)
	assertJobExists(t, client, running.ID, true)
}

func TestStartStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	logs := caselog.NewService(client, nil)
	svc := NewService(client, logs, &config.RetentionConfig{
		CaseLogTTL:      time.Hour,
		JobResultTTL:    24 * time.Hour,
		JobFailureTTL:   7 * 24 * time.Hour,
		CleanupInterval: 10 * time.Millisecond,
	})

	svc.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	svc.Stop()
	svc.Stop() // idempotent
}

func assertJobExists(t *testing.T, client *ent.Client, id string, want bool) {
	t.Helper()
	exists, err := client.Job.Query().Where(job.IDEQ(id)).Exist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, exists, "job %s", id)
}
