package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseLogSequencingAndRead(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := caselog.NewService(client, events.NewPublisher(db))
	caseID := uuid.NewString()

	first, err := svc.Append(ctx, caseID, "PLANNER", "Planning investigation")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sequence)

	second, err := svc.Append(ctx, caseID, "NAVIGATOR", "3 code matches")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Sequence)

	// Another case starts its own sequence.
	otherCase := uuid.NewString()
	other, err := svc.Append(ctx, otherCase, "PLANNER", "Planning")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Sequence)

	all, err := svc.Read(ctx, caseID, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PLANNER", all[0].Agent)
	assert.Equal(t, "NAVIGATOR", all[1].Agent)

	// from=N returns strictly later entries, the SSE catch-up contract.
	tail, err := svc.Read(ctx, caseID, 1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, 2, tail[0].Sequence)
}

func TestCaseLogExpiryAndSweep(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := caselog.NewService(client, events.NewPublisher(db))
	caseID := uuid.NewString()

	_, err := svc.Append(ctx, caseID, "PLANNER", "one")
	require.NoError(t, err)
	_, err = svc.Append(ctx, caseID, "JUDGE", "two")
	require.NoError(t, err)

	keepCase := uuid.NewString()
	_, err = svc.Append(ctx, keepCase, "PLANNER", "still live")
	require.NoError(t, err)

	// Terminal case: entries expire an hour out; nothing to sweep yet.
	expiresAt := time.Now().Add(time.Hour)
	require.NoError(t, svc.ExpireAfter(ctx, caseID, expiresAt))

	n, err := svc.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Past the TTL the case's entries are swept, other cases untouched.
	n, err = svc.DeleteExpired(ctx, expiresAt.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := svc.Read(ctx, caseID, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := svc.Read(ctx, keepCase, 0)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestCaseLogEventsReachListener(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	broker := events.NewBroker()
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), broker)
	require.NoError(t, listener.Start(ctx))
	defer listener.Stop(ctx)

	caseID := uuid.NewString()
	ch, cancel := broker.Subscribe(ctx, events.CaseChannel(caseID))
	defer cancel()

	// LISTEN registration races the NOTIFY below; give it a moment.
	time.Sleep(200 * time.Millisecond)

	svc := caselog.NewService(client, events.NewPublisher(db))
	_, err := svc.Append(ctx, caseID, "PLANNER", "Planning investigation")
	require.NoError(t, err)

	select {
	case payload := <-ch:
		var got events.CaseLogPayload
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, events.EventTypeCaseLog, got.Type)
		assert.Equal(t, caseID, got.CaseID)
		assert.Equal(t, "PLANNER", got.Agent)
		assert.Equal(t, 1, got.Sequence)
	case <-time.After(5 * time.Second):
		t.Fatal("no event delivered within 5s")
	}
}
