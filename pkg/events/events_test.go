package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseChannel(t *testing.T) {
	assert.Equal(t, "case:abc-123", CaseChannel("abc-123"))
}

func TestTruncateIfNeededPassesSmallPayloads(t *testing.T) {
	payload, err := json.Marshal(CaseLogPayload{
		Type:     EventTypeCaseLog,
		CaseID:   "case-1",
		Agent:    "planner",
		Message:  "planning started",
		Sequence: 1,
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, string(payload), out)
}

func TestTruncateIfNeededBuildsEnvelopeForLargePayloads(t *testing.T) {
	payload, err := json.Marshal(CaseLogPayload{
		Type:     EventTypeCaseLog,
		CaseID:   "case-1",
		Agent:    "investigator",
		Message:  strings.Repeat("x", 9000),
		Sequence: 42,
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Less(t, len(out), 8000)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeCaseLog, envelope["type"])
	assert.Equal(t, "case-1", envelope["case_id"])
	assert.Equal(t, float64(42), envelope["sequence"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "message")
}

func TestBrokerBroadcastReachesSubscribers(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(context.Background(), "case:1")
	defer cancel()

	b.Broadcast("case:1", []byte(`{"type":"case.log"}`))

	select {
	case got := <-ch:
		assert.JSONEq(t, `{"type":"case.log"}`, string(got))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBrokerBroadcastIsChannelScoped(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(context.Background(), "case:1")
	defer cancel()

	b.Broadcast("case:2", []byte("other"))

	select {
	case got := <-ch:
		t.Fatalf("unexpected event: %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBrokerCancelClosesChannelAndIsIdempotent(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(context.Background(), "case:1")
	require.Equal(t, 1, b.SubscriberCount("case:1"))

	cancel()
	cancel() // second call is a no-op

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.SubscriberCount("case:1"))
}

func TestBrokerSlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(context.Background(), "case:1")
	defer cancel()

	// Fill the buffer and then some; Broadcast must never block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			b.Broadcast("case:1", []byte("event"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow consumer")
	}

	// The buffered events are still readable.
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no buffered event delivered")
	}
}

func TestBrokerMultipleSubscribersEachReceive(t *testing.T) {
	b := NewBroker()
	ch1, cancel1 := b.Subscribe(context.Background(), "cases")
	defer cancel1()
	ch2, cancel2 := b.Subscribe(context.Background(), "cases")
	defer cancel2()

	b.Broadcast("cases", []byte("status"))

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, "status", string(got))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}
