package events

import (
	"context"
	"log/slog"
	"sync"
)

// subscriber is one local consumer of a channel's events.
type subscriber struct {
	ch chan []byte
}

// Broker fans incoming NOTIFY payloads out to local subscribers (SSE
// handlers). Channels with no subscribers are UNLISTENed to keep the
// LISTEN connection lean.
type Broker struct {
	listener *NotifyListener

	mu   sync.RWMutex
	subs map[string][]*subscriber
}

// NewBroker creates a broker; attach it to a listener with
// listener dispatching into Broadcast.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string][]*subscriber)}
}

// SetListener wires the LISTEN side used for channel subscription
// management. Optional: a nil listener restricts delivery to events
// published in this process.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listener = l
}

// Subscribe registers a consumer for a channel and returns the delivery
// channel plus a cancel function. Slow consumers drop events rather than
// block the dispatch path.
func (b *Broker) Subscribe(ctx context.Context, channel string) (<-chan []byte, func()) {
	sub := &subscriber{ch: make(chan []byte, 64)}

	b.mu.Lock()
	first := len(b.subs[channel]) == 0
	b.subs[channel] = append(b.subs[channel], sub)
	b.mu.Unlock()

	if first && b.listener != nil {
		if err := b.listener.Subscribe(ctx, channel); err != nil {
			slog.Warn("LISTEN subscribe failed, local events only", "channel", channel, "error", err)
		}
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.unsubscribe(channel, sub) })
	}
	return sub.ch, cancel
}

func (b *Broker) unsubscribe(channel string, sub *subscriber) {
	b.mu.Lock()
	subs := b.subs[channel]
	for i, s := range subs {
		if s == sub {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(b.subs, channel)
	} else {
		b.subs[channel] = subs
	}
	last := len(subs) == 0
	b.mu.Unlock()

	close(sub.ch)
	if last && b.listener != nil {
		if err := b.listener.Unsubscribe(context.Background(), channel); err != nil {
			slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
		}
	}
}

// Broadcast delivers a payload to every local subscriber of the channel.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs[channel] {
		select {
		case sub.ch <- payload:
		default:
			// Consumer is not keeping up; it will re-sync from the log
			// read endpoint.
		}
	}
}

// SubscriberCount reports the local subscribers of a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}
