package ws

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// fakeBus is a SignalBus whose subscriptions stay open and idle.
type fakeBus struct {
	msgs chan []byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{msgs: make(chan []byte)}
}

func (b *fakeBus) Publish(ctx context.Context, channel string, payload []byte) error {
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	return b.msgs, nil
}

func (b *fakeBus) StreamAppend(ctx context.Context, stream string, payload []byte) error {
	return nil
}

func (b *fakeBus) StreamRead(ctx context.Context, stream string, lastID string, count int) ([]domain.StreamMessage, error) {
	return nil, nil
}

var _ domain.SignalBus = (*fakeBus)(nil)

func newTestClient(h *Hub) *client {
	c := &client{
		hub:  h,
		send: make(chan []byte, sendBufferSize),
		subs: map[string]bool{"arb:opportunities": true},
	}
	return c
}

func TestShutdownReleasesClients(t *testing.T) {
	hub := NewHub(newFakeBus(), slog.Default(), Config{Mode: "full"})

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- hub.Run(ctx) }()

	c := newTestClient(hub)
	require.True(t, hub.admit(c), "admit while running")
	require.Eventually(t, func() bool { return hub.clientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-runDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	// The connection's read loop still unregisters on its way out. That
	// must not block once the event loop is gone.
	released := make(chan struct{})
	go func() {
		hub.release(c)
		close(released)
	}()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("release blocked after shutdown")
	}

	assert.False(t, hub.admit(newTestClient(hub)), "admit after shutdown")
	assert.Equal(t, 0, hub.clientCount())
}

func TestRegisterAndUnregisterWhileRunning(t *testing.T) {
	hub := NewHub(newFakeBus(), slog.Default(), Config{Mode: "server"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := newTestClient(hub)
	require.True(t, hub.admit(c))
	require.Eventually(t, func() bool { return hub.clientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.release(c)
	require.Eventually(t, func() bool { return hub.clientCount() == 0 }, time.Second, 5*time.Millisecond)

	// The event loop closed the send channel on unregister.
	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel left open after release")
	}
}
