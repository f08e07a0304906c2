package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubDeliversOnlySubscribedTables(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe("categories")

	hub.Publish("panchayaths", ActionUpdate)
	hub.Publish("categories", ActionInsert)

	ev := recvEvent(t, sub)
	assert.Equal(t, Event{Table: "categories", Action: ActionInsert}, ev)

	select {
	case extra := <-sub.Events():
		t.Fatalf("unexpected event %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubWildcardSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe("*")

	hub.Publish("categories", ActionDelete)
	assert.Equal(t, "categories", recvEvent(t, sub).Table)

	hub.Publish("registrations", ActionInsert)
	assert.Equal(t, "registrations", recvEvent(t, sub).Table)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe("categories")
	hub.Unsubscribe(sub)

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok, "channel should be closed after unsubscribe")
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	// A publish after teardown must not reach the closed channel.
	hub.Publish("categories", ActionUpdate)
	time.Sleep(20 * time.Millisecond)
}

func TestShutdownClosesSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe("categories")
	cancel()

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok, "channel should be closed on shutdown")
	case <-time.After(time.Second):
		t.Fatal("channel not closed on shutdown")
	}

	// Teardown paths must not block once the hub has stopped.
	unblocked := make(chan struct{})
	go func() {
		hub.Unsubscribe(sub)
		close(unblocked)
	}()
	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("Unsubscribe blocked after shutdown")
	}

	late := hub.Subscribe("panchayaths")
	_, ok := <-late.Events()
	assert.False(t, ok, "late subscription should be closed immediately")
}
