package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesOnlyRecipient(t *testing.T) {
	hub := NewNotificationHub()

	alice, cancelAlice := hub.Subscribe("alice")
	defer cancelAlice()
	bob, cancelBob := hub.Subscribe("bob")
	defer cancelBob()

	hub.Publish("alice", Event{Type: "ping"})

	select {
	case event := <-alice:
		assert.Equal(t, "ping", event.Type)
	default:
		t.Fatal("alice should have received the event")
	}

	select {
	case <-bob:
		t.Fatal("bob must not receive alice's event")
	default:
	}
}

func TestHubBroadcastReachesEveryone(t *testing.T) {
	hub := NewNotificationHub()

	alice, cancelAlice := hub.Subscribe("alice")
	defer cancelAlice()
	bob, cancelBob := hub.Subscribe("bob")
	defer cancelBob()

	hub.Broadcast(Event{Type: "new_job"})

	for name, ch := range map[string]<-chan Event{"alice": alice, "bob": bob} {
		select {
		case event := <-ch:
			assert.Equal(t, "new_job", event.Type)
		default:
			t.Fatalf("%s should have received the broadcast", name)
		}
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	hub := NewNotificationHub()

	ch, cancel := hub.Subscribe("alice")
	cancel()

	// Publishing after cancel must neither panic nor deliver.
	hub.Publish("alice", Event{Type: "ping"})

	_, open := <-ch
	assert.False(t, open, "channel must be closed after cancel")
}

func TestHubCancelIsIdempotent(t *testing.T) {
	hub := NewNotificationHub()

	_, cancel := hub.Subscribe("alice")
	cancel()

	// Deferred and explicit cancels can both fire; the second is a no-op.
	assert.NotPanics(t, func() { cancel() })
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewNotificationHub()

	ch, cancel := hub.Subscribe("alice")
	defer cancel()

	// A slow consumer never blocks the publisher; overflow is dropped.
	for i := 0; i < 100; i++ {
		hub.Publish("alice", Event{Type: "ping"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	require.Greater(t, received, 0)
	assert.LessOrEqual(t, received, 16)
}

func TestHubMultipleConnectionsPerRecipient(t *testing.T) {
	hub := NewNotificationHub()

	first, cancelFirst := hub.Subscribe("alice")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("alice")
	defer cancelSecond()

	hub.Publish("alice", Event{Type: "ping"})

	for name, ch := range map[string]<-chan Event{"first": first, "second": second} {
		select {
		case <-ch:
		default:
			t.Fatalf("%s connection should have received the event", name)
		}
	}
}
