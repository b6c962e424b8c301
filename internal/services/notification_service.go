package services

import (
	"sync"
)

const (
	EventNewJob            = "new_job"
	EventApplicationNew    = "application_submitted"
	EventApplicationStatus = "application_status"
	EventChatMessage       = "chat_message"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// NotificationHub fans events out to connected clients. Emission is
// fire-and-forget: a slow or absent subscriber never blocks the publisher,
// and a full buffer drops the event.
type NotificationHub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{} // recipient id -> channels
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for recipientID and returns its channel
// plus a cancel func the caller must invoke when the connection closes.
func (h *NotificationHub) Subscribe(recipientID string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[recipientID] == nil {
		h.subs[recipientID] = make(map[chan Event]struct{})
	}
	h.subs[recipientID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[recipientID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, recipientID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to a single recipient's connections.
func (h *NotificationHub) Publish(recipientID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[recipientID] {
		select {
		case ch <- event:
		default: // drop rather than block
		}
	}
}

// Broadcast delivers an event to every connected client.
func (h *NotificationHub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.subs {
		for ch := range set {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
