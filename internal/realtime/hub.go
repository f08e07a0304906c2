// Package realtime fans table-change events out to subscribers. Events carry
// no row data, only "something changed on this table"; consumers re-fetch.
package realtime

import (
	"context"
	"log/slog"
)

// Actions delivered to subscribers. Wildcard subscriptions receive all three.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event identifies a row-level change on a table.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
}

// Subscriber receives the events for its chosen tables. Its channel is closed
// on Unsubscribe, which is the teardown signal for websocket write loops.
type Subscriber struct {
	events chan Event
	tables map[string]struct{} // empty means every table
}

// Events is the receive side of the subscription.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

func (s *Subscriber) wants(table string) bool {
	if len(s.tables) == 0 {
		return true
	}
	_, ok := s.tables[table]
	return ok
}

// Hub owns the subscriber set. All membership changes and deliveries go
// through Run's loop, so no lock is needed around the map.
type Hub struct {
	register    chan *Subscriber
	unregister  chan *Subscriber
	events      chan Event
	done        chan struct{}
	subscribers map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		events:      make(chan Event, 64),
		done:        make(chan struct{}),
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Run processes registrations and deliveries until ctx is cancelled. On
// cancellation every subscriber channel is closed, so websocket write loops
// terminate during shutdown, and later Subscribe/Unsubscribe calls return
// immediately instead of blocking on a stopped loop.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}

		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.events)
			}

		case ev := <-h.events:
			for sub := range h.subscribers {
				if !sub.wants(ev.Table) {
					continue
				}
				select {
				case sub.events <- ev:
				default:
					// Buffer full: the subscriber already has a pending
					// change signal for a re-fetch, dropping this one
					// loses nothing.
				}
			}

		case <-ctx.Done():
			for sub := range h.subscribers {
				close(sub.events)
			}
			h.subscribers = make(map[*Subscriber]struct{})
			return
		}
	}
}

// Subscribe registers interest in the given tables; no tables means all.
func (h *Hub) Subscribe(tables ...string) *Subscriber {
	sub := &Subscriber{
		events: make(chan Event, 16),
		tables: make(map[string]struct{}, len(tables)),
	}
	for _, t := range tables {
		if t != "" && t != "*" {
			sub.tables[t] = struct{}{}
		}
	}
	select {
	case h.register <- sub:
	case <-h.done:
		close(sub.events)
	}
	return sub
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// Publish queues one change event. Delivery is best-effort; if the hub's own
// queue is full the event is dropped and logged.
func (h *Hub) Publish(table, action string) {
	select {
	case h.events <- Event{Table: table, Action: action}:
	default:
		slog.Warn("Realtime event queue full, dropping event", "table", table, "action", action)
	}
}
