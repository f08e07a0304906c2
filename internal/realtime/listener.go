package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"github.com/pennyhelp/esep-self-employment-hub/internal/cache"
)

const notifyChannel = "table_changes"

// Listen consumes Postgres NOTIFY events from the table_changes channel and
// feeds them into the shared invalidation path: the list cache entries for
// the changed table are dropped and the event is fanned out to websocket
// subscribers. This covers writes that bypass this process entirely.
func Listen(ctx context.Context, dsn string, hub *Hub, store cache.Store) {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				slog.Error("Postgres listener event", "type", int(ev), "error", err)
			}
		})
	defer listener.Close()

	if err := listener.Listen(notifyChannel); err != nil {
		slog.Error("LISTEN failed, realtime events limited to local mutations", "error", err)
		return
	}
	slog.Info("Listening for table changes", "channel", notifyChannel)

	for {
		select {
		case n := <-listener.Notify:
			if n == nil {
				// Connection was re-established; notifications may have been
				// missed, so drop everything cached.
				store.Invalidate(ctx, cache.AllKeys()...)
				continue
			}
			var ev Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				slog.Error("Malformed change notification", "payload", n.Extra, "error", err)
				continue
			}
			store.Invalidate(ctx, cache.TableKeys(ev.Table)...)
			hub.Publish(ev.Table, ev.Action)

		case <-time.After(90 * time.Second):
			go func() {
				if err := listener.Ping(); err != nil {
					slog.Error("Postgres listener ping failed", "error", err)
				}
			}()

		case <-ctx.Done():
			return
		}
	}
}
