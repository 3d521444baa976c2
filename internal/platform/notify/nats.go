// Package notify implements the best-effort notification sink.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subject is the NATS subject notification events are published on.
const Subject = "nexuscare.notifications"

// Event is the wire format of a notification.
type Event struct {
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// NATSNotifier publishes notification events to a NATS subject.
// Delivery is fire-and-forget: every failure is logged and swallowed so a
// broker outage can never affect the request that triggered the event.
type NATSNotifier struct {
	conn *nats.Conn
}

// NewNATSNotifier connects to the broker at the given URL.
func NewNATSNotifier(url string) (*NATSNotifier, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NATSNotifier{conn: nc}, nil
}

// Notify publishes a single event. It never returns an error.
func (n *NATSNotifier) Notify(ctx context.Context, subject, body string) {
	ev := Event{Subject: subject, Body: body, SentAt: time.Now()}

	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("notification marshal failed", "subject", subject, "error", err)
		return
	}

	if n.conn == nil {
		slog.Warn("notification dropped, no broker connection", "subject", subject)
		return
	}
	if err := n.conn.Publish(Subject, data); err != nil {
		slog.Warn("notification publish failed", "subject", subject, "error", err)
		return
	}

	slog.Info("notification published", "subject", subject)
}

// Close drains the underlying connection.
func (n *NATSNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}
