package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEvent_Marshal(t *testing.T) {
	ev := Event{
		Subject: "New account registered",
		Body:    "A (a@b.com) signed up as PATIENT.",
		SentAt:  time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "New account registered", decoded["subject"])
	require.Equal(t, "A (a@b.com) signed up as PATIENT.", decoded["body"])
	require.NotEmpty(t, decoded["sent_at"])
}

func TestNotify_BrokerDown(t *testing.T) {
	// A notifier without a live broker connection must drop the event and
	// return normally so the triggering request is unaffected.
	n := &NATSNotifier{}

	require.NotPanics(t, func() {
		n.Notify(context.Background(), "New appointment booked", "APP-ABCDEF for a@b.com")
	})

	n.Close()
}
