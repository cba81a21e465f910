package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDeliversEvent(t *testing.T) {
	received := make(chan Event, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received <- event
	}))
	defer server.Close()

	notifier := New(server.URL, nil)
	notifier.Send(Event{
		Action:          "stopped",
		OwnerID:         "idea:42",
		At:              time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC),
		DurationSeconds: 30,
	})

	select {
	case event := <-received:
		assert.Equal(t, "stopped", event.Action)
		assert.Equal(t, "idea:42", event.OwnerID)
		assert.Equal(t, 30, event.DurationSeconds)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestSendDisabledWithoutURL(t *testing.T) {
	notifier := New("", nil)
	// Must be a no-op, not a panic
	notifier.Send(Event{Action: "started", OwnerID: "development"})
}

func TestSendNeverBlocksOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable from here on

	notifier := New(server.URL, nil)

	done := make(chan struct{})
	go func() {
		notifier.Send(Event{Action: "started", OwnerID: "development"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on an unreachable webhook")
	}
}
