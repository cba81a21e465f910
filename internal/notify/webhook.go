// Package notify delivers best-effort session notifications to an
// external webhook. Delivery runs in the background with a short
// timeout; the timer operation that triggered it never blocks on, or
// fails because of, the notification channel.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const deliveryTimeout = 5 * time.Second

// Event is the payload posted after a start or stop.
type Event struct {
	Action          string    `json:"action"` // "started" or "stopped"
	OwnerID         string    `json:"owner_id"`
	At              time.Time `json:"at"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
}

// Notifier posts events to a configured webhook URL. A Notifier with an
// empty URL is valid and does nothing.
type Notifier struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// New creates a notifier. Pass an empty URL to disable delivery.
func New(url string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: deliveryTimeout},
		log:    log,
	}
}

// Send delivers the event in the background. Failures are logged at
// debug level and otherwise dropped.
func (n *Notifier) Send(event Event) {
	if n.url == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		body, err := json.Marshal(event)
		if err != nil {
			n.log.Debug("notification encode failed", zap.Error(err))
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			n.log.Debug("notification request failed", zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.log.Debug("notification delivery failed", zap.Error(err))
			return
		}
		resp.Body.Close()

		n.log.Debug("notification delivered",
			zap.String("action", event.Action),
			zap.String("owner", event.OwnerID),
			zap.Int("status", resp.StatusCode))
	}()
}
