// Package feed streams full portability-request snapshots to subscribers.
package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Snapshotter supplies the full current request set. Every delivery is the
// complete set, never a diff; subscribers replace their previous state
// wholesale.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]requestModel.PortabilityRequest, error)
}

// SnapshotMessage is the wire shape of one feed delivery.
type SnapshotMessage struct {
	Type     string                            `json:"type"`
	Requests []requestModel.PortabilityRequest `json:"requests"`
	Total    int                               `json:"total"`
}

// ErrorMessage is the wire shape of a subscription failure.
type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// subscriberBuffer is the per-subscriber send queue depth. A subscriber that
// cannot keep up is dropped rather than allowed to stall the hub.
const subscriberBuffer = 8

// Hub fans full snapshots out to websocket subscribers. A broadcast happens
// after every successful mutation (via RequestsChanged) and on a periodic
// refresh tick that covers changes made outside this process.
type Hub struct {
	source  Snapshotter
	logger  *zap.SugaredLogger
	refresh time.Duration

	mu   sync.Mutex
	subs map[chan []byte]struct{}

	notify chan struct{}
}

// NewHub creates a new feed hub.
func NewHub(source Snapshotter, logger *zap.SugaredLogger, refresh time.Duration) *Hub {
	if refresh <= 0 {
		refresh = 30 * time.Second
	}
	return &Hub{
		source:  source,
		logger:  logger,
		refresh: refresh,
		subs:    make(map[chan []byte]struct{}),
		notify:  make(chan struct{}, 1),
	}
}

// RequestsChanged schedules a re-broadcast of the full snapshot. Safe to
// call from any goroutine; coalesces bursts into one delivery.
func (h *Hub) RequestsChanged() {
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// Subscribe registers a new subscriber and returns its delivery channel.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber. Its channel is closed by the hub.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// Run re-queries and broadcasts until the context is cancelled. Session
// teardown is the only cancellation point; a broadcast already handed to a
// subscriber is never recalled.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-h.notify:
		case <-ticker.C:
		}

		h.broadcast(ctx)
	}
}

// SnapshotPayload builds the current full-snapshot message. Used for the
// initial delivery on connect and for every broadcast.
func (h *Hub) SnapshotPayload(ctx context.Context) ([]byte, error) {
	requests, err := h.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []requestModel.PortabilityRequest{}
	}
	return json.Marshal(SnapshotMessage{
		Type:     "snapshot",
		Requests: requests,
		Total:    len(requests),
	})
}

func (h *Hub) broadcast(ctx context.Context) {
	payload, err := h.SnapshotPayload(ctx)
	if err != nil {
		h.logger.Errorw("feed snapshot failed", "error", err)
		failure, marshalErr := json.Marshal(ErrorMessage{
			Type:    "error",
			Code:    "SUBSCRIPTION_FAILURE",
			Message: "failed to load portability requests",
		})
		if marshalErr != nil {
			return
		}
		payload = failure
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			// Subscriber is not draining; drop it instead of stalling.
			delete(h.subs, ch)
			close(ch)
			h.logger.Warnw("dropped slow feed subscriber")
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
