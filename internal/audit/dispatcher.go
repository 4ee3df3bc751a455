package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

const (
	ActionBookingCreated   = "booking_created"
	ActionBookingRejected  = "booking_rejected"
	ActionBookingCancelled = "booking_cancelled"
	ActionPaymentStarted   = "payment_started"
	ActionPaymentSettled   = "payment_settled"
	ActionAdminLogin       = "admin_login"
	ActionExportArchived   = "export_archived"
	ActionPhotoUploaded    = "photo_uploaded"
)

const (
	ActorCustomer = "customer"
	ActorAdmin    = "admin"
	ActorGateway  = "gateway"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	store Store
	log   zerolog.Logger
	queue chan Event
	done  chan struct{}

	// mu guards closing so no send races the close of queue.
	mu      sync.RWMutex
	closing bool
}

func NewDispatcher(store Store, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log.With().Str("component", "audit").Logger(),
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.store.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks; events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closing {
		d.log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closing {
		d.closing = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
