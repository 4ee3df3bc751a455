package notify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Confirmation composes the customer-facing confirmation for b.
func Confirmation(b *models.Booking, barberName string) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", b.CustomerName)
	fmt.Fprintf(&body, "Your appointment at Westcutz is confirmed.\n\n")
	fmt.Fprintf(&body, "Barber:  %s\n", barberName)
	fmt.Fprintf(&body, "Date:    %s\n", b.Date)
	fmt.Fprintf(&body, "Time:    %s\n", b.TimeSlot)
	if b.ServiceName != "" {
		fmt.Fprintf(&body, "Service: %s\n", b.ServiceName)
	}
	fmt.Fprintf(&body, "\nBooking reference: %s\n", b.ID)

	return Message{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking confirmed %s %s", b.Date, b.TimeSlot),
		Body:    body.String(),
	}
}

type Dispatcher struct {
	sender Sender
	log    zerolog.Logger
	queue  chan Message
	done   chan struct{}

	// mu guards closing so no send races the close of queue.
	mu      sync.RWMutex
	closing bool
}

func NewDispatcher(sender Sender, log zerolog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		sender: sender,
		log:    log.With().Str("component", "notify").Logger(),
		queue:  make(chan Message, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for msg := range d.queue {
		if err := d.sender.Send(msg.To, msg.Subject, msg.Body); err != nil {
			metrics.IncNotificationDropped()
			d.log.Error().Err(err).Str("to", msg.To).Msg("confirmation send failed")
		}
	}
}

// Dispatch queues msg without blocking. Messages without a recipient are
// ignored and a full queue drops the message.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || strings.TrimSpace(msg.To) == "" {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closing {
		metrics.IncNotificationDropped()
		d.log.Warn().Str("to", msg.To).Msg("notify dispatcher closed, dropping message")
		return
	}

	select {
	case d.queue <- msg:
	default:
		metrics.IncNotificationDropped()
		d.log.Warn().Str("to", msg.To).Msg("notify queue full, dropping message")
	}
}

func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closing {
		d.closing = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
