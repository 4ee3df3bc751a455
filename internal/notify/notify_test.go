package notify

import (
	"errors"
	"net/smtp"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (r *recordingSender) Send(to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Message{To: to, Subject: subject, Body: body})
	return r.err
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:           "b-1",
		CustomerName: "Kari",
		Email:        "kari@example.no",
		BarberID:     "sivert",
		Date:         "2030-01-09",
		TimeSlot:     "12:45",
		ServiceName:  "Skin fade",
	}
}

func TestConfirmation(t *testing.T) {
	msg := Confirmation(sampleBooking(), "Sivert")

	assert.Equal(t, "kari@example.no", msg.To)
	assert.Equal(t, "Booking confirmed 2030-01-09 12:45", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Kari")
	assert.Contains(t, msg.Body, "Barber:  Sivert")
	assert.Contains(t, msg.Body, "Service: Skin fade")
	assert.Contains(t, msg.Body, "b-1")
}

func TestDispatcherSendsAndSkipsEmptyRecipient(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zerolog.Nop(), 10)

	d.Dispatch(Confirmation(sampleBooking(), "Sivert"))
	d.Dispatch(Message{To: "  ", Subject: "ignored"})
	d.Close()

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "kari@example.no", sender.sent[0].To)
}

func TestDispatcherSurvivesSendFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("relay down")}
	d := NewDispatcher(sender, zerolog.Nop(), 10)

	d.Dispatch(Message{To: "a@example.no"})
	d.Dispatch(Message{To: "b@example.no"})
	d.Close()

	assert.Len(t, sender.sent, 2)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zerolog.Nop(), 10)
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Confirmation(sampleBooking(), "Sivert"))
	})
	assert.Empty(t, sender.sent)
}

func TestSMTPSenderBuildsMessage(t *testing.T) {
	s := NewSMTPSender("mail.local", "2525", "")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, s.Send("kari@example.no", "Hello", "Body"))
	assert.Equal(t, "mail.local:2525", gotAddr)
	assert.Equal(t, "booking@westcutz.no", gotFrom)
	assert.Equal(t, []string{"kari@example.no"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hello\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nBody\r\n")
}

func TestSMTPSenderWrapsError(t *testing.T) {
	s := NewSMTPSender("mail.local", "25", "x@y.no")
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("refused")
	}

	err := s.Send("kari@example.no", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}
