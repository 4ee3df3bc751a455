package booking

import (
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// Auditor receives audit events; *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Notifier receives outgoing customer messages; *notify.Dispatcher satisfies it.
type Notifier interface {
	Dispatch(msg notify.Message)
}

type noopAuditor struct{}

func (noopAuditor) Dispatch(audit.Event) {}

type noopNotifier struct{}

func (noopNotifier) Dispatch(notify.Message) {}
