package audit

import (
	"log/slog"

	"github.com/google/uuid"
)

type Event struct {
	EstablishmentID uuid.UUID
	UserID          *uuid.UUID
	Action          string
	Entity          string
	EntityID        *uuid.UUID
	Metadata        any
}

type Dispatcher struct {
	logger *Logger
	slog   *slog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		slog:   log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.EstablishmentID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.slog.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch nunca bloqueia o request: com a fila cheia o evento é
// descartado. Em dispatcher nulo é um no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
