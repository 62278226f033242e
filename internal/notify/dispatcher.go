package notify

import (
	"github.com/rs/zerolog"

	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type Event struct {
	Professional models.Professional
	Appointment  models.Appointment
}

// Sender entrega uma notificação. Falha é problema do sender, nunca do
// caminho de reserva.
type Sender interface {
	Notify(pro *models.Professional, ap *models.Appointment) error
}

type Dispatcher struct {
	sender Sender
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.Notify(&ev.Professional, &ev.Appointment); err != nil {
			d.log.Warn().
				Err(err).
				Uint("professional_id", ev.Professional.ID).
				Uint("appointment_id", ev.Appointment.ID).
				Msg("notification failed")
		}
	}
}

// Dispatch nunca bloqueia nem falha: fila cheia descarta o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Msg("notify queue full, dropping event")
	}
}
