package notify

import (
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailSender(host string, port int, user, pass, from string) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *EmailSender) Notify(pro *models.Professional, ap *models.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", pro.Email)
	m.SetHeader("Subject", "Novo agendamento")
	m.SetBody("text/plain", fmt.Sprintf(
		"Olá %s, você tem um novo agendamento em %s.",
		pro.Name,
		ap.StartTime.Format("02/01/2006 15:04"),
	))

	return s.dialer.DialAndSend(m)
}

// LogSender é o sender de desenvolvimento: só registra no log.
type LogSender struct {
	Log zerolog.Logger
}

func (s LogSender) Notify(pro *models.Professional, ap *models.Appointment) error {
	s.Log.Info().
		Uint("professional_id", pro.ID).
		Uint("appointment_id", ap.ID).
		Time("start", ap.StartTime).
		Msg("appointment notification")
	return nil
}
