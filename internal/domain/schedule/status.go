package schedule

import "github.com/u-santos1/barbearia-backend-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled              Status = "scheduled"
	StatusConfirmed              Status = "confirmed"
	StatusCompleted              Status = "completed"
	StatusCanceledByClient       Status = "canceled_by_client"
	StatusCanceledByProfessional Status = "canceled_by_professional"
)

// CommittedStatuses são os status que ocupam a agenda. Cancelados liberam
// o intervalo para novas reservas.
var CommittedStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}

func (s Status) IsCommitted() bool {
	for _, c := range CommittedStatuses {
		if s == c {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCanceledByClient, StatusCanceledByProfessional:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
