package scheduling

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
)

type CompleteAppointment struct {
	store schedule.Store
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		store: store,
		audit: auditDispatcher,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	acting *models.Professional,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.store.InTx(ctx, func(tx schedule.Store) error {
		var err error
		ap, err = tx.GetAppointmentForProfessional(ctx, appointmentID, acting.ID)
		if err != nil {
			return err
		}

		if err := schedule.Complete(ap, timezone.Now()); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID:       acting.TenantID(),
		ProfessionalID: &acting.ID,
		Action:         "appointment_completed",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
