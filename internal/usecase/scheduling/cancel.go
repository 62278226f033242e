package scheduling

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
)

// ======================================================
// Cancelamento pelo profissional
// ======================================================

type CancelByProfessional struct {
	store schedule.Store
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCancelByProfessional(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
	cache AvailabilityCache,
) *CancelByProfessional {
	return &CancelByProfessional{
		store: store,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *CancelByProfessional) Execute(
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

		if err := schedule.CancelByProfessional(ap, timezone.Now()); err != nil {
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
		Action:         "appointment_canceled_by_professional",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	// o cancelamento libera o intervalo para novas reservas
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.StartTime.Format(dateKeyLayout))
	}

	return ap, nil
}

// ======================================================
// Cancelamento pelo cliente
// ======================================================

type CancelByClient struct {
	store schedule.Store
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCancelByClient(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
	cache AvailabilityCache,
) *CancelByClient {
	return &CancelByClient{
		store: store,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *CancelByClient) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var pro *models.Professional

	err := uc.store.InTx(ctx, func(tx schedule.Store) error {
		var err error
		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		// cliente só cancela o próprio agendamento
		if ap.ClientID != clientID {
			return httperr.ErrNotFound("appointment")
		}

		pro, err = tx.GetProfessional(ctx, ap.ProfessionalID)
		if err != nil {
			return err
		}

		if err := schedule.CancelByClient(ap, timezone.Now()); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: pro.TenantID(),
		Action:   "appointment_canceled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.StartTime.Format(dateKeyLayout))
	}

	return ap, nil
}
