package scheduling

import (
	"context"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/finance"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/notify"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ProfessionalID uint
	ClientID       uint
	ServiceID      uint

	Start time.Time
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	store    schedule.Store
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
	cache    AvailabilityCache
}

func NewBookAppointment(
	store schedule.Store,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	cache AvailabilityCache,
) *BookAppointment {
	return &BookAppointment{
		store:    store,
		notifier: notifier,
		audit:    auditDispatcher,
		cache:    cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute roda a reserva inteira como uma unidade atômica: a linha do
// profissional é travada antes da checagem de conflito, então duas
// reservas simultâneas sobre a mesma janela nunca entram as duas.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var pro *models.Professional

	err := uc.store.InTx(ctx, func(tx schedule.Store) error {

		// --------------------------------------------------
		// 1. Entidades (trava a agenda do profissional)
		// --------------------------------------------------
		var err error
		pro, err = tx.GetProfessionalForUpdate(ctx, in.ProfessionalID)
		if err != nil {
			return err
		}

		client, err := tx.GetClient(ctx, in.ClientID)
		if err != nil {
			return err
		}

		service, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 2. Profissional ativo
		// --------------------------------------------------
		if !pro.Active {
			return httperr.ErrBusiness("professional_inactive")
		}

		// --------------------------------------------------
		// 3. Janela de operação
		// --------------------------------------------------
		if in.Start.Before(timezone.Now()) {
			return httperr.ErrBusiness("past_date")
		}

		end := in.Start.Add(service.Duration())

		window := dayWindow(ctx, tx, in.ProfessionalID, in.Start)
		if in.Start.Before(window.Start) || end.After(window.End) {
			return httperr.ErrBusiness("outside_working_hours")
		}

		// --------------------------------------------------
		// 4. Conflito de horário (agendamentos + bloqueios)
		// --------------------------------------------------
		guard := schedule.NewGuard(tx)

		conflict, err := guard.HasConflict(ctx, in.ProfessionalID, in.Start, end)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("slot_occupied")
		}

		// --------------------------------------------------
		// 5. Criação com preço congelado e rateio
		// --------------------------------------------------
		proShare, houseShare := finance.Apportion(service.Price, pro.Commission())

		ap = &models.Appointment{
			ProfessionalID:    pro.ID,
			ClientID:          client.ID,
			ServiceID:         service.ID,
			StartTime:         in.Start,
			EndTime:           end,
			ChargedAmount:     service.Price,
			ProfessionalShare: proShare,
			HouseShare:        houseShare,
			Status:            string(schedule.InitialStatus()),
			Notes:             in.Notes,
		}

		return tx.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Pós-commit: notificação best-effort + auditoria
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.Event{
		Professional: *pro,
		Appointment:  *ap,
	})

	uc.audit.Dispatch(audit.Event{
		TenantID:       pro.TenantID(),
		ProfessionalID: &pro.ID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, pro.ID, in.Start.Format(dateKeyLayout))
	}

	return ap, nil
}
