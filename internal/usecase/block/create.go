package block

import (
	"context"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

// ======================================================
// INPUT
// ======================================================

type CreateBlockInput struct {
	// 0 = auto-bloqueio
	ProfessionalID uint

	Start  time.Time
	End    time.Time
	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBlock struct {
	store schedule.Store
	audit *audit.Dispatcher
	cache scheduling.AvailabilityCache
}

func NewCreateBlock(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
	cache scheduling.AvailabilityCache,
) *CreateBlock {
	return &CreateBlock{
		store: store,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	acting *models.Professional,
	in CreateBlockInput,
) (*models.Block, error) {

	target, err := resolveTarget(ctx, uc.store, acting, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	var b *models.Block

	err = uc.store.InTx(ctx, func(tx schedule.Store) error {

		// trava a agenda do alvo: mesma serialização da reserva
		if _, err := tx.GetProfessionalForUpdate(ctx, target.ID); err != nil {
			return err
		}

		// --------------------------------------------------
		// 1. Período válido
		// --------------------------------------------------
		if in.Start.IsZero() || in.End.IsZero() {
			return httperr.ErrBusiness("missing_period")
		}
		if in.Start.Before(timezone.Now()) {
			return httperr.ErrBusiness("past_date")
		}
		if !in.End.After(in.Start) {
			return httperr.ErrBusiness("end_before_start")
		}

		// --------------------------------------------------
		// 2. Conflitos: bloqueio nunca sobrepõe bloqueio
		//    nem horário já vendido a cliente
		// --------------------------------------------------
		guard := schedule.NewGuard(tx)

		overlap, err := guard.HasBlockOverlap(ctx, target.ID, in.Start, in.End)
		if err != nil {
			return err
		}
		if overlap {
			return httperr.ErrBusiness("administrative_conflict")
		}

		conflict, err := guard.HasClientConflict(ctx, target.ID, in.Start, in.End)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("client_scheduled")
		}

		b = &models.Block{
			ProfessionalID: target.ID,
			StartTime:      in.Start,
			EndTime:        in.End,
			Reason:         in.Reason,
		}

		return tx.SaveBlock(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID:       acting.TenantID(),
		ProfessionalID: &acting.ID,
		Action:         "block_created",
		Entity:         "block",
		EntityID:       &b.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, target.ID, in.Start.Format("2006-01-02"))
	}

	return b, nil
}
