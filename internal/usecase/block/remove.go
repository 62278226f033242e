package block

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

type RemoveBlock struct {
	store schedule.Store
	audit *audit.Dispatcher
	cache scheduling.AvailabilityCache
}

func NewRemoveBlock(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
	cache scheduling.AvailabilityCache,
) *RemoveBlock {
	return &RemoveBlock{
		store: store,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *RemoveBlock) Execute(
	ctx context.Context,
	acting *models.Professional,
	blockID uint,
) error {

	var removed *models.Block

	err := uc.store.InTx(ctx, func(tx schedule.Store) error {
		b, err := tx.GetBlock(ctx, blockID)
		if err != nil {
			return err
		}

		// pode remover: o próprio profissional ou o dono do tenant dele
		if b.ProfessionalID != acting.ID {
			owner, err := tx.GetProfessional(ctx, b.ProfessionalID)
			if err != nil {
				return err
			}
			if !acting.IsOwner() || owner.TenantID() != acting.ID {
				return httperr.ErrPermission("not_block_owner")
			}
		}

		removed = b
		return tx.DeleteBlock(ctx, b.ID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID:       acting.TenantID(),
		ProfessionalID: &acting.ID,
		Action:         "block_removed",
		Entity:         "block",
		EntityID:       &removed.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, removed.ProfessionalID, removed.StartTime.Format("2006-01-02"))
	}

	return nil
}
