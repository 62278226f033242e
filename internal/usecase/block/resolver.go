package block

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// resolveTarget decide de quem é a agenda bloqueada. Sem alvo explícito
// (ou alvo == ator) é auto-bloqueio. Bloquear a agenda de outro exige ser
// dono do tenant e o alvo pertencer à equipe desse dono.
func resolveTarget(
	ctx context.Context,
	store schedule.Store,
	acting *models.Professional,
	requestedID uint,
) (*models.Professional, error) {

	if requestedID == 0 || requestedID == acting.ID {
		return acting, nil
	}

	if !acting.IsOwner() {
		return nil, httperr.ErrPermission("not_tenant_admin")
	}

	target, err := store.GetProfessional(ctx, requestedID)
	if err != nil {
		return nil, err
	}

	if target.OwnerID == nil || *target.OwnerID != acting.ID {
		return nil, httperr.ErrPermission("outside_tenant")
	}

	return target, nil
}
