package plan

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// UpgradePlan vira a assinatura do tenant quando o colaborador de
// pagamento sinaliza aprovação. O motor não fala com o provedor; só
// executa a transição de plano.
type UpgradePlan struct {
	store schedule.Store
	audit *audit.Dispatcher
}

func NewUpgradePlan(
	store schedule.Store,
	auditDispatcher *audit.Dispatcher,
) *UpgradePlan {
	return &UpgradePlan{
		store: store,
		audit: auditDispatcher,
	}
}

func (uc *UpgradePlan) Execute(
	ctx context.Context,
	professionalID uint,
) (*models.Professional, error) {

	var pro *models.Professional

	err := uc.store.InTx(ctx, func(tx schedule.Store) error {
		var err error
		pro, err = tx.GetProfessionalForUpdate(ctx, professionalID)
		if err != nil {
			return err
		}

		// assinatura é do tenant, não do membro
		if !pro.IsOwner() {
			return httperr.ErrBusiness("not_tenant_root")
		}

		pro.Plan = models.PlanPro
		return tx.UpdateProfessional(ctx, pro)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: pro.ID,
		Action:   "plan_upgraded",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	return pro, nil
}
