package schedule

import (
	"context"
	"time"
)

// Guard é a resposta autoritativa de "essa janela colide com algo já
// comprometido na agenda do profissional?". Somente leitura; quem decide
// o que fazer com a resposta é o caso de uso.
type Guard struct {
	store Store
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// HasConflict cobre o caminho de reserva: a janela não pode colidir nem
// com agendamentos comprometidos nem com bloqueios.
func (g *Guard) HasConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	conflict, err := g.store.HasAppointmentConflict(ctx, professionalID, start, end)
	if err != nil || conflict {
		return conflict, err
	}

	return g.store.HasBlockConflict(ctx, professionalID, start, end)
}

// HasClientConflict verifica apenas agendamentos comprometidos. Usado no
// caminho de bloqueio: um bloqueio nunca pode cobrir horário de cliente.
func (g *Guard) HasClientConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {
	return g.store.HasAppointmentConflict(ctx, professionalID, start, end)
}

// HasBlockOverlap verifica apenas bloqueios já existentes.
func (g *Guard) HasBlockOverlap(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {
	return g.store.HasBlockConflict(ctx, professionalID, start, end)
}
