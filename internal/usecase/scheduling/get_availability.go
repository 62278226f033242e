package scheduling

import (
	"context"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
)

type GetAvailability struct {
	store schedule.Store
	cache AvailabilityCache
}

func NewGetAvailability(store schedule.Store, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{store: store, cache: cache}
}

// Execute enumera os horários livres do profissional no dia, para o serviço
// informado. Leitura pura: não serializa com escritas; quem for reservar
// revalida o conflito dentro da transação.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	dateKey := in.Date.Format(dateKeyLayout)

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.ProfessionalID, in.ServiceID, dateKey); ok {
			return slots, nil
		}
	}

	service, err := uc.store.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	window := dayWindow(ctx, uc.store, in.ProfessionalID, in.Date)

	busy, err := busyIntervals(ctx, uc.store, in.ProfessionalID, window)
	if err != nil {
		return nil, err
	}

	free := schedule.FreeSlots(window, service.Duration(), busy)

	slots := make([]TimeSlot, 0, len(free))
	for _, s := range free {
		slots = append(slots, TimeSlot{
			Start: s.Start.Format("15:04"),
			End:   s.End.Format("15:04"),
		})
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.ProfessionalID, in.ServiceID, dateKey, slots)
	}

	return slots, nil
}
