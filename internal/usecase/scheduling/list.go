package scheduling

import (
	"context"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type ListAppointments struct {
	store schedule.Store
}

func NewListAppointments(store schedule.Store) *ListAppointments {
	return &ListAppointments{store: store}
}

// ByDate lista a agenda completa do profissional no dia, inclusive
// cancelados (a listagem é administrativa, não checa disponibilidade).
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]models.Appointment, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	return uc.store.ListAppointmentsForPeriod(ctx, professionalID, dayStart, dayEnd)
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	professionalID uint,
	year int,
	month time.Month,
	loc *time.Location,
) ([]models.Appointment, error) {

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	return uc.store.ListAppointmentsForPeriod(ctx, professionalID, monthStart, monthEnd)
}
