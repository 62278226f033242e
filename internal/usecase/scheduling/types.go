package scheduling

import (
	"context"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

// AvailabilityCache guarda respostas de disponibilidade por pouco tempo.
// Leitura levemente defasada é aceitável; a reserva revalida o conflito
// dentro da transação.
type AvailabilityCache interface {
	Get(ctx context.Context, professionalID, serviceID uint, date string) ([]TimeSlot, bool)
	Set(ctx context.Context, professionalID, serviceID uint, date string, slots []TimeSlot)
	Invalidate(ctx context.Context, professionalID uint, date string)
}

const dateKeyLayout = "2006-01-02"

// dayWindow resolve a janela de atendimento do dia: grade semanal do
// profissional quando ativa, senão a janela padrão de operação.
func dayWindow(
	ctx context.Context,
	store schedule.Store,
	professionalID uint,
	date time.Time,
) schedule.Interval {

	wh, err := store.GetWorkingHours(ctx, professionalID, int(date.Weekday()))
	if err != nil || wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return schedule.DayWindow(date)
	}

	loc := date.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	open, ok1 := parseHM(wh.StartTime)
	close, ok2 := parseHM(wh.EndTime)
	if !ok1 || !ok2 || !close.After(open) {
		return schedule.DayWindow(date)
	}

	return schedule.Interval{Start: open, End: close}
}

// busyIntervals junta agendamentos comprometidos e bloqueios do dia.
func busyIntervals(
	ctx context.Context,
	store schedule.Store,
	professionalID uint,
	window schedule.Interval,
) ([]schedule.Interval, error) {

	appointments, err := store.FindCommittedAppointments(
		ctx,
		professionalID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, err
	}

	blocks, err := store.FindBlocks(
		ctx,
		professionalID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(appointments)+len(blocks))
	for _, ap := range appointments {
		busy = append(busy, schedule.Interval{Start: ap.StartTime, End: ap.EndTime})
	}
	for _, b := range blocks {
		busy = append(busy, schedule.Interval{Start: b.StartTime, End: b.EndTime})
	}

	return busy, nil
}
