package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

func seedScheduled(t *testing.T, store *memStore) (*models.Professional, *models.Client, *models.Appointment) {
	t.Helper()

	pro, client, service := seedBooking(store)

	ap := store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(10, 0),
		EndTime:        futureAt(10, 30),
		Status:         string(schedule.StatusScheduled),
	})

	return pro, client, ap
}

func TestConfirmAppointment(t *testing.T) {
	store := newMemStore()
	pro, _, ap := seedScheduled(t, store)

	uc := NewConfirmAppointment(store, nil)

	got, err := uc.Execute(context.Background(), pro, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusConfirmed), got.Status)

	// persistido
	saved, err := store.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusConfirmed), saved.Status)

	// confirmar duas vezes não é transição válida
	_, err = uc.Execute(context.Background(), pro, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	store := newMemStore()
	pro, _, ap := seedScheduled(t, store)

	complete := NewCompleteAppointment(store, nil)

	// scheduled direto para completed não existe
	_, err := complete.Execute(context.Background(), pro, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	confirm := NewConfirmAppointment(store, nil)
	_, err = confirm.Execute(context.Background(), pro, ap.ID)
	require.NoError(t, err)

	got, err := complete.Execute(context.Background(), pro, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCompleted), got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestCompletedIsTerminal(t *testing.T) {
	store := newMemStore()
	pro, _, ap := seedScheduled(t, store)

	ap.Status = string(schedule.StatusCompleted)
	require.NoError(t, store.UpdateAppointment(context.Background(), ap))

	cancel := NewCancelByProfessional(store, nil, nil)
	_, err := cancel.Execute(context.Background(), pro, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	confirm := NewConfirmAppointment(store, nil)
	_, err = confirm.Execute(context.Background(), pro, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransitionScopedToProfessional(t *testing.T) {
	store := newMemStore()
	_, _, ap := seedScheduled(t, store)

	other := store.addProfessional(models.Professional{
		Name:   "Outro",
		Email:  "outro@barbearia.com",
		Active: true,
	})

	confirm := NewConfirmAppointment(store, nil)
	_, err := confirm.Execute(context.Background(), other, ap.ID)
	assert.True(t, httperr.IsNotFound(err))
}

func TestCancelByProfessional(t *testing.T) {
	store := newMemStore()
	pro, _, ap := seedScheduled(t, store)

	uc := NewCancelByProfessional(store, nil, nil)

	got, err := uc.Execute(context.Background(), pro, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCanceledByProfessional), got.Status)
	require.NotNil(t, got.CanceledAt)
}

func TestCancelByClient(t *testing.T) {
	store := newMemStore()
	_, client, ap := seedScheduled(t, store)

	uc := NewCancelByClient(store, nil, nil)

	got, err := uc.Execute(context.Background(), client.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCanceledByClient), got.Status)
	require.NotNil(t, got.CanceledAt)
}

func TestCancelByClientRejectsForeignAppointment(t *testing.T) {
	store := newMemStore()
	_, _, ap := seedScheduled(t, store)

	stranger := store.addClient(models.Client{
		Name:  "Maria",
		Phone: "11888880000",
	})

	uc := NewCancelByClient(store, nil, nil)

	_, err := uc.Execute(context.Background(), stranger.ID, ap.ID)
	assert.True(t, httperr.IsNotFound(err))

	// o agendamento segue intacto
	saved, err := store.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusScheduled), saved.Status)
}

func TestListAppointmentsByDate(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(10, 0),
		EndTime:        futureAt(10, 30),
		Status:         string(schedule.StatusScheduled),
	})
	store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(14, 0),
		EndTime:        futureAt(14, 30),
		Status:         string(schedule.StatusCanceledByClient),
	})
	// outro dia, fora do filtro
	store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(10, 0).AddDate(0, 0, 1),
		EndTime:        futureAt(10, 30).AddDate(0, 0, 1),
		Status:         string(schedule.StatusScheduled),
	})

	uc := NewListAppointments(store)

	// a listagem administrativa inclui cancelados
	aps, err := uc.ByDate(context.Background(), pro.ID, futureAt(0, 0))
	require.NoError(t, err)
	assert.Len(t, aps, 2)
}
