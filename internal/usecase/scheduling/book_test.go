package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
)

// dia fixo no futuro (segunda-feira) para passar na validação de passado
func futureAt(hour, min int) time.Time {
	return time.Date(2030, 5, 20, hour, min, 0, 0, timezone.Location())
}

func seedBooking(s *memStore) (*models.Professional, *models.Client, *models.Service) {
	pro := s.addProfessional(models.Professional{
		Name:              "Rafael",
		Email:             "rafael@barbearia.com",
		Active:            true,
		CommissionPercent: 40,
	})
	client := s.addClient(models.Client{
		Name:  "João",
		Phone: "11999990000",
	})
	service := s.addService(models.Service{
		OwnerID:     pro.ID,
		Name:        "Corte",
		DurationMin: 30,
		Price:       decimal.RequireFromString("50.00"),
		Active:      true,
	})
	return pro, client, service
}

func TestBookAppointment(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	uc := NewBookAppointment(store, nil, nil, nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusScheduled), ap.Status)
	assert.True(t, ap.EndTime.Equal(futureAt(10, 30)))

	// preço congelado e rateio 40/60
	assert.True(t, ap.ChargedAmount.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, ap.ProfessionalShare.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, ap.HouseShare.Equal(decimal.RequireFromString("30.00")))
}

func TestBookAppointmentRejectsOverlap(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(10, 0),
		EndTime:        futureAt(10, 30),
		Status:         string(schedule.StatusConfirmed),
	})

	uc := NewBookAppointment(store, nil, nil, nil)

	// 10:15 colide com o confirmado de 10:00-10:30
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 15),
	})
	assert.True(t, httperr.IsBusiness(err, "slot_occupied"))

	// 10:30 encosta mas não colide
	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 30),
	})
	require.NoError(t, err)
	assert.True(t, ap.EndTime.Equal(futureAt(11, 0)))
}

func TestBookAppointmentCanceledDoesNotOccupy(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	store.addAppointment(models.Appointment{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      futureAt(10, 0),
		EndTime:        futureAt(10, 30),
		Status:         string(schedule.StatusCanceledByClient),
	})

	uc := NewBookAppointment(store, nil, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 0),
	})
	assert.NoError(t, err)
}

func TestBookAppointmentRejectsBlockedPeriod(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	store.addBlock(models.Block{
		ProfessionalID: pro.ID,
		StartTime:      futureAt(12, 0),
		EndTime:        futureAt(13, 0),
		Reason:         "almoço",
	})

	uc := NewBookAppointment(store, nil, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(12, 30),
	})
	assert.True(t, httperr.IsBusiness(err, "slot_occupied"))
}

func TestBookAppointmentRejectsPastStart(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	uc := NewBookAppointment(store, nil, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          time.Date(2020, 5, 20, 10, 0, 0, 0, timezone.Location()),
	})
	assert.True(t, httperr.IsBusiness(err, "past_date"))
}

func TestBookAppointmentRejectsInactiveProfessional(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	pro.Active = false
	require.NoError(t, store.UpdateProfessional(context.Background(), pro))

	uc := NewBookAppointment(store, nil, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 0),
	})
	assert.True(t, httperr.IsBusiness(err, "professional_inactive"))
}

func TestBookAppointmentOutsideDefaultWindow(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	uc := NewBookAppointment(store, nil, nil, nil)

	// antes das 06:00
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(5, 30),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// 22:45 + 30min estoura as 23:00
	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(22, 45),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestBookAppointmentHonorsWeeklyGrid(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	store.setWorkingHours(models.WorkingHours{
		ProfessionalID: pro.ID,
		Weekday:        int(futureAt(0, 0).Weekday()),
		StartTime:      "09:00",
		EndTime:        "12:00",
		Active:         true,
	})

	uc := NewBookAppointment(store, nil, nil, nil)

	// 08:00 cabe na janela padrão mas não na grade do dia
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(8, 0),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// 11:45 + 30min passa do fim da grade
	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(11, 45),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(9, 0),
	})
	assert.NoError(t, err)
}

func TestBookAppointmentUnknownEntities(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	uc := NewBookAppointment(store, nil, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: 999,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 0),
	})
	assert.True(t, httperr.IsNotFound(err))

	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      999,
		Start:          futureAt(10, 0),
	})
	assert.True(t, httperr.IsNotFound(err))
}

func TestBookAppointmentInvalidatesCache(t *testing.T) {
	store := newMemStore()
	pro, client, service := seedBooking(store)

	cache := newFakeCache()
	date := futureAt(0, 0).Format(dateKeyLayout)
	cache.Set(context.Background(), pro.ID, service.ID, date, []TimeSlot{{Start: "10:00", End: "10:30"}})

	uc := NewBookAppointment(store, nil, nil, cache)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		Start:          futureAt(10, 0),
	})
	require.NoError(t, err)

	assert.Contains(t, cache.invalidated, date)
	_, ok := cache.Get(context.Background(), pro.ID, service.ID, date)
	assert.False(t, ok)
}
