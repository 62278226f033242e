package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// memStore implementa schedule.Store em memória para os testes de caso de
// uso. Sem travas: os testes são sequenciais.
type memStore struct {
	professionals map[uint]*models.Professional
	clients       map[uint]*models.Client
	services      map[uint]*models.Service
	appointments  map[uint]*models.Appointment
	blocks        map[uint]*models.Block
	workingHours  map[uint]map[int]*models.WorkingHours

	nextID uint
}

func newMemStore() *memStore {
	return &memStore{
		professionals: make(map[uint]*models.Professional),
		clients:       make(map[uint]*models.Client),
		services:      make(map[uint]*models.Service),
		appointments:  make(map[uint]*models.Appointment),
		blocks:        make(map[uint]*models.Block),
		workingHours:  make(map[uint]map[int]*models.WorkingHours),
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

// -------- seed helpers --------

func (s *memStore) addProfessional(p models.Professional) *models.Professional {
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.professionals[p.ID] = &p
	return &p
}

func (s *memStore) addClient(c models.Client) *models.Client {
	if c.ID == 0 {
		c.ID = s.id()
	}
	s.clients[c.ID] = &c
	return &c
}

func (s *memStore) addService(sv models.Service) *models.Service {
	if sv.ID == 0 {
		sv.ID = s.id()
	}
	s.services[sv.ID] = &sv
	return &sv
}

func (s *memStore) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		ap.ID = s.id()
	}
	s.appointments[ap.ID] = &ap
	return &ap
}

func (s *memStore) addBlock(b models.Block) *models.Block {
	if b.ID == 0 {
		b.ID = s.id()
	}
	s.blocks[b.ID] = &b
	return &b
}

func (s *memStore) setWorkingHours(wh models.WorkingHours) {
	if s.workingHours[wh.ProfessionalID] == nil {
		s.workingHours[wh.ProfessionalID] = make(map[int]*models.WorkingHours)
	}
	s.workingHours[wh.ProfessionalID][wh.Weekday] = &wh
}

// -------- Professional --------

func (s *memStore) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	p, ok := s.professionals[id]
	if !ok {
		return nil, httperr.ErrNotFound("professional")
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetProfessionalForUpdate(ctx context.Context, id uint) (*models.Professional, error) {
	return s.GetProfessional(ctx, id)
}

func (s *memStore) UpdateProfessional(_ context.Context, pro *models.Professional) error {
	if _, ok := s.professionals[pro.ID]; !ok {
		return httperr.ErrNotFound("professional")
	}
	cp := *pro
	s.professionals[pro.ID] = &cp
	return nil
}

// -------- Client --------

func (s *memStore) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, httperr.ErrNotFound("client")
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	for _, c := range s.clients {
		if (phone != "" && c.Phone == phone) || (email != "" && strings.EqualFold(c.Email, email)) {
			cp := *c
			return &cp, nil
		}
	}
	return s.addClient(models.Client{Name: name, Phone: phone, Email: email}), nil
}

// -------- Service --------

func (s *memStore) GetService(_ context.Context, id uint) (*models.Service, error) {
	sv, ok := s.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service")
	}
	cp := *sv
	return &cp, nil
}

// -------- Conflict checks --------

func (s *memStore) HasAppointmentConflict(_ context.Context, professionalID uint, start, end time.Time) (bool, error) {
	for _, ap := range s.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if !schedule.Status(ap.Status).IsCommitted() {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) HasBlockConflict(_ context.Context, professionalID uint, start, end time.Time) (bool, error) {
	for _, b := range s.blocks {
		if b.ProfessionalID != professionalID {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

// -------- Appointment --------

func (s *memStore) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == 0 {
		ap.ID = s.id()
	}
	cp := *ap
	s.appointments[ap.ID] = &cp
	return nil
}

func (s *memStore) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment")
	}
	cp := *ap
	return &cp, nil
}

func (s *memStore) GetAppointmentForProfessional(ctx context.Context, appointmentID, professionalID uint) (*models.Appointment, error) {
	ap, err := s.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.ProfessionalID != professionalID {
		return nil, httperr.ErrNotFound("appointment")
	}
	return ap, nil
}

func (s *memStore) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment")
	}
	cp := *ap
	s.appointments[ap.ID] = &cp
	return nil
}

func (s *memStore) FindCommittedAppointments(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if !schedule.Status(ap.Status).IsCommitted() {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (s *memStore) ListAppointmentsForPeriod(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// -------- Block --------

func (s *memStore) SaveBlock(_ context.Context, b *models.Block) error {
	if b.ID == 0 {
		b.ID = s.id()
	}
	cp := *b
	s.blocks[b.ID] = &cp
	return nil
}

func (s *memStore) GetBlock(_ context.Context, id uint) (*models.Block, error) {
	b, ok := s.blocks[id]
	if !ok {
		return nil, httperr.ErrNotFound("block")
	}
	cp := *b
	return &cp, nil
}

func (s *memStore) DeleteBlock(_ context.Context, id uint) error {
	if _, ok := s.blocks[id]; !ok {
		return httperr.ErrNotFound("block")
	}
	delete(s.blocks, id)
	return nil
}

func (s *memStore) FindBlocks(_ context.Context, professionalID uint, start, end time.Time) ([]models.Block, error) {
	var out []models.Block
	for _, b := range s.blocks {
		if b.ProfessionalID != professionalID {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, *b)
		}
	}
	return out, nil
}

// -------- Working hours --------

func (s *memStore) GetWorkingHours(_ context.Context, professionalID uint, weekday int) (*models.WorkingHours, error) {
	byDay, ok := s.workingHours[professionalID]
	if !ok {
		return nil, nil
	}
	wh, ok := byDay[weekday]
	if !ok {
		return nil, nil
	}
	cp := *wh
	return &cp, nil
}

// -------- Unit of work --------

func (s *memStore) InTx(_ context.Context, fn func(schedule.Store) error) error {
	return fn(s)
}

var _ schedule.Store = (*memStore)(nil)

// fakeCache registra chamadas de invalidação e serve respostas fixadas.
type fakeCache struct {
	entries     map[string][]TimeSlot
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]TimeSlot)}
}

func cacheKey(professionalID, serviceID uint, date string) string {
	return fmt.Sprintf("%s/%d/%d", date, professionalID, serviceID)
}

func (c *fakeCache) Get(_ context.Context, professionalID, serviceID uint, date string) ([]TimeSlot, bool) {
	slots, ok := c.entries[cacheKey(professionalID, serviceID, date)]
	return slots, ok
}

func (c *fakeCache) Set(_ context.Context, professionalID, serviceID uint, date string, slots []TimeSlot) {
	c.entries[cacheKey(professionalID, serviceID, date)] = slots
}

func (c *fakeCache) Invalidate(_ context.Context, professionalID uint, date string) {
	c.invalidated = append(c.invalidated, date)
	for k := range c.entries {
		if strings.HasPrefix(k, date+"/") {
			delete(c.entries, k)
		}
	}
}

var _ AvailabilityCache = (*fakeCache)(nil)
