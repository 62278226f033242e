package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type fakeStore struct {
	schedule.Store

	professionals map[uint]*models.Professional
}

func (s *fakeStore) GetProfessionalForUpdate(_ context.Context, id uint) (*models.Professional, error) {
	p, ok := s.professionals[id]
	if !ok {
		return nil, httperr.ErrNotFound("professional")
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) UpdateProfessional(_ context.Context, pro *models.Professional) error {
	cp := *pro
	s.professionals[pro.ID] = &cp
	return nil
}

func (s *fakeStore) InTx(_ context.Context, fn func(schedule.Store) error) error {
	return fn(s)
}

func TestUpgradePlan(t *testing.T) {
	ownerID := uint(1)
	store := &fakeStore{professionals: map[uint]*models.Professional{
		1: {ID: 1, Name: "Dono", Plan: models.PlanBasic},
		2: {ID: 2, Name: "Barbeiro", Plan: models.PlanBasic, OwnerID: &ownerID},
	}}

	uc := NewUpgradePlan(store, nil)

	pro, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.PlanPro, pro.Plan)
	assert.Equal(t, models.PlanPro, store.professionals[1].Plan)

	// membro da equipe não carrega assinatura
	_, err = uc.Execute(context.Background(), 2)
	assert.True(t, httperr.IsBusiness(err, "not_tenant_root"))

	_, err = uc.Execute(context.Background(), 99)
	assert.True(t, httperr.IsNotFound(err))
}
