package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const MinServiceDurationMin = 15

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// dono da barbearia (raiz do tenant)
	OwnerID uint `json:"owner_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMin) * time.Minute
}
