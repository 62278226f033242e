package models

import "time"

const (
	RoleOwner  = "owner"
	RoleBarber = "barber"

	PlanBasic = "basic"
	PlanPro   = "pro"

	DefaultCommissionPercent = 50
)

// Professional é o barbeiro. Quando OwnerID é nulo ele é a raiz do tenant
// (dono da barbearia); caso contrário pertence à equipe do dono.
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role   string `gorm:"size:20;default:'owner'" json:"role"`
	Active bool   `gorm:"default:true" json:"active"`

	CommissionPercent int    `gorm:"default:50" json:"commission_percent"`
	Plan              string `gorm:"size:20;default:'basic'" json:"plan"`

	OwnerID *uint         `json:"owner_id"`
	Owner   *Professional `gorm:"foreignKey:OwnerID" json:"-"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwner indica se o profissional é a raiz do seu tenant.
func (p *Professional) IsOwner() bool {
	return p.OwnerID == nil
}

// TenantID é o dono da barbearia: ele mesmo quando raiz, senão o OwnerID.
// A hierarquia tem exatamente um nível.
func (p *Professional) TenantID() uint {
	if p.OwnerID != nil {
		return *p.OwnerID
	}
	return p.ID
}

// Commission retorna o percentual efetivo (default 50 quando não definido).
func (p *Professional) Commission() int {
	if p.CommissionPercent <= 0 {
		return DefaultCommissionPercent
	}
	return p.CommissionPercent
}
