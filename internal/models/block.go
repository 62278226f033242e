package models

import "time"

// Block reserva um intervalo da agenda do profissional sem cliente
// (almoço, ausência). Nunca pode cobrir horário já vendido.
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
