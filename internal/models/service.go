package models

import "time"

// Serviço oferecido pela barbearia. A duração define o fim do
// agendamento (start + duration) e o passo da grade de horários.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vínculo serviço ↔ barbeiro (quais serviços cada barbeiro atende).
type BarberService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BarberID  uint `gorm:"index:idx_barber_service,unique" json:"barber_id"`
	ServiceID uint `gorm:"index:idx_barber_service,unique" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
}
