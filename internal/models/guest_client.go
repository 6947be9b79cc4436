package models

import "time"

// Cliente sem cadastro, identificado pelo telefone normalizado
// (apenas dígitos). O upsert acontece dentro da transação de
// agendamento.
type GuestClient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
