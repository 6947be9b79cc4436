package models

import "time"

// Agendamento. Exatamente um entre ClientID e GuestClientID é
// preenchido. Date é o dia (sem hora); StartTime/EndTime em "HH:MM"
// no timezone da barbearia.
//
// Invariante central: para um mesmo barbeiro e dia, dois agendamentos
// com status confirmado nunca têm faixas [start, end) sobrepostas.
// Só é criado pela transação de agendamento, nunca por insert direto.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	GuestClientID *uint        `json:"guest_client_id"`
	GuestClient   *GuestClient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"guest_client,omitempty"`

	BarberID uint `gorm:"index:idx_appointments_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      time.Time `gorm:"type:date;index:idx_appointments_barber_date" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:30;default:'confirmed'" json:"status"`

	CancelReason string     `gorm:"size:255" json:"cancel_reason"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CompletedAt  *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
