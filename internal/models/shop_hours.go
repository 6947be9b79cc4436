package models

import "time"

// Horário de funcionamento da barbearia por dia da semana.
// É o teto de qualquer expediente individual de barbeiro.
type ShopHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int  `gorm:"uniqueIndex" json:"weekday"`
	IsOpen  bool `json:"is_open"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
