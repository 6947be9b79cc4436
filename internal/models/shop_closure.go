package models

import "time"

// Fechamento da barbearia em uma data específica (feriado, evento).
// StartTime/EndTime vazios = dia inteiro fechado.
type ShopClosure struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      time.Time `gorm:"type:date;index" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullDay indica fechamento do dia inteiro (sem faixa de horário).
func (c *ShopClosure) FullDay() bool {
	return c.StartTime == "" && c.EndTime == ""
}
