package models

import "time"

// Ausência de um barbeiro em uma data (férias, atestado).
// Mesmo formato do ShopClosure, mas escopado a um barbeiro.
type BarberAbsence struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_absence_barber_date" json:"barber_id"`

	Date      time.Time `gorm:"type:date;index:idx_absence_barber_date" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *BarberAbsence) FullDay() bool {
	return a.StartTime == "" && a.EndTime == ""
}
