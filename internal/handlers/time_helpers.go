package handlers

import (
	"time"

	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/timezone"
)

// resolve o timezone oficial da barbearia
func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop != nil && shop.Timezone != "" {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location(timezone.DefaultTimezone)
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
