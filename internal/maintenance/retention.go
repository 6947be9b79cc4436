package maintenance

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/models"
)

// StartRetentionJobs agenda a limpeza noturna de audit logs antigos.
// retentionDays <= 0 desliga o job.
func StartRetentionJobs(db *gorm.DB, retentionDays int) *cron.Cron {
	c := cron.New()

	if retentionDays > 0 {
		_, err := c.AddFunc("30 3 * * *", func() {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)

			res := db.
				Where("created_at < ?", cutoff).
				Delete(&models.AuditLog{})

			if res.Error != nil {
				log.Println("audit retention error:", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("audit retention: removed %d logs older than %s",
					res.RowsAffected, cutoff.Format("2006-01-02"))
			}
		})
		if err != nil {
			log.Println("failed to schedule audit retention:", err)
		}
	}

	c.Start()
	return c
}
