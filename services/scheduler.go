// services/scheduler.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs the counter reconciliation every hour. The stored
// CurrentBookings counter is only advisory, but keeping it close to the
// truth makes the admin availability view trustworthy between syncs.
func (s *AvailabilityService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", func() {
		if err := s.ReconcileAll(); err != nil {
			log.Printf("Slot reconciliation failed: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule slot reconciliation: %v", err)
		return
	}

	c.Start()
	log.Println("Slot reconciliation scheduler started")
}
