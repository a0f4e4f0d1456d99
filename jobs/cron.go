package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StatusSweeper drops cached daily statuses that have aged out. The
// in-memory status repository implements it; Redis expires its own keys.
type StatusSweeper interface {
	Sweep(now time.Time) int
}

// InitCronJobs registers the midnight sweep and starts the scheduler. A nil
// sweeper still starts the cron so later jobs have a home.
func InitCronJobs(c *cron.Cron, sweeper StatusSweeper) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if sweeper == nil {
			return
		}
		n := sweeper.Sweep(time.Now())
		if n > 0 {
			log.Printf("Swept %d expired attendance statuses", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
