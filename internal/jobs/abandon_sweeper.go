package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SweeperStore is the slice of the session store the sweeper needs.
type SweeperStore interface {
	MarkAbandonedBefore(cutoff time.Time) (int64, error)
}

// AbandonSweeper periodically flags sessions that have seen no activity for
// longer than the idle TTL as abandoned. No client-facing operation ever sets
// that status; this job is the only writer.
type AbandonSweeper struct {
	store  SweeperStore
	config *SweeperConfig
	cron   *cron.Cron
}

// SweeperConfig contains configuration for the sweeper job
type SweeperConfig struct {
	Schedule string        // Cron schedule (e.g., "*/15 * * * *")
	IdleTTL  time.Duration // Inactivity window before a session counts as abandoned
	Enabled  bool          // Whether to run sweeps
}

func NewAbandonSweeper(store SweeperStore, config *SweeperConfig) *AbandonSweeper {
	return &AbandonSweeper{
		store:  store,
		config: config,
		cron:   cron.New(),
	}
}

// Start begins the scheduled sweep job
func (s *AbandonSweeper) Start() error {
	if !s.config.Enabled {
		log.Println("Session sweeper is disabled, skipping scheduler")
		return nil
	}

	log.Printf("Starting session sweeper with schedule: %s", s.config.Schedule)

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.RunSweep(); err != nil {
			log.Printf("Sweep job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	s.cron.Start()
	log.Println("Session sweeper started successfully")

	return nil
}

// Stop stops the scheduled sweep job
func (s *AbandonSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		log.Println("Session sweeper stopped")
	}
}

// RunSweep performs a single sweep run
func (s *AbandonSweeper) RunSweep() error {
	cutoff := time.Now().Add(-s.config.IdleTTL)

	marked, err := s.store.MarkAbandonedBefore(cutoff)
	if err != nil {
		return fmt.Errorf("failed to mark abandoned sessions: %w", err)
	}

	if marked > 0 {
		log.Printf("Marked %d idle sessions as abandoned", marked)
	}

	return nil
}
