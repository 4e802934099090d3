package indexer

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the catalog on a cron schedule so a replaced JSON file
// shows up without a restart.
type Scheduler struct {
	indexer *Indexer
	cron    *cron.Cron
	spec    string
}

// NewScheduler creates a scheduler running the indexer's Reload on the given
// cron spec.
func NewScheduler(indexer *Indexer, spec string) *Scheduler {
	return &Scheduler{
		indexer: indexer,
		cron:    cron.New(),
		spec:    spec,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.indexer.Reload(); err != nil {
			log.Errorf("Scheduled catalog refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Catalog refresh scheduled: '%s'", s.spec)
	return nil
}

// Stop halts the cron loop; a refresh already running finishes.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
