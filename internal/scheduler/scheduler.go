package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/renewsite/site-analyzer/internal/analysis"
	"github.com/renewsite/site-analyzer/internal/config"
)

// Scheduler periodically re-analyzes the configured watch sites so that
// interactive requests for them are served from the warm cache. Interactive
// analysis never depends on it; with no watch sites it schedules nothing.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *analysis.Service
	sites     []config.WatchSite
	interval  time.Duration
}

// New creates a new Scheduler.
func New(sites []config.WatchSite, interval time.Duration, service *analysis.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		sites:     sites,
		interval:  interval,
	}
}

// Start schedules the periodic warm-up job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.sites) == 0 {
		log.Println("scheduler: no watch sites configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: warming cache for watch sites")

		var wg sync.WaitGroup
		for _, ws := range s.sites {
			ws := ws
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()

				if _, err := s.service.Analyze(ctx, ws.Site, ws.Year); err != nil {
					log.Printf("scheduler: warm-up failed for %s: %v", ws.Site.Key(ws.Year), err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed cache warm-up")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
