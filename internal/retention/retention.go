// Package retention cleans up run artifacts in the background. A
// Sweeper caps the number of stored runs and evicts response cache
// entries older than the configured TTL, on a cron schedule.
package retention

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/generate"

	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	runsDir  string
	maxRuns  int
	cacheTTL time.Duration
	cron     *cron.Cron
}

// NewSweeper returns an idle sweeper. maxRuns <= 0 disables run
// pruning and cacheTTL <= 0 disables cache eviction; a sweeper with
// both disabled is a no-op but still schedules cleanly.
func NewSweeper(runsDir string, maxRuns int, cacheTTL time.Duration) *Sweeper {
	return &Sweeper{
		runsDir:  runsDir,
		maxRuns:  maxRuns,
		cacheTTL: cacheTTL,
		cron:     cron.New(),
	}
}

// Start registers the sweep on the given cron schedule and launches
// the scheduler. The schedule accepts standard five-field cron specs
// and descriptors like "@hourly".
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.Sweep(); err != nil {
			log.Printf("retention sweep: %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep runs one cleanup pass immediately.
func (s *Sweeper) Sweep() error {
	if err := generate.PruneRuns(s.runsDir, s.maxRuns); err != nil {
		return err
	}
	return s.pruneCache()
}

func (s *Sweeper) pruneCache() error {
	if s.cacheTTL <= 0 {
		return nil
	}
	dir := filepath.Join(s.runsDir, "cache")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	cutoff := time.Now().Add(-s.cacheTTL)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
				log.Printf("evict cache entry %s: %v", entry.Name(), err)
			}
		}
	}
	return nil
}
