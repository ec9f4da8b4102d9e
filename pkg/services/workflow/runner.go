package workflow

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Runner syncs a watchlist of accessions from the source into the
// cache on a fixed cadence. Progress is reported over a channel; Done
// closes when the runner stops.
type Runner struct {
	controller *Controller
	watchlist  []string
	done       chan struct{}
	progress   chan RunnerProgress
	config     RunnerConfig
}

type RunnerConfig struct {
	SleepInterval time.Duration
}

type RunnerProgress struct {
	Synced     int
	Failed     int
	Total      int
	LastSyncAt time.Time
}

func NewRunner(controller *Controller, watchlist []string) *Runner {
	return &Runner{
		controller: controller,
		watchlist:  watchlist,
		done:       make(chan struct{}),
		progress:   make(chan RunnerProgress, 100),
		config: RunnerConfig{
			SleepInterval: time.Hour,
		},
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) Progress() <-chan RunnerProgress {
	return r.progress
}

// Run loops until the context is cancelled, syncing the whole
// watchlist each pass. Individual sync failures are logged and
// counted, not fatal.
func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	defer close(r.done)
	defer close(r.progress)

	for {
		synced, failed := 0, 0
		for _, accession := range r.watchlist {
			if ctx.Err() != nil {
				return
			}
			if err := r.controller.SyncOne(ctx, accession); err != nil {
				logger.Error().Err(err).Str("accession", accession).Msg("sync failed")
				failed++
				continue
			}
			synced++
		}

		select {
		case r.progress <- RunnerProgress{
			Synced:     synced,
			Failed:     failed,
			Total:      len(r.watchlist),
			LastSyncAt: time.Now().UTC(),
		}:
		default:
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.config.SleepInterval):
		}
	}
}
