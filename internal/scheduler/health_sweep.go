package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/health"
	"github.com/linkdock/linkdock/internal/logger"
	filestore "github.com/linkdock/linkdock/internal/store/file"
)

// DefaultSweepWorkers bounds how many bookmarks are probed at once so
// a sweep cannot overwhelm the probed hosts.
const DefaultSweepWorkers = 4

// HealthSweeper periodically re-checks every bookmark with health
// checking enabled. The interval comes from the stored settings and is
// re-read after each sweep, so a settings PATCH takes effect without a
// restart.
type HealthSweeper struct {
	store         *filestore.Store
	checker       *health.Checker
	logger        logger.Logger
	workers       int
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewHealthSweeper creates a new sweeper.
func NewHealthSweeper(
	store *filestore.Store,
	checker *health.Checker,
	log logger.Logger,
	workers int,
	manualTrigger chan struct{},
) *HealthSweeper {
	if workers < 1 {
		workers = DefaultSweepWorkers
	}
	return &HealthSweeper{
		store:         store,
		checker:       checker,
		logger:        log,
		workers:       workers,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic sweep loop. The first sweep runs
// immediately so statuses populate right after startup.
func (hs *HealthSweeper) Start(ctx context.Context) error {
	hs.Sweep(ctx)

	go func() {
		timer := time.NewTimer(hs.interval())
		defer timer.Stop()
		for {
			select {
			case <-timer.C:
				hs.Sweep(ctx)
			case <-hs.manualTrigger:
				hs.logger.Info("manual health sweep triggered")
				hs.Sweep(ctx)
			case <-hs.stopCh:
				return
			case <-ctx.Done():
				return
			}
			timer.Reset(hs.interval())
		}
	}()

	return nil
}

// Stop stops the sweeper.
func (hs *HealthSweeper) Stop() {
	close(hs.stopCh)
}

// interval reads the configured sweep cadence from settings.
func (hs *HealthSweeper) interval() time.Duration {
	return time.Duration(hs.store.GetSettings().HealthCheckInterval) * time.Second
}

// Sweep checks every health-enabled bookmark once, at most `workers`
// in flight at a time, and records each result in the store.
func (hs *HealthSweeper) Sweep(ctx context.Context) {
	var targets []domain.Bookmark
	for _, bm := range hs.store.GetBookmarks() {
		if bm.HealthCheckEnabled {
			targets = append(targets, bm)
		}
	}
	if len(targets) == 0 {
		return
	}

	start := time.Now()
	jobs := make(chan domain.Bookmark)

	var wg sync.WaitGroup
	for i := 0; i < hs.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bm := range jobs {
				res := hs.checker.Check(ctx, bm)
				if _, err := hs.store.UpdateBookmarkHealth(bm.ID, res); err != nil {
					hs.logger.Warn("failed to record health result",
						logger.String("bookmark_id", bm.ID),
						logger.Error(err))
				}
			}
		}()
	}

	for _, bm := range targets {
		select {
		case jobs <- bm:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return
		}
	}
	close(jobs)
	wg.Wait()

	hs.logger.Info("health sweep complete",
		logger.Int("checked", len(targets)),
		logger.Duration("took", time.Since(start)))
}
