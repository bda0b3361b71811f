package session

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
)

// Watcher runs Manager.Tick on a cron schedule and publishes each result.
// Slow consumers miss results rather than block the schedule.
type Watcher struct {
	cron    *cron.Cron
	mgr     *Manager
	results chan TickResult
}

func NewWatcher(mgr *Manager) *Watcher {
	loc := mgr.Clock().Now().Location()
	return &Watcher{
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		mgr:     mgr,
		results: make(chan TickResult, 1),
	}
}

func (w *Watcher) Results() <-chan TickResult {
	return w.results
}

// Start schedules the tick every TickInterval and starts the cron runner.
func (w *Watcher) Start() error {
	spec := fmt.Sprintf("@every %ds", int(constants.TickInterval.Seconds()))
	if _, err := w.cron.AddFunc(spec, w.tick); err != nil {
		return fmt.Errorf("failed to schedule tick: %w", err)
	}
	w.cron.Start()
	logger.Debug("Watcher started", "interval", constants.TickInterval)
	return nil
}

func (w *Watcher) tick() {
	res := w.mgr.Tick(w.mgr.Clock().Now())
	select {
	case w.results <- res:
	default:
		select {
		case <-w.results:
		default:
		}
		select {
		case w.results <- res:
		default:
		}
	}
}

// Stop halts the schedule and waits for a running tick to finish.
func (w *Watcher) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}
