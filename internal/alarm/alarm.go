// Package alarm implements the wake-up alarm: matching the configured minute
// on each tick, fading playback in, snoozing and dismissing.
package alarm

import (
	"sync"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

// Player plays an alarm sound. FadeIn ramps volume from silent to full over
// d and may return before the ramp ends.
type Player interface {
	Start(soundID string) error
	FadeIn(d time.Duration) error
	Stop() error
}

// triggerKey identifies one calendar minute, so the same HH:MM on a later
// day is a different trigger.
func triggerKey(now time.Time) string {
	return now.Format(constants.DateFormat + " " + constants.TimeFormat)
}

// Due reports whether the alarm should fire at now. It returns the
// date-and-minute key it matched so the caller can remember it.
func Due(now time.Time, cfg models.AlarmConfig, playing bool, lastTriggered string) (string, bool) {
	if !cfg.Enabled || playing {
		return "", false
	}
	if now.Format(constants.TimeFormat) != cfg.Time {
		return "", false
	}
	key := triggerKey(now)
	if key == lastTriggered {
		return "", false
	}
	return key, true
}

// SnoozeTime returns the alarm time SnoozeDuration after now.
func SnoozeTime(now time.Time) string {
	return utils.FormatMinutes(utils.MinuteOfDay(now.Add(constants.SnoozeDuration)))
}

// Alarm tracks whether the alarm is ringing and which minute last fired it.
type Alarm struct {
	player Player

	mu            sync.Mutex
	playing       bool
	startedAt     time.Time
	lastTriggered string
}

func New(player Player) *Alarm {
	return &Alarm{player: player}
}

// Check fires the alarm when Due says so. It is safe to call every second:
// a minute that already fired is never fired again, even after Stop.
func (a *Alarm) Check(now time.Time, cfg models.AlarmConfig) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key, ok := Due(now, cfg, a.playing, a.lastTriggered)
	if !ok {
		return false, nil
	}
	a.lastTriggered = key

	if _, err := LookupSound(cfg.Sound); err != nil {
		logger.Warn("Alarm sound not in catalog", "sound", cfg.Sound)
		return false, err
	}
	if err := a.player.Start(cfg.Sound); err != nil {
		return false, err
	}
	a.playing = true
	a.startedAt = now
	if err := a.player.FadeIn(constants.AlarmFadeDuration); err != nil {
		logger.Warn("Alarm fade-in failed", "error", err)
	}
	logger.Info("Alarm fired", "time", cfg.Time, "sound", cfg.Sound)
	return true, nil
}

func (a *Alarm) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// LastTriggered returns the date-and-minute key that most recently fired.
func (a *Alarm) LastTriggered() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastTriggered
}

// Stop silences the alarm.
func (a *Alarm) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.playing {
		return nil
	}
	a.playing = false
	return a.player.Stop()
}

// Expire silences an alarm that has rung unanswered for AlarmRingTimeout,
// so the next day's trigger is not blocked by a ring nobody dismissed.
func (a *Alarm) Expire(now time.Time) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.playing || now.Sub(a.startedAt) < constants.AlarmRingTimeout {
		return false, nil
	}
	a.playing = false
	logger.Info("Alarm timed out", "rang_for", now.Sub(a.startedAt).String())
	return true, a.player.Stop()
}

// Snooze stops the alarm and returns cfg moved to five minutes after now.
// The caller persists the returned config.
func (a *Alarm) Snooze(now time.Time, cfg models.AlarmConfig) (models.AlarmConfig, error) {
	if err := a.Stop(); err != nil {
		return cfg, err
	}
	cfg.Time = SnoozeTime(now)
	return cfg, nil
}
