package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/backup"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Clock   utils.Clock
	Manager *session.Manager
}

// NewContext wires a session manager over store. A nil clock means the
// system clock.
func NewContext(store storage.Provider, player alarm.Player, clock utils.Clock) *Context {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Context{
		Store:   store,
		Clock:   clock,
		Manager: session.NewManager(store, player, clock),
	}
}

func (c *Context) Now() time.Time {
	return c.Clock.Now()
}

// Load reads the session from the store.
func (c *Context) Load() session.Session {
	return c.Manager.Load()
}

func (c *Context) Dispatch(ev session.Event) (session.Session, error) {
	return c.Manager.Dispatch(ev)
}

// Translator returns strings in the session's language.
func (c *Context) Translator() *i18n.Translator {
	return i18n.New(c.Manager.Session().Settings.Language)
}

// ResolveTask finds a task by id or unique id prefix.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	task, err := planner.FindByPrefix(c.Manager.Session().Tasks, ref)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", ref, err)
	}
	return task, nil
}

// PerformAutomaticBackup snapshots SQLite stores and logs any failure.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if !strings.HasSuffix(path, constants.BackupFileSuffix) {
		return
	}
	if _, err := backup.NewManager(path).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDate accepts "today", "tomorrow", "yesterday" or YYYY-MM-DD.
func ParseDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return utils.FormatDate(now), nil
	case "tomorrow":
		return utils.FormatDate(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return utils.FormatDate(now.AddDate(0, 0, -1)), nil
	}
	if !utils.ValidateDateFormat(s) {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or 'today'", s)
	}
	return s, nil
}

// ParseWeekdays parses a comma-separated list of weekdays into indices
// (0=Sunday). An empty string yields an empty, non-nil list.
func ParseWeekdays(s string) ([]int, error) {
	days := []int{}
	if strings.TrimSpace(s) == "" {
		return days, nil
	}

	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			days = append(days, int(wd))
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

// FormatWeekdays renders weekday indices as short names.
func FormatWeekdays(days []int) string {
	if len(days) == 0 {
		return "none"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, time.Weekday(d).String()[:3])
	}
	return strings.Join(names, ",")
}

// ParsePeriods parses a comma-separated list of block names.
func ParsePeriods(s string) ([]models.TimePeriod, error) {
	var periods []models.TimePeriod
	if strings.TrimSpace(s) == "" {
		return periods, nil
	}
	for _, part := range strings.Split(s, ",") {
		p, err := models.ParsePeriod(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// ShortID is the id prefix shown in listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
