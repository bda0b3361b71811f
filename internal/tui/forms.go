package tui

import (
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

var errTimeFormat = errors.New("use HH:MM")

// TaskFormModel holds the fields of the add-task form. The title is typed
// before the form opens so the weight can be suggested from it.
type TaskFormModel struct {
	Title      string
	Periods    []models.TimePeriod
	Weight     models.TaskWeight
	Priority   models.Priority
	Recurrence models.Recurrence
	Notes      string
}

// SettingsFormModel holds the fields of the settings form.
type SettingsFormModel struct {
	Wake         string
	Rest         string
	Recovery     []int
	Language     string
	AlarmEnabled bool
	AlarmTime    string
	AlarmSound   string
}

func newTaskForm(fm *TaskFormModel, tr *i18n.Translator) *huh.Form {
	periods := make([]huh.Option[models.TimePeriod], len(models.WakingPeriods))
	for i, p := range models.WakingPeriods {
		periods[i] = huh.NewOption(tr.Period(p), p).Selected(slices.Contains(fm.Periods, p))
	}

	recurrences := []models.Recurrence{
		models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly,
		models.RecurrenceMonthly, models.RecurrenceAllBlocks,
	}
	recOpts := make([]huh.Option[models.Recurrence], len(recurrences))
	for i, r := range recurrences {
		recOpts[i] = huh.NewOption(tr.Recurrence(r), r)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(fm.Title),
			huh.NewMultiSelect[models.TimePeriod]().
				Title("Blocks").
				Options(periods...).
				Value(&fm.Periods),
			huh.NewSelect[models.TaskWeight]().
				Title("Weight").
				Options(
					huh.NewOption("Quick (1)", models.WeightQuick),
					huh.NewOption("Focused (3)", models.WeightFocused),
					huh.NewOption("Deep (6)", models.WeightDeep),
				).
				Value(&fm.Weight),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", models.PriorityLow),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("High", models.PriorityHigh),
				).
				Value(&fm.Priority),
			huh.NewSelect[models.Recurrence]().
				Title(tr.T(i18n.RecurrenceKey)).
				Options(recOpts...).
				Value(&fm.Recurrence),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithShowHelp(false)
}

func settingsFormFrom(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		Wake:         s.WakeTime,
		Rest:         s.RestTime,
		Recovery:     slices.Clone(s.RecoveryDays),
		Language:     s.Language,
		AlarmEnabled: s.Alarm.Enabled,
		AlarmTime:    s.Alarm.Time,
		AlarmSound:   s.Alarm.Sound,
	}
}

// apply copies the form onto base, keeping fields the form does not edit.
func (fm *SettingsFormModel) apply(base models.Settings) models.Settings {
	base.WakeTime = fm.Wake
	base.RestTime = fm.Rest
	base.RecoveryDays = slices.Clone(fm.Recovery)
	slices.Sort(base.RecoveryDays)
	base.Language = fm.Language
	base.Alarm.Enabled = fm.AlarmEnabled
	base.Alarm.Time = fm.AlarmTime
	base.Alarm.Sound = fm.AlarmSound
	return base
}

func validateClock(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return errTimeFormat
	}
	return nil
}

func newSettingsForm(fm *SettingsFormModel, tr *i18n.Translator) *huh.Form {
	days := make([]huh.Option[int], 7)
	for d := range days {
		days[d] = huh.NewOption(time.Weekday(d).String(), d).Selected(slices.Contains(fm.Recovery, d))
	}
	sounds := make([]huh.Option[string], 0, len(alarm.Sounds))
	for _, id := range alarm.SoundIDs() {
		sounds = append(sounds, huh.NewOption(tr.Sound(id), id))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Wake").Value(&fm.Wake).Validate(validateClock),
			huh.NewInput().Title("Rest").Value(&fm.Rest).Validate(validateClock),
			huh.NewMultiSelect[int]().Title("Recovery days").Options(days...).Value(&fm.Recovery),
			huh.NewSelect[string]().
				Title(tr.T(i18n.LanguageLabel)).
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Русский", "ru"),
					huh.NewOption("Español", "es"),
				).
				Value(&fm.Language),
		),
		huh.NewGroup(
			huh.NewConfirm().Title(tr.T(i18n.EnableAlarm)).Value(&fm.AlarmEnabled),
			huh.NewInput().Title(tr.T(i18n.AlarmTitle)).Value(&fm.AlarmTime).Validate(validateClock),
			huh.NewSelect[string]().Title(tr.T(i18n.SoundLabel)).Options(sounds...).Value(&fm.AlarmSound),
		),
	).WithShowHelp(false)
}
