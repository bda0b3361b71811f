package settings

import (
	"fmt"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/cli"
	apperrors "github.com/julianstephens/dayflow/internal/errors"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/session"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Wake     *string `help:"Wake-up time (HH:MM)."`
	Rest     *string `help:"Rest time (HH:MM)."`
	Recovery *string `help:"Comma-separated recovery weekdays (e.g. sat,sun or 0,6). Empty clears them."`
	Lang     *string `help:"Interface language (en|ru|es)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	settings := s.Settings

	if c.List {
		tr := i18n.New(settings.Language)
		fmt.Println("Current Settings:")
		fmt.Printf("  Wake Time:       %s\n", settings.WakeTime)
		fmt.Printf("  Rest Time:       %s\n", settings.RestTime)
		fmt.Printf("  Recovery Days:   %s\n", cli.FormatWeekdays(settings.RecoveryDays))
		fmt.Printf("  Language:        %s\n", settings.Language)
		fmt.Println("\nAlarm:")
		fmt.Printf("  Enabled:         %v\n", settings.Alarm.Enabled)
		fmt.Printf("  Time:            %s\n", settings.Alarm.Time)
		fmt.Printf("  Sound:           %s\n", tr.Sound(settings.Alarm.Sound))
		fmt.Println("\nBlocks:")
		for _, b := range s.Blocks() {
			fmt.Printf("  %-10s %s-%s\n", tr.Period(b.ID), b.Start, b.End)
		}
		return nil
	}

	updated := false
	if c.Wake != nil {
		settings.WakeTime = *c.Wake
		updated = true
	}
	if c.Rest != nil {
		settings.RestTime = *c.Rest
		updated = true
	}
	if c.Recovery != nil {
		days, err := cli.ParseWeekdays(*c.Recovery)
		if err != nil {
			return err
		}
		settings.RecoveryDays = days
		updated = true
	}
	if c.Lang != nil {
		settings.Language = *c.Lang
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if _, err := ctx.Dispatch(session.SaveSettings{Settings: settings}); err != nil {
		return saveError(err, s.Settings.Language)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

// saveError turns schedule validation failures into the translated message.
func saveError(err error, lang string) error {
	if msg := apperrors.UserMessage(err, lang); msg != apperrors.Format(err) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}

type AlarmCmd struct {
	On     bool    `help:"Enable the alarm." xor:"toggle"`
	Off    bool    `help:"Disable the alarm." xor:"toggle"`
	Time   *string `short:"t" help:"Alarm time (HH:MM)."`
	Sound  *string `short:"s" help:"Alarm sound (forest|sea|water|birds|rain|wind|zen)."`
	Snooze bool    `help:"Move the alarm five minutes past now."`
	Sounds bool    `help:"List available sounds."`
}

func (c *AlarmCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	tr := i18n.New(s.Settings.Language)

	if c.Sounds {
		for _, id := range alarm.SoundIDs() {
			fmt.Printf("  %-8s %s\n", id, tr.Sound(id))
		}
		return nil
	}

	if c.Snooze {
		next, err := ctx.Manager.SnoozeAlarm()
		if err != nil {
			return err
		}
		fmt.Printf("%s → %s\n", tr.T(i18n.Snooze), next.Settings.Alarm.Time)
		return nil
	}

	settings := s.Settings
	updated := false
	if c.On || c.Off {
		settings.Alarm.Enabled = c.On
		updated = true
	}
	if c.Time != nil {
		settings.Alarm.Time = *c.Time
		updated = true
	}
	if c.Sound != nil {
		if _, err := alarm.LookupSound(*c.Sound); err != nil {
			return err
		}
		settings.Alarm.Sound = *c.Sound
		updated = true
	}

	if updated {
		next, err := ctx.Dispatch(session.SaveSettings{Settings: settings})
		if err != nil {
			return fmt.Errorf("invalid alarm settings: %w", err)
		}
		settings = next.Settings
	}

	state := "off"
	if settings.Alarm.Enabled {
		state = "on"
	}
	fmt.Printf("%s: %s at %s (%s)\n", tr.T(i18n.AlarmTitle), state, settings.Alarm.Time, tr.Sound(settings.Alarm.Sound))
	return nil
}
