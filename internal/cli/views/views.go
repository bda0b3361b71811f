package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
)

type ViewCmd struct {
	Week  ViewWeekCmd  `cmd:"" default:"1" help:"Show the week containing a date."`
	Month ViewMonthCmd `cmd:"" help:"Show the month containing a date."`
	Year  ViewYearCmd  `cmd:"" help:"Show which days of the year have tasks."`
}

func anchor(ctx *cli.Context, s string) (time.Time, error) {
	date, err := cli.ParseDate(s, ctx.Now())
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(constants.DateFormat, date, ctx.Now().Location())
}

type ViewWeekCmd struct {
	Date string `help:"Any date in the week (YYYY-MM-DD, today, tomorrow)." default:"today"`
}

func (c *ViewWeekCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	day, err := anchor(ctx, c.Date)
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)
	today := ctx.Now().Format(constants.DateFormat)

	fmt.Println(cli.HeaderStyle.Render(tr.T(i18n.Week)))
	for _, d := range planner.WeekView(s.Tasks, day) {
		line := fmt.Sprintf("%s  %s", d.Date, summaryLine(tr, d))
		if d.Date == today {
			line = cli.ActiveStyle.Render(line)
		}
		fmt.Println(line)
	}
	return nil
}

func summaryLine(tr *i18n.Translator, d planner.DaySummary) string {
	if d.Total == 0 {
		return cli.MutedStyle.Render("-")
	}
	parts := make([]string, 0, len(models.WakingPeriods))
	for _, p := range models.WakingPeriods {
		if n := d.Counts[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", tr.Period(p), n))
		}
	}
	return fmt.Sprintf("%d/%d done  %s", d.Completed, d.Total, strings.Join(parts, ", "))
}

type ViewMonthCmd struct {
	Date string `help:"Any date in the month." default:"today"`
}

func (c *ViewMonthCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	day, err := anchor(ctx, c.Date)
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)
	today := ctx.Now().Format(constants.DateFormat)

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("%s %s", tr.T(i18n.Month), day.Format("January 2006"))))
	fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

	days := planner.MonthView(s.Tasks, day)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	var b strings.Builder
	b.WriteString(strings.Repeat("    ", int(first.Weekday())))
	for i, d := range days {
		cell := fmt.Sprintf("%3d", i+1)
		switch {
		case d.Date == today:
			cell = cli.ActiveStyle.Render(cell)
		case d.Total > 0 && d.Completed == d.Total:
			cell = cli.DoneStyle.Render(cell)
		case d.Total > 0:
			cell = cli.WarnStyle.Render(cell)
		}
		b.WriteString(cell)
		if d.Total > 0 {
			b.WriteString("*")
		} else {
			b.WriteString(" ")
		}
		if (int(first.Weekday())+i)%7 == 6 {
			b.WriteString("\n")
		}
	}
	fmt.Println(strings.TrimRight(b.String(), "\n"))
	return nil
}

type ViewYearCmd struct {
	Date string `help:"Any date in the year." default:"today"`
}

func (c *ViewYearCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	day, err := anchor(ctx, c.Date)
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("%s %d", tr.T(i18n.Year), day.Year())))
	for _, m := range planner.YearView(s.Tasks, day.Year()) {
		if m.Total == 0 {
			fmt.Printf("  %-9s %s\n", m.Month, cli.MutedStyle.Render("-"))
			continue
		}
		days := make([]string, len(m.DaysWithTasks))
		for i, d := range m.DaysWithTasks {
			days[i] = fmt.Sprint(d)
		}
		fmt.Printf("  %-9s %3d tasks  days %s\n", m.Month, m.Total, strings.Join(days, ","))
	}
	return nil
}
