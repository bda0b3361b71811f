package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/utils"
)

// at returns now with its clock time replaced by hhmm, or now itself when
// hhmm is empty.
func at(now time.Time, hhmm string) (time.Time, error) {
	if hhmm == "" {
		return now, nil
	}
	m, err := utils.ParseTimeToMinutes(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := now.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, now.Location()), nil
}

type NowCmd struct {
	At string `help:"Evaluate at this time today (HH:MM) instead of now."`
}

func (c *NowCmd) Run(ctx *Context) error {
	s := ctx.Load()
	now, err := at(ctx.Now(), c.At)
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)
	st := s.Status(now)

	fmt.Printf("%s  %s\n", HeaderStyle.Render(tr.Greeting(planner.Greeting(now))), MutedStyle.Render(now.Format("Mon 2006-01-02 15:04")))
	fmt.Printf("%s: %s (%s-%s)\n", tr.T(i18n.Now), ActiveStyle.Render(tr.Period(st.Period)), st.Block.Start, st.Block.End)

	var flags []string
	if st.WindDown {
		flags = append(flags, tr.T(i18n.WindDown))
	}
	if st.RecoveryMode {
		flags = append(flags, tr.T(i18n.RecoveryMode))
	}
	if len(flags) > 0 {
		fmt.Println(WarnStyle.Render(strings.Join(flags, " · ")))
	}
	if st.RecoveryMode {
		fmt.Println(MutedStyle.Render(tr.Tip(now.YearDay())))
	}

	if !st.Period.Waking() {
		return nil
	}
	date := utils.FormatDate(now)
	tasks := planner.InBlock(s.Tasks, date, st.Period)
	cp := planner.CapacityFor(s.Tasks, date, st.Period)
	fmt.Printf("\n%s\n", CapacityBar(cp))
	for _, t := range tasks {
		printTaskLine(t)
	}
	return nil
}

type BlocksCmd struct {
	Date string `short:"d" help:"Date to show (YYYY-MM-DD, today, tomorrow)." default:"today"`
}

func (c *BlocksCmd) Run(ctx *Context) error {
	s := ctx.Load()
	now := ctx.Now()
	date, err := ParseDate(c.Date, now)
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)
	today := utils.FormatDate(now)

	fmt.Println(HeaderStyle.Render(date))
	for _, bv := range planner.DayView(s.Tasks, s.Blocks(), date, today, s.Status(now).Period) {
		label := fmt.Sprintf("%-10s %s-%s", tr.Period(bv.Block.ID), bv.Block.Start, bv.Block.End)
		switch {
		case bv.Active:
			label = ActiveStyle.Render(label + "  ◀")
		case bv.Past:
			label = MutedStyle.Render(label)
		}
		fmt.Printf("%s  %s\n", label, CapacityBar(bv.Capacity))
		for _, t := range bv.Tasks {
			fmt.Print("  ")
			printTaskLine(t)
		}
	}
	return nil
}

type CapacityCmd struct {
	Date string `short:"d" help:"Date to check (YYYY-MM-DD, today, tomorrow)." default:"today"`
}

func (c *CapacityCmd) Run(ctx *Context) error {
	s := ctx.Load()
	date, err := ParseDate(c.Date, ctx.Now())
	if err != nil {
		return err
	}
	tr := i18n.New(s.Settings.Language)

	fmt.Println(HeaderStyle.Render(date))
	for _, cp := range planner.DayCapacity(s.Tasks, date) {
		line := fmt.Sprintf("%-10s %s", tr.Period(cp.Period), CapacityBar(cp))
		if cp.OverCapacity {
			line += "  " + DangerStyle.Render(tr.T(i18n.OverCapacity, cp.Used, cp.Ceiling))
		} else if cp.Limited() {
			line += MutedStyle.Render(fmt.Sprintf("  %d%%, %d left", cp.Percent, cp.Remaining()))
		}
		fmt.Println(line)
	}
	return nil
}

func printTaskLine(t models.Task) {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		title = DoneStyle.Render(title)
	}
	fmt.Printf("%s %s %s %s\n", box, MutedStyle.Render(ShortID(t.ID)), title,
		MutedStyle.Render(fmt.Sprintf("(%s, %s)", t.Weight, t.Priority)))
}
