package optimize

import (
	"fmt"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
)

type RankCmd struct {
	Strategy   string `short:"s" help:"Ranking strategy (balanced|quick-wins|priority-first)." default:"balanced"`
	Eisenhower bool   `short:"e" help:"Group by Eisenhower quadrant instead of scoring."`
	Period     string `short:"p" help:"Block to rank (defaults to the current block)."`
	Date       string `short:"d" help:"Date (YYYY-MM-DD, today, tomorrow)." default:"today"`
	Apply      bool   `help:"Save the ranked order as the task order."`
}

func (c *RankCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	now := ctx.Now()

	date, err := cli.ParseDate(c.Date, now)
	if err != nil {
		return err
	}
	period := s.Status(now).Period
	if c.Period != "" {
		if period, err = models.ParsePeriod(c.Period); err != nil {
			return err
		}
	}
	tasks := planner.Pending(planner.InBlock(s.Tasks, date, period))
	tr := i18n.New(s.Settings.Language)

	var ids []string
	if c.Eisenhower {
		ids = optimizer.PrioritizeEisenhower(tasks)
		printEisenhower(tasks)
	} else {
		strategy, err := optimizer.ParseStrategy(c.Strategy)
		if err != nil {
			return err
		}
		opts := optimizer.Options{CurrentPeriod: period, Strategy: strategy, Now: now}
		ranked := optimizer.Rank(tasks, opts)
		ids = optimizer.Optimize(tasks, opts)

		fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("%s · %s · %s", date, tr.Period(period), strategy)))
		if len(ranked) == 0 {
			fmt.Println("No open tasks in this block.")
		}
		for i, r := range ranked {
			fmt.Printf("%2d. %s %-40s %s\n", i+1, cli.MutedStyle.Render(cli.ShortID(r.Task.ID)), r.Task.Title,
				cli.MutedStyle.Render(fmt.Sprintf("%.1f", r.Score)))
		}
	}

	if c.Apply && len(ids) > 0 {
		if _, err := ctx.Dispatch(session.Reorder{IDs: ids}); err != nil {
			return err
		}
		fmt.Println("Task order saved.")
	}
	return nil
}

func printEisenhower(tasks []models.Task) {
	buckets := optimizer.Buckets(tasks)
	for _, q := range optimizer.Quadrants {
		fmt.Println(cli.HeaderStyle.Render(string(q)))
		if len(buckets[q]) == 0 {
			fmt.Println(cli.MutedStyle.Render("  (none)"))
		}
		for _, t := range buckets[q] {
			fmt.Printf("  %s %s\n", cli.MutedStyle.Render(cli.ShortID(t.ID)), t.Title)
		}
	}
}

type SuggestCmd struct {
	Title string `arg:"" help:"Task title to classify."`
}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	if !optimizer.Eligible(c.Title) {
		return fmt.Errorf("title too short to classify")
	}
	w := optimizer.NewHeuristic().SuggestWeight(c.Title)
	fmt.Printf("%s (%d pts)\n", w, w.Points())
	return nil
}
