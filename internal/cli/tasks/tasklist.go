package tasks

import (
	"fmt"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
)

type TaskListCmd struct {
	Date    string `short:"d" help:"Only tasks due on this date (YYYY-MM-DD, today, tomorrow)."`
	Pending bool   `help:"Show only incomplete tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	tr := i18n.New(s.Settings.Language)

	tasks := s.Tasks
	if c.Date != "" {
		date, err := cli.ParseDate(c.Date, ctx.Now())
		if err != nil {
			return err
		}
		tasks = planner.ForDate(tasks, date)
	}
	if c.Pending {
		tasks = planner.Pending(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, t := range tasks {
		status := "open"
		if t.Completed {
			status = "done"
		}
		fmt.Printf("  [%s] %s %s - %s %s, %s priority, %s\n",
			status, cli.MutedStyle.Render(cli.ShortID(t.ID)), t.Title, t.DueDate, t.Weight, t.Priority, tr.Recurrence(t.Recurrence))
		fmt.Printf("      Blocks: %s\n", formatPeriods(tr, t.Periods))
		if t.Notes != "" {
			fmt.Printf("      Notes: %s\n", t.Notes)
		}
	}
	return nil
}

func formatPeriods(tr *i18n.Translator, periods []models.TimePeriod) string {
	out := ""
	for i, p := range periods {
		if i > 0 {
			out += ", "
		}
		out += tr.Period(p)
	}
	return out
}
