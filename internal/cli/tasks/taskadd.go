package tasks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Period   string `short:"p" help:"Comma-separated blocks (morning,afternoon,evening). Defaults to the current block."`
	Weight   string `short:"w" help:"Weight (quick|focused|deep). Suggested from the title when omitted."`
	Priority string `short:"P" help:"Priority (low|medium|high)." default:"medium"`
	Repeat   string `short:"r" help:"Recurrence (none|daily|weekly|monthly|all-blocks)." default:"none"`
	Notes    string `short:"n" help:"Free-form notes."`
	Date     string `short:"d" help:"Due date (YYYY-MM-DD, today, tomorrow)." default:"today"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	ctx.Load()

	if strings.TrimSpace(c.Title) == "" {
		fmt.Println(cli.MutedStyle.Render("Nothing added: the title is empty."))
		return nil
	}

	periods, err := cli.ParsePeriods(c.Period)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}
	recurrence, err := models.ParseRecurrence(c.Repeat)
	if err != nil {
		return err
	}
	date, err := cli.ParseDate(c.Date, ctx.Now())
	if err != nil {
		return err
	}

	weight := models.TaskWeight(c.Weight)
	suggested := false
	if c.Weight == "" {
		weight = optimizer.SuggestWeight(c.Title)
		suggested = true
	} else if weight, err = models.ParseWeight(c.Weight); err != nil {
		return err
	}

	before := ctx.Manager.Session()
	s, err := ctx.Dispatch(session.AddTask{Input: planner.NewTaskInput{
		Title:      c.Title,
		Periods:    periods,
		Weight:     weight,
		Priority:   priority,
		Recurrence: recurrence,
		Notes:      c.Notes,
		DueDate:    date,
	}})
	if err != nil {
		return err
	}
	if len(s.Tasks) == len(before.Tasks) {
		return nil
	}

	task := s.Tasks[len(s.Tasks)-1]
	note := ""
	if suggested {
		note = cli.MutedStyle.Render(" (suggested)")
	}
	fmt.Printf("Added task: %s (ID: %s) %s%s in %v\n", task.Title, cli.ShortID(task.ID), task.Weight, note, task.Periods)

	for _, p := range task.Periods {
		if cp := planner.CapacityFor(s.Tasks, task.DueDate, p); cp.OverCapacity {
			fmt.Println(cli.DangerStyle.Render(fmt.Sprintf("⚠ %s is over capacity (%d/%d)", p, cp.Used, cp.Ceiling)))
		}
	}
	return nil
}
