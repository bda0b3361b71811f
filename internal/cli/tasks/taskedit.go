package tasks

import (
	"fmt"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/session"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	s, err := ctx.Dispatch(session.ToggleComplete{ID: task.ID})
	if err != nil {
		return err
	}
	for _, t := range s.Tasks {
		if t.ID == task.ID {
			if t.Completed {
				fmt.Printf("✓ Completed: %s\n", t.Title)
			} else {
				fmt.Printf("Reopened: %s\n", t.Title)
			}
		}
	}
	return nil
}

type TaskEditCmd struct {
	ID           string  `arg:"" help:"Task ID or ID prefix."`
	Title        *string `help:"New title."`
	Weight       *string `short:"w" help:"New weight (quick|focused|deep)."`
	Priority     *string `short:"P" help:"New priority (low|medium|high)."`
	Notes        *string `short:"n" help:"Replace notes."`
	Date         *string `short:"d" help:"New due date (YYYY-MM-DD, today, tomorrow)."`
	TogglePeriod *string `short:"t" help:"Add or remove a block (morning|afternoon|evening)."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}

	var events []session.Event
	if c.Title != nil {
		events = append(events, session.Rename{ID: task.ID, Title: *c.Title})
	}
	if c.Weight != nil {
		w, err := models.ParseWeight(*c.Weight)
		if err != nil {
			return err
		}
		events = append(events, session.SetWeight{ID: task.ID, Weight: w})
	}
	if c.Priority != nil {
		p, err := models.ParsePriority(*c.Priority)
		if err != nil {
			return err
		}
		events = append(events, session.SetPriority{ID: task.ID, Priority: p})
	}
	if c.Notes != nil {
		events = append(events, session.SetNotes{ID: task.ID, Notes: *c.Notes})
	}
	if c.Date != nil {
		date, err := cli.ParseDate(*c.Date, ctx.Now())
		if err != nil {
			return err
		}
		events = append(events, session.SetDueDate{ID: task.ID, Date: date})
	}
	if c.TogglePeriod != nil {
		p, err := models.ParsePeriod(*c.TogglePeriod)
		if err != nil {
			return err
		}
		events = append(events, session.TogglePeriod{ID: task.ID, Period: p})
	}

	if len(events) == 0 {
		fmt.Println("No changes specified.")
		return nil
	}
	for _, ev := range events {
		if _, err := ctx.Dispatch(ev); err != nil {
			return err
		}
	}
	fmt.Printf("Updated task: %s\n", cli.ShortID(task.ID))
	return nil
}

type TaskMoveCmd struct {
	ID     string `arg:"" help:"Task ID or ID prefix."`
	Period string `arg:"" help:"Target block (morning|afternoon|evening)."`
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	p, err := models.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	if !p.Waking() {
		return fmt.Errorf("tasks cannot be scheduled in the %s block", p)
	}
	if _, err := ctx.Dispatch(session.MovePeriod{ID: task.ID, Period: p}); err != nil {
		return err
	}
	fmt.Printf("Moved %s to %s\n", task.Title, p)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(session.Delete{ID: task.ID}); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

type TaskRepeatCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix of a recurring task."`
}

func (c *TaskRepeatCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	s, err := ctx.Dispatch(session.Repeat{ID: task.ID})
	if err != nil {
		return err
	}
	next := s.Tasks[len(s.Tasks)-1]
	fmt.Printf("Scheduled %s again on %s (ID: %s)\n", next.Title, next.DueDate, cli.ShortID(next.ID))
	return nil
}
