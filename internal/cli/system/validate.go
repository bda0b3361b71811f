package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/validation"
)

var ErrConflicts = errors.New("validation found conflicts")

type ValidateCmd struct {
	Date   string `help:"Only check tasks due on this date (YYYY-MM-DD, today)."`
	Strict bool   `help:"Exit with an error when conflicts are found."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	v := validation.New()

	var result validation.ValidationResult
	if c.Date == "" {
		fmt.Println("Validating tasks...")
		result = v.ValidateTasks(s.Tasks)
	} else {
		date, err := cli.ParseDate(c.Date, ctx.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Validating tasks for %s...\n", date)
		result = v.ValidateTasksForDate(s.Tasks, date)
	}

	fmt.Println()
	fmt.Println(result.FormatReport())

	if c.Strict && result.HasConflicts() {
		return fmt.Errorf("%w: %d", ErrConflicts, len(result.Conflicts))
	}
	return nil
}
