package scheduler

import (
	"fmt"

	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// DeriveBlocks splits the day into MORNING, AFTERNOON, EVENING and NIGHT for
// the given wake and rest minutes. The three waking blocks each get
// floor(active/3) minutes; EVENING ends exactly at rest so it absorbs the
// remainder. The input is trusted: span validation happens when settings
// are saved.
func DeriveBlocks(wake, rest int) []models.TimeBlock {
	wake = utils.NormalizeMinutes(wake)
	rest = utils.NormalizeMinutes(rest)
	blockDuration := utils.SpanMinutes(wake, rest) / 3

	morningEnd := utils.NormalizeMinutes(wake + blockDuration)
	afternoonEnd := utils.NormalizeMinutes(wake + 2*blockDuration)

	return []models.TimeBlock{
		newBlock(models.PeriodMorning, wake, morningEnd),
		newBlock(models.PeriodAfternoon, morningEnd, afternoonEnd),
		newBlock(models.PeriodEvening, afternoonEnd, rest),
		newBlock(models.PeriodNight, rest, wake),
	}
}

func newBlock(id models.TimePeriod, start, end int) models.TimeBlock {
	return models.TimeBlock{
		ID:          id,
		StartMinute: start,
		EndMinute:   end,
		Start:       utils.FormatMinutes(start),
		End:         utils.FormatMinutes(end),
	}
}

// Blocks parses the schedule's wake and rest times and derives the day's blocks.
func (s *Scheduler) Blocks(sched models.Schedule) ([]models.TimeBlock, error) {
	wake, rest, err := parseSchedule(sched)
	if err != nil {
		return nil, err
	}
	return DeriveBlocks(wake, rest), nil
}

// Block returns the derived block with the given id.
func (s *Scheduler) Block(sched models.Schedule, id models.TimePeriod) (models.TimeBlock, error) {
	blocks, err := s.Blocks(sched)
	if err != nil {
		return models.TimeBlock{}, err
	}
	for _, b := range blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return models.TimeBlock{}, fmt.Errorf("unknown period %q", id)
}

func parseSchedule(sched models.Schedule) (int, int, error) {
	wake, err := utils.ParseTimeToMinutes(sched.WakeTime)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid wake time %q: %w", sched.WakeTime, err)
	}
	rest, err := utils.ParseTimeToMinutes(sched.RestTime)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rest time %q: %w", sched.RestTime, err)
	}
	return wake, rest, nil
}
