package scheduler

import (
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

// Status is the classifier's view of a moment in time.
type Status struct {
	Period       models.TimePeriod
	Block        models.TimeBlock
	WindDown     bool
	RecoveryMode bool
}

// ActivePeriod returns the block containing minute m. NIGHT is checked
// first; otherwise the waking block whose derived interval contains m wins,
// so the result always agrees with DeriveBlocks.
func ActivePeriod(m, wake, rest int) models.TimeBlock {
	blocks := DeriveBlocks(wake, rest)
	night := blocks[len(blocks)-1]
	if utils.InInterval(m, night.StartMinute, night.EndMinute) {
		return night
	}
	for _, b := range blocks[:len(blocks)-1] {
		if utils.InInterval(m, b.StartMinute, b.EndMinute) {
			return b
		}
	}
	// Only reachable when every waking block is empty (active span < 3 minutes).
	return blocks[len(blocks)-2]
}

// InWindDown reports whether m falls within the wind-down window that ends at
// rest. It is false during NIGHT.
func InWindDown(m, wake, rest int) bool {
	if ActivePeriod(m, wake, rest).ID == models.PeriodNight {
		return false
	}
	return utils.InInterval(m, rest-constants.WindDownMin, rest)
}

// Classify returns the active period and advisory flags for now under the
// given schedule. The weekday used for recovery days is taken from now's
// own location.
func (s *Scheduler) Classify(now time.Time, sched models.Schedule) (Status, error) {
	wake, rest, err := parseSchedule(sched)
	if err != nil {
		return Status{}, err
	}
	return classify(now, wake, rest, sched.RecoveryDays), nil
}

func classify(now time.Time, wake, rest int, recoveryDays []int) Status {
	m := utils.MinuteOfDay(now)
	block := ActivePeriod(m, wake, rest)
	st := Status{Period: block.ID, Block: block}
	if block.ID == models.PeriodNight {
		return st
	}

	st.WindDown = utils.InInterval(m, rest-constants.WindDownMin, rest)
	st.RecoveryMode = st.WindDown || models.Schedule{RecoveryDays: recoveryDays}.IsRecoveryDay(int(now.Weekday()))
	return st
}

// IsPast reports whether block is already over when viewing viewedDate while
// active is the current period. Only today's blocks can be past.
func IsPast(block, active models.TimePeriod, viewedDate, today string) bool {
	if viewedDate != today {
		return false
	}
	return block.Index() < active.Index()
}

// IsActive reports whether block is the current period on today's view.
func IsActive(block, active models.TimePeriod, viewedDate, today string) bool {
	return viewedDate == today && block == active
}
