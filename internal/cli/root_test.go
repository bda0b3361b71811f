package cli

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/utils"
)

var testNow = time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

func setupContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dayflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	ctx := NewContext(store, alarm.NewBellPlayer(io.Discard), utils.FixedClock{T: testNow})
	ctx.Load()
	return ctx
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "2024-03-06", false},
		{"today", "2024-03-06", false},
		{"Tomorrow", "2024-03-07", false},
		{"yesterday", "2024-03-05", false},
		{"2024-12-31", "2024-12-31", false},
		{"31/12/2024", "", true},
		{"2024-02-30", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, testNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", []int{}, false},
		{"names", "sun, Saturday", []int{0, 6}, false},
		{"numbers", "1,3", []int{1, 3}, false},
		{"out of range", "7", nil, true},
		{"unknown", "funday", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}

	if got := FormatWeekdays([]int{0, 6}); got != "Sun,Sat" {
		t.Errorf("FormatWeekdays = %q", got)
	}
	if got := FormatWeekdays(nil); got != "none" {
		t.Errorf("FormatWeekdays(nil) = %q", got)
	}
}

func TestParsePeriods(t *testing.T) {
	got, err := ParsePeriods("morning, e")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != models.PeriodMorning || got[1] != models.PeriodEvening {
		t.Errorf("got %v", got)
	}
	if _, err := ParsePeriods("brunch"); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestAt(t *testing.T) {
	got, err := at(testNow, "22:15")
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 22 || got.Minute() != 15 || got.Day() != 6 {
		t.Errorf("at = %v", got)
	}
	if got, _ := at(testNow, ""); !got.Equal(testNow) {
		t.Errorf("empty time should keep now, got %v", got)
	}
	if _, err := at(testNow, "9pm"); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestResolveTask(t *testing.T) {
	ctx := setupContext(t)
	s, err := ctx.Dispatch(session.AddTask{Input: planner.NewTaskInput{Title: "Stretch"}})
	if err != nil {
		t.Fatal(err)
	}
	id := s.Tasks[0].ID

	got, err := ctx.ResolveTask(id[:6])
	if err != nil || got.ID != id {
		t.Errorf("ResolveTask(prefix) = %v, %v", got.ID, err)
	}
	if _, err := ctx.ResolveTask("zzzz"); !errors.Is(err, planner.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestStatusCommands(t *testing.T) {
	ctx := setupContext(t)
	for _, title := range []string{"Plan sprint", "Inbox zero"} {
		if _, err := ctx.Dispatch(session.AddTask{Input: planner.NewTaskInput{
			Title:   title,
			Periods: []models.TimePeriod{models.PeriodMorning},
			Weight:  models.WeightDeep,
		}}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		run     func() error
		wantErr bool
	}{
		{"now", func() error { return (&NowCmd{}).Run(ctx) }, false},
		{"now at night", func() error { return (&NowCmd{At: "23:45"}).Run(ctx) }, false},
		{"now bad time", func() error { return (&NowCmd{At: "7am"}).Run(ctx) }, true},
		{"blocks", func() error { return (&BlocksCmd{Date: "today"}).Run(ctx) }, false},
		{"blocks tomorrow", func() error { return (&BlocksCmd{Date: "tomorrow"}).Run(ctx) }, false},
		{"blocks bad date", func() error { return (&BlocksCmd{Date: "someday"}).Run(ctx) }, true},
		{"capacity", func() error { return (&CapacityCmd{Date: "2024-03-06"}).Run(ctx) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cp := planner.CapacityFor(ctx.Manager.Session().Tasks, "2024-03-06", models.PeriodMorning)
	if cp.Used != 12 || cp.OverCapacity {
		t.Errorf("capacity = %+v, want 12 used and not over", cp)
	}
}
