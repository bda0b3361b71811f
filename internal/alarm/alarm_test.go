package alarm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/notifier"
)

type fakePlayer struct {
	starts []string
	fades  int
	stops  int
	err    error
}

func (f *fakePlayer) Start(id string) error {
	if f.err != nil {
		return f.err
	}
	f.starts = append(f.starts, id)
	return nil
}

func (f *fakePlayer) FadeIn(time.Duration) error { f.fades++; return nil }
func (f *fakePlayer) Stop() error                { f.stops++; return nil }

func at(hhmm string, sec int) time.Time {
	t, _ := time.Parse("15:04", hhmm)
	return time.Date(2024, 3, 6, t.Hour(), t.Minute(), sec, 0, time.UTC)
}

func TestDue(t *testing.T) {
	cfg := models.AlarmConfig{Enabled: true, Time: "07:00", Sound: "forest"}

	tests := []struct {
		name    string
		now     time.Time
		cfg     models.AlarmConfig
		playing bool
		last    string
		want    bool
	}{
		{"matching minute", at("07:00", 0), cfg, false, "", true},
		{"later second same minute", at("07:00", 42), cfg, false, "", true},
		{"other minute", at("07:01", 0), cfg, false, "", false},
		{"disabled", at("07:00", 0), models.AlarmConfig{Time: "07:00", Sound: "forest"}, false, "", false},
		{"already playing", at("07:00", 0), cfg, true, "", false},
		{"already fired this minute", at("07:00", 5), cfg, false, "2024-03-06 07:00", false},
		{"fired same minute yesterday", at("07:00", 5), cfg, false, "2024-03-05 07:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Due(tt.now, tt.cfg, tt.playing, tt.last)
			if got != tt.want {
				t.Errorf("Due() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckFiresOncePerMinute(t *testing.T) {
	p := &fakePlayer{}
	a := New(p)
	cfg := models.AlarmConfig{Enabled: true, Time: "07:00", Sound: "birds"}

	fired, err := a.Check(at("07:00", 0), cfg)
	if err != nil || !fired {
		t.Fatalf("first Check = %v, %v; want fired", fired, err)
	}
	if !a.Playing() {
		t.Fatal("expected alarm to be playing")
	}
	if len(p.starts) != 1 || p.starts[0] != "birds" || p.fades != 1 {
		t.Fatalf("player calls = %+v", p)
	}

	if err := a.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	fired, _ = a.Check(at("07:00", 30), cfg)
	if fired {
		t.Error("alarm refired within the same minute after stop")
	}
	if a.LastTriggered() != "2024-03-06 07:00" {
		t.Errorf("LastTriggered = %q", a.LastTriggered())
	}
}

func TestCheckUnknownSound(t *testing.T) {
	p := &fakePlayer{}
	a := New(p)
	_, err := a.Check(at("06:30", 0), models.AlarmConfig{Enabled: true, Time: "06:30", Sound: "bagpipes"})
	if !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("err = %v, want ErrUnknownSound", err)
	}
	if a.Playing() || len(p.starts) != 0 {
		t.Error("unknown sound must not start playback")
	}
}

func TestCheckPlayerError(t *testing.T) {
	a := New(&fakePlayer{err: errors.New("no audio")})
	fired, err := a.Check(at("06:30", 0), models.AlarmConfig{Enabled: true, Time: "06:30", Sound: "zen"})
	if err == nil || fired || a.Playing() {
		t.Fatalf("Check = %v, %v, playing=%v", fired, err, a.Playing())
	}
}

func TestSnooze(t *testing.T) {
	p := &fakePlayer{}
	a := New(p)
	cfg := models.AlarmConfig{Enabled: true, Time: "23:58", Sound: "rain"}
	if _, err := a.Check(at("23:58", 0), cfg); err != nil {
		t.Fatal(err)
	}

	got, err := a.Snooze(at("23:58", 10), cfg)
	if err != nil {
		t.Fatalf("Snooze: %v", err)
	}
	if got.Time != "00:03" {
		t.Errorf("snoozed time = %q, want 00:03", got.Time)
	}
	if a.Playing() || p.stops != 1 {
		t.Errorf("snooze should stop playback, stops=%d", p.stops)
	}

	fired, _ := a.Check(at("00:03", 0), got)
	if !fired {
		t.Error("snoozed alarm did not fire")
	}
}

func TestExpireAndNextDay(t *testing.T) {
	p := &fakePlayer{}
	a := New(p)
	cfg := models.AlarmConfig{Enabled: true, Time: "07:00", Sound: "wind"}
	day1 := at("07:00", 0)

	if fired, err := a.Check(day1, cfg); err != nil || !fired {
		t.Fatalf("day 1 Check = %v, %v", fired, err)
	}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"still ringing", day1.Add(constants.AlarmRingTimeout - time.Second), false},
		{"timed out", day1.Add(constants.AlarmRingTimeout), true},
		{"already silent", day1.Add(2 * constants.AlarmRingTimeout), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Expire(tt.now)
			if err != nil || got != tt.expired {
				t.Errorf("Expire = %v, %v; want %v", got, err, tt.expired)
			}
		})
	}
	if a.Playing() || p.stops != 1 {
		t.Fatalf("playing=%v stops=%d after timeout", a.Playing(), p.stops)
	}

	fired, err := a.Check(day1.AddDate(0, 0, 1), cfg)
	if err != nil || !fired {
		t.Fatalf("day 2 Check = %v, %v; want fired", fired, err)
	}
	if len(p.starts) != 2 {
		t.Errorf("starts = %d, want 2", len(p.starts))
	}
}

func TestSoundCatalog(t *testing.T) {
	ids := SoundIDs()
	want := []string{"forest", "sea", "water", "birds", "rain", "wind", "zen"}
	if len(ids) != len(want) {
		t.Fatalf("SoundIDs = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("SoundIDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
	if _, err := LookupSound("sea"); err != nil {
		t.Errorf("LookupSound(sea): %v", err)
	}
}

type recordingSender struct {
	mu       sync.Mutex
	payloads []notifier.Payload
}

func (r *recordingSender) Send(_ context.Context, p notifier.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return nil
}

func (r *recordingSender) snapshot() []notifier.Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifier.Payload(nil), r.payloads...)
}

func TestTrayPlayerFade(t *testing.T) {
	s := &recordingSender{}
	p := NewTrayPlayer(s, "Good Morning")
	if err := p.Start("sea"); err != nil {
		t.Fatal(err)
	}
	if err := p.FadeIn(100 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got := s.snapshot()
		if last := got[len(got)-1]; last.Volume == 100 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := s.snapshot()
	if got[0].Sound != "sea" || got[0].Text != "Good Morning" {
		t.Errorf("start payload = %+v", got[0])
	}
	prev := 0
	for _, pl := range got[1:] {
		if pl.Volume < prev {
			t.Fatalf("volume decreased: %d after %d", pl.Volume, prev)
		}
		prev = pl.Volume
	}
	if prev != 100 {
		t.Errorf("final volume = %d, want 100", prev)
	}

	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	got = s.snapshot()
	if !got[len(got)-1].Stop {
		t.Error("Stop did not post a stop payload")
	}
}

func TestTrayPlayerStopCancelsFade(t *testing.T) {
	s := &recordingSender{}
	p := NewTrayPlayer(s, "")
	_ = p.Start("wind")
	_ = p.FadeIn(time.Hour)
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	n := len(s.snapshot())
	time.Sleep(20 * time.Millisecond)
	if len(s.snapshot()) != n {
		t.Error("fade kept posting after Stop")
	}
}

func TestFallbackPlayer(t *testing.T) {
	primary := &fakePlayer{err: errors.New("tray not running")}
	secondary := &fakePlayer{}
	f := &FallbackPlayer{Primary: primary, Secondary: secondary}

	if err := f.Start("zen"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.Stop(); err != nil {
		t.Fatal(err)
	}
	if len(secondary.starts) != 1 || secondary.stops != 1 {
		t.Errorf("secondary calls = %+v", secondary)
	}

	primary.err = nil
	_ = f.Start("zen")
	if len(primary.starts) != 0 || len(secondary.starts) != 2 {
		t.Error("fallback should stick once the primary has failed")
	}
}
