package alarm

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/notifier"
)

// Sender is the part of notifier.Notifier the tray player needs.
type Sender interface {
	Send(ctx context.Context, p notifier.Payload) error
}

// TrayPlayer plays the alarm through the tray app, stepping volume up in
// AlarmFadeSteps posts.
type TrayPlayer struct {
	sender Sender
	text   string

	mu     sync.Mutex
	sound  string
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTrayPlayer(sender Sender, text string) *TrayPlayer {
	return &TrayPlayer{sender: sender, text: text}
}

func (p *TrayPlayer) Start(soundID string) error {
	p.mu.Lock()
	p.sound = soundID
	p.mu.Unlock()
	return p.sender.Send(context.Background(), notifier.Payload{
		Text:       p.text,
		DurationMs: uint32(constants.AlarmFadeDuration / time.Millisecond),
		Sound:      soundID,
	})
}

// FadeIn starts the volume ramp in the background and returns immediately.
func (p *TrayPlayer) FadeIn(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopFadeLocked()

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.fade(ctx, p.sound, d, p.done)
	return nil
}

func (p *TrayPlayer) fade(ctx context.Context, sound string, d time.Duration, done chan struct{}) {
	defer close(done)
	step := d / constants.AlarmFadeSteps
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	for i := 1; i <= constants.AlarmFadeSteps; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		vol := i * 100 / constants.AlarmFadeSteps
		if err := p.sender.Send(ctx, notifier.Payload{Sound: sound, Volume: vol}); err != nil {
			return
		}
	}
}

// stopFadeLocked cancels a running ramp and waits for it. p.mu must be held.
func (p *TrayPlayer) stopFadeLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}

func (p *TrayPlayer) Stop() error {
	p.mu.Lock()
	p.stopFadeLocked()
	p.mu.Unlock()
	return p.sender.Send(context.Background(), notifier.Payload{Stop: true})
}

// BellPlayer rings the terminal bell. It is the fallback when no tray app
// is running.
type BellPlayer struct {
	w io.Writer
}

func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (b *BellPlayer) Start(soundID string) error {
	_, err := fmt.Fprint(b.w, "\a")
	return err
}

func (b *BellPlayer) FadeIn(time.Duration) error { return nil }

func (b *BellPlayer) Stop() error { return nil }

// FallbackPlayer plays through Primary and switches to Secondary for the
// rest of its life once Primary fails to start.
type FallbackPlayer struct {
	Primary   Player
	Secondary Player

	mu     sync.Mutex
	failed bool
}

func (f *FallbackPlayer) current() Player {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return f.Secondary
	}
	return f.Primary
}

func (f *FallbackPlayer) Start(soundID string) error {
	f.mu.Lock()
	failed := f.failed
	f.mu.Unlock()
	if !failed {
		err := f.Primary.Start(soundID)
		if err == nil {
			return nil
		}
		logger.Warn("Primary alarm player failed, falling back", "error", err)
		f.mu.Lock()
		f.failed = true
		f.mu.Unlock()
	}
	return f.Secondary.Start(soundID)
}

func (f *FallbackPlayer) FadeIn(d time.Duration) error { return f.current().FadeIn(d) }

func (f *FallbackPlayer) Stop() error { return f.current().Stop() }
