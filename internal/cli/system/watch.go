package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/notifier"
	"github.com/julianstephens/dayflow/internal/session"
)

// Notifier posts a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type WatchCmd struct {
	Notify bool `help:"Send a desktop notification when the active block changes." default:"true" negatable:""`

	Notifier Notifier `kong:"-"`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	if c.Notifier == nil {
		c.Notifier = notifier.New()
	}
	s := ctx.Load()
	tr := i18n.New(s.Settings.Language)
	printStatus(tr, ctx.Manager.Tick(ctx.Now()))

	w := session.NewWatcher(ctx.Manager)
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(cli.MutedStyle.Render("Watching the day. Press Ctrl+C to stop."))
	for {
		select {
		case <-sigCtx.Done():
			if ctx.Manager.AlarmPlaying() {
				if err := ctx.Manager.StopAlarm(); err != nil {
					logger.Warn("Failed to stop alarm", "error", err)
				}
			}
			return nil
		case res := <-w.Results():
			c.handle(sigCtx, ctx, res)
		}
	}
}

func (c *WatchCmd) handle(ctx context.Context, cctx *cli.Context, res session.TickResult) {
	tr := cctx.Translator()
	if res.PeriodChanged {
		printStatus(tr, res)
		if c.Notify && c.Notifier != nil {
			nctx, cancel := context.WithTimeout(ctx, constants.NotifyTimeout)
			if err := c.Notifier.Notify(nctx, tr.Greeting(res.Status.Period)); err != nil {
				logger.Debug("Desktop notification not sent", "error", err)
			}
			cancel()
		}
	}
	if res.AlarmFired {
		fmt.Printf("%s %s  %s\n", cli.WarnStyle.Render("⏰"), res.Now.Format(constants.TimeFormat), tr.T(i18n.AlarmTitle))
	}
	if res.AlarmExpired {
		fmt.Println(cli.MutedStyle.Render(res.Now.Format(constants.TimeFormat) + "  alarm stopped after ringing unanswered"))
	}
}

func printStatus(tr *i18n.Translator, res session.TickResult) {
	st := res.Status
	line := fmt.Sprintf("%s  %s %s-%s", res.Now.Format(constants.TimeFormat), tr.Period(st.Period), st.Block.Start, st.Block.End)
	fmt.Println(cli.ActiveStyle.Render(line))
	if st.RecoveryMode {
		fmt.Println("  " + cli.WarnStyle.Render(tr.T(i18n.RecoveryActive)))
	}
	if st.WindDown {
		fmt.Println("  " + cli.MutedStyle.Render(tr.T(i18n.WindDown)))
	}
}
