package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/tomek7667/pcpanel/internal/platform"
	"github.com/tomek7667/pcpanel/internal/power"
	"github.com/tomek7667/pcpanel/internal/probe"
	"github.com/tomek7667/pcpanel/internal/sampler"
	"github.com/tomek7667/pcpanel/internal/session"
	"github.com/tomek7667/pcpanel/internal/ui"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if path, err := writeCrashLog(".", r, debug.Stack()); err == nil {
				fmt.Fprintf(os.Stderr, "pcpanel crashed, details in %s\n", path)
			}
			os.Exit(2)
		}
	}()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "pcpanel",
		Description: "live terminal panel of local host telemetry with one-shot power actions",
		Usage:       "show the panel, print one snapshot or run a power action",
		Version:     appVersion(),
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				EnvVars: []string{"PCPANEL_INTERVAL"},
				Value:   ui.DefaultInterval,
				Usage:   "refresh period",
			},
			&cli.IntFlag{
				Name:    "history",
				EnvVars: []string{"PCPANEL_HISTORY"},
				Value:   sampler.DefaultHistoryLen,
				Usage:   "number of CPU samples kept for the chart",
			},
			&cli.StringFlag{
				Name:    "root",
				EnvVars: []string{"PCPANEL_ROOT"},
				Usage:   "volume whose usage is shown (default: root of the current volume)",
			},
			&cli.BoolFlag{
				Name:    "no-gpu",
				EnvVars: []string{"PCPANEL_NO_GPU"},
				Usage:   "skip graphics adapter detection",
			},
			&cli.StringFlag{
				Name:    "log-file",
				EnvVars: []string{"PCPANEL_LOG_FILE"},
				Value:   "pcpanel.log",
				Usage:   "where the panel writes its log",
			},
		},
		Commands: []*cli.Command{
			cmdSnapshot(),
			cmdAction(),
		},
		CommandNotFound: func(c *cli.Context, command string) {
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
			cli.ShowAppHelpAndExit(c, 1)
		},
		Action:       runPanel,
		BashComplete: cli.ShowCompletions,
	}
}

func runPanel(c *cli.Context) error {
	f, err := tea.LogToFile(c.String("log-file"), "pcpanel")
	if err != nil {
		return startupFailure(fmt.Errorf("failed to open log file: %w", err))
	}
	defer f.Close()

	adapter := platform.Detect()
	sess := newSession(c, adapter)
	ctl := power.NewController(adapter, power.NewLauncher(), log.Default())
	log.Printf("panel started (%s, refresh every %s)", adapter.Family(), c.Duration("interval"))

	if err := ui.Run(sess, ctl, ui.Options{
		Interval:   c.Duration("interval"),
		HistoryCap: c.Int("history"),
	}); err != nil {
		return startupFailure(fmt.Errorf("failed to run the panel: %w", err))
	}
	return nil
}

func newSession(c *cli.Context, adapter platform.Adapter) *session.Session {
	p := probe.New(adapter, platform.SystemEnv())
	p.GPU = !c.Bool("no-gpu")
	return session.New(p, sampler.New(c.Context), session.Config{
		DiskRoot:   c.String("root"),
		HistoryLen: c.Int("history"),
	}, log.Default())
}

// startupFailure records err with a stack trace in error.log and hands it
// back for the CLI to report.
func startupFailure(err error) error {
	if path, werr := writeCrashLog(".", err, debug.Stack()); werr == nil {
		return fmt.Errorf("%w (details in %s)", err, path)
	}
	return err
}

// waitInterval blocks for d so that rate samplers have a meaningful window.
func waitInterval(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "unknown"
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	switch {
	case rev != "" && modified:
		return rev + " (modified)"
	case rev != "":
		return rev
	case bi.Main.Version != "":
		return bi.Main.Version
	}
	return "unknown"
}
