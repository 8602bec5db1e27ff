package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tomek7667/pcpanel/internal/platform"
	"github.com/tomek7667/pcpanel/internal/ui"
)

func cmdSnapshot() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Collect one refresh tick and print it",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of text",
			},
		},
		Action: func(c *cli.Context) error {
			sess := newSession(c, platform.Detect())
			if err := waitInterval(c.Context, c.Duration("interval")); err != nil {
				return err
			}
			snap := sess.Tick(c.Context)

			if c.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(snap); err != nil {
					return fmt.Errorf("failed to encode snapshot: %w", err)
				}
				return nil
			}
			fmt.Print(ui.Summary(snap))
			return nil
		},
	}
}
