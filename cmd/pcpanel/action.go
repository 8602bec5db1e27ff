package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tomek7667/pcpanel/internal/platform"
	"github.com/tomek7667/pcpanel/internal/power"
)

func cmdAction() *cli.Command {
	names := make([]string, 0, len(platform.Actions))
	for _, a := range platform.Actions {
		names = append(names, a.String())
	}
	return &cli.Command{
		Name:      "action",
		Usage:     "Run a power or session action",
		ArgsUsage: "<" + strings.Join(names, "|") + ">",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "do not ask for confirmation",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one action: "+strings.Join(names, ", "), 2)
			}
			action, err := platform.ParseAction(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			var confirm power.Confirmer = stdinConfirmer(os.Stdin, os.Stdout)
			if c.Bool("yes") {
				confirm = power.ConfirmFunc(func(string) bool { return true })
			}

			ctl := power.NewController(platform.Detect(), power.NewLauncher(), log.Default())
			res, err := ctl.Run(action, confirm)
			if err != nil {
				return cli.Exit(power.Notice(err), 1)
			}
			if res.Status == power.Declined {
				fmt.Println("Cancelled.")
				return nil
			}
			fmt.Printf("Started %s (pid %d)\n", res.Command, res.PID)
			return nil
		},
	}
}

// stdinConfirmer asks on w and accepts "y" or "yes" read from r.
func stdinConfirmer(r io.Reader, w io.Writer) power.Confirmer {
	in := bufio.NewReader(r)
	return power.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(w, "%s [y/N] ", prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
