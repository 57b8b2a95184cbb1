package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// argsCommand returns the "args" CLI subcommand.
func argsCommand() *cli.Command {
	return &cli.Command{
		Name:  "args",
		Usage: "Print browser launch arguments for a fresh profile, one per line",
		Flags: profileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			session, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, arg := range session.Manager().LaunchArguments(session.Kind()) {
				if _, err := fmt.Fprintln(w, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
