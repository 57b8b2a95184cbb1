package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// scriptCommand returns the "script" CLI subcommand.
func scriptCommand() *cli.Command {
	return &cli.Command{
		Name:  "script",
		Usage: "Print the injection script for a fresh profile",
		Flags: profileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			session, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			script, err := session.Manager().InjectionScript()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.Root().Writer, script)
			return err
		},
	}
}
