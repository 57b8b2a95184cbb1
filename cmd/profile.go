package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/stupside/veil/internal/app"
	"github.com/stupside/veil/internal/browser"
)

// profileFlags are shared by every command that generates a profile.
func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "Browser kind to impersonate (chrome, edge); defaults to the configured kind",
		},
		&cli.BoolFlag{
			Name:  "mobile",
			Usage: "Generate a mobile profile; defaults to the configured form factor",
		},
	}
}

// sessionFrom builds a browser session from the loaded config with the
// command's --kind and --mobile flags applied on top.
func sessionFrom(cmd *cli.Command) (*browser.Session, error) {
	cfg, err := app.ConfigFrom(cmd)
	if err != nil {
		return nil, err
	}

	c := *cfg
	if cmd.IsSet("kind") {
		c.Fingerprint.Kind = cmd.String("kind")
	}
	if cmd.IsSet("mobile") {
		c.Fingerprint.Mobile = cmd.Bool("mobile")
	}

	return browser.NewSession(c), nil
}
