package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// probeCommand returns the "probe" CLI subcommand.
func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     "Open pages in a browser wearing a fresh profile and report what they observe",
		ArgsUsage: "<url> [url...]",
		Flags: append(profileFlags(),
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "Maximum number of browsers running at once",
				Value: 2,
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when a page observes a value other than the profile's",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			urls := cmd.Args().Slice()
			if len(urls) == 0 {
				return fmt.Errorf("at least one url is required")
			}

			strict := cmd.Bool("strict")

			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(max(1, cmd.Int("parallel")))

			for _, u := range urls {
				g.Go(func() error {
					// One session per page: every browser gets its own identity.
					session, err := sessionFrom(cmd)
					if err != nil {
						return err
					}

					obs, err := session.Probe(ctx, u)
					if err != nil {
						return err
					}

					p := obs.Profile
					mismatches := obs.Compare(p)

					slog.InfoContext(ctx, "probe complete",
						"url", u,
						"profile", p.ID,
						"ua", obs.UserAgent,
						"platform", obs.Platform,
						"screen", fmt.Sprintf("%dx%d", obs.ScreenWidth, obs.ScreenHeight),
						"webdriver", obs.Webdriver,
						"mismatches", len(mismatches),
					)
					for _, m := range mismatches {
						slog.WarnContext(ctx, "surface mismatch", "url", u, "field", m.Field, "want", m.Want, "got", m.Got)
					}

					if strict && len(mismatches) > 0 {
						return fmt.Errorf("%s observed %d mismatched surfaces", u, len(mismatches))
					}
					return nil
				})
			}

			return g.Wait()
		},
	}
}
