package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/stupside/veil/internal/fingerprint"
)

// generateCommand returns the "generate" CLI subcommand.
func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Print freshly generated fingerprint profiles",
		Flags: append(profileFlags(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (json, yaml)",
				Value: "json",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of profiles to generate",
				Value: 1,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := cmd.Int("count")
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			session, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			profiles := make([]fingerprint.Profile, 0, count)
			for range count {
				p := session.Regenerate()
				desc := fingerprint.Describe(p)
				slog.DebugContext(ctx, "profile generated", "id", p.ID, "os", desc.OS, "browser", desc.Browser, "device", desc.Device)
				profiles = append(profiles, p)
			}

			var out any = profiles
			if count == 1 {
				out = profiles[0]
			}
			return writeProfiles(cmd.Root().Writer, cmd.String("format"), out)
		},
	}
}

// writeProfiles encodes v to w as JSON or YAML.
func writeProfiles(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
