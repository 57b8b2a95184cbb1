package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// Config holds all application configuration.
type Config struct {
	Fingerprint FingerprintConfig `koanf:"fingerprint" validate:"required"`
	Browser     BrowserConfig     `koanf:"browser" validate:"required"`
}

// FingerprintConfig selects the identity generated when none is asked for
// explicitly.
type FingerprintConfig struct {
	Kind   string `koanf:"kind" validate:"required,oneof=chrome edge"`
	Mobile bool   `koanf:"mobile"`
}

// Backend names a browser automation driver.
type Backend string

const (
	BackendChromedp Backend = "chromedp"
	BackendRod      Backend = "rod"
)

// BrowserConfig holds settings for launching the probed browser.
type BrowserConfig struct {
	Backend     Backend       `koanf:"backend" validate:"required,oneof=chromedp rod"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
	Headless    bool          `koanf:"headless"`
	NoSandbox   bool          `koanf:"no_sandbox"`
	ChromePath  string        `koanf:"chrome_path"`
	Evasions    bool          `koanf:"evasions"`
	SnapshotDir string        `koanf:"snapshot_dir"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Fingerprint: FingerprintConfig{
			Kind: "chrome",
		},
		Browser: BrowserConfig{
			Backend:  BackendChromedp,
			Timeout:  30 * time.Second,
			Headless: true,
		},
	}
}

// Load reads and validates configuration from a YAML file. Keys missing from
// the file keep their Default value; an empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		k := koanf.New(".")

		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}

		if err := k.Unmarshal("", &cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling config: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// ConfigFrom extracts the Config from the CLI command metadata.
func ConfigFrom(cmd *cli.Command) (*Config, error) {
	v, ok := cmd.Root().Metadata["config"]
	if !ok {
		return nil, fmt.Errorf("config not found in command metadata")
	}
	cfg, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("config has unexpected type %T", v)
	}
	return cfg, nil
}
