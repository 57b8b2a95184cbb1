package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/stupside/veil/internal/app"
	"github.com/stupside/veil/internal/fingerprint"
)

// Launcher returns a go-rod launcher for cfg with the fingerprint launch
// arguments set as command-line flags. rod's default --enable-automation is
// removed so both backends launch without automation markers.
func Launcher(cfg app.BrowserConfig, args []string) *launcher.Launcher {
	l := launcher.New().
		Delete("enable-automation").
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	if cfg.ChromePath != "" {
		l = l.Bin(cfg.ChromePath)
	}

	l = l.Set("disable-infobars").
		Set("no-first-run").
		Set("no-default-browser-check")

	for _, arg := range args {
		name, value := SplitFlag(arg)
		if value == "" {
			l = l.Set(flags.Flag(name))
			continue
		}
		l = l.Set(flags.Flag(name), value)
	}

	return l
}

// OpenPage opens a blank page on b and prepares it for p: with evasions set
// the go-rod/stealth bundle is registered first, then script, then the page
// timezone is pinned to the profile offset.
func OpenPage(b *rod.Browser, script string, p fingerprint.Profile, evasions bool) (*rod.Page, error) {
	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if evasions {
		if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
			return nil, fmt.Errorf("registering evasions: %w", err)
		}
	}

	if _, err := page.EvalOnNewDocument(script); err != nil {
		return nil, fmt.Errorf("registering injection script: %w", err)
	}

	if tz := TimezoneID(p.Timezone); tz != "" {
		if err := (proto.EmulationSetTimezoneOverride{TimezoneID: tz}).Call(page); err != nil {
			return nil, fmt.Errorf("overriding timezone %s: %w", tz, err)
		}
	}

	return page, nil
}
