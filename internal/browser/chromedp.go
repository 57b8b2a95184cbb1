package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/go-rod/stealth"

	"github.com/stupside/veil/internal/app"
	"github.com/stupside/veil/internal/fingerprint"
)

// AllocatorOptions returns chromedp exec-allocator options for cfg with the
// fingerprint launch arguments appended. Each argument becomes one flag, so
// the browser sees exactly what Arguments produced.
func AllocatorOptions(cfg app.BrowserConfig, args []string) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,

		chromedp.Flag("no-sandbox", cfg.NoSandbox),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
	}

	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}

	if cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	for _, arg := range args {
		name, value := SplitFlag(arg)
		if value == "" {
			opts = append(opts, chromedp.Flag(name, true))
			continue
		}
		opts = append(opts, chromedp.Flag(name, value))
	}

	return opts
}

// Inject returns a chromedp action that registers script to run before any
// page script in every new document, and pins the page timezone to the
// profile offset. With evasions set, the go-rod/stealth bundle is registered
// ahead of script so the profile overrides win where both touch a property.
func Inject(script string, p fingerprint.Profile, evasions bool) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if evasions {
			if _, err := page.AddScriptToEvaluateOnNewDocument(stealth.JS).Do(ctx); err != nil {
				return fmt.Errorf("registering evasions: %w", err)
			}
		}

		if _, err := page.AddScriptToEvaluateOnNewDocument(script).Do(ctx); err != nil {
			return fmt.Errorf("registering injection script: %w", err)
		}

		tz := TimezoneID(p.Timezone)
		if tz == "" {
			slog.DebugContext(ctx, "timezone override skipped", "offset", p.Timezone)
			return nil
		}
		if err := emulation.SetTimezoneOverride(tz).Do(ctx); err != nil {
			return fmt.Errorf("overriding timezone %s: %w", tz, err)
		}
		return nil
	}
}
