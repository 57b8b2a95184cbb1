package browser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod"
)

// pageCapture is the part of a backend page a snapshot needs.
type pageCapture interface {
	Screenshot() ([]byte, error)
	HTML() (string, error)
}

type chromedpCapture struct {
	ctx context.Context
}

func (c chromedpCapture) Screenshot() ([]byte, error) {
	var buf []byte
	err := chromedp.Run(c.ctx, chromedp.FullScreenshot(&buf, 90))
	return buf, err
}

func (c chromedpCapture) HTML() (string, error) {
	var html string
	err := chromedp.Run(c.ctx, chromedp.OuterHTML("html", &html))
	return html, err
}

type rodCapture struct {
	page *rod.Page
}

func (c rodCapture) Screenshot() ([]byte, error) {
	return c.page.Screenshot(true, nil)
}

func (c rodCapture) HTML() (string, error) {
	return c.page.HTML()
}

// snapshot writes a screenshot and the page HTML under dir. It only runs
// when debug logging is on and dir is set; failures are logged, not returned.
func snapshot(ctx context.Context, page pageCapture, dir, label string) {
	if dir == "" || !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.DebugContext(ctx, "snapshot: mkdir failed", "error", err)
		return
	}

	ts := time.Now().UnixMilli()
	prefix := filepath.Join(dir, fmt.Sprintf("%s_%d", label, ts))

	if buf, err := page.Screenshot(); err != nil {
		slog.DebugContext(ctx, "snapshot: screenshot failed", "label", label, "error", err)
	} else if err := os.WriteFile(prefix+".png", buf, 0o644); err != nil {
		slog.DebugContext(ctx, "snapshot: write png failed", "error", err)
	}

	if html, err := page.HTML(); err != nil {
		slog.DebugContext(ctx, "snapshot: html failed", "label", label, "error", err)
	} else if err := os.WriteFile(prefix+".html", []byte(html), 0o644); err != nil {
		slog.DebugContext(ctx, "snapshot: write html failed", "error", err)
	}

	slog.DebugContext(ctx, "snapshot: saved", "label", label, "path", prefix)
}

// snapshotDir returns the per-URL directory under root, or "" when root is
// empty.
func snapshotDir(root, rawURL string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, sanitize(rawURL))
}

// sanitize turns a URL into a safe directory name.
func sanitize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	s := u.Host + u.Path
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, ":", "_")
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}
