package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod"

	"github.com/stupside/veil/internal/app"
	"github.com/stupside/veil/internal/fingerprint"
)

// Session is one automation session: it owns the identity every browser it
// launches wears. Sessions do not share identities.
type Session struct {
	manager *fingerprint.Manager
	kind    fingerprint.Kind
	mobile  bool
	browser app.BrowserConfig
}

// NewSession creates a Session from cfg. Extra options are applied to the
// session's fingerprint.Manager after the configured defaults.
func NewSession(cfg app.Config, opts ...fingerprint.Option) *Session {
	kind := fingerprint.ParseKind(cfg.Fingerprint.Kind)
	opts = append([]fingerprint.Option{fingerprint.WithDefaults(kind, cfg.Fingerprint.Mobile)}, opts...)

	return &Session{
		manager: fingerprint.NewManager(opts...),
		kind:    kind,
		mobile:  cfg.Fingerprint.Mobile,
		browser: cfg.Browser,
	}
}

// Manager returns the session's profile manager.
func (s *Session) Manager() *fingerprint.Manager {
	return s.manager
}

// Kind returns the browser kind launch arguments are formatted for.
func (s *Session) Kind() fingerprint.Kind {
	return s.kind
}

// Regenerate replaces the session profile with a fresh one of the session's
// kind and form factor.
func (s *Session) Regenerate() fingerprint.Profile {
	return s.manager.Regenerate(s.kind, s.mobile)
}

// launchPlan is everything a backend needs to launch one browser under the
// current profile.
type launchPlan struct {
	args    []string
	script  string
	profile fingerprint.Profile
}

func (s *Session) plan() (launchPlan, error) {
	p, args, script, err := s.manager.Derive(s.kind)
	if err != nil {
		return launchPlan{}, err
	}
	return launchPlan{args: args, script: script, profile: p}, nil
}

// Probe launches a browser with the configured backend under the session
// profile, opens targetURL and reports what the page observes.
func (s *Session) Probe(ctx context.Context, targetURL string) (*Observation, error) {
	plan, err := s.plan()
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "probe started",
		"url", targetURL,
		"backend", s.browser.Backend,
		"profile", plan.profile.ID,
	)

	var raw string
	switch s.browser.Backend {
	case app.BackendRod:
		raw, err = s.probeRod(ctx, targetURL, plan)
	default:
		raw, err = s.probeChromedp(ctx, targetURL, plan)
	}
	if err != nil {
		return nil, fmt.Errorf("probing %s with %s: %w", targetURL, s.browser.Backend, err)
	}

	obs, err := ParseObservation(raw)
	if err != nil {
		return nil, err
	}
	obs.Profile = plan.profile
	return obs, nil
}

func (s *Session) probeChromedp(ctx context.Context, targetURL string, plan launchPlan) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, AllocatorOptions(s.browser, plan.args)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	if s.browser.Timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(taskCtx, s.browser.Timeout)
		defer cancel()
	}

	var raw string
	err := chromedp.Run(taskCtx,
		Inject(plan.script, plan.profile, s.browser.Evasions),
		chromedp.Navigate(targetURL),
		chromedp.Evaluate(probeExpression, &raw),
	)

	snapshot(taskCtx, chromedpCapture{ctx: taskCtx}, snapshotDir(s.browser.SnapshotDir, targetURL), "probe")

	return raw, err
}

func (s *Session) probeRod(ctx context.Context, targetURL string, plan launchPlan) (string, error) {
	if s.browser.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.browser.Timeout)
		defer cancel()
	}

	l := Launcher(s.browser, plan.args).Context(ctx)
	defer l.Cleanup()

	controlURL, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}
	defer l.Kill()

	b := rod.New().Context(ctx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			slog.DebugContext(ctx, "closing browser failed", "error", err)
		}
	}()

	page, err := OpenPage(b, plan.script, plan.profile, s.browser.Evasions)
	if err != nil {
		return "", err
	}

	if err := page.Navigate(targetURL); err != nil {
		return "", fmt.Errorf("navigating: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		slog.DebugContext(ctx, "wait load failed, continuing", "error", err)
	}

	res, err := page.Eval(probeJS)
	if err != nil {
		return "", fmt.Errorf("evaluating probe: %w", err)
	}

	snapshot(ctx, rodCapture{page: page}, snapshotDir(s.browser.SnapshotDir, targetURL), "probe")

	return res.Value.Str(), nil
}
