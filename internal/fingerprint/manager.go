package fingerprint

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Manager owns the current profile of one automation session and derives
// launch arguments and injection scripts from it. It is safe for concurrent
// use: every call reads or replaces the current profile in one atomic step,
// so a derive racing Regenerate sees either the old or the new profile,
// never a mix.
type Manager struct {
	current  atomic.Pointer[Profile]
	generate GenerateFunc
	kind     Kind
	mobile   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaults sets the kind and form factor used when a derive call finds
// no current profile.
func WithDefaults(kind Kind, mobile bool) Option {
	return func(m *Manager) {
		m.kind = ParseKind(string(kind))
		m.mobile = mobile
	}
}

// WithGenerator replaces Generate.
func WithGenerator(fn GenerateFunc) Option {
	return func(m *Manager) {
		m.generate = fn
	}
}

// NewManager returns a Manager with no current profile.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		generate: Generate,
		kind:     KindChrome,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Regenerate discards the current profile and returns a fresh one.
func (m *Manager) Regenerate(kind Kind, mobile bool) Profile {
	p := m.generate(kind, mobile)
	m.current.Store(&p)
	logProfile("fingerprint regenerated", p)
	return p
}

// Current returns the current profile, if any.
func (m *Manager) Current() (Profile, bool) {
	p := m.current.Load()
	if p == nil {
		return Profile{}, false
	}
	return *p, true
}

// LaunchArguments returns the browser flags for the current profile,
// generating one with the manager defaults first if needed.
func (m *Manager) LaunchArguments(kind Kind) []string {
	return Arguments(m.ensure(), kind)
}

// InjectionScript returns the runtime override script for the current
// profile, generating one with the manager defaults first if needed.
func (m *Manager) InjectionScript() (string, error) {
	p := m.ensure()
	script, err := Synthesize(p)
	if err != nil {
		return "", fmt.Errorf("synthesizing injection script: %w", err)
	}
	return script, nil
}

// Derive returns the current profile together with its launch arguments and
// injection script, all taken from the same profile even if Regenerate runs
// concurrently.
func (m *Manager) Derive(kind Kind) (Profile, []string, string, error) {
	p := m.ensure()
	script, err := Synthesize(p)
	if err != nil {
		return Profile{}, nil, "", fmt.Errorf("synthesizing injection script: %w", err)
	}
	return p, Arguments(p, kind), script, nil
}

// ensure returns the current profile. Concurrent first callers all end up
// with whichever lazily generated profile was published first.
func (m *Manager) ensure() Profile {
	if p := m.current.Load(); p != nil {
		return *p
	}
	p := m.generate(m.kind, m.mobile)
	if !m.current.CompareAndSwap(nil, &p) {
		return *m.current.Load()
	}
	logProfile("fingerprint generated", p)
	return p
}

func logProfile(msg string, p Profile) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	desc := Describe(p)
	slog.Debug(msg,
		"id", p.ID,
		"ua", p.UserAgent,
		"os", desc.OS,
		"browser", desc.Browser,
		"platform", p.Platform,
		"language", p.PrimaryLanguage(),
		"screen", fmt.Sprintf("%dx%d", p.Viewport.Width, p.Viewport.Height),
		"webgl", p.WebGL.Renderer,
		"hwConcurrency", p.HardwareConcurrency,
		"deviceMemory", p.DeviceMemory,
		"mobile", p.IsMobile,
	)
}
