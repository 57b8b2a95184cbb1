package fingerprint

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGenerator wraps Generate and records every call.
type countingGenerator struct {
	calls  atomic.Int32
	kinds  []Kind
	mobile []bool
	mu     sync.Mutex
}

func (g *countingGenerator) generate(kind Kind, mobile bool) Profile {
	g.calls.Add(1)
	g.mu.Lock()
	g.kinds = append(g.kinds, kind)
	g.mobile = append(g.mobile, mobile)
	g.mu.Unlock()
	return Generate(kind, mobile)
}

func TestManagerLazyGeneration(t *testing.T) {
	gen := &countingGenerator{}
	m := NewManager(WithGenerator(gen.generate))

	_, ok := m.Current()
	require.False(t, ok)

	args := m.LaunchArguments(KindChrome)
	script, err := m.InjectionScript()
	require.NoError(t, err)

	assert.Equal(t, int32(1), gen.calls.Load())
	assert.Equal(t, []Kind{KindChrome}, gen.kinds)
	assert.Equal(t, []bool{false}, gen.mobile)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Contains(t, args, "--user-agent="+current.UserAgent)
	assert.Contains(t, script, current.UserAgent)
	assert.Contains(t, script, current.ID)
}

func TestManagerInjectionScriptFirst(t *testing.T) {
	gen := &countingGenerator{}
	m := NewManager(WithGenerator(gen.generate))

	script, err := m.InjectionScript()
	require.NoError(t, err)
	args := m.LaunchArguments(KindEdge)

	assert.Equal(t, int32(1), gen.calls.Load())
	ua := strings.TrimPrefix(args[0], "--user-agent=")
	assert.Contains(t, script, ua)
}

func TestManagerDefaults(t *testing.T) {
	gen := &countingGenerator{}
	m := NewManager(WithGenerator(gen.generate), WithDefaults(KindEdge, true))

	m.LaunchArguments(KindEdge)

	current, ok := m.Current()
	require.True(t, ok)
	assert.True(t, current.IsMobile)
	assert.NotNil(t, current.MobileInfo)
	assert.Equal(t, []Kind{KindEdge}, gen.kinds)
}

func TestManagerRegenerateReplaces(t *testing.T) {
	m := NewManager()

	first := m.Regenerate(KindChrome, false)
	second := m.Regenerate(KindChrome, true)
	assert.NotEqual(t, first.ID, second.ID)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, second, current)

	script, err := m.InjectionScript()
	require.NoError(t, err)
	assert.Contains(t, script, second.ID)
	assert.NotContains(t, script, first.ID)
}

func TestManagerConsecutiveDerivesShareProfile(t *testing.T) {
	m := NewManager()
	m.Regenerate(KindChrome, false)

	a := m.LaunchArguments(KindChrome)
	b := m.LaunchArguments(KindChrome)
	assert.Equal(t, a, b)

	s1, err := m.InjectionScript()
	require.NoError(t, err)
	s2, err := m.InjectionScript()
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestManagerInstancesAreIndependent(t *testing.T) {
	a := NewManager()
	b := NewManager()

	pa := a.Regenerate(KindChrome, false)
	_, ok := b.Current()
	assert.False(t, ok)

	pb := b.Regenerate(KindChrome, false)
	assert.NotEqual(t, pa.ID, pb.ID)

	current, _ := a.Current()
	assert.Equal(t, pa.ID, current.ID)
}

func TestManagerConcurrentLazyGeneration(t *testing.T) {
	m := NewManager()

	const workers = 32
	ids := make([]string, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			args := m.LaunchArguments(KindChrome)
			current, _ := m.Current()
			assert.Contains(t, args, "--user-agent="+current.UserAgent)
			ids[i] = current.ID
		})
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestManagerConcurrentRegenerate(t *testing.T) {
	m := NewManager()
	m.Regenerate(KindChrome, false)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				m.Regenerate(KindEdge, false)
			}
		})
		wg.Go(func() {
			for range 50 {
				args := m.LaunchArguments(KindEdge)
				assert.Len(t, args, 7)
				script, err := m.InjectionScript()
				assert.NoError(t, err)
				assert.NotEmpty(t, script)
			}
		})
	}
	wg.Wait()
}

// regenerateOnLog regenerates the manager the first time it sees msg, which
// lands between publishing a lazily generated profile and returning it.
type regenerateOnLog struct {
	m     *Manager
	msg   string
	fired atomic.Bool
}

func (h *regenerateOnLog) Enabled(context.Context, slog.Level) bool { return true }
func (h *regenerateOnLog) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h *regenerateOnLog) WithGroup(string) slog.Handler           { return h }

func (h *regenerateOnLog) Handle(_ context.Context, r slog.Record) error {
	if r.Message == h.msg && h.fired.CompareAndSwap(false, true) {
		h.m.Regenerate(KindChrome, false)
	}
	return nil
}

func TestManagerDeriveIsOneProfile(t *testing.T) {
	m := NewManager()

	prev := slog.Default()
	h := &regenerateOnLog{m: m, msg: "fingerprint generated"}
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })

	p, args, script, err := m.Derive(KindEdge)
	require.NoError(t, err)
	require.True(t, h.fired.Load(), "regenerate must run mid-derive")

	current, _ := m.Current()
	assert.NotEqual(t, p.ID, current.ID)

	assert.Equal(t, Arguments(p, KindEdge), args)
	assert.Equal(t, "--user-agent="+p.UserAgent, args[0])
	assert.Contains(t, script, p.ID)
	assert.NotContains(t, script, current.ID)
}

func TestManagerDeriveMatchesSeparateCalls(t *testing.T) {
	m := NewManager()
	m.Regenerate(KindChrome, true)

	p, args, script, err := m.Derive(KindChrome)
	require.NoError(t, err)

	current, _ := m.Current()
	assert.Equal(t, current, p)
	assert.Equal(t, m.LaunchArguments(KindChrome), args)
	s, err := m.InjectionScript()
	require.NoError(t, err)
	assert.Equal(t, s, script)
}
