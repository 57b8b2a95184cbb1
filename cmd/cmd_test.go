package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stupside/veil/internal/fingerprint"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := Root()
	root.Writer = &buf
	err := root.Run(t.Context(), append([]string{"veil"}, args...))
	return buf.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "generate")
	require.NoError(t, err)

	var p fingerprint.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.IsMobile)
	assert.Nil(t, p.MobileInfo)
}

func TestGenerateYAMLCount(t *testing.T) {
	out, err := run(t, "generate", "--count", "3", "--format", "yaml", "--mobile", "--kind", "edge")
	require.NoError(t, err)

	var profiles []fingerprint.Profile
	require.NoError(t, yaml.Unmarshal([]byte(out), &profiles))
	require.Len(t, profiles, 3)

	ids := map[string]bool{}
	for _, p := range profiles {
		assert.True(t, p.IsMobile)
		assert.NotNil(t, p.MobileInfo)
		assert.Contains(t, p.UserAgent, "Edg")
		ids[p.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := run(t, "generate", "--count", "0")
	require.Error(t, err)

	_, err = run(t, "generate", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestArgsCommand(t *testing.T) {
	out, err := run(t, "args", "--kind", "edge")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "--user-agent="))
	assert.Equal(t, "--disable-blink-features=AutomationControlled", lines[5])
	assert.Equal(t, "--edge-compat", lines[6])
}

func TestArgsCommandUsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fingerprint:\n  kind: edge\n"), 0o644))

	out, err := run(t, "--config", path, "args")
	require.NoError(t, err)
	assert.Contains(t, out, "--edge-compat")

	out, err = run(t, "--config", path, "args", "--kind", "chrome")
	require.NoError(t, err)
	assert.NotContains(t, out, "--edge-compat")
}

func TestScriptCommand(t *testing.T) {
	out, err := run(t, "script")
	require.NoError(t, err)
	assert.Contains(t, out, "const profile = {")
	assert.NotContains(t, out, "__PROFILE__")
}

func TestProbeRequiresURL(t *testing.T) {
	_, err := run(t, "probe")
	require.Error(t, err)
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browser:\n  backend: selenium\n"), 0o644))

	_, err := run(t, "--config", path, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestDebugFlagLowersLogLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	_, err := run(t, "args")
	require.NoError(t, err)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	_, err = run(t, "--debug", "args")
	require.NoError(t, err)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}
