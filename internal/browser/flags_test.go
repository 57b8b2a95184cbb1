package browser

import (
	"testing"

	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/stretchr/testify/assert"

	"github.com/stupside/veil/internal/app"
	"github.com/stupside/veil/internal/fingerprint"
)

func TestSplitFlag(t *testing.T) {
	tests := []struct {
		arg   string
		name  string
		value string
	}{
		{"--window-size=1920,1080", "window-size", "1920,1080"},
		{"--js-flags=--cpu-count=4", "js-flags", "--cpu-count=4"},
		{"--user-agent=Mozilla/5.0 (X11; Linux x86_64) a=b", "user-agent", "Mozilla/5.0 (X11; Linux x86_64) a=b"},
		{"--edge-compat", "edge-compat", ""},
		{"--lang=", "lang", ""},
		{"headless", "headless", ""},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value := SplitFlag(tt.arg)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestTimezoneID(t *testing.T) {
	tests := map[int]string{
		0:    "Etc/UTC",
		60:   "Etc/GMT-1",
		540:  "Etc/GMT-9",
		-300: "Etc/GMT+5",
		-480: "Etc/GMT+8",
		720:  "Etc/GMT-12",
		330:  "",
		-210: "",
	}
	for offset, want := range tests {
		assert.Equal(t, want, TimezoneID(offset), "offset %d", offset)
	}
}

func TestLauncherCarriesArguments(t *testing.T) {
	p := probeProfile()
	args := fingerprint.Arguments(p, fingerprint.KindEdge)

	l := Launcher(app.BrowserConfig{Headless: true}, args)

	assert.Equal(t, p.UserAgent, l.Get(flags.Flag("user-agent")))
	assert.Equal(t, "fr-FR", l.Get(flags.Flag("lang")))
	assert.Equal(t, "--cpu-count=8", l.Get(flags.Flag("js-flags")))
	assert.Equal(t, "1536,864", l.Get(flags.Flag("window-size")))
	assert.Equal(t, "Windows", l.Get(flags.Flag("platform")))
	assert.Equal(t, "AutomationControlled", l.Get(flags.Flag("disable-blink-features")))
	assert.True(t, l.Has(flags.Flag("edge-compat")))
	assert.True(t, l.Has(flags.Headless))
	assert.False(t, l.Has(flags.Flag("enable-automation")))
}

func TestLauncherChromeHasNoEdgeFlag(t *testing.T) {
	args := fingerprint.Arguments(probeProfile(), fingerprint.KindChrome)

	l := Launcher(app.BrowserConfig{}, args)

	assert.False(t, l.Has(flags.Flag("edge-compat")))
	assert.False(t, l.Has(flags.Headless))
	assert.False(t, l.Has(flags.Flag("enable-automation")))
}
