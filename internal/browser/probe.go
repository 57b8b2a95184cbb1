package browser

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stupside/veil/internal/fingerprint"
)

//go:embed js/probe.js
var probeJS string

// probeExpression is probeJS as a self-invoking expression for backends that
// evaluate expressions rather than function declarations.
var probeExpression = "(" + probeJS + ")()"

// Observation is what a page sees of the browser identity.
type Observation struct {
	UserAgent           string   `json:"userAgent"`
	Language            string   `json:"language"`
	Languages           []string `json:"languages"`
	Platform            string   `json:"platform"`
	HardwareConcurrency int      `json:"hardwareConcurrency"`
	DeviceMemory        float64  `json:"deviceMemory"`
	DoNotTrack          *string  `json:"doNotTrack"`
	Webdriver           bool     `json:"webdriver"`
	PluginCount         int      `json:"pluginCount"`
	ScreenWidth         int      `json:"screenWidth"`
	ScreenHeight        int      `json:"screenHeight"`
	ColorDepth          int      `json:"colorDepth"`
	TimezoneOffset      int      `json:"timezoneOffset"`
	WebGLVendor         *string  `json:"webglVendor"`
	WebGLRenderer       *string  `json:"webglRenderer"`
	CanvasTail          string   `json:"canvasTail"`

	// Profile is the identity the browser was launched with.
	Profile fingerprint.Profile `json:"-"`
}

// ParseObservation decodes the JSON document produced by the probe script.
func ParseObservation(raw string) (*Observation, error) {
	var obs Observation
	if err := json.Unmarshal([]byte(raw), &obs); err != nil {
		return nil, fmt.Errorf("decoding observation: %w", err)
	}
	return &obs, nil
}

// Mismatch is one surface where the page saw something other than the
// profile value.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Field, m.Want, m.Got)
}

// Compare lists every surface of o that disagrees with p. Surfaces the
// profile leaves to the browser (an unset do-not-track, a timezone that is
// not a whole hour) are not compared.
func (o *Observation) Compare(p fingerprint.Profile) []Mismatch {
	var out []Mismatch
	check := func(field, want, got string) {
		if want != got {
			out = append(out, Mismatch{Field: field, Want: want, Got: got})
		}
	}

	check("userAgent", p.UserAgent, o.UserAgent)
	check("language", p.PrimaryLanguage(), firstOrEmpty(o.Languages))
	check("platform", p.Platform, o.Platform)
	check("hardwareConcurrency", strconv.Itoa(p.HardwareConcurrency), strconv.Itoa(o.HardwareConcurrency))
	check("deviceMemory", strconv.Itoa(p.DeviceMemory), strconv.FormatFloat(o.DeviceMemory, 'f', -1, 64))
	check("screen", fmt.Sprintf("%dx%d", p.Viewport.Width, p.Viewport.Height), fmt.Sprintf("%dx%d", o.ScreenWidth, o.ScreenHeight))
	check("colorDepth", strconv.Itoa(p.ColorDepth), strconv.Itoa(o.ColorDepth))
	check("webdriver", "false", strconv.FormatBool(o.Webdriver))
	check("pluginCount", strconv.Itoa(len(p.Plugins)), strconv.Itoa(o.PluginCount))
	check("webglVendor", p.WebGL.Vendor, deref(o.WebGLVendor))
	check("webglRenderer", p.WebGL.Renderer, deref(o.WebGLRenderer))

	if p.DoNotTrack != fingerprint.DoNotTrackUnset {
		check("doNotTrack", string(p.DoNotTrack), deref(o.DoNotTrack))
	}
	if TimezoneID(p.Timezone) != "" {
		check("timezoneOffset", strconv.Itoa(p.Timezone), strconv.Itoa(o.TimezoneOffset))
	}
	if len(p.CanvasFingerprint) >= 8 {
		check("canvasTail", p.CanvasFingerprint[:8], o.CanvasTail)
	}

	return out
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
