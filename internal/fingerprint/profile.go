package fingerprint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind selects the browser family a profile impersonates.
type Kind string

const (
	KindChrome Kind = "chrome"
	KindEdge   Kind = "edge"
)

// ParseKind maps free-form input to a Kind. Anything unrecognized falls back
// to KindChrome.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindEdge:
		return KindEdge
	default:
		return KindChrome
	}
}

// DoNotTrack is the tri-state navigator.doNotTrack value. DoNotTrackUnset
// leaves the browser's own value in place and encodes as JSON null.
type DoNotTrack string

const (
	DoNotTrackEnabled  DoNotTrack = "1"
	DoNotTrackDisabled DoNotTrack = "0"
	DoNotTrackUnset    DoNotTrack = ""
)

func (d DoNotTrack) MarshalJSON() ([]byte, error) {
	if d == DoNotTrackUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *DoNotTrack) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DoNotTrackUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding do_not_track: %w", err)
	}
	*d = DoNotTrack(s)
	return nil
}

// Viewport is the screen size reported to pages and used for the window.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// WebGL holds the unmasked vendor and renderer strings.
type WebGL struct {
	Vendor   string `json:"vendor" yaml:"vendor"`
	Renderer string `json:"renderer" yaml:"renderer"`
}

// Plugin is one entry of navigator.plugins.
type Plugin struct {
	Name        string `json:"name" yaml:"name"`
	Filename    string `json:"filename" yaml:"filename"`
	Description string `json:"description" yaml:"description"`
}

// Profile is one coherent browser identity. A Profile is never edited after
// Generate returns it; a new identity means a new Profile.
type Profile struct {
	ID                  string     `json:"id" yaml:"id"`
	UserAgent           string     `json:"user_agent" yaml:"user_agent"`
	Language            string     `json:"language" yaml:"language"`
	ColorDepth          int        `json:"color_depth" yaml:"color_depth"`
	DeviceMemory        int        `json:"device_memory" yaml:"device_memory"`
	HardwareConcurrency int        `json:"hardware_concurrency" yaml:"hardware_concurrency"`
	Viewport            Viewport   `json:"viewport" yaml:"viewport"`
	Platform            string     `json:"platform" yaml:"platform"`
	Plugins             []Plugin   `json:"plugins" yaml:"plugins"`
	Timezone            int        `json:"timezone" yaml:"timezone"` // UTC offset in minutes
	WebGL               WebGL      `json:"webgl" yaml:"webgl"`
	DoNotTrack          DoNotTrack `json:"do_not_track" yaml:"do_not_track,omitempty"`
	CanvasFingerprint   string     `json:"canvas_fingerprint" yaml:"canvas_fingerprint"`
	AudioFingerprint    string     `json:"audio_fingerprint" yaml:"audio_fingerprint"`
	Fonts               []string   `json:"fonts" yaml:"fonts"`
	IsMobile            bool       `json:"is_mobile" yaml:"is_mobile"`
	MobileInfo          *OS        `json:"mobile_info" yaml:"mobile_info,omitempty"`
}

// PrimaryLanguage returns the first tag of the Accept-Language style
// language entry, e.g. "en-US" for "en-US,en;q=0.9".
func (p Profile) PrimaryLanguage() string {
	lang, _, _ := strings.Cut(p.Language, ",")
	return lang
}
