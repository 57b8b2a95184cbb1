package fingerprint

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// GenerateFunc produces a fresh profile. Generate is the default.
type GenerateFunc func(kind Kind, mobile bool) Profile

const (
	tokenLength   = 64
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate builds a randomized but internally-consistent profile. Unknown
// kinds are generated as Chrome.
func Generate(kind Kind, mobile bool) Profile {
	kind = ParseKind(string(kind))

	oses, widths, heights := desktopOSes, desktopWidths, desktopHeights
	memories, concurrencies := desktopMemories, desktopConcurrencies
	if mobile {
		oses, widths, heights = mobileOSes, mobileWidths, mobileHeights
		memories, concurrencies = mobileMemories, mobileConcurrencies
	}

	versions := chromeVersions
	if kind == KindEdge {
		versions = edgeVersions
	}

	os := pick(oses)
	version := pick(versions)

	var mobileInfo *OS
	if mobile {
		info := os
		mobileInfo = &info
	}

	return Profile{
		ID:        uuid.NewString(),
		UserAgent: userAgent(os, kind, version, mobile),
		Language:  pick(languages),
		// Width and height are drawn independently, not as matched pairs.
		Viewport: Viewport{
			Width:  pick(widths),
			Height: pick(heights),
		},
		ColorDepth:          pick(colorDepths),
		DeviceMemory:        pick(memories),
		HardwareConcurrency: pick(concurrencies),
		Platform:            platformLabel(os),
		Plugins:             []Plugin{},
		Timezone:            pick(timezoneOffsets),
		WebGL: WebGL{
			Vendor:   pick(webGLVendors),
			Renderer: pick(webGLRenderers),
		},
		DoNotTrack:        pick(doNotTrackStates),
		CanvasFingerprint: token(tokenLength),
		AudioFingerprint:  token(tokenLength),
		Fonts:             []string{},
		IsMobile:          mobile,
		MobileInfo:        mobileInfo,
	}
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

func token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return string(b)
}
