package fingerprint

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

// userAgent renders the UA string for an OS record. Every template embeds the
// full browser version so launch flags and runtime overrides agree on it.
func userAgent(os OS, kind Kind, version string, mobile bool) string {
	if mobile {
		switch os.Name {
		case OSIOS:
			token := "CriOS"
			if kind == KindEdge {
				token = "EdgiOS"
			}
			return fmt.Sprintf(
				"Mozilla/5.0 (iPhone; CPU iPhone OS %s like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) %s/%s Mobile/15E148 Safari/604.1",
				underscored(os.Version), token, version,
			)
		default:
			base := fmt.Sprintf("Mozilla/5.0 (Linux; Android %s; %s) AppleWebKit/537.36 (KHTML, like Gecko) ", os.Version, os.Device)
			if kind == KindEdge {
				return fmt.Sprintf("%sChrome/%s.0.0.0 Mobile Safari/537.36 EdgA/%s", base, major(version), version)
			}
			return fmt.Sprintf("%sChrome/%s Mobile Safari/537.36", base, version)
		}
	}

	var base string
	switch os.Name {
	case OSWindows:
		nt, ok := windowsNT[os.Version]
		if !ok {
			nt = os.Version
		}
		base = fmt.Sprintf("Mozilla/5.0 (Windows NT %s; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) ", nt)
	case OSMacintosh:
		base = fmt.Sprintf("Mozilla/5.0 (Macintosh; Intel Mac OS X %s) AppleWebKit/537.36 (KHTML, like Gecko) ", underscored(os.Version))
	default:
		base = fmt.Sprintf("Mozilla/5.0 (X11; Linux %s) AppleWebKit/537.36 (KHTML, like Gecko) ", os.Version)
	}

	if kind == KindEdge {
		return fmt.Sprintf("%sChrome/%s.0.0.0 Safari/537.36 Edg/%s", base, major(version), version)
	}
	return fmt.Sprintf("%sChrome/%s Safari/537.36", base, version)
}

// platformLabel is the normalized navigator.platform-style label.
func platformLabel(os OS) string {
	switch os.Name {
	case OSAndroid:
		return "Android"
	case OSIOS:
		return "iPhone"
	default:
		return os.Name
	}
}

func underscored(version string) string {
	return strings.ReplaceAll(version, ".", "_")
}

func major(version string) string {
	m, _, _ := strings.Cut(version, ".")
	return m
}

// Description is what a UA parser makes of a profile's user agent.
type Description struct {
	OS      string
	Browser string
	Version string
	Device  string
}

// Describe parses the profile's user agent the way a server-side fingerprinter
// would.
func Describe(p Profile) Description {
	ua := uasurfer.Parse(p.UserAgent)
	return Description{
		OS:      ua.OS.Name.StringTrimPrefix(),
		Browser: ua.Browser.Name.StringTrimPrefix(),
		Version: fmt.Sprintf("%d.%d.%d", ua.Browser.Version.Major, ua.Browser.Version.Minor, ua.Browser.Version.Patch),
		Device:  ua.DeviceType.StringTrimPrefix(),
	}
}
