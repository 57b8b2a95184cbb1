package fingerprint

import "fmt"

// Arguments formats a profile as browser command-line flags. The order is
// fixed: user agent, language, CPU count, window size, platform, then the
// automation flags.
func Arguments(p Profile, kind Kind) []string {
	args := []string{
		"--user-agent=" + p.UserAgent,
		"--lang=" + p.PrimaryLanguage(),
		fmt.Sprintf("--js-flags=--cpu-count=%d", p.HardwareConcurrency),
		fmt.Sprintf("--window-size=%d,%d", p.Viewport.Width, p.Viewport.Height),
		"--platform=" + p.Platform,
		"--disable-blink-features=AutomationControlled",
	}
	if ParseKind(string(kind)) == KindEdge {
		args = append(args, "--edge-compat")
	}
	return args
}
