package browser

import (
	"strconv"
	"strings"
)

// SplitFlag splits a command-line flag into its name and value:
// "--window-size=1920,1080" becomes ("window-size", "1920,1080") and
// "--edge-compat" becomes ("edge-compat", ""). Only the first '=' separates,
// so "--js-flags=--cpu-count=4" keeps "--cpu-count=4" as the value.
func SplitFlag(arg string) (name, value string) {
	arg = strings.TrimLeft(arg, "-")
	name, value, _ = strings.Cut(arg, "=")
	return name, value
}

// TimezoneID returns the fixed-offset IANA zone for a UTC offset in minutes,
// or "" when the offset is not a whole number of hours. Etc/GMT zones are
// sign-inverted: UTC+8 is Etc/GMT-8.
func TimezoneID(offset int) string {
	if offset%60 != 0 {
		return ""
	}
	hours := offset / 60
	switch {
	case hours == 0:
		return "Etc/UTC"
	case hours > 0:
		return "Etc/GMT-" + strconv.Itoa(hours)
	default:
		return "Etc/GMT+" + strconv.Itoa(-hours)
	}
}
