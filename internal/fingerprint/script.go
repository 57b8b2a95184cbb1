package fingerprint

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

// injectJS overrides the page-visible browser surfaces listed in the
// template with values from the embedded profile literal.
//
//go:embed js/inject.js
var injectJS string

// profileMarker is replaced by the JSON-encoded profile. It appears exactly
// once in injectJS.
const profileMarker = "__PROFILE__"

// Synthesize renders the injection script for a profile. The profile is
// encoded with encoding/json, which escapes quotes, backslashes, '<', '>',
// '&', U+2028 and U+2029, so no field value can terminate the literal or the
// surrounding <script> element.
func Synthesize(p Profile) (string, error) {
	literal, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding profile %s: %w", p.ID, err)
	}
	return strings.Replace(injectJS, profileMarker, string(literal), 1), nil
}

// MustSynthesize is like Synthesize but panics if the profile cannot be
// encoded.
func MustSynthesize(p Profile) string {
	s, err := Synthesize(p)
	if err != nil {
		panic(err)
	}
	return s
}
