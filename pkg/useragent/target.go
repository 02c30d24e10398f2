package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Target is a parsed browser target descriptor from a build manifest,
// e.g. "chrome 96" or "safari 15.1". Only the family and major version
// participate in matching; the minor component is kept for display.
type Target struct {
	Family string
	Major  int
	Minor  string
}

// familyAliases maps browserslist-style target names onto the canonical
// families this package detects. Mobile variants collapse into their
// engine family for matching purposes.
var familyAliases = map[string]string{
	"and_chr":  BrowserChrome,
	"and_ff":   BrowserFirefox,
	"ios_saf":  BrowserSafari,
	"op_mob":   BrowserOpera,
	"explorer": BrowserIE,
}

var titleCaser = cases.Title(language.English)

// ParseTarget parses a "family version" descriptor. The family is
// lowercased and resolved through known aliases; the version must start
// with a numeric major component.
func ParseTarget(s string) (Target, error) {
	family, version, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok || family == "" || version == "" {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}

	family = strings.ToLower(family)
	if canonical, ok := familyAliases[family]; ok {
		family = canonical
	}

	major := majorVersion(version)
	if major < 0 {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}

	_, minor, _ := strings.Cut(version, ".")
	return Target{Family: family, Major: major, Minor: minor}, nil
}

// String renders the target for log and error messages, e.g. "Chrome 96".
func (t Target) String() string {
	name := titleCaser.String(t.Family)
	if t.Family == BrowserIE {
		name = "IE"
	}
	return fmt.Sprintf("%s %d", name, t.Major)
}
