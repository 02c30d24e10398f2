package useragent

import (
	"regexp"
	"strings"
)

// Browser family identifiers. Values are the canonical lowercase names used
// both by detection and by build target descriptors.
const (
	BrowserChrome  = "chrome"
	BrowserEdge    = "edge"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserOpera   = "opera"
	BrowserSamsung = "samsung"
	BrowserIE      = "ie"
)

// Browser is a detected browser family with its full version string.
type Browser struct {
	Family  string
	Version string
}

// Major returns the leading numeric component of the version, or -1 if the
// version has none.
func (b Browser) Major() int {
	return majorVersion(b.Version)
}

// pattern describes how to detect one browser family. Keywords must all be
// present and excludes all absent for the pattern to apply; patterns are
// evaluated in declaration order, so derivatives come before the engines they
// embed (Edge and Opera advertise Chrome, Chrome advertises Safari).
type pattern struct {
	family   string
	keywords []string
	excludes []string
	version  *regexp.Regexp
}

var patterns = []pattern{
	{
		family:   BrowserEdge,
		keywords: []string{"edg"},
		version:  regexp.MustCompile(`(?:edge|edgios|edga|edg)/([\d.]+)`),
	},
	{
		family:   BrowserSamsung,
		keywords: []string{"samsungbrowser"},
		version:  regexp.MustCompile(`samsungbrowser/([\d.]+)`),
	},
	{
		family:   BrowserOpera,
		keywords: []string{"opr/"},
		version:  regexp.MustCompile(`opr/([\d.]+)`),
	},
	{
		family:   BrowserOpera,
		keywords: []string{"opera"},
		version:  regexp.MustCompile(`(?:opera|version)[/ ]([\d.]+)`),
	},
	{
		family:   BrowserFirefox,
		keywords: []string{"firefox/"},
		excludes: []string{"seamonkey"},
		version:  regexp.MustCompile(`firefox/([\d.]+)`),
	},
	{
		family:   BrowserFirefox,
		keywords: []string{"fxios/"},
		version:  regexp.MustCompile(`fxios/([\d.]+)`),
	},
	{
		family:   BrowserIE,
		keywords: []string{"msie"},
		version:  regexp.MustCompile(`msie ([\d.]+)`),
	},
	{
		family:   BrowserIE,
		keywords: []string{"trident/"},
		version:  regexp.MustCompile(`rv:([\d.]+)`),
	},
	{
		family:   BrowserChrome,
		keywords: []string{"chrome/"},
		excludes: []string{"edg", "opr/", "samsungbrowser"},
		version:  regexp.MustCompile(`chrome/([\d.]+)`),
	},
	{
		family:   BrowserChrome,
		keywords: []string{"crios/"},
		version:  regexp.MustCompile(`crios/([\d.]+)`),
	},
	{
		family:   BrowserSafari,
		keywords: []string{"safari/"},
		excludes: []string{"chrome/", "crios/", "chromium"},
		version:  regexp.MustCompile(`version/([\d.]+)`),
	},
}

// ParseBrowser detects the browser family and version from a user agent
// string. Detection is keyword-based and intentionally small: it covers the
// families a multi-target web build distinguishes between, not the full
// device zoo.
func ParseBrowser(ua string) (Browser, error) {
	if ua == "" {
		return Browser{}, ErrEmptyUserAgent
	}

	lower := strings.ToLower(ua)
next:
	for _, p := range patterns {
		for _, kw := range p.keywords {
			if !strings.Contains(lower, kw) {
				continue next
			}
		}
		for _, ex := range p.excludes {
			if strings.Contains(lower, ex) {
				continue next
			}
		}
		return Browser{Family: p.family, Version: extractVersion(lower, p.version)}, nil
	}

	return Browser{}, ErrUnknownBrowser
}

func extractVersion(ua string, re *regexp.Regexp) string {
	matches := re.FindStringSubmatch(ua)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// majorVersion parses the leading numeric component of a dotted version
// string. Returns -1 when there is none.
func majorVersion(version string) int {
	if version == "" {
		return -1
	}
	head, _, _ := strings.Cut(version, ".")
	major := 0
	for _, r := range head {
		if r < '0' || r > '9' {
			return -1
		}
		major = major*10 + int(r-'0')
	}
	if head == "" {
		return -1
	}
	return major
}
