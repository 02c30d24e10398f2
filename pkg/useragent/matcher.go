package useragent

import (
	"github.com/dmitrymomot/assetkit/pkg/cache"
)

// Matcher decides whether a user agent satisfies any of the given browser
// target descriptors. Implementations must be safe for concurrent use.
type Matcher interface {
	Matches(userAgent string, targets []string) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(userAgent string, targets []string) bool

func (f MatcherFunc) Matches(userAgent string, targets []string) bool {
	return f(userAgent, targets)
}

const defaultParseCacheSize = 256

// FamilyMatcher matches on browser family and major version: the user agent
// matches a target when the families are equal and the user agent's major
// version is at or above the target's. Minor and patch differences are
// ignored, so the comparison is lenient upward but strict about the family
// and the major floor. Unparseable user agents and malformed targets never
// match.
type FamilyMatcher struct {
	parsed *cache.LRU[string, Browser]
}

// NewFamilyMatcher creates a FamilyMatcher with a bounded cache of parsed
// user agents, since the same agent string tends to repeat across a burst of
// requests.
func NewFamilyMatcher() *FamilyMatcher {
	return &FamilyMatcher{parsed: cache.NewLRU[string, Browser](defaultParseCacheSize)}
}

func (m *FamilyMatcher) Matches(userAgent string, targets []string) bool {
	browser, ok := m.parse(userAgent)
	if !ok {
		return false
	}
	major := browser.Major()
	if major < 0 {
		return false
	}

	for _, raw := range targets {
		target, err := ParseTarget(raw)
		if err != nil {
			continue
		}
		if target.Family == browser.Family && major >= target.Major {
			return true
		}
	}
	return false
}

func (m *FamilyMatcher) parse(userAgent string) (Browser, bool) {
	if b, ok := m.parsed.Get(userAgent); ok {
		return b, b.Family != ""
	}

	b, err := ParseBrowser(userAgent)
	if err != nil {
		// Negative results are cached as the zero Browser so repeated
		// unrecognized agents skip the regex scan too.
		m.parsed.Put(userAgent, Browser{})
		return Browser{}, false
	}
	m.parsed.Put(userAgent, b)
	return b, true
}
