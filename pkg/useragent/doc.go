// Package useragent detects the browser family and version behind an HTTP
// User-Agent string and matches it against the browser target descriptors a
// multi-target web build declares for each of its variants.
//
// Detection is deliberately narrow: it distinguishes the browser families a
// bundler targets (Chrome, Edge, Firefox, Safari, Opera, Samsung Internet,
// IE), not devices or bots. Matching compares only the family and the major
// version, with the user agent's major version allowed to exceed the
// target's ("chrome 96" is satisfied by Chrome 120).
//
//	matcher := useragent.NewFamilyMatcher()
//	ok := matcher.Matches(r.UserAgent(), []string{"chrome 96", "firefox 94"})
//
// The Matcher interface exists so the policy can be swapped or stubbed in
// tests.
package useragent
