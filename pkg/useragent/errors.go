package useragent

import "errors"

var (
	// ErrEmptyUserAgent is returned when the user agent string is empty.
	ErrEmptyUserAgent = errors.New("empty user agent")

	// ErrUnknownBrowser is returned when no browser family could be detected.
	ErrUnknownBrowser = errors.New("unknown browser")

	// ErrInvalidTarget is returned for browser target descriptors that do not
	// follow the "family version" form.
	ErrInvalidTarget = errors.New("invalid browser target")
)
