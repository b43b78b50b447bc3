// Package constant defines immutable application-level identifiers.
package constant

const (
	// Twshades is the canonical application identifier used for filesystem paths and CLI branding.
	Twshades = "twshades"

	// Version is the current application semantic version string.
	Version = "0.3.1"
)

// Build metadata, set with -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
