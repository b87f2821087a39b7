// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Micropad is the canonical application identifier used for filesystem paths and CLI branding.
	Micropad = "micropad"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Built-in palette endpoints used whenever no theme source supplies a value.
const (
	DefaultBackground = "#1e1e1e"
	DefaultForeground = "#e0e0e0"
)

// Build metadata injected at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
