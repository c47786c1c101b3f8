// Package buildinfo carries version metadata stamped in with -ldflags, e.g.
//
//	-ldflags "-X watchface/internal/buildinfo.Version=v1.2.0"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier for the startup log line.
func String() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}
