// Package buildinfo carries version stamps injected with
// -ldflags "-X github.com/homeval/homeval/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
