package buildinfo

import "fmt"

// Set with -ldflags "-X .../internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("creational %s (commit=%s, date=%s)", Version, Commit, Date)
}
