package config

import "fmt"

// ModuleName is the canonical module path of this service.
const ModuleName = "github.com/artlu99/velvet-wallet"

// Build arguments, set via ldflags at build time.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<module> @ <commit> (<build date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
