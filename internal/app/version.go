package app

import "fmt"

// Build identity, injected with
//
//	-ldflags "-X github.com/heartmarshall/dailydose-backend/internal/app.Version=1.2.0 -X ...Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build identity for startup logs. Local builds
// without ldflags report just "dev".
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	commit := Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s+%s (built %s)", Version, commit, BuildTime)
}
