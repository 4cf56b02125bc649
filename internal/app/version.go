package app

import "fmt"

// Set at link time, for example:
//
//	go build -ldflags "-X github.com/heartmarshall/latitune-backend/internal/app.Version=v0.3.0 -X github.com/heartmarshall/latitune-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health and the startup log line.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
