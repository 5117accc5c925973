// Package versions provides utilities to work with versions of jmem.
package versions

import (
	"fmt"
	"runtime"
	"time"
)

const unknownStr = "unknown"

// Version information set by build using -ldflags.
var (
	// Version is the current version of jmem, set by the build.
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = unknownStr
	// BuildDate is the RFC 3339 date the binary was built.
	BuildDate = unknownStr
)

// VersionInfo represents the version information of the binary.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the version information of the running binary.
func GetVersionInfo() VersionInfo {
	version := Version
	if version == "dev" {
		// Unreleased builds are identified by their commit.
		shortCommit := Commit
		if len(shortCommit) > 8 {
			shortCommit = shortCommit[:8]
		}
		version = "build-" + shortCommit
	}

	buildDate := BuildDate
	if t, err := time.Parse(time.RFC3339, buildDate); err == nil {
		buildDate = t.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	return VersionInfo{
		Version:   version,
		Commit:    Commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
