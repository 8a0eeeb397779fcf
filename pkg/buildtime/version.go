// Package buildtime tells the version of the binary.
package buildtime

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var version string

//go:embed revision
var revision string

func init() {
	version = strings.TrimSpace(version)
	revision = strings.TrimSpace(revision)
	if revision == "" || revision == "unknown" {
		revision = vcsRevision(debug.ReadBuildInfo())
	}
}

func vcsRevision(info *debug.BuildInfo, ok bool) string {
	if !ok {
		return "unknown"
	}
	rev, dirty := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "unknown"
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// Version of tripops embedded at build time.
func Version() string {
	return version
}

// Revision is the commit which tripops has been built from.
func Revision() string {
	return revision
}

func VersionString() string {
	return version + " (commit: " + revision + ")"
}
