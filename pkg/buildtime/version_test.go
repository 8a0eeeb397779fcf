package buildtime

import (
	"runtime/debug"
	"testing"
)

func TestVcsRevision(t *testing.T) {
	theory := func(info *debug.BuildInfo, ok bool, want string) func(*testing.T) {
		return func(t *testing.T) {
			if got := vcsRevision(info, ok); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		}
	}

	t.Run("without build info", theory(nil, false, "unknown"))
	t.Run("without vcs settings", theory(&debug.BuildInfo{}, true, "unknown"))
	t.Run("clean revision", theory(
		&debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "false"},
		}},
		true, "abc123",
	))
	t.Run("modified revision", theory(
		&debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.revision", Value: "abc123"},
		}},
		true, "abc123-dirty",
	))
}
