package testutils

import (
	"os"
	"path/filepath"
	"testing"

	prof "github.com/hitrip/tripops/cmd/tripops/config/profiles"
	"gopkg.in/yaml.v3"
)

// TempProfile writes a profile store having one profile into a temporary directory.
//
// It returns the path to the profile store.
func TempProfile(t *testing.T, name string, profile *prof.Profile) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile")
	buf, err := yaml.Marshal(prof.ProfileStore{name: profile})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
