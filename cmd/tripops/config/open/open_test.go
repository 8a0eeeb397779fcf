//go:build !windows

package open_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/config/open"
)

func TestNewSafeFile(t *testing.T) {
	t.Run("it creates a file only the owner can access", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		f, err := open.NewSafeFile(path)
		if err != nil {
			t.Fatal(err)
		}
		f.Close()

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := stat.Mode().Perm(); perm != 0600 {
			t.Errorf("permission: %o", perm)
		}
	})

	t.Run("it truncates and tightens an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
			t.Fatal(err)
		}

		f, err := open.NewSafeFile(path)
		if err != nil {
			t.Fatal(err)
		}
		f.Close()

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Size() != 0 {
			t.Errorf("file is not truncated: size = %d", stat.Size())
		}
		if perm := stat.Mode().Perm(); perm != 0600 {
			t.Errorf("permission: %o", perm)
		}
	})
}
