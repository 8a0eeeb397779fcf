package initcmd_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/config/profiles"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	initcmd "github.com/hitrip/tripops/cmd/tripops/subcommands/init"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/internal/commandline"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/logger"
	"github.com/hitrip/tripops/pkg/utils/try"
)

func TestInit(t *testing.T) {
	run := func(t *testing.T, workdir string, cf common.CommonFlags, content string) error {
		t.Helper()
		src := filepath.Join(t.TempDir(), "received.yaml")
		if err := os.WriteFile(src, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		testee := initcmd.Task(workdir)
		return testee(
			context.Background(),
			logger.Null(),
			cf,
			commandline.MockCommandline[struct{}]{
				Fullname_: "tripops init",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Args_:     map[string][]string{initcmd.ARG_PROFILE_FILE: {src}},
			},
			nil,
		)
	}

	t.Run("it registers the profile and selects it in the directory", func(t *testing.T) {
		workdir := t.TempDir()
		cf := common.CommonFlags{
			Profile:      "seoul",
			ProfileStore: filepath.Join(t.TempDir(), "profile"),
		}
		if err := run(t, workdir, cf, "apiRoot: https://ops.example.com\ntimeout: 10s\n"); err != nil {
			t.Fatal(err)
		}

		store := try.To(profiles.LoadProfileStore(cf.ProfileStore)).OrFatal(t)
		prof, ok := store["seoul"]
		if !ok {
			t.Fatalf("profile is not registered: %+v", store)
		}
		if prof.ApiRoot != "https://ops.example.com" || prof.Timeout != 10*time.Second {
			t.Errorf("unexpected profile: %+v", prof)
		}

		selected := try.To(os.ReadFile(filepath.Join(workdir, ".tripopsprofile"))).OrFatal(t)
		if strings.TrimSpace(string(selected)) != "seoul" {
			t.Errorf(".tripopsprofile: %q", selected)
		}
	})

	t.Run("remembered username survives re-registration of the same backend", func(t *testing.T) {
		cf := common.CommonFlags{
			Profile:      "seoul",
			ProfileStore: filepath.Join(t.TempDir(), "profile"),
		}
		if err := (profiles.ProfileStore{
			"seoul": {ApiRoot: "https://ops.example.com", Username: "kim"},
		}).Save(cf.ProfileStore); err != nil {
			t.Fatal(err)
		}
		if err := run(t, t.TempDir(), cf, "apiRoot: https://ops.example.com\n"); err != nil {
			t.Fatal(err)
		}
		store := try.To(profiles.LoadProfileStore(cf.ProfileStore)).OrFatal(t)
		if store["seoul"].Username != "kim" {
			t.Errorf("username is lost: %+v", store["seoul"])
		}
	})

	t.Run("broken profile is rejected", func(t *testing.T) {
		cf := common.CommonFlags{
			Profile:      "seoul",
			ProfileStore: filepath.Join(t.TempDir(), "profile"),
		}
		if err := run(t, t.TempDir(), cf, "apiRoot: not a url\n"); err == nil {
			t.Fatal("error is expected")
		}
		if _, err := os.Stat(cf.ProfileStore); !os.IsNotExist(err) {
			t.Errorf("profile store should not be written: %v", err)
		}
	})
}
