package common_test

import (
	"path/filepath"
	"testing"

	common "github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/utils/try"
)

func TestDefaultCommonFlags(t *testing.T) {
	t.Run("it returns default value from given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if try.To(filepath.Abs(cf.ProfileStore)).OrFatal(t) != try.To(filepath.Abs("./testdata/home/.tripops/profile")).OrFatal(t) {
			t.Errorf("wrong profile store: %s", cf.ProfileStore)
		}

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/.env")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("it returns default value from ancestors of given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current/children/folder",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/.env")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("cookie jar is placed next to the profile store, per profile", func(t *testing.T) {
		cf := common.CommonFlags{Profile: "/home/u/trips", ProfileStore: "/home/u/.tripops/profile"}
		if got := cf.CookieJar(); got != filepath.Join("/home/u/.tripops", "cookies", "%2Fhome%2Fu%2Ftrips") {
			t.Errorf("wrong cookie jar: %s", got)
		}
	})
}
