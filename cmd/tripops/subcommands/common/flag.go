package common

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"tripops profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to tripops profile store file"`
	Env          string `flag:"env" help:"path to dotenv file"`
}

// CookieJar returns the path of the file keeping session cookies of the profile.
//
// It is placed next to the profile store.
func (cf CommonFlags) CookieJar() string {
	return filepath.Join(
		filepath.Dir(cf.ProfileStore), "cookies", url.PathEscape(cf.Profile),
	)
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default values of CommonFlags.
//
// The profile name is read from ".tripopsprofile" in from or its nearest ancestor,
// and the dotenv file is ".env" found in the same way.
// Without ".tripopsprofile", the absolute path of from is the profile name.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	if _from, err := filepath.Abs(from); err == nil {
		from = _from
	}

	profile := from

	profileFound := false
	envFound := false
	env := path.Join(from, ".env")
	for searchpath := from; ; {
		if !profileFound {
			candidate := path.Join(searchpath, ".tripopsprofile")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				_profile, err := os.ReadFile(candidate)
				if err != nil {
					return CommonFlags{}, err
				}
				profileFound = true
				if p := strings.Split(string(_profile), "\n"); 0 < len(p) {
					profile = strings.TrimSpace(p[0])
				}
			}
		}
		if !envFound {
			candidate := path.Join(searchpath, ".env")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				envFound = true
				env = candidate
			}
		}

		if profileFound && envFound {
			break
		}

		next := path.Dir(searchpath)
		if next == searchpath {
			break
		}
		searchpath = next
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: path.Join(home, ".tripops", "profile"),
		Env:          env,
	}, nil
}
