package initcmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hitrip/tripops/cmd/tripops/config/open"
	"github.com/hitrip/tripops/cmd/tripops/config/profiles"
	cuierr "github.com/hitrip/tripops/cmd/tripops/errors"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const ARG_PROFILE_FILE = "PROFILE_FILE"

type Option struct {
	workdir string
}

// WithWorkdir sets the directory where ".tripopsprofile" is written.
func WithWorkdir(dir string) func(*Option) *Option {
	return func(o *Option) *Option {
		o.workdir = dir
		return o
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{workdir: "."}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Initialize this directory to use a tripops profile.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PROFILE_FILE, Required: true,
				Help: "filepath to a tripops profile, which you received from your admin.",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.workdir)),
		flarc.WithDescription(`
Register a new tripops profile into your profile store.

A tripops profile is a YAML file which tells where the backend is:

    apiRoot: https://ops.example.com
    timeout: 30s
    locale: ko

The name of the profile is given by "--profile" ( default: current filepath ).
"{{ .Command }}" writes the name into ".tripopsprofile" of the current directory,
so that commands in this directory use the profile.
`),
	)
}

func Task(workdir string) common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		profFile := cl.Args()[ARG_PROFILE_FILE][0]

		store, err := profiles.LoadProfileStore(cf.ProfileStore)
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			store = profiles.ProfileStore{}
		} else if err != nil {
			return fmt.Errorf("failed to load profile store (%s): %w", cf.ProfileStore, err)
		}

		newProf := new(profiles.Profile)
		{
			content, err := os.ReadFile(profFile)
			if err != nil {
				return fmt.Errorf("failed to read profile file (%s): %w", profFile, err)
			}
			if err := yaml.Unmarshal(content, newProf); err != nil {
				return fmt.Errorf("failed to parse profile file (%s): %w", profFile, err)
			}
		}
		if err := newProf.Verify(); err != nil {
			return cuierr.NewCuiError(
				fmt.Sprintf("%s is not a valid profile", profFile),
				cuierr.WithHint("ask your admin to get a new profile"),
				cuierr.WithCause(err),
			)
		}
		if prev, ok := store[cf.Profile]; ok && prev.ApiRoot == newProf.ApiRoot {
			newProf.Username = prev.Username
		}

		store[cf.Profile] = newProf
		if err := store.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf("failed to save profile store (%s): %w", cf.ProfileStore, err)
		}
		logger.Printf("profile %s is saved to %s", cf.Profile, cf.ProfileStore)

		f, err := open.NewSafeFile(filepath.Join(workdir, ".tripopsprofile"))
		if err != nil {
			return fmt.Errorf("failed to open .tripopsprofile: %w", err)
		}
		defer f.Close()
		if _, err := f.Write([]byte(cf.Profile + "\n")); err != nil {
			return fmt.Errorf("failed to write .tripopsprofile: %w", err)
		}
		return nil
	}
}
