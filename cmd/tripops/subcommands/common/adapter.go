package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hitrip/tripops/cmd/tripops/config/cookies"
	"github.com/hitrip/tripops/cmd/tripops/config/profiles"
	"github.com/hitrip/tripops/cmd/tripops/env"
	cuierr "github.com/hitrip/tripops/cmd/tripops/errors"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/youta-t/flarc"
)

type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	tripEnv env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[T],
	params []any,
) error

// Connection is a client for the profile selected by CommonFlags,
// with session cookies restored from the previous run.
type Connection struct {
	Name    string
	Store   profiles.ProfileStore
	Profile *profiles.Profile
	Env     env.TripEnv
	Client  rest.TripClient

	jar        *cookies.Jar
	jarPath    string
	storePath  string
	fromEnvVar bool
}

// Connect builds a Connection.
//
// When the profile is not registered, the backend given by environment variables
// (or the local development backend) is used.
func Connect(logger *log.Logger, commonFlag CommonFlags) (*Connection, error) {
	e, err := env.Load(commonFlag.Env)
	if err != nil {
		return nil, cuierr.NewCuiError(
			fmt.Sprintf("failed to load dotenv file (%s)", commonFlag.Env),
			cuierr.WithCause(err),
		)
	}

	store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if errors.Is(err, profiles.ErrProfileStoreNotFound) || errors.Is(err, os.ErrNotExist) {
		store = profiles.ProfileStore{}
	} else if err != nil {
		return nil, cuierr.NewCuiError(
			fmt.Sprintf("failed to load profile store (%s)", commonFlag.ProfileStore),
			cuierr.WithCause(err),
		)
	}

	conn := &Connection{
		Name:      commonFlag.Profile,
		Store:     store,
		Env:       *e,
		storePath: commonFlag.ProfileStore,
		jarPath:   commonFlag.CookieJar(),
	}

	prof, ok := store[commonFlag.Profile]
	if !ok {
		conn.fromEnvVar = true
		prof = &profiles.Profile{ApiRoot: e.ApiRoot, Timeout: e.Timeout, Locale: e.Locale}
		logger.Printf(
			"profile '%s' is not found in %s. use %s", commonFlag.Profile, commonFlag.ProfileStore, e.ApiRoot,
		)
	} else if prof.ApiRoot == "" {
		prof.ApiRoot = e.ApiRoot
	}
	conn.Profile = prof

	jar, err := cookies.Load(conn.jarPath)
	if err != nil {
		logger.Printf("saved session is broken. ignored: %s", err)
		jar = cookies.New()
	}
	conn.jar = jar

	client, err := rest.NewClient(prof, rest.WithJar(jar), rest.WithLogger(logger))
	if err != nil {
		return nil, cuierr.NewCuiError(
			fmt.Sprintf(
				"failed to create client. Your profile (%s in %s) can be broken",
				commonFlag.Profile, commonFlag.ProfileStore,
			),
			cuierr.WithHint("remove it and try `tripops init` again"),
			cuierr.WithCause(err),
		)
	}
	conn.Client = client
	return conn, nil
}

// SaveSession writes session cookies for the next run.
func (c *Connection) SaveSession() error {
	return c.jar.Save(c.jarPath)
}

// DropSession forgets session cookies.
func (c *Connection) DropSession() error {
	c.jar.Clear()
	return c.jar.Save(c.jarPath)
}

// Remember records the username into the profile, when the profile is registered.
func (c *Connection) Remember(username string) error {
	if c.fromEnvVar || c.Profile.Username == username {
		return nil
	}
	c.Profile.Username = username
	return c.Store.Save(c.storePath)
}

// Unauthorized converts an error caused by a missing or expired session
// into an error telling what to do. Other errors are returned as they are.
func Unauthorized(err error) error {
	if err == nil || !rest.IsLoginRequired(err) {
		return err
	}
	return cuierr.NewCuiError(
		"login required",
		cuierr.WithHint("run `tripops login`"),
		cuierr.WithCause(err),
	)
}

// NewTask adapts Task to flarc.Task.
//
// Session cookies updated by the task are saved.
// When the backend rejects the session, saved cookies are dropped.
func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		conn, err := Connect(logger, commonFlag)
		if err != nil {
			return err
		}

		err = task(ctx, logger, conn.Env, conn.Client, cl, params)
		if rest.IsLoginRequired(err) {
			if derr := conn.DropSession(); derr != nil {
				logger.Printf("failed to drop session: %s", derr)
			}
			return Unauthorized(err)
		}
		if serr := conn.SaveSession(); serr != nil {
			logger.Printf("failed to save session: %s", serr)
		}
		return err
	})
}
