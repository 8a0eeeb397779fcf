package auth

import (
	"context"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/youta-t/flarc"
)

func NewWhoami() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the user of the current session.",
		struct{}{},
		flarc.Args{},
		common.NewTask(WhoamiTask),
	)
}

func WhoamiTask(
	ctx context.Context,
	logger *log.Logger,
	tripEnv env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	locale, err := session.ParseLocale(tripEnv.Locale)
	if err != nil {
		logger.Printf("%s. use %s", err, session.Korean)
		locale = session.Korean
	}
	state := session.New(locale)

	if err := queries.New(client, query.New()).Bootstrap(ctx, state); err != nil {
		return err
	}
	return common.Print(cl.Stdout(), state.Snapshot())
}
