package auth

import (
	"context"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/youta-t/flarc"
)

func NewLogout() (flarc.Command, error) {
	return flarc.NewCommand(
		"Logout and forget the session.",
		struct{}{},
		flarc.Args{},
		common.NewTask(LogoutTask),
	)
}

func LogoutTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	if err := client.Logout(ctx); err != nil {
		return err
	}
	logger.Println("logged out")
	return nil
}
