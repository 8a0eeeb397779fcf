package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	cuierr "github.com/hitrip/tripops/cmd/tripops/errors"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/youta-t/flarc"
)

type LoginFlags struct {
	Username string `flag:"username" alias:"u" help:"username to login. Default is the one used last time."`
}

func NewLogin() (flarc.Command, error) {
	return flarc.NewCommand(
		"Login to the backend and keep the session.",
		LoginFlags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(LoginTask),
		flarc.WithDescription(`
Login to the backend with username and password.

The password is read from the first line of stdin.

    echo -n "$PASSWORD" | {{ .Command }} --username admin

The session is kept per profile, and the username is remembered for the next login.
`),
	)
}

func LoginTask(
	ctx context.Context,
	logger *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[LoginFlags],
	params []any,
) error {
	conn, err := common.Connect(logger, cf)
	if err != nil {
		return err
	}

	username := cl.Flags().Username
	if username == "" {
		username = conn.Profile.Username
	}
	if username == "" {
		return errors.Join(flarc.ErrUsage, errors.New("--username is required"))
	}

	password, err := readPassword(cl.Stdin())
	if err != nil {
		return err
	}

	user, err := conn.Client.Login(ctx, staff.Login{Username: username, Password: password})
	if err != nil {
		if status, ok := rest.StatusCode(err); ok && status < 500 {
			return cuierr.NewCuiError(
				fmt.Sprintf("login failed: %s", rest.MessageOf(apiBody(err), "username or password is wrong")),
				cuierr.WithCause(err),
			)
		}
		return err
	}

	if err := conn.SaveSession(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if err := conn.Remember(username); err != nil {
		logger.Printf("failed to remember username: %s", err)
	}
	logger.Printf("logged in as %s", user.DisplayName())
	return common.Print(cl.Stdout(), user)
}

func readPassword(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("password is not given from stdin")
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.Join(flarc.ErrUsage, errors.New("password is not given from stdin"))
	}
	return line, nil
}

func apiBody(err error) any {
	var apierr *rest.APIError
	if errors.As(err, &apierr) {
		return apierr.Body
	}
	return nil
}
