package staff_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/internal/commandline"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/logger"
	staffcmd "github.com/hitrip/tripops/cmd/tripops/subcommands/staff"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/youta-t/flarc"
)

func TestList(t *testing.T) {
	theory := func(flags staffcmd.ListFlags, wantFilter *bool) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.ListStaff = func(context.Context, *bool) ([]staff.UserDetail, error) {
				return []staff.UserDetail{{Id: 3, Username: "kim"}}, nil
			}
			stdout := new(strings.Builder)
			err := staffcmd.ListTask(
				context.Background(), logger.Null(), env.TripEnv{}, client,
				commandline.MockCommandline[staffcmd.ListFlags]{
					Stdout_: stdout,
					Flags_:  flags,
					Args_:   map[string][]string{},
				},
				nil,
			)
			if err != nil {
				t.Fatal(err)
			}
			if len(client.Calls.ListStaff) != 1 {
				t.Fatalf("unexpected calls: %v", client.Calls.ListStaff)
			}
			got := client.Calls.ListStaff[0]
			switch {
			case wantFilter == nil && got != nil:
				t.Errorf("filter should be nil: %v", *got)
			case wantFilter != nil && (got == nil || *got != *wantFilter):
				t.Errorf("unexpected filter: %v", got)
			}

			var users []staff.UserDetail
			if err := json.Unmarshal([]byte(stdout.String()), &users); err != nil {
				t.Fatal(err)
			}
			if len(users) != 1 || users[0].Id != 3 {
				t.Errorf("unexpected output: %+v", users)
			}
		}
	}

	f := false
	t.Run("all", theory(staffcmd.ListFlags{}, nil))
	t.Run("pending only", theory(staffcmd.ListFlags{Pending: true}, &f))
}

func TestApprove(t *testing.T) {
	t.Run("approves the user", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ApproveStaff = func(_ context.Context, userId int) (staff.UserDetail, error) {
			return staff.UserDetail{Id: userId, Username: "lee", IsApproved: true}, nil
		}
		stdout := new(strings.Builder)
		err := staffcmd.ApproveTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: stdout,
				Args_:   map[string][]string{staffcmd.ARG_USER_ID: {"7"}},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if len(client.Calls.ApproveStaff) != 1 || client.Calls.ApproveStaff[0] != 7 {
			t.Errorf("unexpected calls: %v", client.Calls.ApproveStaff)
		}
		var u staff.UserDetail
		if err := json.Unmarshal([]byte(stdout.String()), &u); err != nil {
			t.Fatal(err)
		}
		if !u.IsApproved {
			t.Errorf("unexpected output: %+v", u)
		}
	})

	t.Run("invalid user id is usage error", func(t *testing.T) {
		client := mock.New(t)
		err := staffcmd.ApproveTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: new(strings.Builder),
				Args_:   map[string][]string{staffcmd.ARG_USER_ID: {"abc"}},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
		if len(client.Calls.ApproveStaff) != 0 {
			t.Errorf("should not be called: %v", client.Calls.ApproveStaff)
		}
	})
}
