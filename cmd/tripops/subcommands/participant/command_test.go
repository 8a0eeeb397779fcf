package participant_test

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
	"github.com/hitrip/tripops/cmd/tripops/subcommands/participant"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/youta-t/flarc"
)

func TestList(t *testing.T) {
	joined := "2026-10-01"
	all := []participants.TripParticipant{
		{Id: 1, JoinedDate: &joined},
		{Id: 2},
	}

	theory := func(flags participant.ListFlags, expected []int, usageErr bool) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.ListParticipants = func(context.Context, int) ([]participants.TripParticipant, error) {
				return all, nil
			}
			stdout := new(strings.Builder)
			err := participant.ListTask(
				context.Background(), logger.Null(), env.TripEnv{}, client,
				commandline.MockCommandline[participant.ListFlags]{
					Stdout_: stdout,
					Flags_:  flags,
					Args_:   map[string][]string{participant.ARG_TRIP_ID: {"1"}},
				},
				nil,
			)
			if usageErr {
				if !errors.Is(err, flarc.ErrUsage) {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var got []participants.TripParticipant
			if err := json.Unmarshal([]byte(stdout.String()), &got); err != nil {
				t.Fatal(err)
			}
			if len(got) != len(expected) {
				t.Fatalf("unexpected: %+v", got)
			}
			for i := range got {
				if got[i].Id != expected[i] {
					t.Errorf("unexpected: %+v", got)
				}
			}
		}
	}

	t.Run("all", theory(participant.ListFlags{}, []int{1, 2}, false))
	t.Run("joined", theory(participant.ListFlags{Joined: true}, []int{1}, false))
	t.Run("pending", theory(participant.ListFlags{Pending: true}, []int{2}, false))
	t.Run("exclusive flags", theory(participant.ListFlags{Joined: true, Pending: true}, nil, true))
}

func TestShow(t *testing.T) {
	client := mock.New(t)
	client.Impl.GetParticipant = func(_ context.Context, tripId, participantId int) (participants.TripParticipant, error) {
		return participants.TripParticipant{Id: participantId, TripId: tripId}, nil
	}
	stdout := new(strings.Builder)
	err := participant.ShowTask(
		context.Background(), logger.Null(), env.TripEnv{}, client,
		commandline.MockCommandline[struct{}]{
			Stdout_: stdout,
			Args_: map[string][]string{
				participant.ARG_TRIP_ID: {"1"}, participant.ARG_PARTICIPANT_ID: {"8"},
			},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	got := client.Calls.GetParticipant[0]
	if got.TripId != 1 || got.ParticipantId != 8 {
		t.Errorf("unexpected: %+v", got)
	}
}
