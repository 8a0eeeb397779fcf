package coordinator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/internal/commandline"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/logger"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/place/coordinator"
	"github.com/hitrip/tripops/pkg/api/types/places"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

func TestAdd(t *testing.T) {
	t.Run("name and phone are required", func(t *testing.T) {
		client := mock.New(t)
		err := coordinator.AddTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[coordinator.AddFlags]{
				Flags_: coordinator.AddFlags{Name: "Park"},
				Args_:  map[string][]string{coordinator.ARG_PLACE_ID: {"1"}},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) || !strings.Contains(err.Error(), "--phone") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it adds the coordinator", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.CreatePlaceCoordinator = func(_ context.Context, placeId int, spec places.CoordinatorCreate) (places.Coordinator, error) {
			return places.Coordinator{Id: 5, PlaceId: placeId, Name: spec.Name}, nil
		}
		role := &kflag.OptionalInt{}
		role.Set("3")
		err := coordinator.AddTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[coordinator.AddFlags]{
				Stdout_: new(strings.Builder),
				Flags_:  coordinator.AddFlags{Name: "Park", Phone: "010-0000-0000", Role: role},
				Args_:   map[string][]string{coordinator.ARG_PLACE_ID: {"1"}},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		got := client.Calls.CreatePlaceCoordinator[0]
		if got.PlaceId != 1 || got.Spec.RoleId == nil || *got.Spec.RoleId != 3 {
			t.Errorf("unexpected: %+v", got)
		}
	})
}

func TestUpdate(t *testing.T) {
	client := mock.New(t)
	client.Impl.UpdatePlaceCoordinator = func(_ context.Context, _, id int, _ places.CoordinatorUpdate) (places.Coordinator, error) {
		return places.Coordinator{Id: id}, nil
	}
	phone := &kflag.OptionalString{}
	phone.Set("010-1111-2222")
	err := coordinator.UpdateTask(
		context.Background(), logger.Null(), env.TripEnv{}, client,
		commandline.MockCommandline[coordinator.UpdateFlags]{
			Stdout_: new(strings.Builder),
			Flags_:  coordinator.UpdateFlags{Phone: phone},
			Args_: map[string][]string{
				coordinator.ARG_PLACE_ID: {"1"}, coordinator.ARG_COORDINATOR_ID: {"5"},
			},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	got := client.Calls.UpdatePlaceCoordinator[0]
	if got.CoordinatorId != 5 || got.Change.Phone == nil || *got.Change.Phone != "010-1111-2222" || got.Change.Name != nil {
		t.Errorf("unexpected: %+v", got)
	}
}
