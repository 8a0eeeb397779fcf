package place

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/places"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

type CreateFlags struct {
	Name        string             `flag:"name" alias:"n" help:"name of the Place. Required."`
	Address     string             `flag:"address" alias:"a" help:"address of the Place."`
	Category    *kflag.OptionalInt `flag:"category" alias:"c" metavar:"CATEGORY_ID" help:"category of the Place."`
	EntranceFee *kflag.OptionalInt `flag:"entrance-fee" help:"entrance fee in KRW."`
}

func NewCreate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a new Place.",
		CreateFlags{
			Category:    &kflag.OptionalInt{},
			EntranceFee: &kflag.OptionalInt{},
		},
		flarc.Args{},
		common.NewTask(CreateTask),
	)
}

func CreateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[CreateFlags],
	params []any,
) error {
	flags := cl.Flags()
	if flags.Name == "" {
		return errors.Join(flarc.ErrUsage, errors.New("--name is required"))
	}
	fee := flags.EntranceFee.Value()
	if fee != nil && *fee < 0 {
		return errors.Join(flarc.ErrUsage, errors.New("--entrance-fee should not be negative"))
	}

	created, err := client.CreatePlace(ctx, places.Create{
		Name:        flags.Name,
		Address:     flags.Address,
		CategoryId:  flags.Category.Value(),
		EntranceFee: fee,
	})
	if err != nil {
		return err
	}
	logger.Printf("Place registered. Id:%d", created.Id)
	return common.Print(cl.Stdout(), created)
}

type UpdateFlags struct {
	Name        *kflag.OptionalString `flag:"name" alias:"n" help:"new name."`
	Address     *kflag.OptionalString `flag:"address" alias:"a" help:"new address."`
	Category    string                `flag:"category" alias:"c" metavar:"CATEGORY_ID|none" help:"new category. 'none' unlinks the category."`
	EntranceFee *kflag.OptionalInt    `flag:"entrance-fee" help:"new entrance fee in KRW."`
}

func NewUpdate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a Place. Only passed flags are changed.",
		UpdateFlags{
			Name:        &kflag.OptionalString{},
			Address:     &kflag.OptionalString{},
			EntranceFee: &kflag.OptionalInt{},
		},
		placeIdArg("Id of the Place to be updated."),
		common.NewTask(UpdateTask),
	)
}

func UpdateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[UpdateFlags],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}

	flags := cl.Flags()
	change := places.Update{
		Name:        flags.Name.Value(),
		Address:     flags.Address.Value(),
		EntranceFee: flags.EntranceFee.Value(),
	}
	switch c := flags.Category; c {
	case "":
	case "none", "null":
		change.ClearCategory = true
	default:
		id, err := common.ID(map[string][]string{"--category": {c}}, "--category")
		if err != nil {
			return err
		}
		change.CategoryId = &id
	}

	updated, err := client.UpdatePlace(ctx, placeId, change)
	if err != nil {
		return fmt.Errorf("%w: Place Id:%d", err, placeId)
	}
	return common.Print(cl.Stdout(), updated)
}
