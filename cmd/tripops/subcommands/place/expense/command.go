package expense

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
	"github.com/hitrip/tripops/pkg/utils"
	"github.com/youta-t/flarc"
)

const (
	ARG_PLACE_ID   = "PLACE_ID"
	ARG_EXPENSE_ID = "EXPENSE_ID"
)

func New() (flarc.Command, error) {
	list, err := flarc.NewCommand(
		"List optional expenses of a Place.",
		struct{}{},
		placeArgs(),
		common.NewTask(ListTask),
	)
	if err != nil {
		return nil, err
	}
	add, err := flarc.NewCommand(
		"Add an optional expense into a Place.",
		AddFlags{Price: &kflag.OptionalInt{}, Order: &kflag.OptionalInt{}},
		placeArgs(),
		common.NewTask(AddTask),
	)
	if err != nil {
		return nil, err
	}
	update, err := flarc.NewCommand(
		"Update an optional expense. Only passed flags are changed.",
		UpdateFlags{
			Name:        &kflag.OptionalString{},
			Price:       &kflag.OptionalInt{},
			Order:       &kflag.OptionalInt{},
			Description: &kflag.OptionalString{},
		},
		expenseArgs(),
		common.NewTask(UpdateTask),
	)
	if err != nil {
		return nil, err
	}
	rm, err := flarc.NewCommand(
		"Delete an optional expense.",
		struct{}{},
		expenseArgs(),
		common.NewTask(RmTask),
	)
	if err != nil {
		return nil, err
	}
	total, err := flarc.NewCommand(
		"Calculate total price of optional expenses.",
		struct{}{},
		flarc.Args{
			{Name: ARG_PLACE_ID, Required: true, Help: "Id of the Place."},
			{Name: ARG_EXPENSE_ID, Required: false, Repeatable: true, Help: "Ids of expenses. Default is all of the Place."},
		},
		common.NewTask(TotalTask),
	)
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate optional expenses of a Place.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("total", total),
	)
}

func placeArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_PLACE_ID, Required: true, Help: "Id of the Place."},
	}
}

func expenseArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_PLACE_ID, Required: true, Help: "Id of the Place."},
		{Name: ARG_EXPENSE_ID, Required: true, Help: "Id of the expense."},
	}
}

func ListTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	es, err := client.ListOptionalExpenses(ctx, placeId)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), es)
}

type AddFlags struct {
	Name        string             `flag:"name" alias:"n" help:"name of the item. Required."`
	Price       *kflag.OptionalInt `flag:"price" alias:"p" help:"price in KRW. Required."`
	Order       *kflag.OptionalInt `flag:"order" help:"display order."`
	Description string             `flag:"description" alias:"d" help:"description of the item."`
}

func AddTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[AddFlags],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	flags := cl.Flags()
	price := flags.Price.Value()

	errs := []error{}
	if flags.Name == "" {
		errs = append(errs, errors.New("--name is required"))
	}
	if price == nil {
		errs = append(errs, errors.New("--price is required"))
	} else if *price < 0 {
		errs = append(errs, errors.New("--price should not be negative"))
	}
	if 0 < len(errs) {
		return errors.Join(append([]error{flarc.ErrUsage}, errs...)...)
	}

	created, err := client.CreateOptionalExpense(ctx, placeId, places.ExpenseCreate{
		ItemName:     flags.Name,
		Price:        *price,
		DisplayOrder: flags.Order.Value(),
		Description:  flags.Description,
	})
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), created)
}

type UpdateFlags struct {
	Name        *kflag.OptionalString `flag:"name" alias:"n" help:"new name."`
	Price       *kflag.OptionalInt    `flag:"price" alias:"p" help:"new price in KRW."`
	Order       *kflag.OptionalInt    `flag:"order" help:"new display order."`
	Description *kflag.OptionalString `flag:"description" alias:"d" help:"new description."`
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
	expenseId, err := common.ID(cl.Args(), ARG_EXPENSE_ID)
	if err != nil {
		return err
	}
	flags := cl.Flags()
	change := places.ExpenseUpdate{
		ItemName:     flags.Name.Value(),
		Price:        flags.Price.Value(),
		DisplayOrder: flags.Order.Value(),
		Description:  flags.Description.Value(),
	}
	if change.Price != nil && *change.Price < 0 {
		return errors.Join(flarc.ErrUsage, errors.New("--price should not be negative"))
	}
	updated, err := client.UpdateOptionalExpense(ctx, placeId, expenseId, change)
	if err != nil {
		return fmt.Errorf("%w: expense Id:%d", err, expenseId)
	}
	return common.Print(cl.Stdout(), updated)
}

func RmTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	expenseId, err := common.ID(cl.Args(), ARG_EXPENSE_ID)
	if err != nil {
		return err
	}
	if err := client.DeleteOptionalExpense(ctx, placeId, expenseId); err != nil {
		return fmt.Errorf("%w: expense Id:%d", err, expenseId)
	}
	logger.Printf("deleted expense Id:%d", expenseId)
	return nil
}

func TotalTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	ids, err := common.IDs(cl.Args(), ARG_EXPENSE_ID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		es, err := client.ListOptionalExpenses(ctx, placeId)
		if err != nil {
			return err
		}
		ids = utils.Map(es, func(e places.OptionalExpense) int { return e.Id })
	}

	total, err := client.CalculateExpenseTotal(ctx, placeId, ids)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), total)
}
