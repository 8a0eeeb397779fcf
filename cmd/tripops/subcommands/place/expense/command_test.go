package expense_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/internal/commandline"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/logger"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/place/expense"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/cmp"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

func TestAdd(t *testing.T) {
	theory := func(flags expense.AddFlags, usageErr bool) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.CreateOptionalExpense = func(_ context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error) {
				return places.OptionalExpense{Id: 1, PlaceId: placeId, ItemName: spec.ItemName, Price: spec.Price}, nil
			}
			err := expense.AddTask(
				context.Background(), logger.Null(), env.TripEnv{}, client,
				commandline.MockCommandline[expense.AddFlags]{
					Stdout_: new(strings.Builder),
					Flags_:  flags,
					Args_:   map[string][]string{expense.ARG_PLACE_ID: {"2"}},
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
			got := client.Calls.CreateOptionalExpense[0]
			if got.PlaceId != 2 || got.Spec.ItemName != flags.Name {
				t.Errorf("unexpected: %+v", got)
			}
		}
	}

	price := func(v string) *kflag.OptionalInt {
		p := &kflag.OptionalInt{}
		p.Set(v)
		return p
	}
	t.Run("it adds the expense", theory(expense.AddFlags{Name: "boat", Price: price("12000")}, false))
	t.Run("free item is allowed", theory(expense.AddFlags{Name: "map", Price: price("0")}, false))
	t.Run("price is required", theory(expense.AddFlags{Name: "boat", Price: &kflag.OptionalInt{}}, true))
	t.Run("negative price", theory(expense.AddFlags{Name: "boat", Price: price("-1")}, true))
}

func TestTotal(t *testing.T) {
	t.Run("selected expenses", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.CalculateExpenseTotal = func(_ context.Context, _ int, ids []int) (places.ExpenseTotal, error) {
			return places.ExpenseTotal{Total: 3000, ExpenseIds: ids}, nil
		}
		err := expense.TotalTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: new(strings.Builder),
				Args_: map[string][]string{
					expense.ARG_PLACE_ID: {"2"}, expense.ARG_EXPENSE_ID: {"4", "6"},
				},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if got := client.Calls.CalculateExpenseTotal[0]; !cmp.SliceEq(got.ExpenseIds, []int{4, 6}) {
			t.Errorf("unexpected: %+v", got)
		}
		if len(client.Calls.ListOptionalExpenses) != 0 {
			t.Error("expenses are listed")
		}
	})

	t.Run("all expenses of the place by default", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListOptionalExpenses = func(context.Context, int) ([]places.OptionalExpense, error) {
			return []places.OptionalExpense{{Id: 1}, {Id: 2}, {Id: 3}}, nil
		}
		client.Impl.CalculateExpenseTotal = func(_ context.Context, _ int, ids []int) (places.ExpenseTotal, error) {
			return places.ExpenseTotal{ExpenseIds: ids}, nil
		}
		err := expense.TotalTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: new(strings.Builder),
				Args_:   map[string][]string{expense.ARG_PLACE_ID: {"2"}},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if got := client.Calls.CalculateExpenseTotal[0]; !cmp.SliceEq(got.ExpenseIds, []int{1, 2, 3}) {
			t.Errorf("unexpected: %+v", got)
		}
	})

	t.Run("broken id", func(t *testing.T) {
		client := mock.New(t)
		err := expense.TotalTask(
			context.Background(), logger.Null(), env.TripEnv{}, client,
			commandline.MockCommandline[struct{}]{
				Args_: map[string][]string{
					expense.ARG_PLACE_ID: {"2"}, expense.ARG_EXPENSE_ID: {"boat"},
				},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
