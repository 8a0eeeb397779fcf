package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/places"
)

func (c *client) placePath(placeId int, sub ...string) string {
	return c.apipath(append([]string{"api", "places", strconv.Itoa(placeId)}, sub...)...)
}

func (c *client) ListPlaces(ctx context.Context, params places.ListParams) ([]places.Place, error) {
	return getList[places.Place](ctx, c, c.apipath("api", "places"), params.Values())
}

func (c *client) GetPlace(ctx context.Context, placeId int) (places.Place, error) {
	p := places.Place{}
	if err := c.request(ctx, http.MethodGet, c.placePath(placeId), nil, nil, &p); err != nil {
		return places.Place{}, err
	}
	return p, nil
}

func (c *client) CreatePlace(ctx context.Context, spec places.Create) (places.Place, error) {
	p := places.Place{}
	if err := c.request(ctx, http.MethodPost, c.apipath("api", "places"), nil, spec, &p); err != nil {
		return places.Place{}, err
	}
	return p, nil
}

func (c *client) UpdatePlace(ctx context.Context, placeId int, change places.Update) (places.Place, error) {
	p := places.Place{}
	if err := c.request(ctx, http.MethodPatch, c.placePath(placeId), nil, change, &p); err != nil {
		return places.Place{}, err
	}
	return p, nil
}

func (c *client) DeletePlace(ctx context.Context, placeId int) error {
	return c.request(ctx, http.MethodDelete, c.placePath(placeId), nil, nil, nil)
}

func (c *client) RefreshPlaceSummary(ctx context.Context, placeId int) (places.Place, error) {
	p := places.Place{}
	if err := c.request(ctx, http.MethodPost, c.placePath(placeId, "refresh-summary"), nil, nil, &p); err != nil {
		return places.Place{}, err
	}
	return p, nil
}

func (c *client) ListPlaceCategories(ctx context.Context) ([]places.Category, error) {
	return getList[places.Category](ctx, c, c.apipath("api", "places", "categories"), nil)
}

func (c *client) ListOptionalExpenses(ctx context.Context, placeId int) ([]places.OptionalExpense, error) {
	return getList[places.OptionalExpense](ctx, c, c.placePath(placeId, "expenses"), nil)
}

func (c *client) CreateOptionalExpense(ctx context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error) {
	e := places.OptionalExpense{}
	if err := c.request(ctx, http.MethodPost, c.placePath(placeId, "expenses"), nil, spec, &e); err != nil {
		return places.OptionalExpense{}, err
	}
	return e, nil
}

func (c *client) UpdateOptionalExpense(
	ctx context.Context, placeId int, expenseId int, change places.ExpenseUpdate,
) (places.OptionalExpense, error) {
	e := places.OptionalExpense{}
	if err := c.request(
		ctx, http.MethodPatch, c.placePath(placeId, "expenses", strconv.Itoa(expenseId)), nil, change, &e,
	); err != nil {
		return places.OptionalExpense{}, err
	}
	return e, nil
}

func (c *client) DeleteOptionalExpense(ctx context.Context, placeId int, expenseId int) error {
	return c.request(
		ctx, http.MethodDelete, c.placePath(placeId, "expenses", strconv.Itoa(expenseId)), nil, nil, nil,
	)
}

func (c *client) CalculateExpenseTotal(ctx context.Context, placeId int, expenseIds []int) (places.ExpenseTotal, error) {
	if expenseIds == nil {
		expenseIds = []int{}
	}
	payload := struct {
		ExpenseIds []int `json:"expense_ids"`
	}{ExpenseIds: expenseIds}

	total := places.ExpenseTotal{}
	if err := c.request(
		ctx, http.MethodPost, c.placePath(placeId, "expenses", "calculate"), nil, payload, &total,
	); err != nil {
		return places.ExpenseTotal{}, err
	}
	if total.ExpenseIds == nil {
		total.ExpenseIds = expenseIds
	}
	return total, nil
}

func (c *client) ListPlaceCoordinators(ctx context.Context, placeId int) ([]places.Coordinator, error) {
	return getList[places.Coordinator](ctx, c, c.placePath(placeId, "coordinators"), nil)
}

func (c *client) CreatePlaceCoordinator(
	ctx context.Context, placeId int, spec places.CoordinatorCreate,
) (places.Coordinator, error) {
	co := places.Coordinator{}
	if err := c.request(ctx, http.MethodPost, c.placePath(placeId, "coordinators"), nil, spec, &co); err != nil {
		return places.Coordinator{}, err
	}
	return co, nil
}

func (c *client) UpdatePlaceCoordinator(
	ctx context.Context, placeId int, coordinatorId int, change places.CoordinatorUpdate,
) (places.Coordinator, error) {
	co := places.Coordinator{}
	if err := c.request(
		ctx, http.MethodPatch, c.placePath(placeId, "coordinators", strconv.Itoa(coordinatorId)), nil, change, &co,
	); err != nil {
		return places.Coordinator{}, err
	}
	return co, nil
}

func (c *client) DeletePlaceCoordinator(ctx context.Context, placeId int, coordinatorId int) error {
	return c.request(
		ctx, http.MethodDelete, c.placePath(placeId, "coordinators", strconv.Itoa(coordinatorId)), nil, nil, nil,
	)
}

func (c *client) ListCoordinatorRoles(ctx context.Context) ([]places.CoordinatorRole, error) {
	return getList[places.CoordinatorRole](ctx, c, c.apipath("api", "places", "coordinator-roles"), nil)
}
