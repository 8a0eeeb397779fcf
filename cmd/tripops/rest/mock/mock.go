// Package mock provides TripClient for tests.
package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/api/types/trips"
)

type UpdateTripArgs struct {
	TripId int
	Change trips.Update
}

type CreateScheduleArgs struct {
	TripId int
	Spec   schedules.Create
}

type UpdateScheduleArgs struct {
	TripId     int
	ScheduleId int
	Change     schedules.Update
}

type DeleteScheduleArgs struct {
	TripId     int
	ScheduleId int
}

type GetParticipantArgs struct {
	TripId        int
	ParticipantId int
}

type UpdatePlaceArgs struct {
	PlaceId int
	Change  places.Update
}

type CreateOptionalExpenseArgs struct {
	PlaceId int
	Spec    places.ExpenseCreate
}

type UpdateOptionalExpenseArgs struct {
	PlaceId   int
	ExpenseId int
	Change    places.ExpenseUpdate
}

type DeleteOptionalExpenseArgs struct {
	PlaceId   int
	ExpenseId int
}

type CalculateExpenseTotalArgs struct {
	PlaceId    int
	ExpenseIds []int
}

type CreatePlaceCoordinatorArgs struct {
	PlaceId int
	Spec    places.CoordinatorCreate
}

type UpdatePlaceCoordinatorArgs struct {
	PlaceId       int
	CoordinatorId int
	Change        places.CoordinatorUpdate
}

type DeletePlaceCoordinatorArgs struct {
	PlaceId       int
	CoordinatorId int
}

type GetParticipantHistoryArgs struct {
	TripId        int
	ParticipantId int
	Hours         int
}

// New returns a TripClient whose methods are given by Impl.
//
// Calling a method without Impl fails the test.
func New(t *testing.T) *MockClient {
	return &MockClient{t: t}
}

type MockClient struct {
	t  *testing.T
	mu sync.Mutex

	Impl struct {
		Login                  func(ctx context.Context, cred staff.Login) (staff.UserDetail, error)
		Logout                 func(ctx context.Context) error
		Profile                func(ctx context.Context) (staff.UserDetail, error)
		ListStaff              func(ctx context.Context, approved *bool) ([]staff.UserDetail, error)
		ApproveStaff           func(ctx context.Context, userId int) (staff.UserDetail, error)
		ListTrips              func(ctx context.Context) ([]trips.Trip, error)
		GetTrip                func(ctx context.Context, tripId int) (trips.Trip, error)
		CreateTrip             func(ctx context.Context, spec trips.Create) (trips.Trip, error)
		UpdateTrip             func(ctx context.Context, tripId int, change trips.Update) (trips.Trip, error)
		DeleteTrip             func(ctx context.Context, tripId int) error
		ListSchedules          func(ctx context.Context, tripId int) ([]schedules.Schedule, error)
		CreateSchedule         func(ctx context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error)
		UpdateSchedule         func(ctx context.Context, tripId int, scheduleId int, change schedules.Update) (schedules.Schedule, error)
		DeleteSchedule         func(ctx context.Context, tripId int, scheduleId int) error
		ListParticipants       func(ctx context.Context, tripId int) ([]participants.TripParticipant, error)
		GetParticipant         func(ctx context.Context, tripId int, participantId int) (participants.TripParticipant, error)
		ListPlaces             func(ctx context.Context, params places.ListParams) ([]places.Place, error)
		GetPlace               func(ctx context.Context, placeId int) (places.Place, error)
		CreatePlace            func(ctx context.Context, spec places.Create) (places.Place, error)
		UpdatePlace            func(ctx context.Context, placeId int, change places.Update) (places.Place, error)
		DeletePlace            func(ctx context.Context, placeId int) error
		RefreshPlaceSummary    func(ctx context.Context, placeId int) (places.Place, error)
		ListPlaceCategories    func(ctx context.Context) ([]places.Category, error)
		ListOptionalExpenses   func(ctx context.Context, placeId int) ([]places.OptionalExpense, error)
		CreateOptionalExpense  func(ctx context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error)
		UpdateOptionalExpense  func(ctx context.Context, placeId int, expenseId int, change places.ExpenseUpdate) (places.OptionalExpense, error)
		DeleteOptionalExpense  func(ctx context.Context, placeId int, expenseId int) error
		CalculateExpenseTotal  func(ctx context.Context, placeId int, expenseIds []int) (places.ExpenseTotal, error)
		ListPlaceCoordinators  func(ctx context.Context, placeId int) ([]places.Coordinator, error)
		CreatePlaceCoordinator func(ctx context.Context, placeId int, spec places.CoordinatorCreate) (places.Coordinator, error)
		UpdatePlaceCoordinator func(ctx context.Context, placeId int, coordinatorId int, change places.CoordinatorUpdate) (places.Coordinator, error)
		DeletePlaceCoordinator func(ctx context.Context, placeId int, coordinatorId int) error
		ListCoordinatorRoles   func(ctx context.Context) ([]places.CoordinatorRole, error)
		ListAlerts             func(ctx context.Context, tripId int) ([]monitoring.Alert, error)
		ListLatest             func(ctx context.Context, tripId int) ([]monitoring.ParticipantLatest, error)
		GetParticipantHistory  func(ctx context.Context, tripId int, participantId int, hours int) (monitoring.ParticipantHistory, error)
		GenerateDemo           func(ctx context.Context, tripId int) (monitoring.DemoResult, error)
	}
	Calls struct {
		Login                  []staff.Login
		Logout                 []struct{}
		Profile                []struct{}
		ListStaff              []*bool
		ApproveStaff           []int
		ListTrips              []struct{}
		GetTrip                []int
		CreateTrip             []trips.Create
		UpdateTrip             []UpdateTripArgs
		DeleteTrip             []int
		ListSchedules          []int
		CreateSchedule         []CreateScheduleArgs
		UpdateSchedule         []UpdateScheduleArgs
		DeleteSchedule         []DeleteScheduleArgs
		ListParticipants       []int
		GetParticipant         []GetParticipantArgs
		ListPlaces             []places.ListParams
		GetPlace               []int
		CreatePlace            []places.Create
		UpdatePlace            []UpdatePlaceArgs
		DeletePlace            []int
		RefreshPlaceSummary    []int
		ListPlaceCategories    []struct{}
		ListOptionalExpenses   []int
		CreateOptionalExpense  []CreateOptionalExpenseArgs
		UpdateOptionalExpense  []UpdateOptionalExpenseArgs
		DeleteOptionalExpense  []DeleteOptionalExpenseArgs
		CalculateExpenseTotal  []CalculateExpenseTotalArgs
		ListPlaceCoordinators  []int
		CreatePlaceCoordinator []CreatePlaceCoordinatorArgs
		UpdatePlaceCoordinator []UpdatePlaceCoordinatorArgs
		DeletePlaceCoordinator []DeletePlaceCoordinatorArgs
		ListCoordinatorRoles   []struct{}
		ListAlerts             []int
		ListLatest             []int
		GetParticipantHistory  []GetParticipantHistoryArgs
		GenerateDemo           []int
	}
}

var _ rest.TripClient = &MockClient{}

func (m *MockClient) Login(ctx context.Context, cred staff.Login) (staff.UserDetail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Login = append(m.Calls.Login, cred)
	impl := m.Impl.Login
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return impl(ctx, cred)
}

func (m *MockClient) Logout(ctx context.Context) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Logout = append(m.Calls.Logout, struct{}{})
	impl := m.Impl.Logout
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Logout is not ready to be called")
	}
	return impl(ctx)
}

func (m *MockClient) Profile(ctx context.Context) (staff.UserDetail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Profile = append(m.Calls.Profile, struct{}{})
	impl := m.Impl.Profile
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Profile is not ready to be called")
	}
	return impl(ctx)
}

func (m *MockClient) ListStaff(ctx context.Context, approved *bool) ([]staff.UserDetail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListStaff = append(m.Calls.ListStaff, approved)
	impl := m.Impl.ListStaff
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListStaff is not ready to be called")
	}
	return impl(ctx, approved)
}

func (m *MockClient) ApproveStaff(ctx context.Context, userId int) (staff.UserDetail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ApproveStaff = append(m.Calls.ApproveStaff, userId)
	impl := m.Impl.ApproveStaff
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ApproveStaff is not ready to be called")
	}
	return impl(ctx, userId)
}

func (m *MockClient) ListTrips(ctx context.Context) ([]trips.Trip, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListTrips = append(m.Calls.ListTrips, struct{}{})
	impl := m.Impl.ListTrips
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListTrips is not ready to be called")
	}
	return impl(ctx)
}

func (m *MockClient) GetTrip(ctx context.Context, tripId int) (trips.Trip, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetTrip = append(m.Calls.GetTrip, tripId)
	impl := m.Impl.GetTrip
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetTrip is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) CreateTrip(ctx context.Context, spec trips.Create) (trips.Trip, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreateTrip = append(m.Calls.CreateTrip, spec)
	impl := m.Impl.CreateTrip
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreateTrip is not ready to be called")
	}
	return impl(ctx, spec)
}

func (m *MockClient) UpdateTrip(ctx context.Context, tripId int, change trips.Update) (trips.Trip, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdateTrip = append(m.Calls.UpdateTrip, UpdateTripArgs{TripId: tripId, Change: change})
	impl := m.Impl.UpdateTrip
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdateTrip is not ready to be called")
	}
	return impl(ctx, tripId, change)
}

func (m *MockClient) DeleteTrip(ctx context.Context, tripId int) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeleteTrip = append(m.Calls.DeleteTrip, tripId)
	impl := m.Impl.DeleteTrip
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeleteTrip is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) ListSchedules(ctx context.Context, tripId int) ([]schedules.Schedule, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListSchedules = append(m.Calls.ListSchedules, tripId)
	impl := m.Impl.ListSchedules
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListSchedules is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) CreateSchedule(ctx context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreateSchedule = append(m.Calls.CreateSchedule, CreateScheduleArgs{TripId: tripId, Spec: spec})
	impl := m.Impl.CreateSchedule
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreateSchedule is not ready to be called")
	}
	return impl(ctx, tripId, spec)
}

func (m *MockClient) UpdateSchedule(ctx context.Context, tripId int, scheduleId int, change schedules.Update) (schedules.Schedule, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdateSchedule = append(m.Calls.UpdateSchedule, UpdateScheduleArgs{TripId: tripId, ScheduleId: scheduleId, Change: change})
	impl := m.Impl.UpdateSchedule
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdateSchedule is not ready to be called")
	}
	return impl(ctx, tripId, scheduleId, change)
}

func (m *MockClient) DeleteSchedule(ctx context.Context, tripId int, scheduleId int) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeleteSchedule = append(m.Calls.DeleteSchedule, DeleteScheduleArgs{TripId: tripId, ScheduleId: scheduleId})
	impl := m.Impl.DeleteSchedule
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeleteSchedule is not ready to be called")
	}
	return impl(ctx, tripId, scheduleId)
}

func (m *MockClient) ListParticipants(ctx context.Context, tripId int) ([]participants.TripParticipant, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListParticipants = append(m.Calls.ListParticipants, tripId)
	impl := m.Impl.ListParticipants
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListParticipants is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) GetParticipant(ctx context.Context, tripId int, participantId int) (participants.TripParticipant, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetParticipant = append(m.Calls.GetParticipant, GetParticipantArgs{TripId: tripId, ParticipantId: participantId})
	impl := m.Impl.GetParticipant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetParticipant is not ready to be called")
	}
	return impl(ctx, tripId, participantId)
}

func (m *MockClient) ListPlaces(ctx context.Context, params places.ListParams) ([]places.Place, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListPlaces = append(m.Calls.ListPlaces, params)
	impl := m.Impl.ListPlaces
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListPlaces is not ready to be called")
	}
	return impl(ctx, params)
}

func (m *MockClient) GetPlace(ctx context.Context, placeId int) (places.Place, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetPlace = append(m.Calls.GetPlace, placeId)
	impl := m.Impl.GetPlace
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetPlace is not ready to be called")
	}
	return impl(ctx, placeId)
}

func (m *MockClient) CreatePlace(ctx context.Context, spec places.Create) (places.Place, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreatePlace = append(m.Calls.CreatePlace, spec)
	impl := m.Impl.CreatePlace
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreatePlace is not ready to be called")
	}
	return impl(ctx, spec)
}

func (m *MockClient) UpdatePlace(ctx context.Context, placeId int, change places.Update) (places.Place, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdatePlace = append(m.Calls.UpdatePlace, UpdatePlaceArgs{PlaceId: placeId, Change: change})
	impl := m.Impl.UpdatePlace
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdatePlace is not ready to be called")
	}
	return impl(ctx, placeId, change)
}

func (m *MockClient) DeletePlace(ctx context.Context, placeId int) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeletePlace = append(m.Calls.DeletePlace, placeId)
	impl := m.Impl.DeletePlace
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeletePlace is not ready to be called")
	}
	return impl(ctx, placeId)
}

func (m *MockClient) RefreshPlaceSummary(ctx context.Context, placeId int) (places.Place, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.RefreshPlaceSummary = append(m.Calls.RefreshPlaceSummary, placeId)
	impl := m.Impl.RefreshPlaceSummary
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("RefreshPlaceSummary is not ready to be called")
	}
	return impl(ctx, placeId)
}

func (m *MockClient) ListPlaceCategories(ctx context.Context) ([]places.Category, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListPlaceCategories = append(m.Calls.ListPlaceCategories, struct{}{})
	impl := m.Impl.ListPlaceCategories
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListPlaceCategories is not ready to be called")
	}
	return impl(ctx)
}

func (m *MockClient) ListOptionalExpenses(ctx context.Context, placeId int) ([]places.OptionalExpense, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListOptionalExpenses = append(m.Calls.ListOptionalExpenses, placeId)
	impl := m.Impl.ListOptionalExpenses
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListOptionalExpenses is not ready to be called")
	}
	return impl(ctx, placeId)
}

func (m *MockClient) CreateOptionalExpense(ctx context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreateOptionalExpense = append(m.Calls.CreateOptionalExpense, CreateOptionalExpenseArgs{PlaceId: placeId, Spec: spec})
	impl := m.Impl.CreateOptionalExpense
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreateOptionalExpense is not ready to be called")
	}
	return impl(ctx, placeId, spec)
}

func (m *MockClient) UpdateOptionalExpense(ctx context.Context, placeId int, expenseId int, change places.ExpenseUpdate) (places.OptionalExpense, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdateOptionalExpense = append(m.Calls.UpdateOptionalExpense, UpdateOptionalExpenseArgs{PlaceId: placeId, ExpenseId: expenseId, Change: change})
	impl := m.Impl.UpdateOptionalExpense
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdateOptionalExpense is not ready to be called")
	}
	return impl(ctx, placeId, expenseId, change)
}

func (m *MockClient) DeleteOptionalExpense(ctx context.Context, placeId int, expenseId int) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeleteOptionalExpense = append(m.Calls.DeleteOptionalExpense, DeleteOptionalExpenseArgs{PlaceId: placeId, ExpenseId: expenseId})
	impl := m.Impl.DeleteOptionalExpense
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeleteOptionalExpense is not ready to be called")
	}
	return impl(ctx, placeId, expenseId)
}

func (m *MockClient) CalculateExpenseTotal(ctx context.Context, placeId int, expenseIds []int) (places.ExpenseTotal, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CalculateExpenseTotal = append(m.Calls.CalculateExpenseTotal, CalculateExpenseTotalArgs{PlaceId: placeId, ExpenseIds: expenseIds})
	impl := m.Impl.CalculateExpenseTotal
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CalculateExpenseTotal is not ready to be called")
	}
	return impl(ctx, placeId, expenseIds)
}

func (m *MockClient) ListPlaceCoordinators(ctx context.Context, placeId int) ([]places.Coordinator, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListPlaceCoordinators = append(m.Calls.ListPlaceCoordinators, placeId)
	impl := m.Impl.ListPlaceCoordinators
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListPlaceCoordinators is not ready to be called")
	}
	return impl(ctx, placeId)
}

func (m *MockClient) CreatePlaceCoordinator(ctx context.Context, placeId int, spec places.CoordinatorCreate) (places.Coordinator, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreatePlaceCoordinator = append(m.Calls.CreatePlaceCoordinator, CreatePlaceCoordinatorArgs{PlaceId: placeId, Spec: spec})
	impl := m.Impl.CreatePlaceCoordinator
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreatePlaceCoordinator is not ready to be called")
	}
	return impl(ctx, placeId, spec)
}

func (m *MockClient) UpdatePlaceCoordinator(ctx context.Context, placeId int, coordinatorId int, change places.CoordinatorUpdate) (places.Coordinator, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdatePlaceCoordinator = append(m.Calls.UpdatePlaceCoordinator, UpdatePlaceCoordinatorArgs{PlaceId: placeId, CoordinatorId: coordinatorId, Change: change})
	impl := m.Impl.UpdatePlaceCoordinator
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdatePlaceCoordinator is not ready to be called")
	}
	return impl(ctx, placeId, coordinatorId, change)
}

func (m *MockClient) DeletePlaceCoordinator(ctx context.Context, placeId int, coordinatorId int) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeletePlaceCoordinator = append(m.Calls.DeletePlaceCoordinator, DeletePlaceCoordinatorArgs{PlaceId: placeId, CoordinatorId: coordinatorId})
	impl := m.Impl.DeletePlaceCoordinator
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeletePlaceCoordinator is not ready to be called")
	}
	return impl(ctx, placeId, coordinatorId)
}

func (m *MockClient) ListCoordinatorRoles(ctx context.Context) ([]places.CoordinatorRole, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListCoordinatorRoles = append(m.Calls.ListCoordinatorRoles, struct{}{})
	impl := m.Impl.ListCoordinatorRoles
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListCoordinatorRoles is not ready to be called")
	}
	return impl(ctx)
}

func (m *MockClient) ListAlerts(ctx context.Context, tripId int) ([]monitoring.Alert, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListAlerts = append(m.Calls.ListAlerts, tripId)
	impl := m.Impl.ListAlerts
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListAlerts is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) ListLatest(ctx context.Context, tripId int) ([]monitoring.ParticipantLatest, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.ListLatest = append(m.Calls.ListLatest, tripId)
	impl := m.Impl.ListLatest
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("ListLatest is not ready to be called")
	}
	return impl(ctx, tripId)
}

func (m *MockClient) GetParticipantHistory(ctx context.Context, tripId int, participantId int, hours int) (monitoring.ParticipantHistory, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetParticipantHistory = append(m.Calls.GetParticipantHistory, GetParticipantHistoryArgs{TripId: tripId, ParticipantId: participantId, Hours: hours})
	impl := m.Impl.GetParticipantHistory
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetParticipantHistory is not ready to be called")
	}
	return impl(ctx, tripId, participantId, hours)
}

func (m *MockClient) GenerateDemo(ctx context.Context, tripId int) (monitoring.DemoResult, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GenerateDemo = append(m.Calls.GenerateDemo, tripId)
	impl := m.Impl.GenerateDemo
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GenerateDemo is not ready to be called")
	}
	return impl(ctx, tripId)
}
