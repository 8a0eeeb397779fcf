package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hitrip/tripops/cmd/tripops/config/cookies"
	prof "github.com/hitrip/tripops/cmd/tripops/config/profiles"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/utils"
)

// TripClient is a client of the travel-operations backend.
//
// Each method sends exactly one request. Any failure is returned as *APIError.
type TripClient interface {
	// Login starts a session. The session cookie is kept in the client's cookie jar.
	Login(ctx context.Context, cred staff.Login) (staff.UserDetail, error)
	Logout(ctx context.Context) error

	// Profile returns the user of the current session.
	Profile(ctx context.Context) (staff.UserDetail, error)

	// ListStaff lists staff accounts.
	//
	// When approved is not nil, only staff with the approval state are listed.
	ListStaff(ctx context.Context, approved *bool) ([]staff.UserDetail, error)
	ApproveStaff(ctx context.Context, userId int) (staff.UserDetail, error)

	ListTrips(ctx context.Context) ([]trips.Trip, error)
	GetTrip(ctx context.Context, tripId int) (trips.Trip, error)
	CreateTrip(ctx context.Context, spec trips.Create) (trips.Trip, error)
	UpdateTrip(ctx context.Context, tripId int, change trips.Update) (trips.Trip, error)
	DeleteTrip(ctx context.Context, tripId int) error

	ListSchedules(ctx context.Context, tripId int) ([]schedules.Schedule, error)
	CreateSchedule(ctx context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error)
	UpdateSchedule(ctx context.Context, tripId int, scheduleId int, change schedules.Update) (schedules.Schedule, error)
	DeleteSchedule(ctx context.Context, tripId int, scheduleId int) error

	ListParticipants(ctx context.Context, tripId int) ([]participants.TripParticipant, error)
	GetParticipant(ctx context.Context, tripId int, participantId int) (participants.TripParticipant, error)

	ListPlaces(ctx context.Context, params places.ListParams) ([]places.Place, error)
	GetPlace(ctx context.Context, placeId int) (places.Place, error)
	CreatePlace(ctx context.Context, spec places.Create) (places.Place, error)
	UpdatePlace(ctx context.Context, placeId int, change places.Update) (places.Place, error)
	DeletePlace(ctx context.Context, placeId int) error

	// RefreshPlaceSummary asks the backend to regenerate AI summary of the place.
	RefreshPlaceSummary(ctx context.Context, placeId int) (places.Place, error)
	ListPlaceCategories(ctx context.Context) ([]places.Category, error)

	ListOptionalExpenses(ctx context.Context, placeId int) ([]places.OptionalExpense, error)
	CreateOptionalExpense(ctx context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error)
	UpdateOptionalExpense(ctx context.Context, placeId int, expenseId int, change places.ExpenseUpdate) (places.OptionalExpense, error)
	DeleteOptionalExpense(ctx context.Context, placeId int, expenseId int) error

	// CalculateExpenseTotal asks the backend the total price of selected expenses.
	CalculateExpenseTotal(ctx context.Context, placeId int, expenseIds []int) (places.ExpenseTotal, error)

	ListPlaceCoordinators(ctx context.Context, placeId int) ([]places.Coordinator, error)
	CreatePlaceCoordinator(ctx context.Context, placeId int, spec places.CoordinatorCreate) (places.Coordinator, error)
	UpdatePlaceCoordinator(ctx context.Context, placeId int, coordinatorId int, change places.CoordinatorUpdate) (places.Coordinator, error)
	DeletePlaceCoordinator(ctx context.Context, placeId int, coordinatorId int) error
	ListCoordinatorRoles(ctx context.Context) ([]places.CoordinatorRole, error)

	ListAlerts(ctx context.Context, tripId int) ([]monitoring.Alert, error)
	ListLatest(ctx context.Context, tripId int) ([]monitoring.ParticipantLatest, error)

	// GetParticipantHistory returns telemetry of the participant in last hours.
	GetParticipantHistory(ctx context.Context, tripId int, participantId int, hours int) (monitoring.ParticipantHistory, error)

	// GenerateDemo makes the backend generate demo telemetry for the trip.
	GenerateDemo(ctx context.Context, tripId int) (monitoring.DemoResult, error)
}

const (
	headerRequestId = "X-Request-ID"
	headerCSRFToken = "X-CSRFToken"
	csrfCookie      = "csrftoken"
)

type client struct {
	httpclient *http.Client
	api        string
	jar        *cookies.Jar
	logger     *log.Logger
}

type Option func(*client)

// WithJar makes the client keep session cookies in jar.
func WithJar(jar *cookies.Jar) Option {
	return func(c *client) { c.jar = jar }
}

// WithLogger makes the client log each request.
func WithLogger(logger *log.Logger) Option {
	return func(c *client) { c.logger = logger }
}

// create new client for Profile
//
// # Args
//
// - *prof.Profile
//
// - ...Option
//
// # Return
//
// - TripClient: created client
//
// - error: If given profile is invalid, ErrProfileInvalid is returned.
func NewClient(profile *prof.Profile, options ...Option) (TripClient, error) {
	if err := profile.Verify(); err != nil {
		return nil, err
	}

	c := &client{
		api:    strings.TrimSuffix(profile.ApiRoot, "/"),
		logger: log.New(io.Discard, "", 0),
	}
	for _, o := range options {
		o(c)
	}
	if c.jar == nil {
		c.jar = cookies.New()
	}

	httpclient := &http.Client{
		Jar:     c.jar,
		Timeout: profile.RequestTimeout(),
	}
	if profile.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{profile.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}
	c.httpclient = httpclient

	return c, nil
}

// build URL with path. URLs always end with "/".
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/") + "/"
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// request sends a request and decodes its JSON response into out.
//
// out can be nil when the response body is not needed.
func (c *client) request(
	ctx context.Context, method string, endpoint string, query url.Values, payload any, out any,
) error {
	u := endpoint
	if len(query) != 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return &APIError{Method: method, URL: u, Cause: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &APIError{Method: method, URL: u, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestId, uuid.NewString())
	if !isSafeMethod(method) {
		if token, ok := c.jar.Get(req.URL, csrfCookie); ok {
			req.Header.Set(headerCSRFToken, token)
		}
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		c.logger.Printf("%s %s: %s", method, u, err)
		return &APIError{Method: method, URL: u, Cause: err}
	}
	defer resp.Body.Close()
	c.logger.Printf("%s %s: %d (request id = %s)", method, u, resp.StatusCode, req.Header.Get(headerRequestId))

	raw, err := io.ReadAll(resp.Body)
	if StatusCodeRangeFor(resp.StatusCode) != Status2xx {
		status := resp.StatusCode
		apierr := &APIError{Method: method, URL: u, Status: &status, Cause: err}
		if err == nil {
			apierr.Body = parseBody(raw)
		}
		return apierr
	}
	if err != nil {
		status := resp.StatusCode
		return &APIError{Method: method, URL: u, Status: &status, Cause: err}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		status := resp.StatusCode
		return &APIError{
			Method: method, URL: u, Status: &status, Body: parseBody(raw),
			Cause: fmt.Errorf("unexpected response: %w", err),
		}
	}
	return nil
}

func parseBody(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var v any
	if json.Unmarshal(trimmed, &v) == nil {
		return v
	}
	return string(trimmed)
}

// paged is a response of list endpoints with pagination.
type paged[T any] struct {
	Results []T `json:"results"`
}

// listOf accepts a bare array and a paged object both.
type listOf[T any] []T

func (l *listOf[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) != 0 && trimmed[0] == '{' {
		p := paged[T]{}
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return err
		}
		*l = p.Results
		return nil
	}
	items := []T{}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

func getList[T any](ctx context.Context, c *client, endpoint string, query url.Values) ([]T, error) {
	items := listOf[T]{}
	if err := c.request(ctx, http.MethodGet, endpoint, query, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
