package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/chikukwa/busbooking/internal/client"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

// fakeAPI records which calls the controller makes. Unset function fields
// fall back to zero values with no error.
type fakeAPI struct {
	calls []string

	config    models.SystemConfig
	routeInfo func(departure, destination string) (models.RouteInfo, error)
	create    func(req client.BookingRequest) (models.Booking, error)
	login     func(username, password string) (client.LoginResult, error)
	booking   func(ticketID string) (models.Booking, error)
	receipt   func(ticketID string) ([]byte, error)
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) Config(ctx context.Context) (models.SystemConfig, error) {
	f.record("Config")
	return f.config, nil
}

func (f *fakeAPI) RouteInfo(ctx context.Context, departure, destination string) (models.RouteInfo, error) {
	f.record("RouteInfo")
	if f.routeInfo != nil {
		return f.routeInfo(departure, destination)
	}
	return models.RouteInfo{}, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, req client.BookingRequest) (models.Booking, error) {
	f.record("CreateBooking")
	if f.create != nil {
		return f.create(req)
	}
	return models.Booking{}, nil
}

func (f *fakeAPI) Booking(ctx context.Context, ticketID string) (models.Booking, error) {
	f.record("Booking")
	if f.booking != nil {
		return f.booking(ticketID)
	}
	return models.Booking{}, nil
}

func (f *fakeAPI) CancelBooking(ctx context.Context, ticketID string) error {
	f.record("CancelBooking")
	return nil
}

func (f *fakeAPI) Receipt(ctx context.Context, ticketID string) ([]byte, error) {
	f.record("Receipt")
	if f.receipt != nil {
		return f.receipt(ticketID)
	}
	return []byte("%PDF-fake"), nil
}

func (f *fakeAPI) Schedules(ctx context.Context) ([]models.Route, error) {
	f.record("Schedules")
	return nil, nil
}

func (f *fakeAPI) Stops(ctx context.Context, city string) (models.BusStop, error) {
	f.record("Stops")
	return models.BusStop{City: city}, nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (client.LoginResult, error) {
	f.record("Login")
	if f.login != nil {
		return f.login(username, password)
	}
	return client.LoginResult{Username: username, Token: "tok"}, nil
}

func (f *fakeAPI) Stats(ctx context.Context, token string) (models.BookingStats, error) {
	f.record("Stats")
	return models.BookingStats{}, nil
}

func (f *fakeAPI) AllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	f.record("AllBookings")
	return nil, nil
}

func (f *fakeAPI) Routes(ctx context.Context, token string) ([]models.Route, error) {
	f.record("Routes")
	return nil, nil
}

func (f *fakeAPI) UpdateRouteFare(ctx context.Context, token, route string, fare float64) error {
	f.record("UpdateRouteFare")
	return nil
}

func (f *fakeAPI) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func newTestController(api API, input string) (*Controller, *bytes.Buffer) {
	var out bytes.Buffer
	c := NewController(api, strings.NewReader(input), &out)
	return c, &out
}

func TestFarePreviewSkipsNetworkForIncompletePair(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestController(api, "")

	got := c.FarePreview(context.Background(), "", "Gweru")
	if got != "Fare: $0" {
		t.Fatalf("expected zero fare placeholder, got %q", got)
	}
	got = c.FarePreview(context.Background(), "Harare", "")
	if got != "Fare: $0" {
		t.Fatalf("expected zero fare placeholder, got %q", got)
	}
	if len(api.calls) != 0 {
		t.Fatalf("incomplete pair should not hit the API, calls: %v", api.calls)
	}
}

func TestFarePreviewShowsRouteFare(t *testing.T) {
	api := &fakeAPI{routeInfo: func(dep, dst string) (models.RouteInfo, error) {
		return models.RouteInfo{Fare: 8, Schedule: "08:00 AM"}, nil
	}}
	c, _ := newTestController(api, "")

	if got := c.FarePreview(context.Background(), "Harare", "Gweru"); got != "Fare: $8" {
		t.Fatalf("unexpected preview: %q", got)
	}
	if !api.called("RouteInfo") {
		t.Fatalf("expected a RouteInfo call")
	}
}

func TestFarePreviewNoRoute(t *testing.T) {
	api := &fakeAPI{routeInfo: func(dep, dst string) (models.RouteInfo, error) {
		return models.RouteInfo{}, &client.APIError{Status: 404, Message: "no direct route available"}
	}}
	c, _ := newTestController(api, "")

	if got := c.FarePreview(context.Background(), "Harare", "Atlantis"); got != "No route available" {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestDispatchUnknownView(t *testing.T) {
	c, _ := newTestController(&fakeAPI{}, "")
	err := c.Dispatch(context.Background(), "payments")
	if err == nil || !strings.Contains(err.Error(), `unknown view "payments"`) {
		t.Fatalf("expected unknown view error, got %v", err)
	}
}

func TestViewNamesAreSorted(t *testing.T) {
	c, _ := newTestController(&fakeAPI{}, "")
	names := c.ViewNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("view names not sorted: %v", names)
		}
	}
	if len(names) != 7 {
		t.Fatalf("expected 7 views, got %d: %v", len(names), names)
	}
}

func TestSeatOptionsFollowConfig(t *testing.T) {
	s := &Session{Config: models.SystemConfig{TotalSeats: 2}}
	opts := s.SeatOptions()
	if len(opts) != 2 || opts[0] != "1" || opts[1] != "2" {
		t.Fatalf("unexpected seat options: %v", opts)
	}
}

func TestCancelDeclinedMakesNoCall(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestController(api, "AB12CD34\nn\n")

	if err := c.Dispatch(context.Background(), "cancel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.called("CancelBooking") {
		t.Fatalf("declined confirmation must not cancel, calls: %v", api.calls)
	}
}

func TestCancelConfirmedCallsAPI(t *testing.T) {
	api := &fakeAPI{}
	c, out := newTestController(api, "AB12CD34\ny\n")

	if err := c.Dispatch(context.Background(), "cancel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !api.called("CancelBooking") {
		t.Fatalf("expected a CancelBooking call, calls: %v", api.calls)
	}
	if !strings.Contains(out.String(), "Ticket cancelled successfully") {
		t.Fatalf("missing success message, output: %q", out.String())
	}
}

func TestFailedAdminLoginStaysLoggedOut(t *testing.T) {
	api := &fakeAPI{login: func(username, password string) (client.LoginResult, error) {
		return client.LoginResult{}, &client.APIError{Status: 401, Message: "invalid credentials"}
	}}
	c, out := newTestController(api, "admin\nwrong\n")

	if err := c.Dispatch(context.Background(), "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Session().IsAdminLoggedIn() {
		t.Fatalf("failed login must not mark the session as admin")
	}
	if api.called("Stats") {
		t.Fatalf("dashboard must not load after a failed login")
	}
	if !strings.Contains(out.String(), "Invalid credentials") {
		t.Fatalf("missing error message, output: %q", out.String())
	}
}

func TestAdminLoginOpensDashboard(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestController(api, "admin\nadmin123\nback\n")

	if err := c.Dispatch(context.Background(), "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Session().IsAdminLoggedIn() {
		t.Fatalf("session should be logged in")
	}
	if !api.called("Stats") || !api.called("AllBookings") {
		t.Fatalf("dashboard should fetch stats and bookings, calls: %v", api.calls)
	}
}

func TestBookingFailureKeepsDraft(t *testing.T) {
	api := &fakeAPI{
		routeInfo: func(dep, dst string) (models.RouteInfo, error) {
			return models.RouteInfo{Fare: 8}, nil
		},
		create: func(req client.BookingRequest) (models.Booking, error) {
			return models.Booking{}, &client.APIError{Status: 409, Message: "this seat is already booked for this journey"}
		},
	}
	input := "Tendai\n30\n0777\n\nHarare\nGweru\n2026-10-01\n08:00 AM\n7\n"
	c, out := newTestController(api, input)
	c.Session().Config = models.SystemConfig{TotalSeats: 50, Cities: []string{"Harare", "Gweru"}}

	if err := c.Dispatch(context.Background(), "book"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.draft == nil {
		t.Fatalf("rejected booking should keep the draft for correction")
	}
	if c.draft.Seat != "7" {
		t.Fatalf("draft should keep entered values, got %+v", c.draft)
	}
	if !strings.Contains(out.String(), "this seat is already booked for this journey") {
		t.Fatalf("server message should be surfaced, output: %q", out.String())
	}
}

func TestBookingSuccessClearsDraftAndPrintsReceipt(t *testing.T) {
	api := &fakeAPI{
		routeInfo: func(dep, dst string) (models.RouteInfo, error) {
			return models.RouteInfo{Fare: 8}, nil
		},
		create: func(req client.BookingRequest) (models.Booking, error) {
			return models.Booking{
				TicketID: "AB12CD34", Name: req.Name, Age: req.Age,
				Departure: req.Departure, Destination: req.Destination,
				Date: req.Date, Time: req.Time, Seat: req.Seat,
				Fare: 8, Status: models.BookingStatusConfirmed,
			}, nil
		},
	}
	input := "Tendai\n30\n0777\n\nHarare\nGweru\n2026-10-01\n08:00 AM\n7\n"
	c, out := newTestController(api, input)
	c.Session().Config = models.SystemConfig{TotalSeats: 50, CompanyName: "Chikukwa Bus Services"}

	if err := c.Dispatch(context.Background(), "book"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.draft != nil {
		t.Fatalf("successful booking should clear the draft")
	}
	if !strings.Contains(out.String(), "AB12CD34") {
		t.Fatalf("receipt should show the ticket ID, output: %q", out.String())
	}
	if !strings.Contains(out.String(), "BOOKING CONFIRMED") {
		t.Fatalf("receipt header missing, output: %q", out.String())
	}
}

func TestTicketViewNotFound(t *testing.T) {
	api := &fakeAPI{booking: func(ticketID string) (models.Booking, error) {
		return models.Booking{}, &client.APIError{Status: 404, Message: "ticket not found"}
	}}
	c, out := newTestController(api, "NOPE0000\n")

	if err := c.Dispatch(context.Background(), "ticket"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Ticket not found") {
		t.Fatalf("missing not-found message, output: %q", out.String())
	}
}

func TestTicketViewRejectsEmptyIDLocally(t *testing.T) {
	api := &fakeAPI{}
	c, out := newTestController(api, "\n")

	if err := c.Dispatch(context.Background(), "ticket"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.called("Booking") {
		t.Fatalf("empty ticket ID should be rejected without a call")
	}
	if !strings.Contains(out.String(), "Please enter a ticket ID") {
		t.Fatalf("missing local validation message, output: %q", out.String())
	}
}

func TestTicketReceiptDeclinedMakesNoDownload(t *testing.T) {
	api := &fakeAPI{booking: func(ticketID string) (models.Booking, error) {
		return models.Booking{TicketID: "AB12CD34", Status: models.BookingStatusConfirmed}, nil
	}}
	c, _ := newTestController(api, "AB12CD34\nn\n")

	if err := c.Dispatch(context.Background(), "ticket"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.called("Receipt") {
		t.Fatalf("declined prompt must not download a receipt, calls: %v", api.calls)
	}
}

func TestTicketReceiptSavedToFile(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	api := &fakeAPI{
		booking: func(ticketID string) (models.Booking, error) {
			return models.Booking{TicketID: "AB12CD34", Status: models.BookingStatusConfirmed}, nil
		},
		receipt: func(ticketID string) ([]byte, error) {
			return []byte("%PDF-1.4 receipt"), nil
		},
	}
	c, out := newTestController(api, "AB12CD34\ny\n")

	if err := c.Dispatch(context.Background(), "ticket"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !api.called("Receipt") {
		t.Fatalf("expected a Receipt call, calls: %v", api.calls)
	}

	data, err := os.ReadFile("TICKET_AB12CD34.pdf")
	if err != nil {
		t.Fatalf("receipt file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("unexpected file contents: %q", data)
	}
	if !strings.Contains(out.String(), "Receipt saved to TICKET_AB12CD34.pdf") {
		t.Fatalf("missing confirmation, output: %q", out.String())
	}
}

func TestRunLoadsConfigBeforeMenu(t *testing.T) {
	api := &fakeAPI{config: models.SystemConfig{
		CompanyName: "Chikukwa Bus Services",
		Cities:      []string{"Harare", "Gweru"},
		TotalSeats:  50,
	}}
	c, out := newTestController(api, "quit\n")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.calls) == 0 || api.calls[0] != "Config" {
		t.Fatalf("config must load first, calls: %v", api.calls)
	}
	if c.Session().Config.TotalSeats != 50 {
		t.Fatalf("config not stored on session: %+v", c.Session().Config)
	}
	if !strings.Contains(out.String(), "Chikukwa Bus Services") {
		t.Fatalf("company banner missing, output: %q", out.String())
	}
}

func TestRunFailsWhenConfigUnavailable(t *testing.T) {
	api := &brokenConfigAPI{}
	var out bytes.Buffer
	c := NewController(api, strings.NewReader(""), &out)

	if err := c.Run(context.Background()); err == nil {
		t.Fatalf("expected an error when configuration cannot load")
	}
}

// brokenConfigAPI fails the initial configuration fetch.
type brokenConfigAPI struct{ fakeAPI }

func (b *brokenConfigAPI) Config(ctx context.Context) (models.SystemConfig, error) {
	return models.SystemConfig{}, errors.New("connection refused")
}
