package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chikukwa/busbooking/internal/client"
	"github.com/chikukwa/busbooking/internal/utils"
)

// bookingDraft keeps entered form values so a rejected submission can be
// corrected and resent without retyping everything.
type bookingDraft struct {
	Name        string
	Age         string
	Phone       string
	Email       string
	Departure   string
	Destination string
	Date        string
	Time        string
	Seat        string
}

// FarePreview resolves the fare display for a city pair. An incomplete
// pair short-circuits to a zero fare without touching the network.
func (c *Controller) FarePreview(ctx context.Context, departure, destination string) string {
	if strings.TrimSpace(departure) == "" || strings.TrimSpace(destination) == "" {
		return "Fare: $0"
	}
	info, err := c.api.RouteInfo(ctx, departure, destination)
	if err != nil {
		return "No route available"
	}
	return "Fare: " + utils.FormatFare(info.Fare)
}

func (c *Controller) viewBook(ctx context.Context) error {
	draft := c.draft
	if draft == nil {
		draft = &bookingDraft{}
	}

	fmt.Fprintf(c.out, "\n-- Book a ticket --\n")
	fmt.Fprintf(c.out, "Cities: %s\n", strings.Join(c.session.Config.Cities, ", "))

	fields := []struct {
		label string
		value *string
	}{
		{"Name", &draft.Name},
		{"Age", &draft.Age},
		{"Phone", &draft.Phone},
		{"Email (optional)", &draft.Email},
		{"Departure", &draft.Departure},
		{"Destination", &draft.Destination},
	}
	for _, f := range fields {
		value, ok := c.promptDefault(f.label, *f.value)
		if !ok {
			return nil
		}
		*f.value = value
	}

	fmt.Fprintln(c.out, c.FarePreview(ctx, draft.Departure, draft.Destination))

	rest := []struct {
		label string
		value *string
	}{
		{"Date (YYYY-MM-DD)", &draft.Date},
		{"Time", &draft.Time},
		{fmt.Sprintf("Seat (1-%d)", c.session.Config.TotalSeats), &draft.Seat},
	}
	for _, f := range rest {
		value, ok := c.promptDefault(f.label, *f.value)
		if !ok {
			return nil
		}
		*f.value = value
	}

	c.draft = draft

	required := []string{draft.Name, draft.Age, draft.Phone, draft.Departure, draft.Destination, draft.Date, draft.Time, draft.Seat}
	for _, value := range required {
		if value == "" {
			c.showError("Please fill in all required fields")
			return nil
		}
	}

	age, err := strconv.Atoi(draft.Age)
	if err != nil {
		c.showError("Age must be a number")
		return nil
	}
	seat, err := strconv.Atoi(draft.Seat)
	if err != nil {
		c.showError("Seat must be a number")
		return nil
	}

	booking, err := c.api.CreateBooking(ctx, client.BookingRequest{
		Name:        draft.Name,
		Age:         age,
		Phone:       draft.Phone,
		Email:       draft.Email,
		Departure:   draft.Departure,
		Destination: draft.Destination,
		Date:        draft.Date,
		Time:        draft.Time,
		Seat:        seat,
	})
	if err != nil {
		c.showError(messageOf(err, "Booking failed"))
		return nil
	}

	// Success clears the form; the next booking starts fresh.
	c.draft = nil
	c.renderReceipt(booking)
	return nil
}

func (c *Controller) viewSchedules(ctx context.Context) error {
	schedules, err := c.api.Schedules(ctx)
	if err != nil {
		c.showError("Failed to load schedules")
		return nil
	}
	c.renderRoutesTable("Bus Schedules", schedules)
	return nil
}

func (c *Controller) viewTicket(ctx context.Context) error {
	ticketID, ok := c.prompt("Ticket ID")
	if !ok {
		return nil
	}
	if ticketID == "" {
		c.showError("Please enter a ticket ID")
		return nil
	}

	booking, err := c.api.Booking(ctx, ticketID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			c.showError("Ticket not found")
		} else {
			c.showError("Failed to fetch ticket")
		}
		return nil
	}
	c.renderTicketDetails(booking)

	if c.confirm("Save PDF receipt?") {
		c.saveReceipt(ctx, booking.TicketID)
	}
	return nil
}

func (c *Controller) saveReceipt(ctx context.Context, ticketID string) {
	data, err := c.api.Receipt(ctx, ticketID)
	if err != nil {
		c.showError(messageOf(err, "Failed to download receipt"))
		return
	}
	filename := fmt.Sprintf("TICKET_%s.pdf", ticketID)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		c.showError("Failed to write " + filename)
		return
	}
	c.showSuccess("Receipt saved to " + filename)
}

func (c *Controller) viewCancel(ctx context.Context) error {
	ticketID, ok := c.prompt("Ticket ID to cancel")
	if !ok {
		return nil
	}
	if ticketID == "" {
		c.showError("Please enter a ticket ID")
		return nil
	}
	if !c.confirm(fmt.Sprintf("Are you sure you want to cancel ticket %s?", strings.ToUpper(ticketID))) {
		return nil
	}

	if err := c.api.CancelBooking(ctx, ticketID); err != nil {
		c.showError(messageOf(err, "Cancellation failed"))
		return nil
	}
	c.showSuccess("Ticket cancelled successfully")
	return nil
}

func (c *Controller) viewRoutes(ctx context.Context) error {
	departure, ok := c.prompt("Departure city")
	if !ok {
		return nil
	}
	destination, ok := c.prompt("Destination city")
	if !ok {
		return nil
	}
	if departure == "" || destination == "" {
		c.showError("Please select both departure and destination")
		return nil
	}

	info, err := c.api.RouteInfo(ctx, departure, destination)
	if err != nil {
		c.showError("No direct route available")
		return nil
	}

	fmt.Fprintf(c.out, "\nRoute: %s -> %s\n", departure, destination)
	fmt.Fprintf(c.out, "Fare: %s\n", utils.FormatFare(info.Fare))
	fmt.Fprintf(c.out, "Departure Time: %s\n", info.Schedule)
	return nil
}

func (c *Controller) viewStops(ctx context.Context) error {
	city, ok := c.prompt("City")
	if !ok {
		return nil
	}
	if city == "" {
		c.showError("Please select a city")
		return nil
	}

	stop, err := c.api.Stops(ctx, city)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			c.showError("City not found")
		} else {
			c.showError("Failed to fetch bus stops")
		}
		return nil
	}

	fmt.Fprintf(c.out, "\nBus stops in %s:\n%s\n", stop.City, stop.Stops)
	return nil
}

func (c *Controller) viewAdmin(ctx context.Context) error {
	if !c.session.IsAdminLoggedIn() {
		if !c.adminLogin(ctx) {
			return nil
		}
	}
	return c.adminDashboard(ctx)
}

func (c *Controller) adminLogin(ctx context.Context) bool {
	fmt.Fprintf(c.out, "\n-- Admin login --\n")
	username, ok := c.prompt("Username")
	if !ok {
		return false
	}
	password, ok := c.prompt("Password")
	if !ok {
		return false
	}

	result, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.showError("Invalid credentials")
		return false
	}
	c.session.LoginAdmin(result.Username, result.Token)
	return true
}

func (c *Controller) adminDashboard(ctx context.Context) error {
	fmt.Fprintf(c.out, "\n-- Admin dashboard (%s) --\n", c.session.AdminUsername())

	// Every activation is a fresh read; stats and bookings are never cached.
	stats, err := c.api.Stats(ctx, c.session.AdminToken())
	if err != nil {
		c.showError("Failed to load statistics")
		return nil
	}
	c.renderStats(stats)

	bookings, err := c.api.AllBookings(ctx, c.session.AdminToken())
	if err != nil {
		c.showError("Failed to load bookings")
		return nil
	}
	c.renderBookingsTable(bookings)

	for {
		action, ok := c.prompt("Admin action (routes, fare, report, logout, back)")
		if !ok {
			return nil
		}
		switch strings.ToLower(action) {
		case "routes":
			routes, err := c.api.Routes(ctx, c.session.AdminToken())
			if err != nil {
				c.showError("Failed to load routes")
				continue
			}
			c.renderRoutesTable("Routes", routes)
		case "fare":
			c.adminUpdateFare(ctx)
		case "report":
			stats, err := c.api.Stats(ctx, c.session.AdminToken())
			if err != nil {
				c.showError("Failed to generate report")
				continue
			}
			c.renderReport(stats)
		case "logout":
			if c.confirm("Are you sure you want to logout?") {
				c.session.LogoutAdmin()
				return nil
			}
		case "back", "":
			return nil
		default:
			c.showError("Unknown action")
		}
	}
}

func (c *Controller) adminUpdateFare(ctx context.Context) {
	route, ok := c.prompt("Route name (e.g. Bulawayo to Harare)")
	if !ok || route == "" {
		return
	}
	fareText, ok := c.prompt("New fare")
	if !ok {
		return
	}
	fare, err := strconv.ParseFloat(fareText, 64)
	if err != nil {
		c.showError("Fare must be a number")
		return
	}

	if err := c.api.UpdateRouteFare(ctx, c.session.AdminToken(), route, fare); err != nil {
		c.showError(messageOf(err, "Failed to update route"))
		return
	}
	c.showSuccess("Route updated successfully")
}

// messageOf prefers the server's own error text, falling back to a
// generic message for transport-level failures.
func messageOf(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
