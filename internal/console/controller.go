package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chikukwa/busbooking/internal/client"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

// API is the slice of the booking client the console drives. *client.Client
// satisfies it.
type API interface {
	Config(ctx context.Context) (models.SystemConfig, error)
	RouteInfo(ctx context.Context, departure, destination string) (models.RouteInfo, error)
	CreateBooking(ctx context.Context, req client.BookingRequest) (models.Booking, error)
	Booking(ctx context.Context, ticketID string) (models.Booking, error)
	CancelBooking(ctx context.Context, ticketID string) error
	Receipt(ctx context.Context, ticketID string) ([]byte, error)
	Schedules(ctx context.Context) ([]models.Route, error)
	Stops(ctx context.Context, city string) (models.BusStop, error)
	Login(ctx context.Context, username, password string) (client.LoginResult, error)
	Stats(ctx context.Context, token string) (models.BookingStats, error)
	AllBookings(ctx context.Context, token string) ([]models.Booking, error)
	Routes(ctx context.Context, token string) ([]models.Route, error)
	UpdateRouteFare(ctx context.Context, token, route string, fare float64) error
}

type viewFunc func(ctx context.Context) error

// Controller owns the view dispatch table. Each named view re-fetches the
// data it renders on every activation; nothing is cached between views.
type Controller struct {
	api     API
	session *Session
	in      *bufio.Scanner
	out     io.Writer
	views   map[string]viewFunc

	// draft survives a failed submit so the user can correct and resend.
	draft *bookingDraft
}

func NewController(api API, in io.Reader, out io.Writer) *Controller {
	c := &Controller{
		api:     api,
		session: &Session{},
		in:      bufio.NewScanner(in),
		out:     out,
	}
	c.views = map[string]viewFunc{
		"book":      c.viewBook,
		"schedules": c.viewSchedules,
		"ticket":    c.viewTicket,
		"cancel":    c.viewCancel,
		"routes":    c.viewRoutes,
		"stops":     c.viewStops,
		"admin":     c.viewAdmin,
	}
	return c
}

func (c *Controller) Session() *Session { return c.session }

// ViewNames lists the dispatchable views, sorted for stable menus.
func (c *Controller) ViewNames() []string {
	names := make([]string, 0, len(c.views))
	for name := range c.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch activates a view by name.
func (c *Controller) Dispatch(ctx context.Context, name string) error {
	view, ok := c.views[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return view(ctx)
}

// Run loads the configuration once, then loops over the main menu until
// the user quits or input ends.
func (c *Controller) Run(ctx context.Context) error {
	cfg, err := c.api.Config(ctx)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	c.session.Config = cfg

	fmt.Fprintf(c.out, "\n%s\n", cfg.CompanyName)
	if cfg.ContactPhone != "" || cfg.ContactEmail != "" {
		fmt.Fprintf(c.out, "%s  %s\n", cfg.ContactPhone, cfg.ContactEmail)
	}

	for {
		fmt.Fprintf(c.out, "\nViews: %s, quit\n", strings.Join(c.ViewNames(), ", "))
		choice, ok := c.prompt("Select view")
		if !ok || choice == "quit" || choice == "q" {
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}
		if choice == "" {
			continue
		}
		if err := c.Dispatch(ctx, choice); err != nil {
			c.showError(err.Error())
		}
	}
}

// prompt reads one trimmed line; ok is false when input is exhausted.
func (c *Controller) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptDefault keeps the previous value when the user just hits enter.
func (c *Controller) promptDefault(label, def string) (string, bool) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	value, ok := c.prompt(label)
	if !ok {
		return "", false
	}
	if value == "" {
		return def, true
	}
	return value, true
}

// confirm asks a yes/no question; anything but y/yes is a no.
func (c *Controller) confirm(question string) bool {
	answer, ok := c.prompt(question + " (y/N)")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (c *Controller) showError(message string) {
	fmt.Fprintf(c.out, "ERROR: %s\n", message)
}

func (c *Controller) showSuccess(message string) {
	fmt.Fprintf(c.out, "OK: %s\n", message)
}
