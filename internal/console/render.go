package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/utils"
)

func (c *Controller) renderReceipt(b models.Booking) {
	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(c.out, "  %s\n", c.session.Config.CompanyName)
	fmt.Fprintf(c.out, "  BOOKING CONFIRMED\n")
	fmt.Fprintf(c.out, "%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(c.out, "Ticket ID:   %s\n", b.TicketID)
	fmt.Fprintf(c.out, "Passenger:   %s (age %d)\n", b.Name, b.Age)
	fmt.Fprintf(c.out, "Phone:       %s\n", b.Phone)
	if b.Email != "" {
		fmt.Fprintf(c.out, "Email:       %s\n", b.Email)
	}
	fmt.Fprintf(c.out, "Journey:     %s -> %s\n", b.Departure, b.Destination)
	fmt.Fprintf(c.out, "Date:        %s at %s\n", b.Date, b.Time)
	fmt.Fprintf(c.out, "Seat:        %d\n", b.Seat)
	fmt.Fprintf(c.out, "Fare:        %s\n", utils.FormatFare(b.Fare))
	fmt.Fprintf(c.out, "%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(c.out, "Keep your ticket ID safe. You will need it\n")
	fmt.Fprintf(c.out, "to look up or cancel this booking.\n")
}

func (c *Controller) renderTicketDetails(b models.Booking) {
	fmt.Fprintf(c.out, "\nTicket %s [%s]\n", b.TicketID, strings.ToUpper(string(b.Status)))
	fmt.Fprintf(c.out, "Passenger:   %s (age %d)\n", b.Name, b.Age)
	fmt.Fprintf(c.out, "Journey:     %s -> %s\n", b.Departure, b.Destination)
	fmt.Fprintf(c.out, "Date:        %s at %s\n", b.Date, b.Time)
	fmt.Fprintf(c.out, "Seat:        %d\n", b.Seat)
	fmt.Fprintf(c.out, "Fare:        %s\n", utils.FormatFare(b.Fare))
}

func (c *Controller) renderRoutesTable(title string, routes []models.Route) {
	fmt.Fprintf(c.out, "\n%s\n", title)
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tFARE\tDEPARTURE TIME")
	for _, r := range routes {
		schedule := r.Schedule
		if schedule == "" {
			schedule = "N/A"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, utils.FormatFare(r.Fare), schedule)
	}
	w.Flush()
}

func (c *Controller) renderBookingsTable(bookings []models.Booking) {
	fmt.Fprintf(c.out, "\nAll bookings (%d)\n", len(bookings))
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKET\tPASSENGER\tJOURNEY\tDATE\tSEAT\tFARE\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s -> %s\t%s %s\t%d\t%s\t%s\n",
			b.TicketID, b.Name, b.Departure, b.Destination,
			b.Date, b.Time, b.Seat, utils.FormatFare(b.Fare), b.Status)
	}
	w.Flush()
}

func (c *Controller) renderStats(s models.BookingStats) {
	fmt.Fprintf(c.out, "\nTotal bookings: %d  Confirmed: %d  Cancelled: %d  Revenue: %s\n",
		s.TotalBookings, s.Confirmed, s.Cancelled, utils.FormatFare(s.TotalRevenue))
}

func (c *Controller) renderReport(s models.BookingStats) {
	line := strings.Repeat("=", 44)
	fmt.Fprintf(c.out, "\n%s\n", line)
	fmt.Fprintf(c.out, "  %s\n", c.session.Config.CompanyName)
	fmt.Fprintf(c.out, "  BOOKING STATISTICS REPORT\n")
	fmt.Fprintf(c.out, "%s\n", line)
	fmt.Fprintf(c.out, "Total Bookings:     %d\n", s.TotalBookings)
	fmt.Fprintf(c.out, "Confirmed:          %d\n", s.Confirmed)
	fmt.Fprintf(c.out, "Cancelled:          %d\n", s.Cancelled)
	fmt.Fprintf(c.out, "Total Revenue:      %s\n", utils.FormatFare(s.TotalRevenue))
	if s.Confirmed > 0 {
		fmt.Fprintf(c.out, "Avg Fare:           %s\n", utils.FormatFare(s.TotalRevenue/float64(s.Confirmed)))
	}
	fmt.Fprintf(c.out, "\nTop Routes:\n")
	if len(s.TopRoutes) == 0 {
		fmt.Fprintf(c.out, "  (no bookings yet)\n")
	}
	for i, r := range s.TopRoutes {
		fmt.Fprintf(c.out, "  %d. %s (%d bookings)\n", i+1, r.Route, r.Count)
	}
	fmt.Fprintf(c.out, "%s\n", line)
}
