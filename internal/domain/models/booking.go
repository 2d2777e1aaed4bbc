package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one issued ticket. TicketID is the public identifier
// passengers quote when viewing or cancelling.
type Booking struct {
	TicketID    string        `json:"ticket_id"`
	Name        string        `json:"name"`
	Age         int           `json:"age"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	Departure   string        `json:"departure"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Seat        int           `json:"seat"`
	Fare        float64       `json:"fare"`
	Status      BookingStatus `json:"status"`
	BookedAt    time.Time     `json:"booked_at"`
}

// BookingStats is the admin dashboard summary. Revenue counts confirmed
// bookings only.
type BookingStats struct {
	TotalBookings int          `json:"total_bookings"`
	Confirmed     int          `json:"confirmed"`
	Cancelled     int          `json:"cancelled"`
	TotalRevenue  float64      `json:"total_revenue"`
	TopRoutes     []RouteCount `json:"top_routes"`
}

type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}
