package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/repositories"
	"github.com/chikukwa/busbooking/internal/utils"
)

type BookingService struct {
	BookingRepo  repositories.BookingRepository
	RouteRepo    repositories.RouteRepository
	SettingsRepo repositories.SettingsRepository
	RequestID    string
}

// CreateBookingInput carries raw form values. Age and seat stay strings
// until validated, as clients submit them both quoted and unquoted.
type CreateBookingInput struct {
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

// Create runs the full validation chain and issues a confirmed booking.
// Order matters: field presence, age, date, seat capacity, seat conflict,
// then route existence, matching what clients are written against.
func (s BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	required := map[string]string{
		"name":        in.Name,
		"age":         in.Age,
		"phone":       in.Phone,
		"departure":   in.Departure,
		"destination": in.Destination,
		"date":        in.Date,
		"time":        in.Time,
		"seat":        in.Seat,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return models.Booking{}, domain.ValidationError{Msg: "missing required fields"}
		}
	}

	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "age", Msg: "invalid age format"}
	}
	if age < 1 || age > 120 {
		return models.Booking{}, domain.ValidationError{Field: "age", Msg: "invalid age"}
	}

	travelDate, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(in.Date), time.Local)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "date", Msg: "invalid date format, use YYYY-MM-DD"}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if travelDate.Before(today) {
		return models.Booking{}, domain.ValidationError{Field: "date", Msg: "date must be in the future"}
	}

	seat, err := strconv.Atoi(strings.TrimSpace(in.Seat))
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "seat", Msg: "invalid seat number"}
	}
	totalSeats, err := s.SettingsRepo.TotalSeats()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if seat < 1 || seat > totalSeats {
		return models.Booking{}, domain.ValidationError{Field: "seat", Msg: fmt.Sprintf("seat must be between 1 and %d", totalSeats)}
	}

	taken, err := s.BookingRepo.SeatTaken(in.Departure, in.Destination, in.Date, in.Time, seat)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if taken {
		return models.Booking{}, domain.ConflictError{Msg: "this seat is already booked for this journey"}
	}

	route, err := s.RouteRepo.GetByName(in.Departure + " to " + in.Destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Msg: "no direct route available"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	booking := models.Booking{
		TicketID:    utils.NewTicketID(),
		Name:        in.Name,
		Age:         age,
		Phone:       in.Phone,
		Email:       in.Email,
		Departure:   in.Departure,
		Destination: in.Destination,
		Date:        in.Date,
		Time:        in.Time,
		Seat:        seat,
		Fare:        route.Fare,
		Status:      models.BookingStatusConfirmed,
		BookedAt:    now,
	}
	if err := s.BookingRepo.Insert(booking); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create", "ticket_id="+booking.TicketID)
	return booking, nil
}

// Get looks a booking up by ticket ID. IDs are matched upper-cased, so
// lookups are case-insensitive from the caller's perspective.
func (s BookingService) Get(ticketID string) (models.Booking, error) {
	id := strings.ToUpper(strings.TrimSpace(ticketID))
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "ticket_id", Msg: "ticket ID is required"}
	}
	booking, err := s.BookingRepo.GetByTicketID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Msg: "ticket not found"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

// Cancel flips a confirmed booking to cancelled. The transition is one-way;
// repeating it is rejected, never reverted.
func (s BookingService) Cancel(ticketID string) (models.Booking, error) {
	booking, err := s.Get(ticketID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return models.Booking{}, domain.ValidationError{Msg: "ticket already cancelled"}
	}

	if _, err := s.BookingRepo.UpdateStatus(booking.TicketID, models.BookingStatusCancelled); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	booking.Status = models.BookingStatusCancelled

	utils.LogEvent(s.RequestID, "booking", "cancel", "ticket_id="+booking.TicketID)
	return booking, nil
}

func (s BookingService) ListAll() ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return bookings, nil
}
