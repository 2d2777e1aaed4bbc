package services

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	intconfig "github.com/chikukwa/busbooking/internal/config"
	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:        "Tendai Moyo",
		Age:         "30",
		Phone:       "0777123456",
		Departure:   "Harare",
		Destination: "Gweru",
		Date:        time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:        "08:00 AM",
		Seat:        "7",
	}
}

func expectTotalSeats(mock sqlmock.Sqlmock, seats string) {
	mock.ExpectQuery(`SELECT config_value FROM system_config`).
		WithArgs("total_seats").
		WillReturnRows(sqlmock.NewRows([]string{"config_value"}).AddRow(seats))
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	in := validInput()
	in.Phone = ""

	_, err := BookingService{}.Create(in)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "missing required fields" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateBookingRejectsNonNumericAge(t *testing.T) {
	in := validInput()
	in.Age = "thirty"

	_, err := BookingService{}.Create(in)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid age format") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateBookingRejectsAgeOutOfRange(t *testing.T) {
	for _, age := range []string{"0", "121", "-5"} {
		in := validInput()
		in.Age = age
		_, err := BookingService{}.Create(in)
		if !domain.IsValidation(err) {
			t.Fatalf("age %s: expected validation error, got %v", age, err)
		}
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	in := validInput()
	in.Date = "2020-01-01"

	_, err := BookingService{}.Create(in)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "date must be in the future") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateBookingAllowsToday(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	expectTotalSeats(mock, "50")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT route_name, fare, schedule FROM routes`).
		WithArgs("Harare to Gweru").
		WillReturnRows(sqlmock.NewRows([]string{"route_name", "fare", "schedule"}).
			AddRow("Harare to Gweru", 8.0, "08:00 AM"))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	in := validInput()
	in.Date = time.Now().Format("2006-01-02")

	if _, err := (BookingService{}).Create(in); err != nil {
		t.Fatalf("booking for today should be accepted: %v", err)
	}
}

func TestCreateBookingRejectsSeatBeyondCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	expectTotalSeats(mock, "50")

	in := validInput()
	in.Seat = "51"

	_, createErr := BookingService{}.Create(in)
	if !domain.IsValidation(createErr) {
		t.Fatalf("expected validation error, got %v", createErr)
	}
	if !strings.Contains(createErr.Error(), "seat must be between 1 and 50") {
		t.Fatalf("unexpected message: %q", createErr.Error())
	}
}

func TestCreateBookingDuplicateSeatConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	expectTotalSeats(mock, "50")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, createErr := BookingService{}.Create(validInput())
	if !domain.IsConflict(createErr) {
		t.Fatalf("expected conflict error, got %v", createErr)
	}
}

func TestCreateBookingUnknownRouteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	expectTotalSeats(mock, "50")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT route_name, fare, schedule FROM routes`).
		WithArgs("Harare to Gweru").
		WillReturnRows(sqlmock.NewRows([]string{"route_name", "fare", "schedule"}))

	_, createErr := BookingService{}.Create(validInput())
	if !domain.IsNotFound(createErr) {
		t.Fatalf("expected not-found error, got %v", createErr)
	}
	if createErr.Error() != "no direct route available" {
		t.Fatalf("unexpected message: %q", createErr.Error())
	}
}

func TestCreateBookingIssuesConfirmedTicket(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	expectTotalSeats(mock, "50")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT route_name, fare, schedule FROM routes`).
		WithArgs("Harare to Gweru").
		WillReturnRows(sqlmock.NewRows([]string{"route_name", "fare", "schedule"}).
			AddRow("Harare to Gweru", 8.0, "08:00 AM"))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	booking, createErr := BookingService{}.Create(validInput())
	if createErr != nil {
		t.Fatalf("unexpected error: %v", createErr)
	}
	if len(booking.TicketID) != 8 {
		t.Fatalf("ticket ID should be 8 chars, got %q", booking.TicketID)
	}
	if booking.TicketID != strings.ToUpper(booking.TicketID) {
		t.Fatalf("ticket ID should be upper-case, got %q", booking.TicketID)
	}
	if booking.Fare != 8.0 {
		t.Fatalf("fare should come from the route, got %v", booking.Fare)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("new booking should be confirmed, got %q", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUpperCasesTicketID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE ticket_id=\?`).
		WithArgs("AB12CD34").
		WillReturnRows(sqlmock.NewRows([]string{
			"ticket_id", "name", "age", "phone", "email", "departure", "destination",
			"travel_date", "travel_time", "seat", "fare", "status", "booked_at",
		}).AddRow("AB12CD34", "Tendai", 30, "0777", "", "Harare", "Gweru",
			"2026-10-01", "08:00 AM", 7, 8.0, "confirmed", time.Now()))

	if _, err := (BookingService{}).Get("ab12cd34"); err != nil {
		t.Fatalf("lower-case lookup should succeed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUnknownTicketNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE ticket_id=\?`).
		WithArgs("NOPE0000").
		WillReturnRows(sqlmock.NewRows([]string{"ticket_id"}))

	_, getErr := BookingService{}.Get("nope0000")
	if !domain.IsNotFound(getErr) {
		t.Fatalf("expected not-found error, got %v", getErr)
	}
	if getErr.Error() != "ticket not found" {
		t.Fatalf("unexpected message: %q", getErr.Error())
	}
}

func TestCancelIsOneWay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE ticket_id=\?`).
		WithArgs("AB12CD34").
		WillReturnRows(sqlmock.NewRows([]string{
			"ticket_id", "name", "age", "phone", "email", "departure", "destination",
			"travel_date", "travel_time", "seat", "fare", "status", "booked_at",
		}).AddRow("AB12CD34", "Tendai", 30, "0777", "", "Harare", "Gweru",
			"2026-10-01", "08:00 AM", 7, 8.0, "cancelled", time.Now()))

	_, cancelErr := BookingService{}.Cancel("AB12CD34")
	if !domain.IsValidation(cancelErr) {
		t.Fatalf("second cancel should be rejected, got %v", cancelErr)
	}
	if cancelErr.Error() != "ticket already cancelled" {
		t.Fatalf("unexpected message: %q", cancelErr.Error())
	}
}

func TestCancelFlipsConfirmedBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE ticket_id=\?`).
		WithArgs("AB12CD34").
		WillReturnRows(sqlmock.NewRows([]string{
			"ticket_id", "name", "age", "phone", "email", "departure", "destination",
			"travel_date", "travel_time", "seat", "fare", "status", "booked_at",
		}).AddRow("AB12CD34", "Tendai", 30, "0777", "", "Harare", "Gweru",
			"2026-10-01", "08:00 AM", 7, 8.0, "confirmed", time.Now()))
	mock.ExpectExec(`UPDATE bookings SET status=\?`).
		WithArgs("cancelled", "AB12CD34").
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking, cancelErr := BookingService{}.Cancel("ab12cd34")
	if cancelErr != nil {
		t.Fatalf("unexpected error: %v", cancelErr)
	}
	if booking.Status != models.BookingStatusCancelled {
		t.Fatalf("booking should be cancelled, got %q", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
