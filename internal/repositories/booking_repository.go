package repositories

import (
	"database/sql"

	intconfig "github.com/chikukwa/busbooking/internal/config"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `ticket_id, name, age, phone, email, departure, destination, travel_date, travel_time, seat, fare, status, booked_at`

func (r BookingRepository) Insert(b models.Booking) error {
	_, err := r.db().Exec(`
        INSERT INTO bookings (ticket_id, name, age, phone, email, departure, destination, travel_date, travel_time, seat, fare, status, booked_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, b.TicketID, b.Name, b.Age, b.Phone, b.Email, b.Departure, b.Destination, b.Date, b.Time, b.Seat, b.Fare, string(b.Status), b.BookedAt)
	return err
}

func (r BookingRepository) GetByTicketID(ticketID string) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE ticket_id=?`, ticketID)
	return scanBooking(row)
}

// UpdateStatus reports whether a row actually changed.
func (r BookingRepository) UpdateStatus(ticketID string, status models.BookingStatus) (bool, error) {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE ticket_id=?`, string(status), ticketID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// SeatTaken checks for a non-cancelled booking holding the same seat on the
// same journey.
func (r BookingRepository) SeatTaken(departure, destination, date, timeOfDay string, seat int) (bool, error) {
	var count int
	err := r.db().QueryRow(`
        SELECT COUNT(*) FROM bookings
        WHERE departure=? AND destination=? AND travel_date=? AND travel_time=? AND seat=? AND status <> 'cancelled'
    `, departure, destination, date, timeOfDay, seat).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY booked_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r BookingRepository) Stats() (models.BookingStats, error) {
	var s models.BookingStats
	err := r.db().QueryRow(`
        SELECT
            COUNT(*),
            COALESCE(SUM(CASE WHEN status='confirmed' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN status='cancelled' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN status='confirmed' THEN fare ELSE 0 END), 0)
        FROM bookings
    `).Scan(&s.TotalBookings, &s.Confirmed, &s.Cancelled, &s.TotalRevenue)
	return s, err
}

func (r BookingRepository) TopRoutes(limit int) ([]models.RouteCount, error) {
	rows, err := r.db().Query(`
        SELECT CONCAT(departure, ' to ', destination) AS route, COUNT(*) AS cnt
        FROM bookings
        WHERE status='confirmed'
        GROUP BY departure, destination
        ORDER BY cnt DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []models.RouteCount
	for rows.Next() {
		var rc models.RouteCount
		if err := rows.Scan(&rc.Route, &rc.Count); err != nil {
			return nil, err
		}
		top = append(top, rc)
	}
	return top, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var status string
	if err := row.Scan(
		&b.TicketID,
		&b.Name,
		&b.Age,
		&b.Phone,
		&b.Email,
		&b.Departure,
		&b.Destination,
		&b.Date,
		&b.Time,
		&b.Seat,
		&b.Fare,
		&status,
		&b.BookedAt,
	); err != nil {
		return models.Booking{}, err
	}
	b.Status = models.BookingStatus(status)
	return b, nil
}
