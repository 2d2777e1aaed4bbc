package console

import (
	"strconv"

	"github.com/chikukwa/busbooking/internal/domain/models"
)

// Session holds the per-run client state: the configuration snapshot
// loaded at startup and the transient admin login. Nothing here survives
// a restart, and no booking data is ever kept between views.
type Session struct {
	Config models.SystemConfig

	adminLoggedIn bool
	adminUsername string
	adminToken    string
}

func (s *Session) LoginAdmin(username, token string) {
	s.adminLoggedIn = true
	s.adminUsername = username
	s.adminToken = token
}

func (s *Session) LogoutAdmin() {
	s.adminLoggedIn = false
	s.adminUsername = ""
	s.adminToken = ""
}

func (s *Session) IsAdminLoggedIn() bool { return s.adminLoggedIn }
func (s *Session) AdminUsername() string { return s.adminUsername }
func (s *Session) AdminToken() string    { return s.adminToken }

// SeatOptions lists selectable seat numbers, 1..total_seats.
func (s *Session) SeatOptions() []string {
	seats := make([]string, 0, s.Config.TotalSeats)
	for i := 1; i <= s.Config.TotalSeats; i++ {
		seats = append(seats, strconv.Itoa(i))
	}
	return seats
}
