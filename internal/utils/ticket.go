package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTicketID issues a short opaque booking identifier: the first 8 hex
// characters of a UUID, upper-cased. Uniqueness is enforced by the
// bookings primary key; at this length collisions are vanishingly rare
// for the volumes a single operator sees.
func NewTicketID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
