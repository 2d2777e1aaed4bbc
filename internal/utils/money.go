package utils

import (
	"fmt"
	"math"
)

// FormatFare renders a fare the way tickets print it: whole dollars
// without decimals, cents with two.
func FormatFare(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
