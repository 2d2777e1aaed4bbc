package services

import (
	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/repositories"
)

const topRoutesLimit = 5

type StatsService struct {
	BookingRepo repositories.BookingRepository
}

// Stats summarizes the booking ledger for the admin dashboard.
func (s StatsService) Stats() (models.BookingStats, error) {
	stats, err := s.BookingRepo.Stats()
	if err != nil {
		return models.BookingStats{}, domain.InternalError{Err: err}
	}

	top, err := s.BookingRepo.TopRoutes(topRoutesLimit)
	if err != nil {
		return models.BookingStats{}, domain.InternalError{Err: err}
	}
	if top == nil {
		top = []models.RouteCount{}
	}
	stats.TopRoutes = top
	return stats, nil
}
