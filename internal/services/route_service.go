package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/repositories"
	"github.com/chikukwa/busbooking/internal/utils"
)

type RouteService struct {
	RouteRepo repositories.RouteRepository
	StopRepo  repositories.StopRepository
	RequestID string
}

// Info resolves fare and schedule for a directed city pair. Unknown city
// and missing direct connection are deliberately the same answer.
func (s RouteService) Info(departure, destination string) (models.RouteInfo, error) {
	if strings.TrimSpace(departure) == "" || strings.TrimSpace(destination) == "" {
		return models.RouteInfo{}, domain.ValidationError{Msg: "missing departure or destination"}
	}

	route, err := s.RouteRepo.GetByName(departure + " to " + destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RouteInfo{}, domain.NotFoundError{Msg: "no direct route available"}
		}
		return models.RouteInfo{}, domain.InternalError{Err: err}
	}

	schedule := route.Schedule
	if schedule == "" {
		schedule = "N/A"
	}
	return models.RouteInfo{Fare: route.Fare, Schedule: schedule}, nil
}

// Schedules lists every route with its departure time, sorted by name.
func (s RouteService) Schedules() ([]models.Route, error) {
	routes, err := s.RouteRepo.ListAll()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	for i := range routes {
		if routes[i].Schedule == "" {
			routes[i].Schedule = "N/A"
		}
	}
	return routes, nil
}

func (s RouteService) Stops(city string) (models.BusStop, error) {
	stop, err := s.StopRepo.GetByCity(city)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BusStop{}, domain.NotFoundError{Msg: "city not found"}
		}
		return models.BusStop{}, domain.InternalError{Err: err}
	}
	return stop, nil
}

// UpdateFare changes a route's price. Existing bookings keep the fare they
// were sold at.
func (s RouteService) UpdateFare(routeName string, fare float64) error {
	if strings.TrimSpace(routeName) == "" {
		return domain.ValidationError{Msg: "missing route or fare"}
	}
	if _, err := s.RouteRepo.GetByName(routeName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Msg: "route not found"}
		}
		return domain.InternalError{Err: err}
	}
	if err := s.RouteRepo.UpdateFare(routeName, fare); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "routes", "update_fare", "route="+routeName)
	return nil
}
