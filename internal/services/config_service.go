package services

import (
	"strconv"

	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/repositories"
)

// ConfigService assembles the startup snapshot clients load once per
// session: the city list, route/schedule maps, stops and company details.
type ConfigService struct {
	RouteRepo    repositories.RouteRepository
	StopRepo     repositories.StopRepository
	SettingsRepo repositories.SettingsRepository
}

func (s ConfigService) Load() (models.SystemConfig, error) {
	cities, err := s.RouteRepo.Cities()
	if err != nil {
		return models.SystemConfig{}, domain.InternalError{Err: err}
	}

	routes, err := s.RouteRepo.ListAll()
	if err != nil {
		return models.SystemConfig{}, domain.InternalError{Err: err}
	}
	fares := make(map[string]float64, len(routes))
	schedules := make(map[string]string, len(routes))
	for _, r := range routes {
		fares[r.Name] = r.Fare
		if r.Schedule != "" {
			schedules[r.Name] = r.Schedule
		}
	}

	stops, err := s.StopRepo.ListAll()
	if err != nil {
		return models.SystemConfig{}, domain.InternalError{Err: err}
	}
	stopMap := make(map[string]string, len(stops))
	for _, st := range stops {
		stopMap[st.City] = st.Stops
	}

	settings, err := s.SettingsRepo.All()
	if err != nil {
		return models.SystemConfig{}, domain.InternalError{Err: err}
	}
	totalSeats := 50
	if n, err := strconv.Atoi(settings["total_seats"]); err == nil && n > 0 {
		totalSeats = n
	}

	return models.SystemConfig{
		Cities:       cities,
		Routes:       fares,
		Schedules:    schedules,
		Stops:        stopMap,
		TotalSeats:   totalSeats,
		CompanyName:  settings["company_name"],
		ContactPhone: settings["contact_phone"],
		ContactEmail: settings["contact_email"],
	}, nil
}
