package repositories

import (
	"database/sql"

	intconfig "github.com/chikukwa/busbooking/internal/config"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

type StopRepository struct {
	DB *sql.DB
}

func (r StopRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StopRepository) GetByCity(city string) (models.BusStop, error) {
	var stop models.BusStop
	err := r.db().QueryRow(`SELECT city, stops FROM bus_stops WHERE city=?`, city).
		Scan(&stop.City, &stop.Stops)
	return stop, err
}

func (r StopRepository) ListAll() ([]models.BusStop, error) {
	rows, err := r.db().Query(`SELECT city, stops FROM bus_stops ORDER BY city`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stops []models.BusStop
	for rows.Next() {
		var stop models.BusStop
		if err := rows.Scan(&stop.City, &stop.Stops); err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, rows.Err()
}
