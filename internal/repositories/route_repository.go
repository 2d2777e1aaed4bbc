package repositories

import (
	"database/sql"

	intconfig "github.com/chikukwa/busbooking/internal/config"
	"github.com/chikukwa/busbooking/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) GetByName(name string) (models.Route, error) {
	var route models.Route
	err := r.db().QueryRow(`SELECT route_name, fare, schedule FROM routes WHERE route_name=?`, name).
		Scan(&route.Name, &route.Fare, &route.Schedule)
	return route, err
}

func (r RouteRepository) ListAll() ([]models.Route, error) {
	rows, err := r.db().Query(`SELECT route_name, fare, schedule FROM routes ORDER BY route_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(&route.Name, &route.Fare, &route.Schedule); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// Cities returns the unique endpoints of all route names, sorted.
func (r RouteRepository) Cities() ([]string, error) {
	rows, err := r.db().Query(`
        SELECT DISTINCT city FROM (
            SELECT SUBSTRING_INDEX(route_name, ' to ', 1) AS city FROM routes
            UNION
            SELECT SUBSTRING_INDEX(route_name, ' to ', -1) AS city FROM routes
        ) cities
        ORDER BY city
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r RouteRepository) UpdateFare(name string, fare float64) error {
	_, err := r.db().Exec(`UPDATE routes SET fare=? WHERE route_name=?`, fare, name)
	return err
}
