package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedData mirrors seed.yaml: the route network, stop descriptions,
// company details and admin accounts the system starts with.
type SeedData struct {
	Company struct {
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
		Email string `yaml:"email"`
	} `yaml:"company"`
	TotalSeats int `yaml:"total_seats"`
	Routes     []struct {
		Route    string  `yaml:"route"`
		Fare     float64 `yaml:"fare"`
		Schedule string  `yaml:"schedule"`
	} `yaml:"routes"`
	Stops  map[string]string `yaml:"stops"`
	Admins []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admins"`
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		ticket_id   VARCHAR(16) PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		age         INT NOT NULL,
		phone       VARCHAR(32) NOT NULL,
		email       VARCHAR(100) NOT NULL DEFAULT '',
		departure   VARCHAR(64) NOT NULL,
		destination VARCHAR(64) NOT NULL,
		travel_date VARCHAR(10) NOT NULL,
		travel_time VARCHAR(16) NOT NULL,
		seat        INT NOT NULL,
		fare        DECIMAL(8,2) NOT NULL,
		status      VARCHAR(16) NOT NULL DEFAULT 'confirmed',
		booked_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		route_name VARCHAR(140) PRIMARY KEY,
		fare       DECIMAL(8,2) NOT NULL,
		schedule   VARCHAR(32) NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bus_stops (
		city  VARCHAR(64) PRIMARY KEY,
		stops TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS system_config (
		config_key   VARCHAR(64) PRIMARY KEY,
		config_value VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		username      VARCHAR(64) PRIMARY KEY,
		password_hash VARCHAR(100) NOT NULL
	)`,
}

// EnsureSchema creates missing tables. Existing tables are left alone.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedFromFile loads the seed dataset into empty tables. Each table is
// seeded independently, so a partially initialized database is completed
// rather than overwritten.
func SeedFromFile(db *sql.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	if empty, err := tableEmpty(db, "routes"); err != nil {
		return err
	} else if empty {
		for _, r := range seed.Routes {
			if _, err := db.Exec(`INSERT INTO routes (route_name, fare, schedule) VALUES (?, ?, ?)`, r.Route, r.Fare, r.Schedule); err != nil {
				return fmt.Errorf("seed route %q: %w", r.Route, err)
			}
		}
		log.Printf("seeded %d routes", len(seed.Routes))
	}

	if empty, err := tableEmpty(db, "bus_stops"); err != nil {
		return err
	} else if empty {
		for city, stops := range seed.Stops {
			if _, err := db.Exec(`INSERT INTO bus_stops (city, stops) VALUES (?, ?)`, city, stops); err != nil {
				return fmt.Errorf("seed stops for %q: %w", city, err)
			}
		}
		log.Printf("seeded stops for %d cities", len(seed.Stops))
	}

	if empty, err := tableEmpty(db, "system_config"); err != nil {
		return err
	} else if empty {
		values := map[string]string{
			"total_seats":   fmt.Sprintf("%d", seed.TotalSeats),
			"company_name":  seed.Company.Name,
			"contact_phone": seed.Company.Phone,
			"contact_email": seed.Company.Email,
		}
		for key, value := range values {
			if _, err := db.Exec(`INSERT INTO system_config (config_key, config_value) VALUES (?, ?)`, key, value); err != nil {
				return fmt.Errorf("seed config %q: %w", key, err)
			}
		}
	}

	if empty, err := tableEmpty(db, "admin_users"); err != nil {
		return err
	} else if empty {
		for _, a := range seed.Admins {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}
			if _, err := db.Exec(`INSERT INTO admin_users (username, password_hash) VALUES (?, ?)`, a.Username, string(hash)); err != nil {
				return fmt.Errorf("seed admin %q: %w", a.Username, err)
			}
		}
		log.Printf("seeded %d admin accounts", len(seed.Admins))
	}

	return nil
}

func tableEmpty(db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}
