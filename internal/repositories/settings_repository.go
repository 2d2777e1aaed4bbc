package repositories

import (
	"database/sql"
	"strconv"

	intconfig "github.com/chikukwa/busbooking/internal/config"
)

// SettingsRepository reads the system_config key/value table holding seat
// capacity and company contact details.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db().QueryRow(`SELECT config_value FROM system_config WHERE config_key=?`, key).Scan(&value)
	return value, err
}

func (r SettingsRepository) All() (map[string]string, error) {
	rows, err := r.db().Query(`SELECT config_key, config_value FROM system_config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

// TotalSeats falls back to 50 when the key is absent or malformed.
func (r SettingsRepository) TotalSeats() (int, error) {
	value, err := r.Get("total_seats")
	if err != nil {
		if err == sql.ErrNoRows {
			return 50, nil
		}
		return 0, err
	}
	seats, err := strconv.Atoi(value)
	if err != nil || seats <= 0 {
		return 50, nil
	}
	return seats, nil
}
