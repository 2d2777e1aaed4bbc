package repositories

import (
	"database/sql"

	intconfig "github.com/chikukwa/busbooking/internal/config"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminRepository) GetPasswordHash(username string) (string, error) {
	var hash string
	err := r.db().QueryRow(`SELECT password_hash FROM admin_users WHERE username=?`, username).Scan(&hash)
	return hash, err
}
