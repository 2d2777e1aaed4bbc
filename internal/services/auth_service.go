package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chikukwa/busbooking/internal/repositories"
	"github.com/chikukwa/busbooking/internal/utils"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so login failures do not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type AuthService struct {
	AdminRepo repositories.AdminRepository
	Secret    []byte
	RequestID string
}

// Login verifies admin credentials and issues a session token.
func (s AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	hash, err := s.AdminRepo.GetPasswordHash(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "auth", "login", "username="+username)
	return signed, nil
}

// VerifyToken checks a bearer token and returns the admin username.
func (s AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return "", ErrInvalidCredentials
	}
	return username, nil
}
