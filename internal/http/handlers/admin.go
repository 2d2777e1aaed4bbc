package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikukwa/busbooking/internal/http/middleware"
	"github.com/chikukwa/busbooking/internal/services"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key; called once at startup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// AuthVerifier exposes the token check for the admin middleware.
func AuthVerifier() middleware.TokenVerifier {
	return services.AuthService{Secret: jwtSecret}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{Secret: jwtSecret, RequestID: middleware.GetRequestID(c)}
	token, err := svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": req.Username, "token": token})
}

// GET /api/admin/stats
func AdminStats(c *gin.Context) {
	svc := services.StatsService{}
	stats, err := svc.Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
