package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikukwa/busbooking/internal/services"
)

// GET /api/config
func GetConfig(c *gin.Context) {
	svc := services.ConfigService{}
	cfg, err := svc.Load()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
