package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikukwa/busbooking/internal/domain"
	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/http/middleware"
	"github.com/chikukwa/busbooking/internal/services"
)

type routeInfoRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
}

// POST /api/route-info
func RouteInfo(c *gin.Context) {
	var req routeInfoRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	info, err := svc.Info(req.Departure, req.Destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/schedules
func GetSchedules(c *gin.Context) {
	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	schedules, err := svc.Schedules()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if schedules == nil {
		schedules = []models.Route{}
	}
	c.JSON(http.StatusOK, schedules)
}

// GET /api/stops/:city
func GetStops(c *gin.Context) {
	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	stop, err := svc.Stops(c.Param("city"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// GET /api/admin/routes
func AdminGetRoutes(c *gin.Context) {
	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	routes, err := svc.Schedules()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}
	c.JSON(http.StatusOK, routes)
}

type updateRouteRequest struct {
	Route string   `json:"route"`
	Fare  *float64 `json:"fare"`
}

// PUT /api/admin/routes
func AdminUpdateRoute(c *gin.Context) {
	var req updateRouteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Route == "" || req.Fare == nil {
		RespondDomainError(c, domain.ValidationError{Msg: "missing route or fare"})
		return
	}

	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	if err := svc.UpdateFare(req.Route, *req.Fare); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route updated successfully"})
}
