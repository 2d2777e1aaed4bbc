package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/http/middleware"
	"github.com/chikukwa/busbooking/internal/services"
)

// createBookingRequest tolerates quoted and unquoted numbers for age and
// seat; form-driven clients send strings, API clients send ints.
type createBookingRequest struct {
	Name        string      `json:"name"`
	Age         json.Number `json:"age"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Departure   string      `json:"departure"`
	Destination string      `json:"destination"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Seat        json.Number `json:"seat"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Create(services.CreateBookingInput{
		Name:        req.Name,
		Age:         req.Age.String(),
		Phone:       req.Phone,
		Email:       req.Email,
		Departure:   req.Departure,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		Seat:        req.Seat.String(),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:ticketId
func GetBooking(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Get(c.Param("ticketId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:ticketId
func CancelBooking(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if _, err := svc.Cancel(c.Param("ticketId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket cancelled successfully"})
}

// GET /api/bookings/:ticketId/receipt
func GetBookingReceipt(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	svc := services.BookingService{RequestID: reqID}
	booking, err := svc.Get(c.Param("ticketId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: reqID}
	pdfBytes, filename, err := docs.Receipt(booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/admin/bookings
func AdminGetBookings(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	bookings, err := svc.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
