package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxibook/internal/domain"
	"taxibook/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	RiderID         string    `json:"rider_id"`
	DriverID        string    `json:"driver_id,omitempty"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	ScheduledAt     time.Time `json:"scheduled_at"`
}

// PartyResponse is a user summary embedded in booking responses.
type PartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// BookingResponse is the HTTP response for booking data.
type BookingResponse struct {
	ID              string         `json:"id"`
	RiderID         string         `json:"rider_id"`
	DriverID        string         `json:"driver_id,omitempty"`
	PickupLocation  string         `json:"pickup_location"`
	DropoffLocation string         `json:"dropoff_location"`
	ScheduledAt     time.Time      `json:"scheduled_at"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	Rider           *PartyResponse `json:"rider,omitempty"`
	Driver          *PartyResponse `json:"driver,omitempty"`
}

func toBookingResponse(b *domain.BookingDetail) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		RiderID:         b.RiderID,
		DriverID:        b.DriverID,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		ScheduledAt:     b.ScheduledAt,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
	if b.Rider != nil {
		resp.Rider = &PartyResponse{ID: b.Rider.ID, Name: b.Rider.Name, Phone: b.Rider.Phone}
	}
	if b.Driver != nil {
		resp.Driver = &PartyResponse{ID: b.Driver.ID, Name: b.Driver.Name, Phone: b.Driver.Phone}
	}
	return resp
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), service.CreateBookingRequest{
		RiderID:         req.RiderID,
		DriverID:        req.DriverID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		ScheduledAt:     req.ScheduledAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// GetAll handles GET /api/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// Initialized so an empty listing serializes as [] rather than null.
	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}
