package handlers

import (
	"net/http"

	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/services"

	"github.com/gin-gonic/gin"
)

// TourHandler serves tour package browsing and booking.
type TourHandler struct {
	Tours services.TourService
}

// GET /api/tours
func (h TourHandler) List(c *gin.Context) {
	tours, err := h.Tours.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// GET /api/tours/:id
func (h TourHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tour, err := h.Tours.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// POST /api/tours/:id/bookings
func (h TourHandler) Book(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		StartDate string `json:"startDate" binding:"required"`
		People    int    `json:"people" binding:"required"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	rc := middleware.GetSession(c)
	svc := h.Tours
	svc.RequestID = middleware.GetRequestID(c)

	booking, err := svc.Book(int64(rc.UserID), id, body.StartDate, body.People)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}
