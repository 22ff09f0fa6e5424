package handlers

import (
	"net/http"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/services"

	"github.com/gin-gonic/gin"
)

// RentalHandler serves vehicle-rental requests.
type RentalHandler struct {
	Rentals services.RentalService
}

// POST /api/rentals
func (h RentalHandler) Create(c *gin.Context) {
	var draft models.RentalDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	rc := middleware.GetSession(c)
	svc := h.Rentals
	svc.RequestID = middleware.GetRequestID(c)

	rental, err := svc.Create(int64(rc.UserID), draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// GET /api/rentals
func (h RentalHandler) List(c *gin.Context) {
	rc := middleware.GetSession(c)
	rentals, err := h.Rentals.ListForUser(int64(rc.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": rentals})
}

// PUT /api/rentals/:id: staff status update.
func (h RentalHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	svc := h.Rentals
	svc.RequestID = middleware.GetRequestID(c)
	rental, err := svc.UpdateStatus(id, body.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}
