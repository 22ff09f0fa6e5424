package handlers

import (
	"net/http"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/repositories"

	"github.com/gin-gonic/gin"
)

// VehicleHandler serves the provider onboarding portal and the fleet list.
type VehicleHandler struct {
	Vehicles repositories.VehicleRepository
}

// GET /api/vehicles?q=ABC
func (h VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.Vehicles.List(c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// POST /api/vehicles: provider submission, enters pending review.
func (h VehicleHandler) Create(c *gin.Context) {
	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	rc := middleware.GetSession(c)
	vehicle, err := h.Vehicles.Create(int64(rc.UserID), payload, string(domain.StatusPending))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// PUT /api/vehicles/:id
func (h VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ownerOrAdmin(c, id) {
		return
	}

	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := h.Vehicles.Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	vehicle, err := h.Vehicles.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DELETE /api/vehicles/:id
func (h VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ownerOrAdmin(c, id) {
		return
	}
	if err := h.Vehicles.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h VehicleHandler) ownerOrAdmin(c *gin.Context, id int64) bool {
	rc := middleware.GetSession(c)
	if rc.Role == models.RoleAdmin {
		return true
	}
	vehicle, err := h.Vehicles.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return false
	}
	if vehicle.OwnerID != int64(rc.UserID) {
		respondError(c, http.StatusForbidden, "forbidden", "not your vehicle", nil)
		return false
	}
	return true
}
