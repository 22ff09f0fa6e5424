package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/routes"
	"giraffecabs/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the customer booking flow.
type BookingHandler struct {
	Bookings services.BookingService
	Payments services.PaymentService
	Docs     services.DocsService
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var draft models.BookingDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	rc := middleware.GetSession(c)
	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)

	booking, err := svc.Create(int64(rc.UserID), draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func (h BookingHandler) List(c *gin.Context) {
	rc := middleware.GetSession(c)
	bookings, err := h.Bookings.ListForUser(int64(rc.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func (h BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rc := middleware.GetSession(c)
	booking, err := h.Bookings.Get(int64(rc.UserID), id, rc.Role == models.RoleAdmin)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PUT /api/bookings/:id: partial update (payment method/status).
func (h BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rc := middleware.GetSession(c)
	if _, err := h.Bookings.Get(int64(rc.UserID), id, rc.Role == models.RoleAdmin); err != nil {
		RespondDomainError(c, err)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "failed to read payload", nil)
		return
	}

	svc := h.Payments
	svc.RequestID = middleware.GetRequestID(c)
	booking, err := svc.ApplyUpdate(id, raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings/:id/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rc := middleware.GetSession(c)
	if _, err := h.Bookings.Get(int64(rc.UserID), id, rc.Role == models.RoleAdmin); err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := h.Docs
	svc.RequestID = middleware.GetRequestID(c)
	pdf, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/estimate?pickup=...&dropoff=...: advisory distance for
// the live form. 0 means unknown; the figure never blocks submission.
func (h BookingHandler) Estimate(c *gin.Context) {
	pickup := c.Query("pickup")
	dropoff := c.Query("dropoff")
	km := routes.Estimate(pickup, dropoff)
	c.JSON(http.StatusOK, gin.H{
		"distanceKm": km,
		"known":      km > 0,
	})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid id", nil)
		return 0, false
	}
	return id, true
}
