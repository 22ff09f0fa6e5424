package handlers

import (
	"net/http"

	"giraffecabs/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GET /api/services: the bookable service catalog with rate cards, for the
// booking form.
func Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": pricing.Services()})
}
