package catalogcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Daniel-Dotteam/trade-in-front/models"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// respondError maps store errors onto the fixed error-body shape. Unexpected
// failures are logged server-side and the message is not echoed to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("catalog store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// saleTypeFilter reads the optional ?type= query parameter. ok is false when
// the value is present but invalid (a 400 has already been written).
func saleTypeFilter(c *gin.Context) (filter *models.SaleType, ok bool) {
	raw := c.Query("type")
	if raw == "" {
		return nil, true
	}
	t, err := models.ParseSaleType(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &t, true
}
