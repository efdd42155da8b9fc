package handlers

import (
	"net/http"

	"barberia/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler returns the services, barbers and time slots on offer.
func CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Get())
}
