package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/catalog"
)

// ListCars returns the selectable car catalog for the form.
func ListCars(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cars": catalog.Cars()})
}

// ListTracks returns the selectable track catalog for the form.
func ListTracks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tracks": catalog.Tracks()})
}
