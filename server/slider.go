package server

import (
	"errors"
	"net/http"

	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (s *Server) addToSlider(c *gin.Context) {
	var req validation.AddSliderRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Image URL is required"); err != nil {
		return
	}

	slider, err := s.stores.Site.AddToSlider(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "This image is already in the homepage slider"})
			return
		}
		s.storeError(c, err, "Settings not found", "Failed to add image to slider")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "homepageSlider": slider})
}

func (s *Server) removeFromSlider(c *gin.Context) {
	var req validation.RemoveSliderRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Slider index is required"); err != nil {
		return
	}

	slider, err := s.stores.Site.RemoveFromSlider(c.Request.Context(), *req.Index)
	if err != nil {
		s.storeError(c, err, "Slider entry not found", "Failed to remove image from slider")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "homepageSlider": slider})
}

// reorderSlider persists the whole reordered list; concurrent reorders are
// last write wins.
func (s *Server) reorderSlider(c *gin.Context) {
	var req validation.ReorderSliderRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Source and destination indices are required"); err != nil {
		return
	}

	slider, err := s.stores.Site.ReorderSlider(c.Request.Context(), *req.From, *req.To)
	if err != nil {
		if errors.Is(err, repository.ErrIndexRange) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid slider positions"})
			return
		}
		s.storeError(c, err, "Settings not found", "Failed to reorder slider")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "homepageSlider": slider})
}
