package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"layovermeet/backend/internal/models"
	"layovermeet/backend/internal/travelcode"
)

// RegisterRequest is the registration payload: personal attributes plus the
// raw travel code to validate.
type RegisterRequest struct {
	FirstName     string           `json:"first_name" binding:"required"`
	Age           int              `json:"age" binding:"required"`
	Gender        models.Gender    `json:"gender" binding:"required"`
	OriginCountry string           `json:"origin_country" binding:"required"`
	Languages     []string         `json:"languages" binding:"required"`
	TravelCode    travelcode.Input `json:"travel_code" binding:"required"`
}

// RegisterTraveler validates the travel code, creates the profile and
// returns it with the generated nickname. Matching and group assignment
// happen inside the store as part of creation.
func (h *Handler) RegisterTraveler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itinerary, err := h.Parser.Parse(req.TravelCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	traveler, err := h.Store.CreateTraveler(req.FirstName, req.Age, req.Gender, req.OriginCountry, req.Languages, *itinerary)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, traveler)
}

// GetTraveler returns a profile by id, or by nickname when the ?nickname
// query parameter is used on the collection route.
func (h *Handler) GetTraveler(c *gin.Context) {
	traveler := h.Store.GetTraveler(c.Param("id"))
	if traveler == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
		return
	}
	c.JSON(http.StatusOK, traveler)
}

// FindTravelerByNickname serves GET /travelers?nickname=...
func (h *Handler) FindTravelerByNickname(c *gin.Context) {
	name := c.Query("nickname")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nickname query parameter is required"})
		return
	}
	traveler := h.Store.GetTravelerByNickname(name)
	if traveler == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
		return
	}
	c.JSON(http.StatusOK, traveler)
}

// GetMatches returns the traveler's current match snapshot. The snapshot is
// computed at registration; use RefreshMatches to pick up later arrivals.
func (h *Handler) GetMatches(c *gin.Context) {
	match := h.Store.GetMatches(c.Param("id"))
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no match snapshot for traveler"})
		return
	}
	c.JSON(http.StatusOK, match)
}

// RefreshMatches recomputes and returns the snapshot.
func (h *Handler) RefreshMatches(c *gin.Context) {
	match := h.Store.RefreshMatches(c.Param("id"))
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
		return
	}
	c.JSON(http.StatusOK, match)
}

// GetStats returns store entity counts.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GetStats())
}
