package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListVehicles handles GET /api/vehicles. An optional pool query parameter
// restricts the listing to one pool.
func (h *Handler) ListVehicles(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch c.Query("pool") {
	case "":
		c.JSON(http.StatusOK, gin.H{"regular": h.lot.ListRegular(), "ev": h.lot.ListEV()})
	case "regular":
		c.JSON(http.StatusOK, gin.H{"regular": h.lot.ListRegular()})
	case "ev":
		c.JSON(http.StatusOK, gin.H{"ev": h.lot.ListEV()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "pool must be \"regular\" or \"ev\""})
	}
}

// FindByRegistration handles GET /api/search/registration/:registration.
// A miss is a normal result, not an HTTP error.
func (h *Handler) FindByRegistration(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.JSON(http.StatusOK, h.lot.FindByRegistration(c.Param("registration")))
}

// FindByColor handles GET /api/search/color/:color.
func (h *Handler) FindByColor(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.JSON(http.StatusOK, h.lot.FindByColor(c.Param("color")))
}

// The percentage uses a pointer so an explicit 0 passes validation.
type setChargeRequest struct {
	ChargePercent *int `json:"charge_percent" binding:"required"`
}

// SetCharge handles PATCH /api/vehicles/:registration/charge. Out-of-range
// percentages are clamped to [0,100], not rejected.
func (h *Handler) SetCharge(c *gin.Context) {
	var req setChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	vehicle, err := h.lot.SetCharge(c.Param("registration"), *req.ChargePercent)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// GetEvents handles GET /api/events, returning the newest journal entries
// first.
func (h *Handler) GetEvents(c *gin.Context) {
	limit := defaultEventLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	records, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read journal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": records})
}
