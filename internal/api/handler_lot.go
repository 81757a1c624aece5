package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"easypark-backend/internal/lot"
	"easypark-backend/internal/report"
)

// Capacities use pointers so that an explicit 0 is distinguishable from a
// missing field; a pool of size 0 is valid.
type createLotRequest struct {
	RegularCapacity *int `json:"regular_capacity" binding:"required"`
	EVCapacity      *int `json:"ev_capacity" binding:"required"`
	Level           int  `json:"level"`
}

// CreateLot handles POST /api/lot. Creating over an existing lot resets it
// and discards everything parked.
func (h *Handler) CreateLot(c *gin.Context) {
	var req createLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.lot.Create(*req.RegularCapacity, *req.EVCapacity, req.Level); err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.lot.Summary())
}

// GetLot handles GET /api/lot.
func (h *Handler) GetLot(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.lot.Initialized() {
		c.JSON(http.StatusConflict, gin.H{"error": "parking lot has not been created"})
		return
	}
	c.JSON(http.StatusOK, h.lot.Summary())
}

type parkRequest struct {
	Registration string `json:"registration" binding:"required"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	Electric     bool   `json:"electric"`
	Motorcycle   bool   `json:"motorcycle"`
}

// ParkVehicle handles POST /api/vehicles.
func (h *Handler) ParkVehicle(c *gin.Context) {
	var req parkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration := strings.TrimSpace(req.Registration)
	if registration == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration must not be blank"})
		return
	}
	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = "Unknown"
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	slot, err := h.lot.Park(registration, strings.TrimSpace(req.Make), strings.TrimSpace(req.Model), color, req.Electric, req.Motorcycle)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	// The pool comes from the request flags, not a registration lookup:
	// registrations are not unique, so a lookup can hit a different vehicle
	// in the other pool.
	pool, kind := lot.Classify(req.Electric, req.Motorcycle)
	c.JSON(http.StatusCreated, gin.H{
		"slot_number": slot,
		"pool":        pool,
		"kind":        kind,
	})
}

type removeRequest struct {
	SlotNumber int  `json:"slot_number" binding:"required,min=1"`
	EVSlot     bool `json:"ev_slot"`
}

// RemoveVehicle handles DELETE /api/vehicles.
func (h *Handler) RemoveVehicle(c *gin.Context) {
	var req removeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	vehicle, err := h.lot.Remove(req.SlotNumber, req.EVSlot)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// GetLotReport handles GET /api/lot/report with the plain-text status tables.
func (h *Handler) GetLotReport(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.lot.Initialized() {
		c.JSON(http.StatusConflict, gin.H{"error": "parking lot has not been created"})
		return
	}
	c.String(http.StatusOK, report.Status(h.lot.ListRegular(), h.lot.ListEV(), h.lot.Level()))
}

// GetChargeReport handles GET /api/lot/charges.
func (h *Handler) GetChargeReport(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.lot.Initialized() {
		c.JSON(http.StatusConflict, gin.H{"error": "parking lot has not been created"})
		return
	}
	c.String(http.StatusOK, report.ChargeStatus(h.lot.ListEV(), h.lot.Level()))
}
