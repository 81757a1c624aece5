package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"easypark-backend/internal/lot"
	"easypark-backend/internal/notification"
	"easypark-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
//
// The allocation engine is single-caller by contract, so every handler that
// touches it takes mu for the whole call. One coarse lock per lot; the
// count-then-scan-then-place sequence inside Park must not interleave.
type Handler struct {
	mu       sync.Mutex
	lot      *lot.ParkingLot
	store    store.Store
	registry *notification.Registry
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(engine *lot.ParkingLot, s store.Store, registry *notification.Registry, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		lot:      engine,
		store:    s,
		registry: registry,
		webpush:  webpushOptions,
	}
}

// writeEngineError maps the engine's failure taxonomy onto HTTP statuses.
func writeEngineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, lot.ErrNotInitialized), errors.Is(err, lot.ErrPoolFull):
		status = http.StatusConflict
	case errors.Is(err, lot.ErrInvalidSlot), errors.Is(err, lot.ErrVehicleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, lot.ErrInvalidCapacity), errors.Is(err, lot.ErrNotElectric):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
