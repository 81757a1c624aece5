package lot

import "errors"

// Failure taxonomy of the engine. Every failure is local and recoverable:
// operations return one of these (possibly wrapped) and mirror it as an
// event; nothing is fatal to the engine's state.
var (
	ErrNotInitialized  = errors.New("parking lot has not been created")
	ErrPoolFull        = errors.New("parking lot is full")
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrNotElectric     = errors.New("vehicle is not electric")
)
