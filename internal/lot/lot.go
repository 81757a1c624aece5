package lot

import "fmt"

// ParkingLot is the allocation engine for a single level: two independently
// sized slot pools, capacity and eligibility enforcement, and event fan-out
// to registered observers.
//
// The engine assumes a single logical caller at a time and holds no lock of
// its own. A multi-caller adapter (such as the HTTP layer) must serialize
// access with one mutex per lot held for the duration of each call, because
// the count-then-scan-then-place sequence in Park is not atomic.
type ParkingLot struct {
	level       int
	regular     *SlotPool
	ev          *SlotPool
	initialized bool
	observers   []Observer
}

// New returns an uninitialized engine. Mutating operations fail with
// ErrNotInitialized until Create has run once.
func New() *ParkingLot {
	return &ParkingLot{
		regular: NewSlotPool(0, false),
		ev:      NewSlotPool(0, true),
	}
}

// Initialized reports whether Create has run.
func (l *ParkingLot) Initialized() bool { return l.initialized }

// Level returns the floor level set at creation.
func (l *ParkingLot) Level() int { return l.level }

// Create initializes the lot, or fully resets it when called on an already
// initialized lot: both pools are rebuilt from scratch and anything parked is
// silently discarded.
func (l *ParkingLot) Create(regularCapacity, evCapacity, level int) error {
	if regularCapacity < 0 || evCapacity < 0 {
		return ErrInvalidCapacity
	}
	l.level = level
	l.regular = NewSlotPool(regularCapacity, false)
	l.ev = NewSlotPool(evCapacity, true)
	l.initialized = true
	l.notify(EventLotCreated, fmt.Sprintf(
		"Created parking lot with %d regular slots and %d EV slots on level %d",
		regularCapacity, evCapacity, level))
	return nil
}

func (l *ParkingLot) pool(p Pool) *SlotPool {
	if p == PoolEV {
		return l.ev
	}
	return l.regular
}

// Park classifies the vehicle, assigns the first free slot of the eligible
// pool and returns its 1-based slot number. Public slot numbers are always
// 1-based; storage is 0-based.
func (l *ParkingLot) Park(registration, make, model, color string, isElectric, isMotorcycle bool) (int, error) {
	if !l.initialized {
		l.notify(EventParkingFailed, "Please create parking lot first")
		return 0, ErrNotInitialized
	}

	v := NewVehicle(registration, make, model, color, isElectric, isMotorcycle)
	target := v.Pool()
	pool := l.pool(target)

	if !pool.CanAccept(v) {
		l.notify(EventParkingFailed, fmt.Sprintf("Sorry, %s parking lot is full", target))
		return 0, fmt.Errorf("%s pool: %w", target, ErrPoolFull)
	}

	index, ok := pool.FindFirstEmpty()
	if !ok {
		// CanAccept recounts the same slot array, so a miss here means the
		// array itself is corrupt.
		err := fmt.Errorf("%s pool reports free capacity but has no empty slot", target)
		l.notify(EventParkingFailed, err.Error())
		return 0, err
	}

	pool.Place(index, v)
	slotNumber := index + 1
	l.notify(EventVehicleParked, fmt.Sprintf(
		"Allocated %s slot number: %d for %s - %s", target, slotNumber, v.Kind, registration))
	return slotNumber, nil
}

// Remove frees a 1-based slot number in the chosen pool and returns the
// vehicle that occupied it. A slot that is out of range or already empty
// fails with ErrInvalidSlot either way.
func (l *ParkingLot) Remove(slotNumber int, evPool bool) (*Vehicle, error) {
	target := PoolRegular
	if evPool {
		target = PoolEV
	}

	if !l.initialized {
		l.notify(EventRemovalFailed, "Please create parking lot first")
		return nil, ErrNotInitialized
	}

	v, ok := l.pool(target).Release(slotNumber - 1)
	if !ok {
		l.notify(EventRemovalFailed, fmt.Sprintf("Unable to remove vehicle from %s slot %d", target, slotNumber))
		return nil, fmt.Errorf("%s slot %d: %w", target, slotNumber, ErrInvalidSlot)
	}

	l.notify(EventVehicleRemoved, fmt.Sprintf(
		"Slot number %d (%s) is now free - was %s", slotNumber, target, v.Registration))
	return v, nil
}

// SetCharge updates the stored charge percentage of a parked electric
// vehicle, clamped to [0,100], and returns the vehicle it updated. With
// duplicate registrations the regular pool is scanned first, matching
// FindByRegistration. No event is emitted.
func (l *ParkingLot) SetCharge(registration string, percent int) (*Vehicle, error) {
	for _, p := range []*SlotPool{l.regular, l.ev} {
		for _, v := range p.slots {
			if v != nil && v.Registration == registration {
				if !v.Electric {
					return nil, fmt.Errorf("%s: %w", registration, ErrNotElectric)
				}
				v.SetChargePercent(percent)
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("%s: %w", registration, ErrVehicleNotFound)
}

// Summary describes the lot for status displays.
type Summary struct {
	Level           int `json:"level"`
	RegularCapacity int `json:"regular_capacity"`
	EVCapacity      int `json:"ev_capacity"`
	RegularOccupied int `json:"regular_occupied"`
	EVOccupied      int `json:"ev_occupied"`
}

// Summary returns the current counts for both pools.
func (l *ParkingLot) Summary() Summary {
	return Summary{
		Level:           l.level,
		RegularCapacity: l.regular.Capacity(),
		EVCapacity:      l.ev.Capacity(),
		RegularOccupied: l.regular.OccupiedCount(),
		EVOccupied:      l.ev.OccupiedCount(),
	}
}
