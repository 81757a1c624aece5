package lot

// SlotPool is a fixed-capacity ordered sequence of optional vehicle
// occupants. Slot indices are stable: releasing a slot leaves a hole, later
// occupants never shift down.
type SlotPool struct {
	ev    bool
	slots []*Vehicle
}

// NewSlotPool builds an empty pool. A capacity of 0 is valid; such a pool
// simply never accepts vehicles.
func NewSlotPool(capacity int, ev bool) *SlotPool {
	return &SlotPool{ev: ev, slots: make([]*Vehicle, capacity)}
}

// Capacity returns the fixed slot count set at construction.
func (p *SlotPool) Capacity() int { return len(p.slots) }

// OccupiedCount recounts the slot array on every call so it can never drift
// from the actual occupancy.
func (p *SlotPool) OccupiedCount() int {
	n := 0
	for _, v := range p.slots {
		if v != nil {
			n++
		}
	}
	return n
}

// CanAccept reports whether the vehicle belongs in this pool and the pool
// still has room.
func (p *SlotPool) CanAccept(v *Vehicle) bool {
	return v.Electric == p.ev && p.OccupiedCount() < len(p.slots)
}

// FindFirstEmpty returns the lowest-index empty slot. Strictly first-fit,
// never best-fit or round-robin.
func (p *SlotPool) FindFirstEmpty() (int, bool) {
	for i, v := range p.slots {
		if v == nil {
			return i, true
		}
	}
	return -1, false
}

// Place puts a vehicle into an empty slot. The index always comes from
// FindFirstEmpty, so no bounds failure is defined here.
func (p *SlotPool) Place(index int, v *Vehicle) {
	p.slots[index] = v
}

// Release clears the slot at a 0-based index and returns its occupant. An
// out-of-range index and an already-empty slot collapse into the same
// failure; callers cannot tell them apart.
func (p *SlotPool) Release(index int) (*Vehicle, bool) {
	if index < 0 || index >= len(p.slots) || p.slots[index] == nil {
		return nil, false
	}
	v := p.slots[index]
	p.slots[index] = nil
	return v, true
}

// SlotVehicle pairs a 1-based slot number with its occupant.
type SlotVehicle struct {
	SlotNumber int      `json:"slot_number"`
	Vehicle    *Vehicle `json:"vehicle"`
}

// Occupants lists all occupied slots in ascending slot-number order.
func (p *SlotPool) Occupants() []SlotVehicle {
	out := []SlotVehicle{}
	for i, v := range p.slots {
		if v != nil {
			out = append(out, SlotVehicle{SlotNumber: i + 1, Vehicle: v})
		}
	}
	return out
}
