package lot

import "strings"

// LookupResult is the outcome of a registration search.
type LookupResult struct {
	Found      bool `json:"found"`
	Pool       Pool `json:"pool,omitempty"`
	SlotNumber int  `json:"slot_number,omitempty"`
}

// FindByRegistration scans the regular pool first, then the EV pool, and
// returns the first exact (case-sensitive) match. Duplicate registrations are
// tolerated; only the first hit is reported.
func (l *ParkingLot) FindByRegistration(registration string) LookupResult {
	for _, p := range []Pool{PoolRegular, PoolEV} {
		for i, v := range l.pool(p).slots {
			if v != nil && v.Registration == registration {
				return LookupResult{Found: true, Pool: p, SlotNumber: i + 1}
			}
		}
	}
	return LookupResult{}
}

// ColorMatches groups color-search hits per pool, each list in ascending
// slot order. Both lists may be empty.
type ColorMatches struct {
	Regular []SlotVehicle `json:"regular"`
	EV      []SlotVehicle `json:"ev"`
}

// FindByColor returns all vehicles whose color equals the query,
// case-insensitively.
func (l *ParkingLot) FindByColor(color string) ColorMatches {
	return ColorMatches{
		Regular: matchColor(l.regular, color),
		EV:      matchColor(l.ev, color),
	}
}

func matchColor(p *SlotPool, color string) []SlotVehicle {
	matches := []SlotVehicle{}
	for i, v := range p.slots {
		if v != nil && strings.EqualFold(v.Color, color) {
			matches = append(matches, SlotVehicle{SlotNumber: i + 1, Vehicle: v})
		}
	}
	return matches
}

// ListRegular returns every occupied regular slot in ascending order.
func (l *ParkingLot) ListRegular() []SlotVehicle { return l.regular.Occupants() }

// ListEV returns every occupied EV slot in ascending order.
func (l *ParkingLot) ListEV() []SlotVehicle { return l.ev.Occupants() }
