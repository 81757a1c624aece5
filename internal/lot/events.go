package lot

// EventType tags a state-change announcement from the engine.
type EventType string

const (
	EventLotCreated     EventType = "lot_created"
	EventVehicleParked  EventType = "vehicle_parked"
	EventVehicleRemoved EventType = "vehicle_removed"
	EventParkingFailed  EventType = "parking_failed"
	EventRemovalFailed  EventType = "removal_failed"
)

// Observer is the engine's only external boundary. OnEvent runs synchronously
// on the mutating goroutine, in registration order. Implementations must not
// block; the engine does not guard against panics escaping an observer.
//
// Events carry a type tag and a free-text message, nothing more. Observers
// needing richer data query the engine directly.
type Observer interface {
	OnEvent(eventType EventType, message string)
}

// AttachObserver registers an observer. Registration order is notification
// order, and attaching the same observer twice is a no-op.
func (l *ParkingLot) AttachObserver(o Observer) {
	for _, existing := range l.observers {
		if existing == o {
			return
		}
	}
	l.observers = append(l.observers, o)
}

func (l *ParkingLot) notify(eventType EventType, message string) {
	for _, o := range l.observers {
		o.OnEvent(eventType, message)
	}
}
