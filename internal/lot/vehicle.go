package lot

// Kind labels a vehicle for display. It carries no behavioral difference in
// the engine.
type Kind string

const (
	KindCar        Kind = "Car"
	KindMotorcycle Kind = "Motorcycle"
)

// Pool identifies one of the two independent slot pools.
type Pool string

const (
	PoolRegular Pool = "regular"
	PoolEV      Pool = "EV"
)

// Classify derives a vehicle's pool membership and display kind from the two
// raw input flags. All four combinations are valid; there is no failure mode.
func Classify(isElectric, isMotorcycle bool) (Pool, Kind) {
	pool := PoolRegular
	if isElectric {
		pool = PoolEV
	}
	kind := KindCar
	if isMotorcycle {
		kind = KindMotorcycle
	}
	return pool, kind
}

// Vehicle is a parked vehicle record. Apart from the stored charge percentage
// it is immutable after creation. A vehicle is owned by the slot it occupies
// and is dropped on removal.
type Vehicle struct {
	Registration  string `json:"registration"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Color         string `json:"color"`
	Electric      bool   `json:"electric"`
	Kind          Kind   `json:"kind"`
	ChargePercent int    `json:"charge_percent"`
}

// NewVehicle builds a vehicle from raw park-request fields. The stored charge
// starts at 0 and is only meaningful for electric vehicles.
func NewVehicle(registration, make, model, color string, isElectric, isMotorcycle bool) *Vehicle {
	_, kind := Classify(isElectric, isMotorcycle)
	return &Vehicle{
		Registration: registration,
		Make:         make,
		Model:        model,
		Color:        color,
		Electric:     isElectric,
		Kind:         kind,
	}
}

// Pool returns the pool this vehicle is eligible for.
func (v *Vehicle) Pool() Pool {
	if v.Electric {
		return PoolEV
	}
	return PoolRegular
}

// SetChargePercent stores the charge level, clamped to [0,100].
func (v *Vehicle) SetChargePercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	v.ChargePercent = percent
}
