package lot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures every event for assertions.
type recordingObserver struct {
	types    []EventType
	messages []string
}

func (r *recordingObserver) OnEvent(eventType EventType, message string) {
	r.types = append(r.types, eventType)
	r.messages = append(r.messages, message)
}

func newTestLot(t *testing.T, regular, ev int) (*ParkingLot, *recordingObserver) {
	t.Helper()
	l := New()
	obs := &recordingObserver{}
	l.AttachObserver(obs)
	require.NoError(t, l.Create(regular, ev, 1))
	return l, obs
}

func TestCreate_EmptyPools(t *testing.T) {
	testCases := []struct {
		name        string
		regular, ev int
	}{
		{name: "both zero", regular: 0, ev: 0},
		{name: "regular only", regular: 5, ev: 0},
		{name: "both sized", regular: 3, ev: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			require.NoError(t, l.Create(tc.regular, tc.ev, 1))

			s := l.Summary()
			assert.Equal(t, 0, s.RegularOccupied)
			assert.Equal(t, 0, s.EVOccupied)
			assert.Equal(t, tc.regular, s.RegularCapacity)
			assert.Equal(t, tc.ev, s.EVCapacity)
		})
	}
}

func TestCreate_NegativeCapacity(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.Create(-1, 0, 1), ErrInvalidCapacity)
	assert.ErrorIs(t, l.Create(0, -1, 1), ErrInvalidCapacity)
	assert.False(t, l.Initialized())
}

func TestCreate_ResetDiscardsVehicles(t *testing.T) {
	l, obs := newTestLot(t, 2, 1)

	_, err := l.Park("ABC123", "Toyota", "Corolla", "Red", false, false)
	require.NoError(t, err)

	// Re-creating an initialized lot is allowed and silently drops everything.
	require.NoError(t, l.Create(4, 2, 3))
	assert.Equal(t, Summary{Level: 3, RegularCapacity: 4, EVCapacity: 2}, l.Summary())
	assert.False(t, l.FindByRegistration("ABC123").Found)
	assert.Equal(t, EventLotCreated, obs.types[len(obs.types)-1])
}

func TestPark_NotInitialized(t *testing.T) {
	l := New()
	obs := &recordingObserver{}
	l.AttachObserver(obs)

	_, err := l.Park("ABC123", "Toyota", "Corolla", "Red", false, false)
	assert.ErrorIs(t, err, ErrNotInitialized)
	require.Len(t, obs.types, 1)
	assert.Equal(t, EventParkingFailed, obs.types[0])
	assert.Equal(t, "Please create parking lot first", obs.messages[0])
}

func TestPark_AssignsPoolsIndependently(t *testing.T) {
	l, obs := newTestLot(t, 2, 1)

	slot, err := l.Park("ABC123", "Toyota", "Corolla", "Red", false, false)
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	slot, err = l.Park("XYZ999", "Tesla", "Model3", "White", true, false)
	require.NoError(t, err)
	assert.Equal(t, 1, slot, "EV pool numbering is independent of the regular pool")

	slot, err = l.Park("DEF456", "Honda", "Civic", "Blue", false, false)
	require.NoError(t, err)
	assert.Equal(t, 2, slot)

	assert.Equal(t, EventVehicleParked, obs.types[len(obs.types)-1])
	assert.Equal(t, "Allocated regular slot number: 2 for Car - DEF456", obs.messages[len(obs.messages)-1])
}

func TestPark_PoolFull(t *testing.T) {
	l, obs := newTestLot(t, 2, 1)

	for _, reg := range []string{"A1", "A2"} {
		_, err := l.Park(reg, "", "", "", false, false)
		require.NoError(t, err)
	}

	_, err := l.Park("A3", "", "", "", false, false)
	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, "Sorry, regular parking lot is full", obs.messages[len(obs.messages)-1])

	// The EV pool still has room; the failure names the right pool.
	_, err = l.Park("E1", "", "", "", true, false)
	require.NoError(t, err)
	_, err = l.Park("E2", "", "", "", true, true)
	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, "Sorry, EV parking lot is full", obs.messages[len(obs.messages)-1])
}

func TestPark_ZeroCapacityPoolAlwaysFull(t *testing.T) {
	l, _ := newTestLot(t, 0, 3)

	_, err := l.Park("ABC123", "", "", "", false, false)
	assert.ErrorIs(t, err, ErrPoolFull)

	// Regardless of EV pool state.
	_, err = l.Park("EV1", "", "", "", true, false)
	require.NoError(t, err)
	_, err = l.Park("ABC124", "", "", "", false, false)
	assert.ErrorIs(t, err, ErrPoolFull)
}

func TestPark_ReusesFreedSlot(t *testing.T) {
	l, _ := newTestLot(t, 3, 0)

	for _, reg := range []string{"A1", "A2", "A3"} {
		_, err := l.Park(reg, "", "", "", false, false)
		require.NoError(t, err)
	}

	_, err := l.Remove(2, false)
	require.NoError(t, err)

	slot, err := l.Park("B1", "", "", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, 2, slot, "first-fit must reuse the freed hole")
}

func TestRemove(t *testing.T) {
	l, obs := newTestLot(t, 2, 1)
	_, err := l.Park("ABC123", "Toyota", "Corolla", "Red", false, false)
	require.NoError(t, err)

	v, err := l.Remove(1, false)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", v.Registration)
	assert.Equal(t, EventVehicleRemoved, obs.types[len(obs.types)-1])
	assert.Equal(t, "Slot number 1 (regular) is now free - was ABC123", obs.messages[len(obs.messages)-1])
}

func TestRemove_InvalidSlot(t *testing.T) {
	l, obs := newTestLot(t, 2, 1)

	testCases := []struct {
		name   string
		slot   int
		evPool bool
	}{
		{name: "empty slot", slot: 1, evPool: false},
		{name: "slot zero", slot: 0, evPool: false},
		{name: "past capacity", slot: 3, evPool: false},
		{name: "empty ev slot", slot: 1, evPool: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := l.Remove(tc.slot, tc.evPool)
			assert.ErrorIs(t, err, ErrInvalidSlot)
			assert.Nil(t, v)
			assert.Equal(t, EventRemovalFailed, obs.types[len(obs.types)-1])
		})
	}
}

func TestRemove_FailedRemovalIsIdempotent(t *testing.T) {
	l, obs := newTestLot(t, 2, 0)
	_, err := l.Park("ABC123", "", "", "", false, false)
	require.NoError(t, err)

	_, err = l.Remove(1, false)
	require.NoError(t, err)

	// Removing the same slot again fails identically both times and never
	// emits another vehicle_removed.
	removedEvents := countEvents(obs, EventVehicleRemoved)
	for i := 0; i < 2; i++ {
		_, err = l.Remove(1, false)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	}
	assert.Equal(t, removedEvents, countEvents(obs, EventVehicleRemoved))
}

func countEvents(obs *recordingObserver, eventType EventType) int {
	n := 0
	for _, et := range obs.types {
		if et == eventType {
			n++
		}
	}
	return n
}

func TestSetCharge(t *testing.T) {
	l, _ := newTestLot(t, 1, 1)
	_, err := l.Park("EV1", "Tesla", "ModelY", "Black", true, false)
	require.NoError(t, err)
	_, err = l.Park("CAR1", "Ford", "Focus", "Grey", false, false)
	require.NoError(t, err)

	v, err := l.SetCharge("EV1", 150)
	require.NoError(t, err)
	assert.Same(t, l.ListEV()[0].Vehicle, v)
	assert.Equal(t, 100, v.ChargePercent)

	v, err = l.SetCharge("EV1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, v.ChargePercent)

	_, err = l.SetCharge("CAR1", 50)
	assert.ErrorIs(t, err, ErrNotElectric)
	_, err = l.SetCharge("NOPE", 50)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestSetCharge_DuplicateRegistrationScansRegularFirst(t *testing.T) {
	l, _ := newTestLot(t, 1, 1)
	_, err := l.Park("DUP", "Ford", "Focus", "Grey", false, false)
	require.NoError(t, err)
	_, err = l.Park("DUP", "Tesla", "ModelY", "Black", true, false)
	require.NoError(t, err)

	// Same scan order as FindByRegistration: the regular-pool occupant is
	// hit first, and it is not electric.
	_, err = l.SetCharge("DUP", 50)
	assert.ErrorIs(t, err, ErrNotElectric)
	assert.Equal(t, 0, l.ListEV()[0].Vehicle.ChargePercent)
}

func TestAttachObserver_DuplicateIgnored(t *testing.T) {
	l := New()
	obs := &recordingObserver{}
	l.AttachObserver(obs)
	l.AttachObserver(obs)

	require.NoError(t, l.Create(1, 1, 1))
	assert.Len(t, obs.types, 1, "a doubly attached observer must only be notified once")
}

func TestObservers_NotifiedInRegistrationOrder(t *testing.T) {
	l := New()
	var order []string
	first := &orderedObserver{name: "first", order: &order}
	second := &orderedObserver{name: "second", order: &order}
	l.AttachObserver(first)
	l.AttachObserver(second)

	require.NoError(t, l.Create(1, 0, 1))
	assert.Equal(t, []string{"first", "second"}, order)
}

type orderedObserver struct {
	name  string
	order *[]string
}

func (o *orderedObserver) OnEvent(EventType, string) {
	*o.order = append(*o.order, o.name)
}
