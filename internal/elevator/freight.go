package elevator

import (
	"slices"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
)

// FreightElevator counts load as weight and is barred from its restricted floors.
type FreightElevator struct {
	car
	restrictedFloors []int
}

// NewFreight defaults the restricted set to DefaultFreightRestrictedFloor when
// none are given.
func NewFreight(id int, weightCapacity int, maxFloors int, restrictedFloors ...int) (*FreightElevator, error) {
	const op = "elevator.NewFreight"
	c, err := newCar(op, id, weightCapacity, maxFloors)
	if err != nil {
		return nil, err
	}

	if len(restrictedFloors) == 0 {
		restrictedFloors = []int{elevconsts.DefaultFreightRestrictedFloor}
	}
	for _, floor := range restrictedFloors {
		if floor < elevconsts.FirstFloor {
			return nil, eleverr.InvalidArgument(op, "Restricted floor must be at least %d, got %d", elevconsts.FirstFloor, floor)
		}
	}

	restricted := slices.Clone(restrictedFloors)
	slices.Sort(restricted)
	return &FreightElevator{
		car:              c,
		restrictedFloors: slices.Compact(restricted),
	}, nil
}

func (e *FreightElevator) Type() elevconsts.ElevatorType {
	return elevconsts.Freight
}

func (e *FreightElevator) IsRestrictedFloor(floor int) bool {
	_, found := slices.BinarySearch(e.restrictedFloors, floor)
	return found
}

func (e *FreightElevator) RestrictedFloors() []int {
	return slices.Clone(e.restrictedFloors)
}

func (e *FreightElevator) MoveToFloor(floor int) error {
	const op = "FreightElevator.MoveToFloor"
	if err := e.checkFloor(op, floor); err != nil {
		return err
	}
	if e.IsRestrictedFloor(floor) {
		Log.Warn().Int("id", e.id).Int("floor", floor).Msg("Freight elevator refused restricted floor")
		return eleverr.InvalidOperation(op, "Freight elevator cannot access floor %d", floor)
	}
	from := e.currentFloor
	e.move(floor)
	Log.Debug().Int("id", e.id).Int("from", from).Int("to", floor).Str("dirn", e.dirn.String()).Msg("Freight elevator moved")
	return nil
}

func (e *FreightElevator) AddLoad(weight int) error {
	return e.addLoad("FreightElevator.AddLoad", weight)
}

func (e *FreightElevator) RemoveLoad(weight int) error {
	return e.removeLoad("FreightElevator.RemoveLoad", weight)
}
