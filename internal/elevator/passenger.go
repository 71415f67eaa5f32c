package elevator

import (
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
)

// PassengerElevator counts load in passengers and may visit every floor.
type PassengerElevator struct {
	car
}

func NewPassenger(id int, capacity int, maxFloors int) (*PassengerElevator, error) {
	c, err := newCar("elevator.NewPassenger", id, capacity, maxFloors)
	if err != nil {
		return nil, err
	}
	return &PassengerElevator{car: c}, nil
}

func (e *PassengerElevator) Type() elevconsts.ElevatorType {
	return elevconsts.Passenger
}

func (e *PassengerElevator) MoveToFloor(floor int) error {
	const op = "PassengerElevator.MoveToFloor"
	if err := e.checkFloor(op, floor); err != nil {
		return err
	}
	from := e.currentFloor
	e.move(floor)
	Log.Debug().Int("id", e.id).Int("from", from).Int("to", floor).Str("dirn", e.dirn.String()).Msg("Passenger elevator moved")
	return nil
}

func (e *PassengerElevator) AddLoad(amount int) error {
	return e.addLoad("PassengerElevator.AddLoad", amount)
}

func (e *PassengerElevator) RemoveLoad(amount int) error {
	return e.removeLoad("PassengerElevator.RemoveLoad", amount)
}
