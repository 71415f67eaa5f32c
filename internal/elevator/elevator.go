package elevator

import (
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevstatus"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

// Elevator is the capability set shared by passenger and freight cars.
// Moves complete before MoveToFloor returns.
type Elevator interface {
	ID() int
	Type() elevconsts.ElevatorType
	Capacity() int
	MaxFloors() int
	MoveToFloor(floor int) error
	AddLoad(amount int) error
	RemoveLoad(amount int) error
	GetStatus() elevstatus.ElevatorStatus
}

// FloorRestricter is implemented by elevators that refuse some floors.
type FloorRestricter interface {
	IsRestrictedFloor(floor int) bool
}

// car holds the state common to both variants
type car struct {
	id        int
	capacity  int
	maxFloors int

	currentFloor int
	currentLoad  int
	dirn         elevconsts.Dirn
	isMoving     bool
}

func newCar(op string, id int, capacity int, maxFloors int) (car, error) {
	if capacity <= 0 {
		return car{}, eleverr.InvalidArgument(op, "Capacity must be a positive integer")
	}
	if maxFloors <= 0 {
		return car{}, eleverr.InvalidArgument(op, "Max floors must be a positive integer")
	}
	return car{
		id:           id,
		capacity:     capacity,
		maxFloors:    maxFloors,
		currentFloor: elevconsts.FirstFloor,
		dirn:         elevconsts.None,
	}, nil
}

func (c *car) ID() int {
	return c.id
}

func (c *car) Capacity() int {
	return c.capacity
}

func (c *car) MaxFloors() int {
	return c.maxFloors
}

func (c *car) checkFloor(op string, floor int) error {
	if floor < elevconsts.FirstFloor || floor > c.maxFloors {
		return eleverr.InvalidArgument(op, "Floor must be between %d and %d", elevconsts.FirstFloor, c.maxFloors)
	}
	return nil
}

// move assumes the floor has already been validated
func (c *car) move(floor int) {
	if floor == c.currentFloor {
		c.dirn = elevconsts.None
		c.isMoving = false
		return
	}

	if floor > c.currentFloor {
		c.dirn = elevconsts.Up
	} else {
		c.dirn = elevconsts.Down
	}
	c.isMoving = true
	c.currentFloor = floor
	c.isMoving = false // arrival is immediate
}

func (c *car) addLoad(op string, amount int) error {
	if amount < 0 {
		return eleverr.InvalidArgument(op, "Load must not be negative, got %d", amount)
	}
	if c.currentLoad+amount > c.capacity {
		return eleverr.InvalidOperation(op, "Cannot add load: exceeds capacity of %d", c.capacity)
	}
	c.currentLoad += amount
	return nil
}

func (c *car) removeLoad(op string, amount int) error {
	if amount < 0 {
		return eleverr.InvalidArgument(op, "Load must not be negative, got %d", amount)
	}
	if c.currentLoad-amount < 0 {
		return eleverr.InvalidOperation(op, "Cannot remove load: only %d on board", c.currentLoad)
	}
	c.currentLoad -= amount
	return nil
}

func (c *car) GetStatus() elevstatus.ElevatorStatus {
	return elevstatus.ElevatorStatus{
		CurrentFloor: c.currentFloor,
		Direction:    c.dirn,
		IsMoving:     c.isMoving,
		Load:         c.currentLoad,
	}
}

var (
	_ Elevator        = (*PassengerElevator)(nil)
	_ Elevator        = (*FreightElevator)(nil)
	_ FloorRestricter = (*FreightElevator)(nil)
)
