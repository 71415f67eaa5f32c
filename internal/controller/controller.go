package controller

import (
	"sync"

	"github.com/dinaMadelen/elevator-dispatch/internal/dispatcher"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevrequest"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevstatus"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

// Registry is the part of a building the controller needs.
type Registry interface {
	NumberOfFloors() int
	ElevatorByID(id int) (elevator.Elevator, error)
}

// Controller validates raw requests before handing them to the dispatcher.
// Calls are serialised so dispatch, move and load happen as one step.
type Controller struct {
	dispatcher dispatcher.Dispatcher
	registry   Registry

	mu sync.Mutex
}

func New(d dispatcher.Dispatcher, registry Registry) *Controller {
	return &Controller{
		dispatcher: d,
		registry:   registry,
	}
}

// RequestElevator dispatches an elevator to fromFloor and boards loadCount.
// The top floor cannot be requested (fromFloor must be below NumberOfFloors),
// although elevators themselves can travel there.
func (c *Controller) RequestElevator(fromFloor int, loadCount int, direction string) (elevator.Elevator, error) {
	const op = "Controller.RequestElevator"
	numberOfFloors := c.registry.NumberOfFloors()

	if fromFloor < elevconsts.FirstFloor || fromFloor >= numberOfFloors {
		return nil, eleverr.InvalidArgument(op, "Floor must be between %d and %d", elevconsts.FirstFloor, numberOfFloors-1)
	}
	if loadCount < 0 {
		return nil, eleverr.InvalidArgument(op, "Load count must not be negative, got %d", loadCount)
	}
	dirn, err := elevconsts.ParseDirn(direction)
	if err != nil || dirn == elevconsts.None {
		return nil, eleverr.InvalidArgument(op, "Direction must be Up or Down, got %q", direction)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	request := elevrequest.New(fromFloor, loadCount, dirn)
	Log.Debug().Str("request", request.ID.String()).Int("floor", fromFloor).Int("load", loadCount).Str("dirn", dirn.String()).Msg("Elevator requested")

	elev, err := c.dispatcher.DispatchElevator(request)
	if err != nil {
		return nil, err
	}
	if err := elev.MoveToFloor(fromFloor); err != nil {
		return nil, err
	}
	if err := elev.AddLoad(loadCount); err != nil {
		return nil, err
	}

	Log.Info().Str("request", request.ID.String()).Int("elevator", elev.ID()).Int("floor", fromFloor).Int("load", loadCount).Msg("Request served")
	return elev, nil
}

func (c *Controller) GetElevatorStatus(elevatorID int) (elevstatus.ElevatorStatus, error) {
	if elevatorID < 0 {
		return elevstatus.ElevatorStatus{}, eleverr.InvalidArgument("Controller.GetElevatorStatus", "Elevator id must not be negative, got %d", elevatorID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elev, err := c.registry.ElevatorByID(elevatorID)
	if err != nil {
		return elevstatus.ElevatorStatus{}, err
	}
	return elev.GetStatus(), nil
}
