package building

import (
	"slices"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

// Building owns its elevators in registration order. It is filled during
// setup and only read afterwards.
type Building struct {
	Name string

	numberOfFloors int
	elevators      []elevator.Elevator
}

func New(numberOfFloors int) (*Building, error) {
	if numberOfFloors <= 0 {
		return nil, eleverr.InvalidArgument("building.New", "Number of floors must be a positive integer, got %d", numberOfFloors)
	}
	return &Building{numberOfFloors: numberOfFloors}, nil
}

// AddElevator does not reject duplicate ids; ElevatorByID returns the first match.
func (b *Building) AddElevator(elev elevator.Elevator) error {
	if elev == nil {
		return eleverr.InvalidArgument("Building.AddElevator", "elevator must not be nil")
	}
	if _, err := b.ElevatorByID(elev.ID()); err == nil {
		Log.Warn().Int("id", elev.ID()).Msg("Duplicate elevator id registered, lookups return the first one")
	}
	b.elevators = append(b.elevators, elev)
	Log.Info().Int("id", elev.ID()).Str("type", elev.Type().String()).Int("count", len(b.elevators)).Msg("Elevator registered")
	return nil
}

// Elevators returns a copy, so callers cannot reorder the building's list.
func (b *Building) Elevators() []elevator.Elevator {
	return slices.Clone(b.elevators)
}

func (b *Building) ElevatorByID(id int) (elevator.Elevator, error) {
	const op = "Building.ElevatorByID"
	if id < 0 {
		return nil, eleverr.InvalidArgument(op, "Elevator id must not be negative, got %d", id)
	}
	for _, elev := range b.elevators {
		if elev.ID() == id {
			return elev, nil
		}
	}
	return nil, eleverr.NotFound(op, "no elevator with id %d", id)
}

func (b *Building) NumberOfFloors() int {
	return b.numberOfFloors
}
