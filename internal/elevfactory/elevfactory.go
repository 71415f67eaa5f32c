package elevfactory

import (
	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

// Create builds an elevator of the given type. Restricted floors only make
// sense for freight elevators; a freight elevator without any gets the default.
func Create(elevType elevconsts.ElevatorType, id int, capacity int, maxFloors int, restrictedFloors ...int) (elevator.Elevator, error) {
	switch elevType {
	case elevconsts.Passenger:
		if len(restrictedFloors) > 0 {
			return nil, eleverr.InvalidArgument("elevfactory.Create", "passenger elevator %d cannot have restricted floors", id)
		}
		elev, err := elevator.NewPassenger(id, capacity, maxFloors)
		if err != nil {
			return nil, err
		}
		Log.Debug().Int("id", id).Int("capacity", capacity).Int("maxFloors", maxFloors).Msg("Created passenger elevator")
		return elev, nil

	case elevconsts.Freight:
		elev, err := elevator.NewFreight(id, capacity, maxFloors, restrictedFloors...)
		if err != nil {
			return nil, err
		}
		Log.Debug().Int("id", id).Int("capacity", capacity).Int("maxFloors", maxFloors).Ints("restricted", elev.RestrictedFloors()).Msg("Created freight elevator")
		return elev, nil
	}
	return nil, eleverr.InvalidArgument("elevfactory.Create", "unsupported elevator type %d", int(elevType))
}

// CreateFromName is Create with the type given as text, e.g. from a config file.
func CreateFromName(typeName string, id int, capacity int, maxFloors int, restrictedFloors ...int) (elevator.Elevator, error) {
	elevType, err := elevconsts.ParseElevatorType(typeName)
	if err != nil {
		return nil, err
	}
	return Create(elevType, id, capacity, maxFloors, restrictedFloors...)
}
