package dispatcher

import (
	"cmp"
	"slices"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevrequest"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

type Dispatcher interface {
	DispatchElevator(request elevrequest.FloorRequest) (elevator.Elevator, error)
}

// ElevatorSource is the part of a building the dispatcher reads.
type ElevatorSource interface {
	Elevators() []elevator.Elevator
}

type NearestElevatorDispatcher struct {
	source ElevatorSource
}

func NewNearestElevatorDispatcher(source ElevatorSource) *NearestElevatorDispatcher {
	return &NearestElevatorDispatcher{source: source}
}

// Eligible reports whether elev may serve the request at all. Passenger cars
// take small loads only; freight cars take heavy loads on floors they are
// allowed to visit.
func Eligible(elev elevator.Elevator, request elevrequest.FloorRequest) bool {
	switch elev.Type() {
	case elevconsts.Passenger:
		return request.LoadCount <= elevconsts.PassengerMaxRequestLoad
	case elevconsts.Freight:
		if request.LoadCount <= elevconsts.FreightMinRequestLoad {
			return false
		}
		if restricter, ok := elev.(elevator.FloorRestricter); ok && restricter.IsRestrictedFloor(request.Floor) {
			return false
		}
		return true
	}
	return false
}

type candidate struct {
	elev     elevator.Elevator
	distance int
	isMoving bool
}

// DispatchElevator picks the eligible elevator closest to the requested floor,
// preferring idle ones on equal distance. Registration order breaks any
// remaining tie.
func (d *NearestElevatorDispatcher) DispatchElevator(request elevrequest.FloorRequest) (elevator.Elevator, error) {
	const op = "NearestElevatorDispatcher.DispatchElevator"

	elevators := d.source.Elevators()
	if len(elevators) == 0 {
		Log.Warn().Str("request", request.ID.String()).Msg("Dispatch failed, building has no elevators")
		return nil, eleverr.InvalidOperation(op, "no elevators available")
	}

	candidates := make([]candidate, 0, len(elevators))
	for _, elev := range elevators {
		if !Eligible(elev, request) {
			continue
		}
		status := elev.GetStatus()
		candidates = append(candidates, candidate{
			elev:     elev,
			distance: abs(status.CurrentFloor - request.Floor),
			isMoving: status.IsMoving,
		})
	}

	if len(candidates) == 0 {
		Log.Warn().Str("request", request.ID.String()).Int("floor", request.Floor).Int("load", request.LoadCount).Msg("Dispatch failed, no eligible elevator")
		return nil, eleverr.InvalidOperation(op, "no suitable elevator found")
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return compareIdleFirst(a.isMoving, b.isMoving)
	})

	chosen := candidates[0]
	Log.Info().
		Str("request", request.ID.String()).
		Int("elevator", chosen.elev.ID()).
		Str("type", chosen.elev.Type().String()).
		Int("distance", chosen.distance).
		Int("eligible", len(candidates)).
		Msg("Elevator dispatched")
	return chosen.elev, nil
}

func compareIdleFirst(aMoving bool, bMoving bool) int {
	switch {
	case aMoving == bMoving:
		return 0
	case !aMoving:
		return -1
	default:
		return 1
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
