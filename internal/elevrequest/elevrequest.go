package elevrequest

import (
	"fmt"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/google/uuid"
)

// FloorRequest is built by the controller for a single dispatch and then dropped.
type FloorRequest struct {
	ID        uuid.UUID
	Floor     int
	LoadCount int
	Direction elevconsts.Dirn
}

func New(floor int, loadCount int, direction elevconsts.Dirn) FloorRequest {
	return FloorRequest{
		ID:        uuid.New(),
		Floor:     floor,
		LoadCount: loadCount,
		Direction: direction,
	}
}

func (r FloorRequest) String() string {
	return fmt.Sprintf("request %s: floor=%d load=%d dirn=%s", r.ID, r.Floor, r.LoadCount, r.Direction)
}
