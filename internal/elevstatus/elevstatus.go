package elevstatus

import (
	"encoding/json"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Log = logger.GetLogger()

// ElevatorStatus is a snapshot taken by Elevator.GetStatus. Load is a passenger
// count or a weight depending on the elevator type.
type ElevatorStatus struct {
	CurrentFloor int             `json:"current_floor"`
	Direction    elevconsts.Dirn `json:"direction"`
	IsMoving     bool            `json:"is_moving"`
	Load         int             `json:"load"`
}

func (status ElevatorStatus) String() string {
	jsonData, err := json.Marshal(status)

	if err != nil {
		Log.Error().Msg("Error Serialising ElevatorStatus Object to JSON")
		return ""
	}
	return string(jsonData)
}

func (status ElevatorStatus) IsIdle() bool {
	return !status.IsMoving
}
