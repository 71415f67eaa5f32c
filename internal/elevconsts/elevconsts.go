package elevconsts

import (
	"strings"

	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
)

const (
	FirstFloor = 1

	// Dispatch eligibility thresholds, on FloorRequest.LoadCount
	PassengerMaxRequestLoad = 10
	FreightMinRequestLoad   = 100

	DefaultFreightRestrictedFloor = 5
)

type Dirn int

const (
	Down Dirn = -1
	None Dirn = 0
	Up   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case None:
		return "None"
	default:
		return "Undefined"
	}
}

func (d Dirn) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirn is case-insensitive and accepts "up", "down" and "none".
func ParseDirn(text string) (Dirn, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "none":
		return None, nil
	}
	return None, eleverr.InvalidArgument("elevconsts.ParseDirn", "unknown direction %q", text)
}

type ElevatorType int

const (
	Passenger ElevatorType = iota
	Freight
)

func (et ElevatorType) String() string {
	switch et {
	case Passenger:
		return "Passenger"
	case Freight:
		return "Freight"
	default:
		return "Undefined"
	}
}

func (et ElevatorType) MarshalText() ([]byte, error) {
	return []byte(et.String()), nil
}

func (et *ElevatorType) UnmarshalText(text []byte) error {
	parsed, err := ParseElevatorType(string(text))
	if err != nil {
		return err
	}
	*et = parsed
	return nil
}

func ParseElevatorType(text string) (ElevatorType, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "passenger":
		return Passenger, nil
	case "freight":
		return Freight, nil
	}
	return Passenger, eleverr.InvalidArgument("elevconsts.ParseElevatorType", "unknown elevator type %q", text)
}
