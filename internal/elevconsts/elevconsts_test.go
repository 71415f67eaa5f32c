package elevconsts

import (
	"errors"
	"testing"

	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
)

func TestDirnString(t *testing.T) {
	dirnArray := []Dirn{Up, Down, None, Dirn(7)}
	dirnStringArray := []string{"Up", "Down", "None", "Undefined"}

	for index, dirn := range dirnArray {
		if dirn.String() != dirnStringArray[index] {
			t.Errorf("Dirn.String() = %v, expected %v", dirn.String(), dirnStringArray[index])
		}
	}
}

func TestParseDirn(t *testing.T) {
	inputs := []string{"Up", "down", " UP ", "None"}
	expected := []Dirn{Up, Down, Up, None}

	for i, input := range inputs {
		dirn, err := ParseDirn(input)
		if err != nil {
			t.Errorf("ParseDirn(%q) returned error %v", input, err)
		}
		if dirn != expected[i] {
			t.Errorf("ParseDirn(%q) = %v, expected %v", input, dirn, expected[i])
		}
	}

	_, err := ParseDirn("Sideways")
	if !errors.Is(err, eleverr.ErrInvalidArgument) {
		t.Errorf("ParseDirn(\"Sideways\") error = %v, expected InvalidArgument", err)
	}
}

func TestElevatorType(t *testing.T) {
	if Passenger.String() != "Passenger" || Freight.String() != "Freight" {
		t.Errorf("ElevatorType.String() = %v/%v, expected Passenger/Freight", Passenger, Freight)
	}

	var et ElevatorType
	if err := et.UnmarshalText([]byte("freight")); err != nil || et != Freight {
		t.Errorf("UnmarshalText(\"freight\") = %v, %v, expected Freight, nil", et, err)
	}

	_, err := ParseElevatorType("Placeholder")
	if !errors.Is(err, eleverr.ErrInvalidArgument) {
		t.Errorf("ParseElevatorType(\"Placeholder\") error = %v, expected InvalidArgument", err)
	}
}
