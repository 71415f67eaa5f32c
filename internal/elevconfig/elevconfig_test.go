package elevconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) returned error %v", path, err)
	}
	return path
}

func TestDefaultIsIndependentCopy(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	first := Default()
	first.Elevators[1].RestrictedFloors[0] = 8
	first.Elevators = append(first.Elevators, ElevatorConfig{ID: 3})

	second := Default()
	if len(second.Elevators) != 2 {
		t.Fatalf("len(Default().Elevators) = %d, expected 2", len(second.Elevators))
	}
	if second.Elevators[1].RestrictedFloors[0] != elevconsts.DefaultFreightRestrictedFloor {
		t.Errorf("Default() restricted floor = %d after mutating a copy, expected %d", second.Elevators[1].RestrictedFloors[0], elevconsts.DefaultFreightRestrictedFloor)
	}
	if second.Building.Floors != 10 {
		t.Errorf("Default().Building.Floors = %d, expected 10", second.Building.Floors)
	}
}

func TestLoad(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	path := writeFile(t, "elevator_config.yaml", `
building:
  name: Tower
  floors: 12
elevators:
  - id: 4
    type: passenger
    capacity: 8
  - id: 5
    type: Freight
    capacity: 2000
    restricted_floors: [3, 5]
log_level: debug
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error %v", err)
	}
	if c.Building.Name != "Tower" || c.Building.Floors != 12 || c.LogLevel != "debug" {
		t.Errorf("Load() = %+v, expected Tower/12/debug", c)
	}
	if len(c.Elevators) != 2 || c.Elevators[1].Capacity != 2000 || len(c.Elevators[1].RestrictedFloors) != 2 {
		t.Errorf("Load().Elevators = %+v, expected two elevators with freight capacity 2000", c.Elevators)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	path := writeFile(t, "partial.yaml", "building:\n  floors: 20\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error %v", err)
	}
	if c.Building.Floors != 20 {
		t.Errorf("Building.Floors = %d, expected 20", c.Building.Floors)
	}
	if len(c.Elevators) != 2 || c.LogLevel != "info" {
		t.Errorf("Load() = %+v, expected default elevators and log level", c)
	}
}

func TestLoadErrors(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load(missing) returned nil error")
	}
	path := writeFile(t, "broken.yaml", "building: [\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Load(broken) returned nil error")
	}
}

func TestApplyEnvFile(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	path := writeFile(t, ".env", "ELEVATOR_BUILDING_NAME=Annex\nELEVATOR_FLOORS=7\nELEVATOR_LOG_LEVEL=warn\n")
	c := Default()
	if err := ApplyEnvFile(&c, path); err != nil {
		t.Fatalf("ApplyEnvFile() returned error %v", err)
	}
	if c.Building.Name != "Annex" || c.Building.Floors != 7 || c.LogLevel != "warn" {
		t.Errorf("ApplyEnvFile() config = %+v, expected Annex/7/warn", c)
	}

	bad := writeFile(t, ".env", "ELEVATOR_FLOORS=many\n")
	if err := ApplyEnvFile(&c, bad); !errors.Is(err, eleverr.ErrInvalidArgument) {
		t.Errorf("ApplyEnvFile(bad floors) error = %v, expected InvalidArgument", err)
	}

	before := c
	if err := ApplyEnvFile(&c, filepath.Join(t.TempDir(), "nothing.env")); err != nil {
		t.Errorf("ApplyEnvFile(missing) returned error %v, expected nil", err)
	}
	if c.Building != before.Building || c.LogLevel != before.LogLevel {
		t.Errorf("ApplyEnvFile(missing) changed the config")
	}
}

func TestValidate(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	mutations := []func(c *Config){
		func(c *Config) { c.Building.Floors = 0 },
		func(c *Config) { c.Elevators = nil },
		func(c *Config) { c.Elevators[0].ID = -1 },
		func(c *Config) { c.Elevators[0].Type = "Escalator" },
		func(c *Config) { c.Elevators[1].Capacity = 0 },
		func(c *Config) { c.LogLevel = "chatty" },
	}

	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() returned error %v", err)
	}
	for i, mutate := range mutations {
		c := Default()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, eleverr.ErrInvalidArgument) {
			t.Errorf("mutation %d: Validate() error = %v, expected InvalidArgument", i, err)
		}
	}
}

func TestBuild(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	b, err := Build(Default())
	if err != nil {
		t.Fatalf("Build(Default()) returned error %v", err)
	}
	if b.NumberOfFloors() != 10 {
		t.Errorf("NumberOfFloors() = %d, expected 10", b.NumberOfFloors())
	}
	if b.Name == "" {
		t.Errorf("Name = \"\", expected a generated name")
	}

	elevators := b.Elevators()
	if len(elevators) != 2 {
		t.Fatalf("len(Elevators()) = %d, expected 2", len(elevators))
	}
	if elevators[0].Type() != elevconsts.Passenger || elevators[1].Type() != elevconsts.Freight {
		t.Errorf("Elevators() types = %v, %v, expected Passenger, Freight", elevators[0].Type(), elevators[1].Type())
	}
	if elevators[1].MaxFloors() != 10 {
		t.Errorf("freight MaxFloors() = %d, expected the building's 10", elevators[1].MaxFloors())
	}
	freight, ok := elevators[1].(elevator.FloorRestricter)
	if !ok || !freight.IsRestrictedFloor(5) {
		t.Errorf("freight elevator should be restricted from floor 5")
	}
}

func TestBuildNamedAndInvalid(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	c := Default()
	c.Building.Name = "Tower"
	b, err := Build(c)
	if err != nil || b.Name != "Tower" {
		t.Errorf("Build() = %v, %v, expected building named Tower", b, err)
	}

	c = Default()
	c.Elevators[0].RestrictedFloors = []int{2}
	if _, err := Build(c); !errors.Is(err, eleverr.ErrInvalidArgument) {
		t.Errorf("Build(passenger with restricted floors) error = %v, expected InvalidArgument", err)
	}
}
