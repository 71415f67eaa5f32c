package elevconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dinaMadelen/elevator-dispatch/internal/building"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/eleverr"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevfactory"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
	"github.com/joho/godotenv"
	"github.com/tiendc/go-deepcopy"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

var Log = logger.GetLogger()

const (
	BUILDING_NAME_DEFAULT_LEN = 10

	ENV_BUILDING_NAME = "ELEVATOR_BUILDING_NAME"
	ENV_FLOORS        = "ELEVATOR_FLOORS"
	ENV_LOG_LEVEL     = "ELEVATOR_LOG_LEVEL"
)

type BuildingConfig struct {
	Name   string `yaml:"name"`
	Floors int    `yaml:"floors"`
}

type ElevatorConfig struct {
	ID               int    `yaml:"id"`
	Type             string `yaml:"type"`
	Capacity         int    `yaml:"capacity"`
	RestrictedFloors []int  `yaml:"restricted_floors,omitempty"`
}

type Config struct {
	Building  BuildingConfig   `yaml:"building"`
	Elevators []ElevatorConfig `yaml:"elevators"`
	LogLevel  string           `yaml:"log_level"`
}

// 10 floors, one passenger car and one freight car barred from floor 5
var defaultConfig = Config{
	Building: BuildingConfig{Floors: 10},
	Elevators: []ElevatorConfig{
		{ID: 1, Type: elevconsts.Passenger.String(), Capacity: 10},
		{ID: 2, Type: elevconsts.Freight.String(), Capacity: 1000, RestrictedFloors: []int{elevconsts.DefaultFreightRestrictedFloor}},
	},
	LogLevel: "info",
}

// Default returns a fresh copy that the caller may modify.
func Default() Config {
	var c Config
	if err := deepcopy.Copy(&c, defaultConfig); err != nil {
		panic("Failed to deepcopy default config")
	}
	return c
}

// Load starts from Default so a file only needs the fields it changes. A
// file that lists elevators replaces the default list.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close()

	var fromFile Config
	if err := yaml.NewDecoder(file).Decode(&fromFile); err != nil {
		return c, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if fromFile.Building.Name != "" {
		c.Building.Name = fromFile.Building.Name
	}
	if fromFile.Building.Floors != 0 {
		c.Building.Floors = fromFile.Building.Floors
	}
	if fromFile.Elevators != nil {
		c.Elevators = fromFile.Elevators
	}
	if fromFile.LogLevel != "" {
		c.LogLevel = fromFile.LogLevel
	}
	Log.Debug().Str("path", path).Int("elevators", len(c.Elevators)).Msg("Loaded config file")
	return c, nil
}

// ApplyEnvFile overrides fields from a .env file. A missing file is ignored.
func ApplyEnvFile(c *Config, path string) error {
	envFile, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			Log.Debug().Str("path", path).Msg("No env file, skipping")
			return nil
		}
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return applyEnv(c, envFile)
}

func applyEnv(c *Config, env map[string]string) error {
	if name, ok := env[ENV_BUILDING_NAME]; ok {
		c.Building.Name = name
	}
	if floors, ok := env[ENV_FLOORS]; ok {
		n, err := strconv.Atoi(floors)
		if err != nil {
			return eleverr.InvalidArgument("elevconfig.ApplyEnvFile", "%s must be an integer, got %q", ENV_FLOORS, floors)
		}
		c.Building.Floors = n
	}
	if level, ok := env[ENV_LOG_LEVEL]; ok {
		c.LogLevel = level
	}
	return nil
}

func (c *Config) Validate() error {
	const op = "Config.Validate"
	if c.Building.Floors <= 0 {
		return eleverr.InvalidArgument(op, "building floors must be positive, got %d", c.Building.Floors)
	}
	if len(c.Elevators) == 0 {
		return eleverr.InvalidArgument(op, "at least one elevator must be configured")
	}
	for i, e := range c.Elevators {
		if e.ID < 0 {
			return eleverr.InvalidArgument(op, "elevator %d: id must not be negative, got %d", i, e.ID)
		}
		if _, err := elevconsts.ParseElevatorType(e.Type); err != nil {
			return eleverr.InvalidArgument(op, "elevator %d: unknown type %q", i, e.Type)
		}
		if e.Capacity <= 0 {
			return eleverr.InvalidArgument(op, "elevator %d: capacity must be positive, got %d", i, e.Capacity)
		}
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return eleverr.InvalidArgument(op, "unknown log level %q", c.LogLevel)
	}
	return nil
}

// Build validates the config and creates the building with its elevators.
// Every elevator serves all the building's floors.
func Build(c Config) (*building.Building, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := building.New(c.Building.Floors)
	if err != nil {
		return nil, err
	}
	b.Name = c.Building.Name
	if b.Name == "" {
		b.Name = randomstring.EnglishFrequencyString(BUILDING_NAME_DEFAULT_LEN)
		Log.Warn().Msgf("No building name provided, generated random name \"%v\"", b.Name)
	}

	for _, e := range c.Elevators {
		elev, err := elevfactory.CreateFromName(e.Type, e.ID, e.Capacity, c.Building.Floors, e.RestrictedFloors...)
		if err != nil {
			return nil, err
		}
		if err := b.AddElevator(elev); err != nil {
			return nil, err
		}
	}
	return b, nil
}
