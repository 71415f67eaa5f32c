package main

import (
	"os"

	"github.com/dinaMadelen/elevator-dispatch/internal/console"
	"github.com/dinaMadelen/elevator-dispatch/internal/controller"
	"github.com/dinaMadelen/elevator-dispatch/internal/dispatcher"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconfig"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevutils"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
)

var Logger = logger.GetLogger()

func main() {
	args := elevutils.ProcessCmdArgs()

	cfg := elevconfig.Default()
	if args.ConfigPath != "" {
		loaded, err := elevconfig.Load(args.ConfigPath)
		if err != nil {
			Logger.Fatal().Err(err).Msg("Could not load config")
		}
		cfg = loaded
	}
	if err := elevconfig.ApplyEnvFile(&cfg, args.EnvPath); err != nil {
		Logger.Fatal().Err(err).Msg("Could not apply env file")
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		Logger.Fatal().Err(err).Msg("Invalid log level")
	}
	Logger = logger.GetLoggerConfigured(level)

	// Starting Programme
	Logger.Info().Str("version", elevutils.GetGitHash()).Msg("Starting Elevator Dispatch Programme")

	b, err := elevconfig.Build(cfg)
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not build the building")
	}

	ctrl := controller.New(dispatcher.NewNearestElevatorDispatcher(b), b)

	if err := console.New(ctrl, b).Run(os.Stdin, os.Stdout); err != nil {
		Logger.Fatal().Err(err).Msg("Console stopped")
	}
	Logger.Info().Msg("Stopped Elevator Dispatch Programme")
}
