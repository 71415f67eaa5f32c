package elevutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return strings.TrimSpace(gitHash)
}

type Args struct {
	ConfigPath string // empty means built-in default config
	EnvPath    string
	LogLevel   string // overrides config and env when set
}

func ProcessCmdArgs() Args {
	args, exit := parseArgs(os.Args[1:], os.Stdout)
	if exit >= 0 {
		os.Exit(exit)
	}
	return args
}

// parseArgs returns exit >= 0 when the programme should stop straight away.
func parseArgs(arguments []string, out io.Writer) (Args, int) {
	flags := flag.NewFlagSet("elevator", flag.ContinueOnError)
	flags.SetOutput(out)

	help := flags.Bool("help", false, "Show Help Window")
	version := flags.Bool("version", false, "Show Version")
	configPath := flags.String("config", "", "Path to a YAML building config. Defaults to a 10 floor building with one passenger and one freight elevator")
	envPath := flags.String("env", ".env", "Path to an env file with ELEVATOR_* overrides. Ignored if missing")
	logLevel := flags.String("loglevel", "", "Log level (trace, debug, info, warn, error, disabled)")

	if err := flags.Parse(arguments); err != nil {
		return Args{}, 2
	}

	if *version {
		fmt.Fprintln(out, "Version:", GetGitHash())
		return Args{}, 0
	}

	if *help {
		fmt.Fprintln(out, "Usage: ./elevator [OPTIONS]")
		fmt.Fprintln(out, "Elevator Dispatch Simulator")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flags.PrintDefaults()
		return Args{}, 0
	}

	return Args{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
		LogLevel:   *logLevel,
	}, -1
}
