// Package config resolves the command-line configuration of hopcroftkarp.
//
// Each setting is taken from the first source that defines it:
//
//	flag  >  environment  >  env file  >  default
//
// The env file (".env" unless -env-file says otherwise) is read without
// touching the process environment. A missing env file is not an error.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Report selects what the CLI prints per instance.
type Report string

const (
	// ReportMatching prints the final partner of every person.
	ReportMatching Report = "matching"
	// ReportEndpoints prints the ends of every augmenting path.
	ReportEndpoints Report = "endpoints"
)

// Environment variables read by Load, in the process environment or the
// env file.
const (
	// EnvReport selects the report, like -report.
	EnvReport = "HK_REPORT"
	// EnvVerbose enables phase logging, like -verbose.
	EnvVerbose = "HK_VERBOSE"
	// EnvInput names the input file, like -input.
	EnvInput = "HK_INPUT"
)

const defaultEnvFile = ".env"

var (
	// ErrInvalidReport indicates a report name other than matching or endpoints.
	ErrInvalidReport = errors.New("config: invalid report")
	// ErrInvalidBool indicates a boolean setting that strconv.ParseBool rejects.
	ErrInvalidBool = errors.New("config: invalid boolean")
)

// Config is the resolved CLI configuration.
type Config struct {
	Report  Report
	Verbose bool
	// Input is the path to read instances from; empty means stdin.
	Input   string
	EnvFile string
}

// Load parses args (without the program name) and fills the remaining
// settings from the environment and the env file.
func Load(args []string) (*Config, error) {
	fset := flag.NewFlagSet("hopcroftkarp", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	report := fset.String("report", string(ReportMatching), "report to print: matching or endpoints")
	verbose := fset.Bool("verbose", false, "log every phase and augmenting path")
	input := fset.String("input", "", "file to read instances from (default stdin)")
	envFile := fset.String("env-file", defaultEnvFile, "env file with HK_* settings")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	dotenv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading %s: %w", *envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}
		v, ok := dotenv[key]
		return strings.TrimSpace(v), ok
	}

	cfg := &Config{Report: Report(*report), Verbose: *verbose, Input: *input, EnvFile: *envFile}
	if v, ok := lookup(EnvReport); ok && !set["report"] {
		cfg.Report = Report(v)
	}
	if v, ok := lookup(EnvInput); ok && !set["input"] {
		cfg.Input = v
	}
	if v, ok := lookup(EnvVerbose); ok && !set["verbose"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidBool, EnvVerbose, v)
		}
		cfg.Verbose = b
	}

	switch cfg.Report {
	case ReportMatching, ReportEndpoints:
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidReport, cfg.Report, ReportMatching, ReportEndpoints)
	}

	return cfg, nil
}
