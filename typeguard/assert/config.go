package assert

import (
	"strings"

	"github.com/LerianStudio/lib-typeguard/typeguard"
	constant "github.com/LerianStudio/lib-typeguard/typeguard/constants"
	"github.com/LerianStudio/lib-typeguard/typeguard/log"
)

// Environment selects how much detail failures expose.
type Environment string

// Supported environments.
const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTest        Environment = "test"
)

// ParseEnvironment maps a deployment environment name to an Environment.
// Unrecognized names fall back to development.
func ParseEnvironment(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "production", "prod":
		return EnvironmentProduction
	case "test", "testing":
		return EnvironmentTest
	default:
		return EnvironmentDevelopment
	}
}

// FailureMode selects what a data-shape failure does to the caller.
type FailureMode string

// Supported failure modes.
const (
	// FailurePropagate logs the failure and returns it.
	FailurePropagate FailureMode = "propagate"
	// FailureLog logs the failure and returns nil. Usage errors are still returned.
	FailureLog FailureMode = "log"
)

// ParseFailureMode maps name to a FailureMode, defaulting to FailurePropagate.
func ParseFailureMode(name string) FailureMode {
	if strings.EqualFold(strings.TrimSpace(name), string(FailureLog)) {
		return FailureLog
	}

	return FailurePropagate
}

// Config holds the policies an Asserter applies. It is copied into the
// Asserter at construction and never mutated afterwards.
type Config struct {
	Environment Environment
	Failure     FailureMode
	// TestMode enables the Observer callback on successful assertions.
	TestMode bool
	// LogLevel caps the verbosity of the logger FromContext builds when the
	// context carries none. The zero value writes errors only.
	LogLevel log.Level
}

// DefaultConfig returns the development, propagate, non-test configuration.
func DefaultConfig() Config {
	return Config{
		Environment: EnvironmentDevelopment,
		Failure:     FailurePropagate,
	}
}

// ConfigFromEnv reads TYPEGUARD_ENV (falling back to ENV, then GO_ENV),
// TYPEGUARD_FAILURE_MODE, TYPEGUARD_TEST_MODE and TYPEGUARD_LOG_LEVEL.
//
// TestMode defaults to true when the environment resolves to test. An unset
// or unrecognized log level means error.
func ConfigFromEnv() Config {
	env := ParseEnvironment(typeguard.GetenvFirst(
		string(EnvironmentDevelopment),
		constant.EnvTypeguardEnvironment,
		constant.EnvFallbackEnvironment,
		constant.EnvGoEnvironment,
	))

	return Config{
		Environment: env,
		Failure:     ParseFailureMode(typeguard.GetenvOrDefault(constant.EnvFailureMode, string(FailurePropagate))),
		TestMode:    typeguard.GetenvBoolOrDefault(constant.EnvTestMode, env == EnvironmentTest),
		LogLevel:    logLevelFromEnv(),
	}
}

func logLevelFromEnv() log.Level {
	level, err := log.ParseLevel(typeguard.GetenvOrDefault(constant.EnvLogLevel, log.LevelError.String()))
	if err != nil {
		return log.LevelError
	}

	return level
}

// Production reports whether data-shape details must be redacted.
func (c Config) Production() bool {
	return c.Environment == EnvironmentProduction
}

func (c Config) normalized() Config {
	if c.Environment == "" {
		c.Environment = EnvironmentDevelopment
	}

	if c.Failure != FailureLog {
		c.Failure = FailurePropagate
	}

	return c
}
