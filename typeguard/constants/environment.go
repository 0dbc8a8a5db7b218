package constant

// Environment variables recognized by assert.ConfigFromEnv.
const (
	// EnvTypeguardEnvironment selects the visibility policy: development, production or test.
	EnvTypeguardEnvironment = "TYPEGUARD_ENV"
	// EnvFallbackEnvironment is the generic deployment environment variable.
	EnvFallbackEnvironment = "ENV"
	// EnvGoEnvironment is the Go-ecosystem deployment environment variable.
	EnvGoEnvironment = "GO_ENV"
	// EnvFailureMode selects propagate or log failure handling.
	EnvFailureMode = "TYPEGUARD_FAILURE_MODE"
	// EnvTestMode enables observer callbacks on successful assertions.
	EnvTestMode = "TYPEGUARD_TEST_MODE"
	// EnvLogLevel caps the verbosity of the logger FromContext builds: error, warn, info or debug.
	EnvLogLevel = "TYPEGUARD_LOG_LEVEL"
)
