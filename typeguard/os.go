package typeguard

import (
	"os"
	"strconv"
	"strings"
)

// GetenvOrDefault returns the trimmed value of key, or defaultValue when the
// variable is unset, empty or whitespace-only.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault parses key with strconv.ParseBool, returning defaultValue
// when the variable is missing or not a valid boolean.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

// GetenvFirst returns the first non-blank value among keys, or defaultValue.
func GetenvFirst(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := GetenvOrDefault(key, ""); value != "" {
			return value
		}
	}

	return defaultValue
}
