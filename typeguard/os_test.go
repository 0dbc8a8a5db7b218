//go:build unit

package typeguard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenvOrDefault_WithValue(t *testing.T) {
	key := "TEST_TYPEGUARD_GETENV"

	t.Setenv(key, "test-value")

	assert.Equal(t, "test-value", GetenvOrDefault(key, "default"))
}

func TestGetenvOrDefault_TrimsValue(t *testing.T) {
	key := "TEST_TYPEGUARD_GETENV_TRIM"

	t.Setenv(key, "  production \n")

	assert.Equal(t, "production", GetenvOrDefault(key, "default"))
}

func TestGetenvOrDefault_WithDefault(t *testing.T) {
	key := "TEST_TYPEGUARD_GETENV_MISSING"

	t.Setenv(key, "")
	os.Unsetenv(key)

	assert.Equal(t, "default-value", GetenvOrDefault(key, "default-value"))
}

func TestGetenvOrDefault_WithWhitespace(t *testing.T) {
	key := "TEST_TYPEGUARD_GETENV_WHITESPACE"

	t.Setenv(key, "   ")

	assert.Equal(t, "default-value", GetenvOrDefault(key, "default-value"), "whitespace-only string should return default")
}

func TestGetenvBoolOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{name: "true", value: "true", fallback: false, want: true},
		{name: "numeric true", value: "1", fallback: false, want: true},
		{name: "false", value: "false", fallback: true, want: false},
		{name: "invalid returns default", value: "not-a-bool", fallback: true, want: true},
		{name: "empty returns default", value: "", fallback: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_TYPEGUARD_BOOL"
			t.Setenv(key, tt.value)

			assert.Equal(t, tt.want, GetenvBoolOrDefault(key, tt.fallback))
		})
	}
}

func TestGetenvFirst(t *testing.T) {
	t.Setenv("TEST_TYPEGUARD_FIRST_A", "")
	t.Setenv("TEST_TYPEGUARD_FIRST_B", "staging")
	t.Setenv("TEST_TYPEGUARD_FIRST_C", "production")

	assert.Equal(t, "staging", GetenvFirst("development", "TEST_TYPEGUARD_FIRST_A", "TEST_TYPEGUARD_FIRST_B", "TEST_TYPEGUARD_FIRST_C"))
	assert.Equal(t, "development", GetenvFirst("development", "TEST_TYPEGUARD_FIRST_A"))
	assert.Equal(t, "development", GetenvFirst("development"))
}
