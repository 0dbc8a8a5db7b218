//go:build unit

package zap

import (
	"testing"

	logpkg "github.com/LerianStudio/lib-typeguard/typeguard/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelCapsVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		enabled []logpkg.Level
		muted   []logpkg.Level
	}{
		{
			name:    "zero value writes errors only",
			cfg:     Config{},
			enabled: []logpkg.Level{logpkg.LevelError},
			muted:   []logpkg.Level{logpkg.LevelWarn, logpkg.LevelInfo, logpkg.LevelDebug},
		},
		{
			name:    "production at info",
			cfg:     Config{Production: true, Level: logpkg.LevelInfo},
			enabled: []logpkg.Level{logpkg.LevelError, logpkg.LevelWarn, logpkg.LevelInfo},
			muted:   []logpkg.Level{logpkg.LevelDebug},
		},
		{
			name:    "development at debug",
			cfg:     Config{Level: logpkg.LevelDebug, LibraryName: "orders"},
			enabled: []logpkg.Level{logpkg.LevelError, logpkg.LevelWarn, logpkg.LevelInfo, logpkg.LevelDebug},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := New(tt.cfg)
			require.NoError(t, err)

			for _, level := range tt.enabled {
				assert.True(t, logger.Enabled(level), level.String())
			}

			for _, level := range tt.muted {
				assert.False(t, logger.Enabled(level), level.String())
			}
		})
	}
}

func TestConfig_ZapProfile(t *testing.T) {
	t.Parallel()

	dev := Config{}.zapConfig()
	assert.True(t, dev.Development)
	assert.Equal(t, "json", dev.Encoding)
	assert.True(t, dev.DisableStacktrace)

	prod := Config{Production: true}.zapConfig()
	assert.False(t, prod.Development)
	assert.Equal(t, "json", prod.Encoding)
}

func TestConfig_LibraryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLibraryName, Config{}.libraryName())
	assert.Equal(t, DefaultLibraryName, Config{LibraryName: "  "}.libraryName())
	assert.Equal(t, "orders", Config{LibraryName: "orders"}.libraryName())
}
