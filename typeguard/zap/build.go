package zap

import (
	"fmt"
	"strings"

	logpkg "github.com/LerianStudio/lib-typeguard/typeguard/log"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLibraryName scopes records sent to the OpenTelemetry log bridge when
// Config.LibraryName is empty.
const DefaultLibraryName = "github.com/LerianStudio/lib-typeguard"

// Log calls go through Logger.Log before reaching zap.
const callerSkipFrames = 1

// Config selects the profile of a logger built by New.
type Config struct {
	// Production selects zap's production profile instead of the development one.
	Production bool
	// Level is the most verbose level written. The zero value writes errors only.
	Level logpkg.Level
	// LibraryName scopes the OpenTelemetry bridge core.
	LibraryName string
}

func (c Config) zapConfig() zap.Config {
	zc := zap.NewDevelopmentConfig()
	if c.Production {
		zc = zap.NewProductionConfig()
	}

	zc.Encoding = "json"
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	// Failure messages already embed the stack outside production.
	zc.DisableStacktrace = true
	zc.Level = zap.NewAtomicLevelAt(toZapLevel(c.Level))

	return zc
}

func (c Config) libraryName() string {
	if name := strings.TrimSpace(c.LibraryName); name != "" {
		return name
	}

	return DefaultLibraryName
}

// New builds a JSON logger on stderr whose core is teed into the
// OpenTelemetry log bridge.
func New(cfg Config) (*Logger, error) {
	bridge := otelzap.NewCore(cfg.libraryName())

	built, err := cfg.zapConfig().Build(
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, bridge)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return Wrap(built), nil
}
