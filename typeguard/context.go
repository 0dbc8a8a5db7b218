package typeguard

import (
	"context"
	"strings"

	"github.com/LerianStudio/lib-typeguard/typeguard/log"
	"github.com/LerianStudio/lib-typeguard/typeguard/opentelemetry/metrics"
)

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("typeguard_context")

// CustomContextKeyValue holds the request-scoped facilities assertions pick up
// from a context.
type CustomContextKeyValue struct {
	HeaderID      string
	Logger        log.Logger
	MetricFactory *metrics.Factory
}

// values returns a copy of the facilities stored in ctx, so derived contexts
// never mutate their parent.
func values(ctx context.Context) CustomContextKeyValue {
	if ctx == nil {
		return CustomContextKeyValue{}
	}

	if stored, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && stored != nil {
		return *stored
	}

	return CustomContextKeyValue{}
}

func withValues(ctx context.Context, v CustomContextKeyValue) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, CustomContextKey, &v)
}

// ContextWithLogger returns a context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	v := values(ctx)
	v.Logger = logger

	return withValues(ctx, v)
}

// LoggerFromContext returns the Logger stored in ctx, or nil.
//
//nolint:ireturn
func LoggerFromContext(ctx context.Context) log.Logger {
	return values(ctx).Logger
}

// ContextWithMetricFactory returns a context carrying factory.
func ContextWithMetricFactory(ctx context.Context, factory *metrics.Factory) context.Context {
	v := values(ctx)
	v.MetricFactory = factory

	return withValues(ctx, v)
}

// MetricFactoryFromContext returns the factory stored in ctx, or nil.
func MetricFactoryFromContext(ctx context.Context) *metrics.Factory {
	return values(ctx).MetricFactory
}

// ContextWithHeaderID returns a context carrying a correlation id.
func ContextWithHeaderID(ctx context.Context, headerID string) context.Context {
	v := values(ctx)
	v.HeaderID = strings.TrimSpace(headerID)

	return withValues(ctx, v)
}

// HeaderIDFromContext returns the correlation id stored in ctx, or "".
func HeaderIDFromContext(ctx context.Context) string {
	return values(ctx).HeaderID
}
