package assert

import (
	"context"
	"fmt"
	goruntime "runtime"
	"runtime/debug"
	"strings"

	"github.com/LerianStudio/lib-typeguard/typeguard"
	"github.com/LerianStudio/lib-typeguard/typeguard/format"
	"github.com/LerianStudio/lib-typeguard/typeguard/internal/nilcheck"
	"github.com/LerianStudio/lib-typeguard/typeguard/log"
	"github.com/LerianStudio/lib-typeguard/typeguard/opentelemetry/metrics"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
	tgzap "github.com/LerianStudio/lib-typeguard/typeguard/zap"
)

// Reporter forwards assertion failures to an external error tracker.
type Reporter interface {
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

// Observation describes a successful assertion.
type Observation struct {
	Assertion string
	Token     token.Token
	Operator  token.Operator
}

// Observer is called synchronously after every successful Type, Relation and
// Check when Config.TestMode is set.
type Observer func(Observation)

// Option configures an Asserter.
type Option func(*Asserter)

// WithConfig replaces the default development/propagate policy.
func WithConfig(cfg Config) Option {
	return func(asserter *Asserter) {
		asserter.config = cfg.normalized()
	}
}

// WithObserver registers a success observer. It only fires in test mode.
func WithObserver(observer Observer) Option {
	return func(asserter *Asserter) {
		asserter.observer = observer
	}
}

// WithReporter registers an external error tracker.
func WithReporter(reporter Reporter) Option {
	return func(asserter *Asserter) {
		if !nilcheck.Interface(reporter) {
			asserter.reporter = reporter
		}
	}
}

// WithMetrics enables the assertion_failed_total counter.
func WithMetrics(factory *metrics.Factory) Option {
	return func(asserter *Asserter) {
		asserter.metrics = factory
	}
}

// Asserter evaluates type and relational assertions and emits telemetry on failure.
// It is immutable after New and safe for concurrent use.
type Asserter struct {
	ctx       context.Context
	logger    log.Logger
	component string
	operation string
	config    Config
	observer  Observer
	reporter  Reporter
	metrics   *metrics.Factory
}

// New creates an Asserter with context, logging, and labels.
// component and operation label telemetry and scope every failure logged
// through logger. A nil logger logs errors to stderr.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger log.Logger, component, operation string, opts ...Option) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	if nilcheck.Interface(logger) {
		logger = nil
	} else {
		logger = logger.With(scopeFields(component, operation)...)
	}

	asserter := &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
		config:    DefaultConfig(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(asserter)
		}
	}

	return asserter
}

// FromContext builds an Asserter from the logger and metrics factory stored on
// ctx by typeguard.ContextWithLogger and typeguard.ContextWithMetricFactory,
// with the policy read by ConfigFromEnv. opts are applied last.
//
// Without a logger on ctx, failures go to a zap JSON logger built for the
// configured environment and Config.LogLevel.
func FromContext(ctx context.Context, component, operation string, opts ...Option) *Asserter {
	cfg := ConfigFromEnv()
	base := []Option{WithConfig(cfg)}

	if factory := typeguard.MetricFactoryFromContext(ctx); factory != nil {
		base = append(base, WithMetrics(factory))
	}

	logger := typeguard.LoggerFromContext(ctx)
	if logger == nil {
		logger = defaultLogger(cfg)
	}

	return New(ctx, logger, component, operation, append(base, opts...)...)
}

// defaultLogger returns nil when zap cannot be built, leaving New's stderr
// fallback in place.
//
//nolint:ireturn
func defaultLogger(cfg Config) log.Logger {
	logger, err := tgzap.New(tgzap.Config{Production: cfg.Production(), Level: cfg.LogLevel})
	if err != nil {
		return nil
	}

	return logger
}

// Config returns the policy the Asserter was built with.
func (asserter *Asserter) Config() Config {
	if asserter == nil {
		return DefaultConfig()
	}

	return asserter.config
}

// Type checks that value classifies as expected.
//
// On success it returns a Subject for refinements. Under FailureLog a data
// mismatch returns a nil error and an inert Subject whose Err holds the
// logged failure.
//
// Example:
//
//	subject, err := asserter.Type(ctx, email, token.String, "email must be a string")
//	if err != nil {
//		return err
//	}
//
//	if err := subject.Strings().IsEmail().Err(); err != nil {
//		return err
//	}
func (asserter *Asserter) Type(ctx context.Context, value any, expected token.Token, msg string) (Subject, error) {
	msg = messageOrDefault(msg)

	if !expected.Valid() {
		return Subject{}, asserter.fail(ctx, failure{
			kind:      KindInvalidExpectedType,
			assertion: "Type",
			message:   msg,
			received:  expected.String(),
			pairs:     []any{"allowed", token.Expected()},
			cause:     token.ErrUnknownToken,
		}).result(asserter)
	}

	return asserter.checkType(ctx, "Type", value, expected, msg)
}

// Relation checks left op right.
//
// Example:
//
//	if err := asserter.Relation(ctx, retries, token.LessOrEqual, maxRetries, "retry budget exceeded"); err != nil {
//		return err
//	}
func (asserter *Asserter) Relation(ctx context.Context, left any, op token.Operator, right any, msg string) error {
	return asserter.relation(ctx, "Relation", left, op, right, messageOrDefault(msg))
}

// Check is the dynamic entry point. mode is either a token name, in which case
// args[0] is an optional message, or an operator, in which case args[0] is the
// right operand and args[1] an optional message. Messages must be strings.
//
// Example:
//
//	if _, err := asserter.Check(ctx, amount, ">=", 0, "amount must not be negative"); err != nil {
//		return err
//	}
func (asserter *Asserter) Check(ctx context.Context, value any, mode string, args ...any) (Subject, error) {
	if expected, err := token.Parse(mode); err == nil {
		msg, usageErr := asserter.messageArg(ctx, args, 0)
		if usageErr != nil {
			return Subject{}, usageErr
		}

		return asserter.checkType(ctx, "Check", value, expected, msg)
	}

	if op, err := token.ParseOperator(mode); err == nil {
		var right any
		if len(args) > 0 {
			right = args[0]
		}

		msg, usageErr := asserter.messageArg(ctx, args, 1)
		if usageErr != nil {
			return Subject{}, usageErr
		}

		return Subject{}, asserter.relation(ctx, "Check", value, op, right, msg)
	}

	msg := DefaultMessage
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			msg = messageOrDefault(s)
		}
	}

	return Subject{}, asserter.fail(ctx, failure{
		kind:      KindInvalidExpectedType,
		assertion: "Check",
		message:   msg,
		received:  format.Diagnostic(mode),
		pairs:     []any{"allowed", token.Expected() + " | " + token.ExpectedOperators()},
		cause:     fmt.Errorf("%w: %q", token.ErrUnknownToken, mode),
	}).result(asserter)
}

// Halt terminates the current goroutine if err is not nil, after flushing the
// Asserter's logger. Use this after a failed assertion in goroutines to
// prevent further execution.
func (asserter *Asserter) Halt(err error) {
	if err == nil {
		return
	}

	if asserter != nil && asserter.logger != nil {
		_ = asserter.logger.Sync(asserter.ctx)
	}

	goruntime.Goexit()
}

func (asserter *Asserter) checkType(ctx context.Context, assertion string, value any, expected token.Token, msg string) (Subject, error) {
	got := token.Classify(value)

	if !got.Valid() {
		err := asserter.fail(ctx, failure{
			kind:      KindInternalClassificationError,
			assertion: assertion,
			message:   msg,
			expected:  expected.String(),
			pairs:     []any{"value_type", fmt.Sprintf("%T", value)},
		})

		return Subject{}, err.result(asserter)
	}

	mismatch := got != expected
	reason := ""

	if !mismatch && expected == token.Date && !validDate(value) {
		mismatch = true
		reason = "invalid date"
	}

	if mismatch {
		f := failure{
			kind:      KindTypeMismatch,
			assertion: assertion,
			message:   msg,
			expected:  expected.String(),
			received:  got.String(),
			value:     format.Diagnostic(value),
		}

		if reason != "" {
			f.pairs = []any{"reason", reason}
		}

		entry := asserter.fail(ctx, f)

		return Subject{asserter: asserter, ctx: ctx, value: value, token: got, message: msg, inert: true, err: entry},
			entry.result(asserter)
	}

	asserter.observe(Observation{Assertion: assertion, Token: expected})

	return Subject{asserter: asserter, ctx: ctx, value: value, token: expected, message: msg}, nil
}

func (asserter *Asserter) relation(ctx context.Context, assertion string, left any, op token.Operator, right any, msg string) error {
	if !op.Valid() {
		return asserter.fail(ctx, failure{
			kind:      KindInvalidOperator,
			assertion: assertion,
			message:   msg,
			received:  op.String(),
			pairs:     []any{"allowed", token.ExpectedOperators()},
			cause:     token.ErrUnknownOperator,
		}).result(asserter)
	}

	if evaluate(left, op, right) {
		asserter.observe(Observation{Assertion: assertion, Operator: op})
		return nil
	}

	lt, rt := token.Classify(left), token.Classify(right)
	pairs := []any{"left", format.Diagnostic(left), "operator", op.String(), "right", format.Diagnostic(right)}

	if op.Ordering() && !orderable(lt, rt) {
		pairs = append(pairs, "reason", fmt.Sprintf("'%s' and '%s' are not ordered", lt, rt))
	}

	return asserter.fail(ctx, failure{
		kind:      KindRelationFailed,
		assertion: assertion,
		message:   msg,
		expected:  lt.String() + " " + op.String() + " " + rt.String(),
		pairs:     pairs,
	}).result(asserter)
}

// messageArg reads an optional message at args[i]. Anything but a string or
// an absent/nil argument is a usage error.
func (asserter *Asserter) messageArg(ctx context.Context, args []any, i int) (string, error) {
	if len(args) > i+1 {
		return "", asserter.fail(ctx, failure{
			kind:      KindInvalidMessageType,
			assertion: "Check",
			message:   DefaultMessage,
			received:  format.Diagnostic(args[i+1:]),
			pairs:     []any{"reason", "unexpected trailing arguments"},
		}).result(asserter)
	}

	if len(args) <= i || args[i] == nil {
		return DefaultMessage, nil
	}

	msg, ok := args[i].(string)
	if !ok {
		return "", asserter.fail(ctx, failure{
			kind:      KindInvalidMessageType,
			assertion: "Check",
			message:   DefaultMessage,
			expected:  token.String.String(),
			received:  token.Classify(args[i]).String(),
			value:     format.Diagnostic(args[i]),
		}).result(asserter)
	}

	return messageOrDefault(msg), nil
}

func (asserter *Asserter) observe(observation Observation) {
	if asserter == nil || asserter.observer == nil || !asserter.config.TestMode {
		return
	}

	asserter.observer(observation)
}

func messageOrDefault(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return DefaultMessage
	}

	return msg
}

func validDate(value any) bool {
	t, ok := timeOf(value)

	return ok && !t.IsZero()
}

// failure collects everything known about a failed assertion before the
// visibility policy is applied.
type failure struct {
	kind      Kind
	assertion string
	message   string
	expected  string
	received  string
	value     string
	pairs     []any
	cause     error
}

func (f failure) detailPairs() []any {
	pairs := make([]any, 0, len(f.pairs)+8)
	pairs = append(pairs, "kind", f.kind.String())

	if f.expected != "" {
		pairs = append(pairs, "expected", f.expected)
	}

	if f.received != "" {
		pairs = append(pairs, "received", f.received)
	}

	if f.value != "" {
		pairs = append(pairs, "value", f.value)
	}

	return append(pairs, f.pairs...)
}

// fail builds the AssertionError, applies the visibility policy, and emits
// logs, span events, metrics and reporter calls. The caller decides via
// result whether the error is returned.
func (asserter *Asserter) fail(ctx context.Context, f failure) *AssertionError {
	ctx, logger, component, operation := asserter.values(ctx)
	cfg := asserter.Config()

	entry := &AssertionError{
		Kind:      f.kind,
		Assertion: f.assertion,
		Message:   f.message,
		Component: component,
		Operation: operation,
		Redacted:  cfg.Production() && f.kind.Redactable(),
		cause:     f.cause,
	}

	if !entry.Redacted {
		entry.Expected = f.expected
		entry.Received = f.received
		entry.Value = f.value
		entry.Details = formatKeyValueLines(withContextPairs(f.assertion, component, operation, f.detailPairs()))
	}

	stack := []byte(nil)
	if shouldIncludeStack(cfg) {
		stack = debug.Stack()
	}

	logAssertion(ctx, logger, entry, stack)
	recordAssertionObservability(ctx, asserter.telemetry(), entry, stack)

	return entry
}

// result applies the failure policy: data-shape failures are swallowed under
// FailureLog, everything else is returned.
func (entry *AssertionError) result(asserter *Asserter) error {
	if entry == nil {
		return nil
	}

	if entry.Kind.Redactable() && asserter.Config().Failure == FailureLog {
		return nil
	}

	return entry
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, log.Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

func shouldIncludeStack(cfg Config) bool {
	return !cfg.Production()
}

// contextPairsCapacity is the capacity for the fixed context pairs (assertion, component, operation).
const contextPairsCapacity = 6

func withContextPairs(assertion, component, operation string, kv []any) []any {
	contextPairs := make([]any, 0, len(kv)+contextPairsCapacity)
	contextPairs = append(contextPairs, "assertion", assertion)

	if component != "" {
		contextPairs = append(contextPairs, "component", component)
	}

	if operation != "" {
		contextPairs = append(contextPairs, "operation", operation)
	}

	contextPairs = append(contextPairs, kv...)

	return contextPairs
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%s", kv[i], format.Truncate(fmt.Sprint(value), format.MaxValueLength))
	}

	return sb.String()
}

func formatLogMessage(entry *AssertionError, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("ASSERTION FAILED: ")
	sb.WriteString(entry.Message)

	switch {
	case entry.Redacted:
		sb.WriteString("\n    ")
		sb.WriteString(RedactionNotice)
	case entry.Details != "":
		sb.WriteString("\n")
		sb.WriteString(entry.Details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(string(stack))
	}

	return sb.String()
}

// stderrLogger receives failures from an Asserter built without a logger.
var stderrLogger log.Logger = log.NewGoLogger(nil, log.LevelError)

func scopeFields(component, operation string) []log.Field {
	fields := make([]log.Field, 0, 2)

	if component != "" {
		fields = append(fields, log.String("component", component))
	}

	if operation != "" {
		fields = append(fields, log.String("operation", operation))
	}

	return fields
}

// logAssertion writes entry at error level. logger already carries the
// component and operation fields; the message is only rendered when the
// level is enabled.
func logAssertion(ctx context.Context, logger log.Logger, entry *AssertionError, stack []byte) {
	if logger == nil {
		logger = stderrLogger.With(scopeFields(entry.Component, entry.Operation)...)
	}

	if !logger.Enabled(log.LevelError) {
		return
	}

	fields := []log.Field{
		log.String("assertion", entry.Assertion),
		log.String("kind", entry.Kind.String()),
	}

	if headerID := typeguard.HeaderIDFromContext(ctx); headerID != "" {
		fields = append(fields, log.String("header_id", headerID))
	}

	logger.Log(ctx, log.LevelError, formatLogMessage(entry, stack), fields...)
}
