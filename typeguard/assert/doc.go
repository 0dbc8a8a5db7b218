// Package assert provides runtime type and relational assertions that return
// errors instead of panicking.
//
// An Asserter classifies values into the extended token set from package token,
// compares operands with relational operators, and refines typed subjects
// through immutable chains:
//
//	asserter := assert.New(ctx, logger, "payments", "create_transfer")
//
//	subject, err := asserter.Type(ctx, req.Email, token.String, "email is required")
//	if err != nil {
//		return err
//	}
//
//	if err := subject.Strings().MaxLength(254).IsEmail().Err(); err != nil {
//		return err
//	}
//
// Every failure is logged, recorded on the active span as an assertion.failed
// event, counted in assertion_failed_total when metrics are configured, and
// forwarded to an optional Reporter. Returned errors are *AssertionError values
// matching ErrAssertionFailed (failing data) or ErrInvalidUsage (malformed
// assertion arguments), plus a per-kind sentinel.
//
// Config controls the visibility policy (production redacts received values and
// types) and the failure policy (FailureLog turns data failures into log-only
// diagnostics). Usage errors are never redacted or swallowed.
package assert
