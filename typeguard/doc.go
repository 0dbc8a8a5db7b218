// Package typeguard provides runtime type assertions over arbitrary Go values.
//
// Values are classified into an extended, closed set of type tokens (package token),
// rendered compactly for diagnostics (package format), and checked by an Asserter
// (package assert) that honors a development/production visibility policy.
//
// Typical usage:
//
//	a := assert.New(ctx, logger, "billing", "import", assert.WithConfig(assert.ConfigFromEnv()))
//	subject, err := a.Type(ctx, payload["email"], token.String, "email must be text")
//	if err != nil {
//		return err
//	}
//	if err := subject.Strings().MaxLength(254).IsEmail().Err(); err != nil {
//		return err
//	}
//
// This package holds environment and context helpers; the engine lives in subpackages.
package typeguard
