package assert

import (
	"errors"
	"fmt"
)

// RedactionNotice replaces assertion details when the visibility policy is production.
const RedactionNotice = "details redacted in production mode"

// DefaultMessage is used when the caller supplies no message.
const DefaultMessage = "undefined error message"

// Umbrella sentinels. Data-shape failures wrap ErrAssertionFailed; misuse of the
// API itself wraps ErrInvalidUsage.
var (
	ErrAssertionFailed = errors.New("assertion failed")
	ErrInvalidUsage    = errors.New("invalid assertion usage")
)

// Per-kind sentinels, for errors.Is checks on a specific failure.
var (
	ErrInvalidExpectedType       = errors.New("invalid expected type")
	ErrInvalidMessageType        = errors.New("invalid message type")
	ErrInvalidOperator           = errors.New("invalid operator")
	ErrTypeMismatch              = errors.New("type mismatch")
	ErrRelationFailed            = errors.New("relation failed")
	ErrInvalidRefinementArgument = errors.New("invalid refinement argument")
	ErrRefinementFailed          = errors.New("refinement failed")
	ErrInternalClassification    = errors.New("internal classification error")
)

// Kind classifies an assertion failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidExpectedType
	KindInvalidMessageType
	KindInvalidOperator
	KindTypeMismatch
	KindRelationFailed
	KindInvalidRefinementArgument
	KindRefinementFailed
	KindInternalClassificationError
)

// String returns the kind name used in logs, span attributes and metric labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidExpectedType:
		return "InvalidExpectedType"
	case KindInvalidMessageType:
		return "InvalidMessageType"
	case KindInvalidOperator:
		return "InvalidOperator"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindRelationFailed:
		return "RelationFailed"
	case KindInvalidRefinementArgument:
		return "InvalidRefinementArgument"
	case KindRefinementFailed:
		return "RefinementFailed"
	case KindInternalClassificationError:
		return "InternalClassificationError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsUsage reports whether k is a programmer error: a malformed argument to the
// assertion API rather than failing data. Usage errors are never redacted and
// never downgraded to log-only diagnostics.
func (k Kind) IsUsage() bool {
	switch k {
	case KindInvalidExpectedType, KindInvalidMessageType, KindInvalidOperator, KindInvalidRefinementArgument:
		return true
	default:
		return false
	}
}

// Redactable reports whether k describes failing data, which is subject to the
// visibility and failure policies.
func (k Kind) Redactable() bool {
	switch k {
	case KindTypeMismatch, KindRelationFailed, KindRefinementFailed:
		return true
	default:
		return false
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidExpectedType:
		return ErrInvalidExpectedType
	case KindInvalidMessageType:
		return ErrInvalidMessageType
	case KindInvalidOperator:
		return ErrInvalidOperator
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindRelationFailed:
		return ErrRelationFailed
	case KindInvalidRefinementArgument:
		return ErrInvalidRefinementArgument
	case KindRefinementFailed:
		return ErrRefinementFailed
	case KindInternalClassificationError:
		return ErrInternalClassification
	default:
		return nil
	}
}

// AssertionError represents a failed assertion with rich context.
//
// When Redacted is true, Expected, Received, Value and Details are empty and
// Error renders only the caller message and RedactionNotice.
type AssertionError struct {
	Kind      Kind
	Assertion string
	Message   string
	Component string
	Operation string
	Expected  string
	Received  string
	Value     string
	Details   string
	Redacted  bool

	cause error
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	prefix := ErrAssertionFailed.Error() + ": "
	if entry.Kind.IsUsage() {
		prefix = ErrInvalidUsage.Error() + ": "
	}

	switch {
	case entry.Redacted:
		return prefix + entry.Message + "\n    " + RedactionNotice
	case entry.Details == "":
		return prefix + entry.Message
	default:
		return prefix + entry.Message + "\n" + entry.Details
	}
}

// Unwrap exposes the umbrella sentinel, the per-kind sentinel, and the
// underlying cause (if any) to errors.Is and errors.As.
func (entry *AssertionError) Unwrap() []error {
	if entry == nil {
		return nil
	}

	errs := make([]error, 0, 3)

	if entry.Kind.IsUsage() {
		errs = append(errs, ErrInvalidUsage)
	} else {
		errs = append(errs, ErrAssertionFailed)
	}

	if sentinel := entry.Kind.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}

	if entry.cause != nil {
		errs = append(errs, entry.cause)
	}

	return errs
}
