package schema

import (
	"fmt"
	"strings"
)

// Issue codes reported by the validation pipeline.
const (
	CodeRequired         = "required"
	CodeInvalidType      = "invalid_type"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeTooShort         = "too_short"
	CodeTooLong          = "too_long"
	CodePattern          = "pattern"
	CodeInvalidEnum      = "invalid_enum"
	CodeTooManyDecimals  = "too_many_decimals"
	CodeUnknownField     = "unknown_field"
	CodeUnknownVariant   = "unknown_variant"
	CodeInvariant        = "invariant"
	CodeUnknownVerbosity = "unknown_verbosity"
)

// Issue is a single validation failure, addressable by field.
// Record-level failures carry the invariant name in Field.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Issues is a collection of validation failures.
// All field constraints are checked before reporting, nothing short-circuits.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	const maxShown = 3

	if len(iss) == 0 {
		return ""
	}

	b := &strings.Builder{}
	shown := len(iss)
	if shown > maxShown {
		shown = maxShown
	}

	for i := 0; i < shown; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s: %s", iss[i].Field, iss[i].Code)
	}
	if len(iss) > shown {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}

	return b.String()
}

func issuef(field, code, format string, args ...any) Issue {
	return Issue{
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
