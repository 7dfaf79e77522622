package schema

import (
	"regexp"
	"strconv"
)

// Kind is the expected JSON type of a field value.
type Kind int

const (
	Number Kind = iota
	Integer
	String
	Bool
	NumberList
	StringList
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Integer:
		return "integer"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case NumberList:
		return "array of numbers"
	case StringList:
		return "array of strings"
	}
	return "unknown"
}

// Field is a declarative constraint set for one named input field.
// Numeric bounds are nil when unset.
// For NumberList fields the numeric bounds apply to every element.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	Gt *float64
	Ge *float64
	Lt *float64
	Le *float64

	// MaxDecimals limits fractional digits of a number, 0 means unlimited.
	// Whole numbers always pass.
	MaxDecimals int

	Pattern *regexp.Regexp

	// MinLen and MaxLen bound string length, 0 means unset.
	MinLen int
	MaxLen int

	Enum []string

	// MinItems and MaxItems bound list length, 0 means unset.
	MinItems int
	MaxItems int

	// Default is applied when an optional field is absent.
	Default any
}

// Float returns a pointer to v, for use in Field bound literals.
func Float(v float64) *float64 {
	return &v
}

// Check validates a single decoded JSON value against the field constraints.
// It returns all violations, not just the first one.
// A type mismatch stops further checks for the field.
func (f *Field) Check(value any) []Issue {
	switch f.Kind {
	case Number, Integer:
		num, ok := value.(float64)
		if !ok {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		if f.Kind == Integer && !isWholeNumber(num) {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		return f.checkNumber(num)
	case String:
		s, ok := value.(string)
		if !ok {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		return f.checkString(s)
	case Bool:
		if _, ok := value.(bool); !ok {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		return nil
	case NumberList:
		items, ok := value.([]any)
		if !ok {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		return f.checkNumberList(items)
	case StringList:
		items, ok := value.([]any)
		if !ok {
			return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return []Issue{issuef(f.Name, CodeInvalidType, "expected %s", f.Kind)}
			}
		}
		return nil
	}
	return nil
}

func (f *Field) checkNumber(num float64) []Issue {
	var res []Issue

	if f.Gt != nil && num <= *f.Gt {
		res = append(res, issuef(f.Name, CodeTooSmall, "must be greater than %v", *f.Gt))
	}
	if f.Ge != nil && num < *f.Ge {
		res = append(res, issuef(f.Name, CodeTooSmall, "must be greater than or equal to %v", *f.Ge))
	}
	if f.Lt != nil && num >= *f.Lt {
		res = append(res, issuef(f.Name, CodeTooBig, "must be less than %v", *f.Lt))
	}
	if f.Le != nil && num > *f.Le {
		res = append(res, issuef(f.Name, CodeTooBig, "must be less than or equal to %v", *f.Le))
	}
	if f.MaxDecimals > 0 && !isWholeNumber(num) && decimalPlaces(num) > f.MaxDecimals {
		res = append(res, issuef(f.Name, CodeTooManyDecimals,
			"maximum %d decimal places allowed", f.MaxDecimals))
	}

	return res
}

func (f *Field) checkString(s string) []Issue {
	var res []Issue

	if f.MinLen > 0 && len(s) < f.MinLen {
		res = append(res, issuef(f.Name, CodeTooShort, "must be at least %d characters", f.MinLen))
	}
	if f.MaxLen > 0 && len(s) > f.MaxLen {
		res = append(res, issuef(f.Name, CodeTooLong, "must be at most %d characters", f.MaxLen))
	}
	if f.Pattern != nil && !f.Pattern.MatchString(s) {
		res = append(res, issuef(f.Name, CodePattern, "must match pattern %s", f.Pattern.String()))
	}
	if len(f.Enum) > 0 && !sliceContains(f.Enum, s) {
		res = append(res, issuef(f.Name, CodeInvalidEnum, "must be one of %v", f.Enum))
	}

	return res
}

func (f *Field) checkNumberList(items []any) []Issue {
	var res []Issue

	if f.MinItems > 0 && len(items) < f.MinItems {
		res = append(res, issuef(f.Name, CodeTooShort, "must have at least %d items", f.MinItems))
	}
	if f.MaxItems > 0 && len(items) > f.MaxItems {
		res = append(res, issuef(f.Name, CodeTooLong, "must have at most %d items", f.MaxItems))
	}

	for i, item := range items {
		num, ok := item.(float64)
		if !ok {
			res = append(res, issuef(f.Name, CodeInvalidType, "item %d: expected number", i))
			continue
		}
		for _, iss := range f.checkNumber(num) {
			iss.Message = "item " + strconv.Itoa(i) + ": " + iss.Message
			res = append(res, iss)
		}
	}

	return res
}

func sliceContains(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
