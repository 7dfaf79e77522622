package api

import (
	"net/http"
	"strconv"

	"github.com/cubahno/apipatterns/internal/schema"
)

// intQueryParam reads an integer query parameter with a default and
// boundary policy. min and max are inclusive, max 0 means unbounded.
// Violations are reported as field-addressable issues, same as body
// validation failures.
func intQueryParam(r *http.Request, name string, def, min, max int) (int, schema.Issues) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, schema.Issues{{
			Field:   name,
			Code:    schema.CodeInvalidType,
			Message: "expected integer",
		}}
	}

	if value < min {
		return 0, schema.Issues{{
			Field:   name,
			Code:    schema.CodeTooSmall,
			Message: "must be greater than or equal to " + strconv.Itoa(min),
		}}
	}
	if max > 0 && value > max {
		return 0, schema.Issues{{
			Field:   name,
			Code:    schema.CodeTooBig,
			Message: "must be less than or equal to " + strconv.Itoa(max),
		}}
	}

	return value, nil
}
