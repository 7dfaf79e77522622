package schema

// Intersection composes several independent field groups over one flat
// payload. Every group must validate on its own, then a single combined
// derivation and invariant pass runs with values from all groups together.
//
// Unknown payload keys are rejected: a field must belong to one of the
// groups or be a derived field.
type Intersection struct {
	// Name identifies the composed record type in messages.
	Name string

	Groups []*Object

	// Derived lists cross-group computed field names.
	Derived []string

	// Derive computes the cross-group metrics from the merged record.
	Derive func(rec map[string]any)

	Invariants []*Invariant
}

// MustIntersection compiles the groups and the combined invariants or panics.
func MustIntersection(x *Intersection) *Intersection {
	if err := x.Compile(); err != nil {
		panic(err)
	}
	return x
}

// Compile compiles each group and the combined invariant rules against
// the union of all group fields plus the derived names.
func (x *Intersection) Compile() error {
	var names []string
	for _, group := range x.Groups {
		if err := group.Compile(); err != nil {
			return err
		}
		names = append(names, group.FieldNames()...)
	}
	names = append(names, x.Derived...)

	return compileInvariants(names, x.Invariants)
}

// Validate checks the flat payload against every group, merges the validated
// values and runs the combined derivation and invariant pass.
// Issues from all groups are aggregated, nothing short-circuits.
func (x *Intersection) Validate(payload map[string]any) (map[string]any, Issues) {
	var issues Issues
	rec := make(map[string]any)

	for _, group := range x.Groups {
		groupRec, groupIssues := group.checkFields(payload)
		issues = append(issues, groupIssues...)
		for k, v := range groupRec {
			rec[k] = v
		}
	}

	issues = append(issues, x.unknownFields(payload)...)
	if len(issues) > 0 {
		return nil, issues
	}

	if x.Derive != nil {
		x.Derive(rec)
	}

	for _, group := range x.Groups {
		issues = append(issues, group.checkInvariants(rec)...)
	}
	for _, inv := range x.Invariants {
		if iss := inv.eval(rec); iss != nil {
			issues = append(issues, *iss)
		}
	}
	if len(issues) > 0 {
		return nil, issues
	}

	return rec, nil
}

func (x *Intersection) unknownFields(payload map[string]any) Issues {
	known := make(map[string]bool)
	for _, group := range x.Groups {
		for _, f := range group.Fields {
			known[f.Name] = true
		}
	}
	for _, name := range x.Derived {
		known[name] = true
	}

	var issues Issues
	for key := range payload {
		if !known[key] {
			issues = append(issues, issuef(key, CodeUnknownField, "unknown field"))
		}
	}
	return issues
}
