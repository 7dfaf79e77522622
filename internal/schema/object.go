package schema

// Object is a declarative schema for one record type.
//
// Validation runs in three stages: per-field constraints, derivation of
// computed fields, record-level invariants. Derivation only runs when every
// field constraint passed, invariants only run after derivation.
type Object struct {
	// Name identifies the record type in messages.
	Name string

	Fields []*Field

	// Derived lists computed field names.
	// Caller-supplied values for them are always discarded.
	Derived []string

	// Derive computes the derived fields in place from validated inputs.
	// It must be total over inputs that passed the field constraints.
	Derive func(rec map[string]any)

	Invariants []*Invariant

	// AllowUnknown permits payload keys that are not declared.
	// Unknown keys are rejected by default.
	AllowUnknown bool

	fields  map[string]*Field
	derived map[string]bool
}

// MustObject compiles the object schema or panics.
// Intended for package-level schema variables.
func MustObject(o *Object) *Object {
	if err := o.Compile(); err != nil {
		panic(err)
	}
	return o
}

// Compile indexes the fields and compiles the invariant rules.
func (o *Object) Compile() error {
	o.fields = make(map[string]*Field, len(o.Fields))
	names := make([]string, 0, len(o.Fields)+len(o.Derived))
	for _, f := range o.Fields {
		o.fields[f.Name] = f
		names = append(names, f.Name)
	}

	o.derived = make(map[string]bool, len(o.Derived))
	for _, name := range o.Derived {
		o.derived[name] = true
		names = append(names, name)
	}

	return compileInvariants(names, o.Invariants)
}

// Validate runs the full pipeline over a decoded JSON payload and returns
// a fresh record containing the validated inputs plus the derived fields.
// On failure the record is nil and every collected issue is returned.
func (o *Object) Validate(payload map[string]any) (map[string]any, Issues) {
	rec, issues := o.checkFields(payload)

	if !o.AllowUnknown {
		issues = append(issues, o.unknownFields(payload)...)
	}
	if len(issues) > 0 {
		return nil, issues
	}

	if o.Derive != nil {
		o.Derive(rec)
	}

	if issues = o.checkInvariants(rec); len(issues) > 0 {
		return nil, issues
	}

	return rec, nil
}

// checkFields validates every declared field and collects all violations.
// Unknown payload keys are ignored here.
func (o *Object) checkFields(payload map[string]any) (map[string]any, Issues) {
	rec := make(map[string]any, len(o.Fields))
	var issues Issues

	for _, f := range o.Fields {
		value, present := payload[f.Name]
		if !present {
			if f.Required {
				issues = append(issues, issuef(f.Name, CodeRequired, "field is required"))
			} else if f.Default != nil {
				rec[f.Name] = f.Default
			}
			continue
		}

		if fieldIssues := f.Check(value); len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		rec[f.Name] = value
	}

	return rec, issues
}

// unknownFields reports payload keys that are neither declared inputs
// nor derived fields.
func (o *Object) unknownFields(payload map[string]any) Issues {
	var issues Issues
	for key := range payload {
		if _, ok := o.fields[key]; ok {
			continue
		}
		if o.derived[key] {
			continue
		}
		issues = append(issues, issuef(key, CodeUnknownField, "unknown field"))
	}
	return issues
}

func (o *Object) checkInvariants(rec map[string]any) Issues {
	var issues Issues
	for _, inv := range o.Invariants {
		if iss := inv.eval(rec); iss != nil {
			issues = append(issues, *iss)
		}
	}
	return issues
}

// FieldNames returns the declared input field names in declaration order.
func (o *Object) FieldNames() []string {
	names := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		names = append(names, f.Name)
	}
	return names
}
