package schema

// Union is a closed discriminated union: a tag field selects exactly one
// concrete variant schema. Adding a variant is a code change, there is no
// dynamic registration.
type Union struct {
	// Name identifies the union in messages.
	Name string

	// Discriminator is the tag field name, e.g. "petType".
	Discriminator string

	// Variants maps the discriminator literal to the variant schema.
	Variants map[string]*Object
}

// MustUnion compiles every variant schema or panics.
func MustUnion(u *Union) *Union {
	for _, variant := range u.Variants {
		if err := variant.Compile(); err != nil {
			panic(err)
		}
	}
	return u
}

// Resolve selects the variant whose discriminator literal matches the payload.
// A missing tag, a non-string tag or an unmatched literal produce a single
// unknown_variant issue.
func (u *Union) Resolve(payload map[string]any) (string, *Object, Issues) {
	raw, ok := payload[u.Discriminator]
	if !ok {
		return "", nil, Issues{issuef(u.Discriminator, CodeUnknownVariant,
			"missing discriminator for %s", u.Name)}
	}

	tag, ok := raw.(string)
	if !ok {
		return "", nil, Issues{issuef(u.Discriminator, CodeUnknownVariant,
			"discriminator must be a string")}
	}

	variant, ok := u.Variants[tag]
	if !ok {
		return "", nil, Issues{issuef(u.Discriminator, CodeUnknownVariant,
			"%q does not match any %s variant", tag, u.Name)}
	}

	return tag, variant, nil
}

// Validate resolves the variant and runs its full pipeline.
// The returned record carries the discriminator value.
func (u *Union) Validate(payload map[string]any) (string, map[string]any, Issues) {
	tag, variant, issues := u.Resolve(payload)
	if len(issues) > 0 {
		return "", nil, issues
	}

	rec, issues := variant.Validate(payload)
	if len(issues) > 0 {
		return tag, nil, issues
	}

	return tag, rec, nil
}
