package schemarules

// MissingRules returns the names of plan attributes that nothing covers: no
// standard rules, no validator markers, no serializer. Hidden attributes
// (docs:"skip") are excluded, as is anything listed in exclude.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, schemarules.MissingRules(plan))
//	assert.Empty(t, schemarules.MissingRules(plan, "notes"))
func MissingRules(p *Plan, exclude ...string) []string {
	excl := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excl[e] = true
	}
	var missing []string
	for _, f := range p.fields {
		if f.hidden || excl[f.name] {
			continue
		}
		if len(f.rules) == 0 && len(f.all) == 0 && f.serializer == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}
