package mongoskema

// Check is a custom-validator record attached to a node by refinement. The
// predicate must remain retrievable from the innermost primitive even after the
// node has been wrapped by optional/nullable/default/pipe combinators.
type Check struct {
	Name      string
	Predicate func(any) bool
	Message   string
}

// Meta is the extension metadata threaded alongside a node: uniqueness and
// sparseness flags, foreign-reference names, and the refinement check chain.
// It is an explicit value copied forward on every derivation, never shared
// mutable state.
type Meta struct {
	Unique  bool
	Sparse  bool
	Ref     string
	RefPath string
	Checks  []Check
	// Augmented marks a node whose refinement chain has already been enriched;
	// re-augmenting is a no-op.
	Augmented bool
}

// LastCheck returns the most recently attached check carrying a predicate.
// Later-attached refinements are assumed more specific, so the scan runs
// backward and the last match wins.
func (m Meta) LastCheck() (Check, bool) {
	for i := len(m.Checks) - 1; i >= 0; i-- {
		if m.Checks[i].Predicate != nil {
			return m.Checks[i], true
		}
	}
	return Check{}, false
}

// Derive returns a copy of m with c appended to the check chain and the
// augmentation marker set. Uniqueness, sparseness and reference attributes are
// carried forward unchanged.
func (m Meta) Derive(c Check) Meta {
	out := m
	out.Checks = append(append([]Check(nil), m.Checks...), c)
	out.Augmented = true
	return out
}

// DefaultProvider yields a field's default value. A nil provider means the
// field has no default; a provider returning nil resolves the default to null.
type DefaultProvider func() any

// NullProvider is the provider supplied for nullable fields without an explicit
// default.
func NullProvider() any { return nil }

func metaOf(n Node) Meta {
	if mc, ok := n.(MetaCarrier); ok {
		return mc.Meta()
	}
	return Meta{}
}
