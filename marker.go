package schemarules

// Marker is the product of a successful Bind: the canonical [Descriptor],
// the original function untouched, the engine-facing [Adapter], and any
// deprecation warnings raised while declaring. Markers are inert; handing
// one to [Compile] is what makes it take effect. A marker is immutable once
// built and safe to attach to any number of definitions.
type Marker struct {
	descriptor Descriptor
	original   any
	adapter    Adapter
	warnings   []Warning
}

func newMarker(d Descriptor, fn any, ad Adapter, warnings []Warning) *Marker {
	return &Marker{descriptor: d, original: fn, adapter: ad, warnings: warnings}
}

// Descriptor returns the canonical record of the declaration.
func (m *Marker) Descriptor() Descriptor {
	return m.descriptor
}

// Original returns the rule function exactly as it was bound.
func (m *Marker) Original() any {
	return m.original
}

// Adapter returns the normalized invocation surface for the rule.
func (m *Marker) Adapter() Adapter {
	return m.adapter
}

// Warnings returns deprecation diagnostics raised by the declaration, in
// the order they occurred. Nil when the declaration was clean.
func (m *Marker) Warnings() []Warning {
	return m.warnings
}
