package modal

// Accessor narrows a Manager to one modal kind so feature code does not
// repeat the kind tag or type-assert props.
type Accessor[P Props] struct {
	m    *Manager
	kind Kind
}

// For returns the accessor for the kind reported by P.
func For[P Props](m *Manager) Accessor[P] {
	var zero P
	return Accessor[P]{m: m, kind: zero.Kind()}
}

// Kind returns the kind the accessor is bound to.
func (a Accessor[P]) Kind() Kind { return a.kind }

// Open opens a modal of this kind.
func (a Accessor[P]) Open(props P, opts ...OpenOption) EntryID {
	return a.m.Open(props, opts...)
}

// IsOpen reports whether this kind is the active modal.
func (a Accessor[P]) IsOpen() bool {
	return a.m.IsOpen(a.kind)
}

// Props returns the active props when this kind is open.
func (a Accessor[P]) Props() (P, bool) {
	var zero P
	if !a.IsOpen() {
		return zero, false
	}
	p, ok := a.m.Current().Props.(P)
	return p, ok
}

// Close closes the active modal.
func (a Accessor[P]) Close() {
	a.m.Close()
}

// UpdateProps merges partial into the active props.
func (a Accessor[P]) UpdateProps(partial P) error {
	return a.m.UpdateProps(partial)
}

// Update applies fn to a copy of the active props and stores the result.
// Unlike UpdateProps it can reset fields to their zero value.
func (a Accessor[P]) Update(fn func(*P)) error {
	p, ok := a.Props()
	if !ok {
		if a.m.Current().IsZero() {
			return ErrNoActiveModal
		}
		return ErrKindMismatch
	}
	fn(&p)
	return a.m.replaceProps(p)
}
