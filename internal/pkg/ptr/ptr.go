package ptr

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// Or returns the value p points to, or fallback when p is nil.
func Or[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
