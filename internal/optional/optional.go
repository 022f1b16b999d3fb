package optional

// Of returns a pointer to v. Handy for filling optional scalar fields.
func Of[T any](v T) *T { return &v }

// Equal reports whether two optional values match: both unset, or both
// set to the same value.
func Equal[T comparable](x, y *T) bool {
	if x == nil || y == nil {
		return x == y
	}

	return *x == *y
}
