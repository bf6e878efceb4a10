package common

// Collect returns the n elements produced by at, in index order.
// The result is never nil.
func Collect[E any](n int, at func(int) E) []E {
	out := make([]E, n)
	for i := range n {
		out[i] = at(i)
	}

	return out
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
