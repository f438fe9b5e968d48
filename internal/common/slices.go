package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	return At(s, 0)
}

// Second returns the second element of the slice and true, or the zero value and false
// if the slice is shorter than two elements.
func Second[S ~[]E, E any](s S) (E, bool) {
	return At(s, 1)
}

// At returns s[i] and true, or the zero value and false when i is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}
