package periodicarray

import "golang.org/x/exp/constraints"

// wrap maps i onto [0, n). Negative indices count back from the end, so the
// result is the Euclidean remainder. A non-positive n is the zero-value
// array and panics with ErrZeroLength.
func wrap[K constraints.Integer](i K, n int) int {
	if n <= 0 {
		mustHaveElements("index", n)
	}

	if i >= 0 {
		return int(uint64(i) % uint64(n))
	}

	r := int64(i) % int64(n)
	if r < 0 {
		r += int64(n)
	}
	return int(r)
}

// Index returns the storage position that index i refers to.
func Index[T any, K constraints.Integer](a *PeriodicArray[T], i K) int {
	return wrap(i, len(a.elems))
}

// Get returns the element at i mod Len(). Any integer type is accepted.
func Get[T any, K constraints.Integer](a *PeriodicArray[T], i K) T {
	return a.elems[wrap(i, len(a.elems))]
}

// Put overwrites the element at i mod Len().
func Put[T any, K constraints.Integer](a *PeriodicArray[T], i K, value T) {
	a.elems[wrap(i, len(a.elems))] = value
}
