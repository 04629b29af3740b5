package periodicarray

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// The operations below work on the storage directly, visiting positions
// 0 through Len()-1 exactly once. None of them wrap.

// Slice returns the backing storage. Writes through it are visible in a.
// Callers must not append to or reslice it.
func (a *PeriodicArray[T]) Slice() []T {
	return a.elems
}

// Array returns a copy of the elements in storage order.
func (a *PeriodicArray[T]) Array() []T {
	return slices.Clone(a.elems)
}

func (a *PeriodicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *PeriodicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.elems {
			if !yield(v) {
				return
			}
		}
	}
}

func (a *PeriodicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.elems) - 1; i >= 0; i-- {
			if !yield(i, a.elems[i]) {
				return
			}
		}
	}
}

// Transform replaces every element with f applied to it, in place.
func (a *PeriodicArray[T]) Transform(f func(T) T) {
	for i, v := range a.elems {
		a.elems[i] = f(v)
	}
}

func (a *PeriodicArray[T]) Fill(value T) {
	for i := range a.elems {
		a.elems[i] = value
	}
}

// Swap exchanges the slots addressed by i and j, both taken mod Len().
func (a *PeriodicArray[T]) Swap(i, j int) {
	n := len(a.elems)
	i, j = wrap(i, n), wrap(j, n)
	a.elems[i], a.elems[j] = a.elems[j], a.elems[i]
}

// Rotate shifts the storage left by k positions, so that the element at k
// becomes the element at 0. A negative k rotates right.
func (a *PeriodicArray[T]) Rotate(k int) {
	k = wrap(k, len(a.elems))
	if k == 0 {
		return
	}
	slices.Reverse(a.elems[:k])
	slices.Reverse(a.elems[k:])
	slices.Reverse(a.elems)
}

// Map returns a new PeriodicArray holding f applied to each element of a.
func Map[T, U any](a *PeriodicArray[T], f func(T) U) *PeriodicArray[U] {
	mustHaveElements("Map", len(a.elems))
	out := make([]U, len(a.elems))
	for i, v := range a.elems {
		out[i] = f(v)
	}
	return &PeriodicArray[U]{elems: out}
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *PeriodicArray[T]) bool {
	return slices.Equal(a.elems, b.elems)
}

func EqualFunc[T, U any](a *PeriodicArray[T], b *PeriodicArray[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.elems, b.elems, eq)
}

// Compare orders a and b lexicographically by element, then by length.
func Compare[T constraints.Ordered](a, b *PeriodicArray[T]) int {
	return slices.Compare(a.elems, b.elems)
}

func Contains[T comparable](a *PeriodicArray[T], value T) bool {
	return slices.Contains(a.elems, value)
}

// IndexOf returns the first storage position holding value, or -1.
func IndexOf[T comparable](a *PeriodicArray[T], value T) int {
	return slices.Index(a.elems, value)
}
