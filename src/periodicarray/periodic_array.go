package periodicarray

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ErrZeroLength is the precondition violation raised for an array without elements.
var ErrZeroLength = errors.New("PeriodicArray: length must be greater than zero")

// Logger receives precondition violations before the constructor panics.
var Logger = logrus.StandardLogger()

// noCopy lets go vet's copylocks check flag a PeriodicArray passed by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// PeriodicArray is a fixed-length sequence whose indices wrap around. Index
// i addresses slot i mod Len(), so every integer is a valid index.
//
// The zero value has no elements and is not usable: create arrays with New,
// From, Of or Repeat. Indexing a zero value panics with ErrZeroLength.
type PeriodicArray[T any] struct {
	_     noCopy
	elems []T
}

// New wraps elems without copying them. It panics if elems is empty.
func New[T any](elems []T) *PeriodicArray[T] {
	mustHaveElements("New", len(elems))
	return &PeriodicArray[T]{elems: elems}
}

// From copies elems into a new PeriodicArray.
func From[T any](elems []T) *PeriodicArray[T] {
	mustHaveElements("From", len(elems))
	return &PeriodicArray[T]{elems: slices.Clone(elems)}
}

// Of builds a PeriodicArray from its arguments:
//
//	pa := periodicarray.Of(1, 2, 3)
func Of[T any](elems ...T) *PeriodicArray[T] {
	return New(elems)
}

func Repeat[T any](n int, value T) *PeriodicArray[T] {
	mustHaveElements("Repeat", n)
	elems := make([]T, n)
	for i := range elems {
		elems[i] = value
	}
	return &PeriodicArray[T]{elems: elems}
}

func mustHaveElements(op string, n int) {
	if n > 0 {
		return
	}

	Logger.WithError(ErrZeroLength).WithFields(logrus.Fields{
		"component": "PeriodicArray",
		"op":        op,
		"length":    n,
	}).Error("periodic array has no elements")
	panic(fmt.Errorf("%s: %w", op, ErrZeroLength))
}

func (a *PeriodicArray[T]) Len() int {
	return len(a.elems)
}

func (a *PeriodicArray[T]) At(index int) T {
	return a.elems[wrap(index, len(a.elems))]
}

func (a *PeriodicArray[T]) SetAt(index int, value T) {
	a.elems[wrap(index, len(a.elems))] = value
}

// Ref returns a pointer to the slot at index mod Len(). The pointer stays
// valid for the lifetime of the array.
func (a *PeriodicArray[T]) Ref(index int) *T {
	return &a.elems[wrap(index, len(a.elems))]
}

func (a *PeriodicArray[T]) Pos(index int) int {
	return wrap(index, len(a.elems))
}

func (a *PeriodicArray[T]) Front() T {
	return a.At(0)
}

func (a *PeriodicArray[T]) Back() T {
	return a.At(-1)
}

// Clone returns an independent copy. Elements are copied by assignment.
func (a *PeriodicArray[T]) Clone() *PeriodicArray[T] {
	return &PeriodicArray[T]{elems: slices.Clone(a.elems)}
}

func (a *PeriodicArray[T]) String() string {
	return fmt.Sprintf("PeriodicArray%v", a.elems)
}
