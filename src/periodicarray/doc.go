// Package periodicarray provides PeriodicArray, a fixed-length sequence whose
// indices wrap around.
//
// Reading or writing index i touches slot i mod Len(), so callers can index
// without bounds checks or modulo arithmetic of their own:
//
//	pa := periodicarray.Of(1, 2, 3)
//	pa.At(4)  // 2
//	pa.At(-1) // 3
//	pa.SetAt(4, 9)
//	pa.Array() // [1 9 3]
//
// Negative indices wrap with Euclidean modulo and therefore count back from
// the end. The generic Get, Put and Index accept any integer type, including
// unsigned values beyond math.MaxInt.
//
// Length never changes after construction and is always positive: New, From,
// Of and Repeat panic with ErrZeroLength when given no elements. The zero
// value of PeriodicArray is not usable; indexing it panics with
// ErrZeroLength as well.
//
// Iteration, Transform, Map, Equal, Compare and the other sequence helpers
// work on the storage in order from 0 to Len()-1 and do not wrap.
//
// A PeriodicArray has a single owner. go vet reports copies of the struct
// value; use Clone for an independent duplicate. The type does no locking.
package periodicarray
