package rio

import "slices"

// Map applies fn to every element of s and returns the results in order.
//
// Example:
//
//	lengths := rio.Map(words, func(w string) int { return len(w) })
func Map[T, R any](s []T, fn func(T) R) []R {
	result := make([]R, len(s))
	for i := range s {
		result[i] = fn(s[i])
	}

	return result
}

// Filter returns the elements of s for which keep reports true, preserving
// their order.
//
// Example:
//
//	evens := rio.Filter(nums, func(n int) bool { return n%2 == 0 })
func Filter[T any](s []T, keep func(T) bool) []T {
	result := make([]T, 0, len(s))

	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}

	return result
}

// Reduce folds s from left to right, starting from init.
//
// Example:
//
//	sum := rio.Reduce(nums, 0, func(acc, n int) int { return acc + n })
func Reduce[T, A any](s []T, init A, fn func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}

	return acc
}

// Contains checks if an item is in a slice. This function uses type parameters to work with any slice type.
func Contains[T comparable](s []T, item T) bool {
	return slices.Contains(s, item)
}

// Reverse returns a new slice with the elements of s in reverse order.
// The input is not modified.
func Reverse[T any](s []T) []T {
	result := make([]T, len(s))
	for i := range s {
		result[len(s)-1-i] = s[i]
	}

	return result
}
