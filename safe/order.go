package safe

import "cmp"

// Max returns the greatest element of a slice. When the maximum occurs more
// than once, the leftmost occurrence is returned.
// Returns ErrEmptySlice if the slice is empty.
//
// Max is the non-panicking counterpart of slices.Max.
//
// Example:
//
//	largest, err := safe.Max(latencies)
//	if err != nil {
//	    return fmt.Errorf("get worst latency: %w", err)
//	}
func Max[T cmp.Ordered](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	best := slice[0]

	for _, v := range slice[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Min returns the smallest element of a slice. When the minimum occurs more
// than once, the leftmost occurrence is returned.
// Returns ErrEmptySlice if the slice is empty.
//
// Min is the non-panicking counterpart of slices.Min.
//
// Example:
//
//	cheapest, err := safe.Min(prices)
//	if err != nil {
//	    return fmt.Errorf("get lowest price: %w", err)
//	}
func Min[T cmp.Ordered](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	best := slice[0]

	for _, v := range slice[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// MaxFunc returns the greatest element of a slice under cmp, a total order
// that returns a negative number when a is less than b, zero when equal,
// and a positive number when greater. When the maximum occurs more than
// once, the leftmost occurrence is returned.
// Returns ErrEmptySlice if the slice is empty.
//
// Example:
//
//	largest, err := safe.MaxFunc(amounts, decimal.Decimal.Cmp)
//	if err != nil {
//	    return fmt.Errorf("get largest amount: %w", err)
//	}
func MaxFunc[T any](slice []T, cmp func(a, b T) int) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	best := slice[0]

	for _, v := range slice[1:] {
		if cmp(v, best) > 0 {
			best = v
		}
	}

	return best, nil
}

// MinFunc returns the smallest element of a slice under cmp, with the same
// comparison contract as MaxFunc. When the minimum occurs more than once,
// the leftmost occurrence is returned.
// Returns ErrEmptySlice if the slice is empty.
//
// Example:
//
//	smallest, err := safe.MinFunc(amounts, decimal.Decimal.Cmp)
//	if err != nil {
//	    return fmt.Errorf("get smallest amount: %w", err)
//	}
func MinFunc[T any](slice []T, cmp func(a, b T) int) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	best := slice[0]

	for _, v := range slice[1:] {
		if cmp(v, best) < 0 {
			best = v
		}
	}

	return best, nil
}

// MaxOrDefault returns the greatest element of a slice, or defaultValue if empty.
//
// Example:
//
//	worst := safe.MaxOrDefault(latencies, 0)
func MaxOrDefault[T cmp.Ordered](slice []T, defaultValue T) T {
	max, err := Max(slice)
	if err != nil {
		return defaultValue
	}

	return max
}

// MinOrDefault returns the smallest element of a slice, or defaultValue if empty.
//
// Example:
//
//	floor := safe.MinOrDefault(prices, defaultPrice)
func MinOrDefault[T cmp.Ordered](slice []T, defaultValue T) T {
	min, err := Min(slice)
	if err != nil {
		return defaultValue
	}

	return min
}
