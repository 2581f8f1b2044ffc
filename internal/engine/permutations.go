package engine

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// MaxDestinations bounds the permutation search at 5! = 120 candidate routes.
const MaxDestinations = 5

var (
	ErrMissingOrigin        = errors.New("origin airport is required")
	ErrNoDestinations       = errors.New("at least one destination is required")
	ErrTooManyDestinations  = fmt.Errorf("at most %d destinations are allowed", MaxDestinations)
	ErrDuplicateDestination = errors.New("duplicate destination")
	ErrDestinationIsOrigin  = errors.New("destination equals origin")
)

// IsValidation reports whether err was caused by a malformed request.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingOrigin) ||
		errors.Is(err, ErrNoDestinations) ||
		errors.Is(err, ErrTooManyDestinations) ||
		errors.Is(err, ErrDuplicateDestination) ||
		errors.Is(err, ErrDestinationIsOrigin)
}

// ValidateDestinations checks the shape of a multi-city request. Codes are
// compared case-insensitively.
func ValidateDestinations(home string, destinations []string) error {
	home = strings.ToUpper(strings.TrimSpace(home))
	if home == "" {
		return ErrMissingOrigin
	}
	if len(destinations) == 0 {
		return ErrNoDestinations
	}
	if len(destinations) > MaxDestinations {
		return fmt.Errorf("%w: got %d", ErrTooManyDestinations, len(destinations))
	}
	seen := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		d = strings.ToUpper(strings.TrimSpace(d))
		if d == home {
			return fmt.Errorf("%w: %s", ErrDestinationIsOrigin, d)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateDestination, d)
		}
		seen[d] = struct{}{}
	}
	return nil
}

// Permutations yields every ordering of items, in lexicographic order of input
// positions: items itself first, items reversed last. Each yielded slice is a
// fresh copy. The sequence can be ranged over any number of times.
func Permutations[T any](items []T) iter.Seq[[]T] {
	src := append([]T(nil), items...)
	return func(yield func([]T) bool) {
		if len(src) == 0 {
			return
		}
		idx := make([]int, len(src))
		for i := range idx {
			idx[i] = i
		}
		for {
			perm := make([]T, len(src))
			for i, j := range idx {
				perm[i] = src[j]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

// nextPermutation advances idx to its lexicographic successor in place.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
