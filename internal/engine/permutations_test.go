package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(items []string) [][]string {
	var out [][]string
	for p := range Permutations(items) {
		out = append(out, p)
	}
	return out
}

func TestPermutations_Order(t *testing.T) {
	got := collect([]string{"A", "B", "C"})
	assert.Equal(t, [][]string{
		{"A", "B", "C"},
		{"A", "C", "B"},
		{"B", "A", "C"},
		{"B", "C", "A"},
		{"C", "A", "B"},
		{"C", "B", "A"},
	}, got)
}

func TestPermutations_Counts(t *testing.T) {
	factorial := []int{1, 1, 2, 6, 24, 120}
	items := []string{"A", "B", "C", "D", "E"}
	for n := 1; n <= 5; n++ {
		perms := collect(items[:n])
		assert.Len(t, perms, factorial[n], "n=%d", n)

		seen := make(map[string]bool)
		for _, p := range perms {
			key := ""
			for _, s := range p {
				key += s
			}
			assert.False(t, seen[key], "duplicate permutation %s", key)
			seen[key] = true
		}
	}
}

func TestPermutations_RestartableAndIndependent(t *testing.T) {
	input := []string{"X", "Y"}
	seq := Permutations(input)

	var first [][]string
	for p := range seq {
		p[0] = "mutated"
		first = append(first, p)
	}
	second := [][]string{}
	for p := range seq {
		second = append(second, p)
	}

	assert.Len(t, first, 2)
	assert.Equal(t, [][]string{{"X", "Y"}, {"Y", "X"}}, second)
	assert.Equal(t, []string{"X", "Y"}, input)
}

func TestPermutations_EarlyStop(t *testing.T) {
	count := 0
	for range Permutations([]int{1, 2, 3, 4}) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestPermutations_Empty(t *testing.T) {
	assert.Empty(t, collect(nil))
}

func TestValidateDestinations(t *testing.T) {
	tests := []struct {
		name    string
		home    string
		dests   []string
		wantErr error
	}{
		{"ok", "JFK", []string{"LAX", "ORD"}, nil},
		{"missing origin", " ", []string{"LAX"}, ErrMissingOrigin},
		{"empty", "JFK", nil, ErrNoDestinations},
		{"too many", "JFK", []string{"A01", "A02", "A03", "A04", "A05", "A06"}, ErrTooManyDestinations},
		{"duplicate", "JFK", []string{"LAX", "lax"}, ErrDuplicateDestination},
		{"origin as destination", "jfk", []string{"LAX", "JFK"}, ErrDestinationIsOrigin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestinations(tt.home, tt.dests)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
		})
	}
}
