package curve

import (
	"testing"

	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/mocks"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestBenchmark(t *testing.T) {
	idx := NewTermIndex([]types.BondRecord{
		gov("G2", 12, 4.8),
		gov("G1", 9.4, 3.7),
		gov("G3", 16.3, 5.5),
	})

	tests := []struct {
		name     string
		term     float64
		expected string
	}{
		{name: "below the curve", term: 1, expected: "G1"},
		{name: "at the shortest term", term: 9.4, expected: "G1"},
		{name: "closer to lower", term: 10.3, expected: "G1"},
		{name: "closer to upper", term: 11, expected: "G2"},
		{name: "exact interior term", term: 12, expected: "G2"},
		{name: "between G2 and G3", term: 15.2, expected: "G3"},
		{name: "at the longest term", term: 16.3, expected: "G3"},
		{name: "above the curve", term: 30, expected: "G3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bond, err := idx.NearestBenchmark(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bond.Bond)
		})
	}
}

func TestNearestBenchmarkMidpointPrefersLongerTerm(t *testing.T) {
	idx := NewTermIndex([]types.BondRecord{gov("G1", 1, 2), gov("G2", 5, 4)})

	bond, err := idx.NearestBenchmark(3)
	require.NoError(t, err)
	assert.Equal(t, "G2", bond.Bond)
}

func TestNearestBenchmarkSingleBond(t *testing.T) {
	idx := NewTermIndex([]types.BondRecord{gov("G1", 5, 4)})

	for _, term := range []float64{0, 5, 50} {
		bond, err := idx.NearestBenchmark(term)
		require.NoError(t, err)
		assert.Equal(t, "G1", bond.Bond)
	}
}

func TestNearestBenchmarkEmptyCurve(t *testing.T) {
	idx := NewTermIndex(nil)

	_, err := idx.NearestBenchmark(5)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeEmptyCurve))
}

func TestNearestBenchmarkProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		universe := mocks.NewBondGenerator(seed).Generate(mocks.DefaultConfig())
		idx := NewTermIndex(universe.Government)
		terms := idx.Terms()

		// at or beyond the ends
		first, err := idx.NearestBenchmark(idx.MinTerm() - 1)
		require.NoError(t, err)
		assert.Equal(t, idx.Bonds()[0], first)

		last, err := idx.NearestBenchmark(idx.MaxTerm() + 1)
		require.NoError(t, err)
		assert.Equal(t, idx.Bonds()[idx.Len()-1], last)

		// the chosen bond is never farther than any other
		for _, corp := range universe.Corporate {
			bond, err := idx.NearestBenchmark(corp.Term)
			require.NoError(t, err)

			best := absDiff(bond.Term, corp.Term)
			for _, term := range terms {
				assert.LessOrEqual(t, best, absDiff(term, corp.Term), "seed %d bond %s", seed, corp.Bond)
			}
		}
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}

	return b - a
}
