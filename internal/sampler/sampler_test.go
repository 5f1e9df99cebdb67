package sampler

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices_CountsAndDistinctness(t *testing.T) {
	t.Parallel()

	const n = 25
	for k := 0; k <= n; k++ {
		idx, err := Indices(New(), n, k)
		require.NoError(t, err)
		require.Len(t, idx, k, "k=%d", k)

		seen := make(map[int]struct{}, k)
		for _, p := range idx {
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, n)
			_, dup := seen[p]
			require.False(t, dup, "position %d selected twice for k=%d", p, k)
			seen[p] = struct{}{}
		}
	}
}

func TestIndices_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Indices(New(), 100, 40)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Indices(New(), 100, 40)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("selection changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestIndices_PrefixStable(t *testing.T) {
	t.Parallel()

	// A smaller sample is the head of a larger one drawn with the same seed.
	small, err := Indices(New(), 50, 5)
	require.NoError(t, err)
	large, err := Indices(New(), 50, 20)
	require.NoError(t, err)

	assert.Equal(t, small, large[:5])
}

func TestIndices_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		n, k      int
		checkErrs func(t *testing.T, err error)
	}{
		{
			name: "oversized request",
			n:    4,
			k:    5,
			checkErrs: func(t *testing.T, err error) {
				var sizeErr *SampleSizeError
				require.True(t, errors.As(err, &sizeErr))
				assert.Equal(t, 5, sizeErr.Requested)
				assert.Equal(t, 4, sizeErr.Available)
				assert.Equal(t, "sample larger than population (requested 5, available 4)", err.Error())
			},
		},
		{
			name: "empty population",
			n:    0,
			k:    1,
			checkErrs: func(t *testing.T, err error) {
				var sizeErr *SampleSizeError
				require.True(t, errors.As(err, &sizeErr))
			},
		},
		{
			name: "negative request",
			n:    4,
			k:    -1,
			checkErrs: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrNegativeSize)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			idx, err := Indices(New(), tc.n, tc.k)
			require.Error(t, err)
			require.Nil(t, idx)
			tc.checkErrs(t, err)
		})
	}
}

func TestSample_FullPopulationIsPermutation(t *testing.T) {
	t.Parallel()

	population := []string{"a\n", "b\n", "c\n", "d\n", "e\n", "b\n"}
	original := append([]string(nil), population...)

	got, err := Sample(New(), population, len(population))
	require.NoError(t, err)

	require.Equal(t, original, population, "population must not be mutated")

	sortedGot := append([]string(nil), got...)
	sort.Strings(sortedGot)
	sortedWant := append([]string(nil), original...)
	sort.Strings(sortedWant)
	if diff := cmp.Diff(sortedWant, sortedGot); diff != "" {
		t.Fatalf("full sample is not a permutation (-want +got):\n%s", diff)
	}
}

func TestSample_ZeroAndEmpty(t *testing.T) {
	t.Parallel()

	got, err := Sample(New(), []string{"a\n", "b\n"}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Sample(New(), []string(nil), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSample_FourLineScenario(t *testing.T) {
	t.Parallel()

	lines := []string{"a\n", "b\n", "c\n", "d\n"}

	first, err := Sample(New(), lines, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEqual(t, first[0], first[1])
	for _, l := range first {
		assert.Contains(t, lines, l)
	}

	second, err := Sample(New(), lines, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIndices_RoughlyUniform(t *testing.T) {
	t.Parallel()

	const (
		n      = 10
		k      = 3
		rounds = 20000
	)
	r := New()
	counts := make([]float64, n)
	for i := 0; i < rounds; i++ {
		idx, err := Indices(r, n, k)
		require.NoError(t, err)
		for _, p := range idx {
			counts[p]++
		}
	}

	mean, err := stats.Mean(stats.Float64Data(counts))
	require.NoError(t, err)
	assert.InDelta(t, float64(rounds*k)/n, mean, 1e-9)

	sd, err := stats.StandardDeviation(stats.Float64Data(counts))
	require.NoError(t, err)
	assert.Less(t, sd, 0.05*mean, "selection frequencies are too uneven: %v", counts)
}
