package predicate_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
	"github.com/zircuit-labs/zkr-go-delegates/predicate"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errcontext"
)

func oneToHundred() []int {
	return slices.Collect(zkriter.Range(1, 100))
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := slices.Collect(zkriter.Filter(predicate.IsPrime[int], zkriter.Range(1, 30)))
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)

	tests := []struct {
		n        int
		expected bool
	}{
		{n: math.MinInt, expected: false},
		{n: -7, expected: false},
		{n: 0, expected: false},
		{n: 1, expected: false},
		{n: 2, expected: true},
		{n: 3, expected: true},
		{n: 4, expected: false},
		{n: 9, expected: false},
		{n: 25, expected: false},
		{n: 49, expected: false},
		{n: 97, expected: true},
		{n: 7919, expected: true},
		{n: 7917, expected: false},
		{n: 2147483647, expected: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, predicate.IsPrime(tt.n), "IsPrime(%d)", tt.n)
	}
}

func TestIsPrime_OtherWidths(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsPrime(uint8(251)))
	assert.False(t, predicate.IsPrime(uint8(255)))
	assert.True(t, predicate.IsPrime(int8(127)))
	assert.False(t, predicate.IsPrime(int8(-127)))
	assert.True(t, predicate.IsPrime(uint64(4294967311)))
	assert.False(t, predicate.IsPrime(uint64(4294967297))) // 641 * 6700417
}

func TestParity(t *testing.T) {
	t.Parallel()

	var expectedEven, expectedOdd []int
	for n := 1; n <= 100; n++ {
		if n%2 == 0 {
			expectedEven = append(expectedEven, n)
		} else {
			expectedOdd = append(expectedOdd, n)
		}
	}

	even := slices.Collect(zkriter.Filter(predicate.IsEven[int], zkriter.Range(1, 100)))
	odd := slices.Collect(zkriter.Filter(predicate.IsOdd[int], zkriter.Range(1, 100)))

	assert.Len(t, even, 50)
	assert.Len(t, odd, 50)
	assert.Equal(t, expectedEven, even)
	assert.Equal(t, expectedOdd, odd)

	assert.True(t, predicate.IsOdd(-3))
	assert.True(t, predicate.IsEven(0))
}

func TestGreaterThan(t *testing.T) {
	t.Parallel()

	gt50 := predicate.GreaterThan(50)
	got := slices.Collect(zkriter.Filter(gt50, slices.Values(oneToHundred())))
	assert.Equal(t, oneToHundred()[50:], got)
	assert.Equal(t, 51, got[0])
	assert.False(t, gt50(50))
}

// TestReuse applies the same predicate values to more than one sequence.
func TestReuse(t *testing.T) {
	t.Parallel()

	for _, p := range predicate.Defaults[int]() {
		first := slices.Collect(zkriter.Filter(p.Test, zkriter.Range(1, 100)))
		second := slices.Collect(zkriter.Filter(p.Test, slices.Values(oneToHundred())))
		assert.Equal(t, first, second, p.Name)

		tail := slices.Collect(zkriter.Filter(p.Test, zkriter.Range(101, 10)))
		for _, v := range tail {
			assert.Greater(t, v, 100)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	defaults := predicate.Defaults[int]()
	names := make([]string, 0, len(defaults))
	for _, p := range defaults {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{predicate.Even, predicate.Odd, predicate.Gt50, predicate.Prime}, names)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	selected, err := predicate.Lookup[int](predicate.Prime, predicate.Even)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, predicate.Prime, selected[0].Name)
	assert.Equal(t, predicate.Even, selected[1].Name)
	assert.True(t, selected[0].Test(7))
	assert.False(t, selected[1].Test(7))

	none, err := predicate.Lookup[int]()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := predicate.Lookup[int]("odd", "square", "fibonacci")
	require.Error(t, err)
	assert.Equal(t, "unknown predicates: fibonacci, square", err.Error())
	assert.Equal(t, errclass.Persistent, errclass.GetClass(err))
	assert.Contains(t, errcontext.Get(err), "known")
}
