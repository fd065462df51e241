package iter_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
)

func TestTransform(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    []int
		expected []string
	}{
		{name: "convert integers to strings", input: []int{1, 2, 3}, expected: []string{"1", "2", "3"}},
		{name: "negative numbers", input: []int{-1, 0, 1}, expected: []string{"-1", "0", "1"}},
		{name: "empty input", input: []int{}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			transformed := zkriter.Transform(strconv.Itoa, slices.Values(tt.input))
			assert.Equal(t, tt.expected, slices.Collect(transformed))
		})
	}
}

func TestTransform_ChainedWithFilter(t *testing.T) {
	t.Parallel()

	squares := zkriter.Transform(func(n int) int { return n * n }, zkriter.Naturals(1))
	big := zkriter.Filter(func(n int) bool { return n > 50 }, squares)

	var got []int
	for v := range big {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{64, 81, 100}, got)
}
