package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildHistogram tests bucket counting over raw rating values.
func TestBuildHistogram(t *testing.T) {
	histogram := buildHistogram([]int{5, 4, 5, 1, 3, 5})

	assert.Equal(t, map[string]int64{
		"1": 1,
		"2": 0,
		"3": 1,
		"4": 1,
		"5": 3,
	}, histogram)
}

// TestBuildHistogram_Empty tests that all five buckets are always present.
func TestBuildHistogram_Empty(t *testing.T) {
	histogram := buildHistogram(nil)

	assert.Len(t, histogram, 5)
	for _, count := range histogram {
		assert.Zero(t, count)
	}
}

// TestBuildHistogram_SumsToCount tests that bucket counts sum to the input size.
func TestBuildHistogram_SumsToCount(t *testing.T) {
	values := []int{1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5}

	var sum int64
	for _, count := range buildHistogram(values) {
		sum += count
	}
	assert.Equal(t, int64(len(values)), sum)
}
