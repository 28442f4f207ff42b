package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}

	InPlaceFilter(&values, func(value int) bool { return value%2 == 0 })

	require.Equal(t, []int{2, 4}, values)
}

func TestInPlaceFilterKeepsAll(t *testing.T) {
	values := []string{"a", "b"}

	InPlaceFilter(&values, func(string) bool { return true })

	require.Equal(t, []string{"a", "b"}, values)
}

func TestInPlaceFilterEmpty(t *testing.T) {
	var values []int

	InPlaceFilter(&values, func(int) bool { return true })

	require.Empty(t, values)
}
