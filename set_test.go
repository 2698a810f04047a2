package quickfn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	testMap := map[string]int{"a": 1, "b": 2, "c": 3}
	expected := NewSet("a", "b", "c")

	require.Equal(t, expected, KeySet(testMap))
}

func TestSetOps(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(3, 4)

	require.True(t, a.Contains(2))
	require.False(t, b.Contains(2))

	require.True(t, a.Union(b).Equals(NewSet(1, 2, 3, 4)))
	require.True(t, a.Inter(b).Equals(NewSet(3)))
	require.True(t, a.Diff(b).Equals(NewSet(1, 2)))

	a.Remove(1)
	require.False(t, a.Contains(1))
}

// TestSubMap tests the SubMap function with various input cases.
func TestSubMap(t *testing.T) {
	tests := []struct {
		name     string
		original map[int]string
		keys     []int
		expected map[int]string
		wantErr  bool
	}{
		{
			name: "successful submap creation",
			original: map[int]string{
				1: "apple",
				2: "banana",
				3: "cherry",
			},
			keys: []int{1, 3},
			expected: map[int]string{
				1: "apple",
				3: "cherry",
			},
			wantErr: false,
		},
		{
			name: "key not found",
			original: map[int]string{
				1: "apple",
			},
			keys:    []int{1, 4},
			wantErr: true,
		},
		{
			name:     "empty keys",
			original: map[int]string{1: "apple"},
			keys:     nil,
			expected: map[int]string{},
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubMap(tt.original, tt.keys)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
