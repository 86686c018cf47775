package nocodb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

func TestUnwrapList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		keys     []string
		expected []string
	}{
		{
			name:     "first key wins",
			body:     `{"list": [1, 2, 3]}`,
			keys:     []string{"list", "bases"},
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "falls through to later key",
			body:     `{"bases": [4, 5]}`,
			keys:     []string{"list", "bases"},
			expected: []string{"4", "5"},
		},
		{
			name:     "empty object yields empty slice",
			body:     `{}`,
			keys:     []string{"list", "bases"},
			expected: []string{},
		},
		{
			name:     "bare array returned unchanged",
			body:     `[9]`,
			keys:     []string{"list"},
			expected: []string{"9"},
		},
		{
			name:     "non-array value under key is skipped",
			body:     `{"list": "nope", "data": [7]}`,
			keys:     []string{"list", "data"},
			expected: []string{"7"},
		},
		{
			name:     "scalar body yields empty slice",
			body:     `42`,
			keys:     []string{"list"},
			expected: []string{},
		},
		{
			name:     "object elements preserved",
			body:     `{"data": [{"id": "b1"}]}`,
			keys:     []string{"list", "bases", "data"},
			expected: []string{`{"id": "b1"}`},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			items := nocodb.UnwrapList([]byte(testCase.body), testCase.keys...)
			require.Len(t, items, len(testCase.expected))

			for i, item := range items {
				assert.JSONEq(t, testCase.expected[i], string(item))
			}
		})
	}
}
