package base64_test

import (
	"salon/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64," + pixel, expected: "image/png"},
		{name: "webp", input: "data:image/webp;base64,UklGRg==", expected: "image/webp"},
		{name: "empty string", input: "", expected: ""},
		{name: "no data prefix", input: "image/png;base64," + pixel, expected: ""},
		{name: "no base64 marker", input: "data:image/png," + pixel, expected: ""},
		{name: "only data prefix", input: "data:", expected: ""},
		{name: "only prefix and marker", input: "data:;base64,", expected: ""},
		{name: "remote url", input: "https://cdn.example.ch/designs/a.png", expected: ""},
		{
			name:     "parameters are kept",
			input:    "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=",
			expected: "image/svg+xml;charset=utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:image/png;base64," + pixel)

	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	_, _, err = base64.Decode("https://cdn.example.ch/a.png")
	assert.ErrorIs(t, err, base64.ErrNotDataURL)

	_, _, err = base64.Decode("data:image/png;base64,***")
	assert.Error(t, err)
}
