package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "zurich", zone: "Europe/Zurich", want: "Europe/Zurich"},
		{name: "empty falls back", zone: "", want: "UTC"},
		{name: "unknown falls back", zone: "Mars/Olympus", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.zone).String())
		})
	}
}

func TestNow(t *testing.T) {
	assert.False(t, Now().IsZero())
	assert.Equal(t, GetLocation(), Now().Location())
}

func TestParseDayClock(t *testing.T) {
	original := appLocation
	t.Cleanup(func() { appLocation = original })

	appLocation = resolve("Europe/Zurich")

	start, err := ParseDayClock("2025-03-14", "10:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, "Europe/Zurich", start.Location().String())

	summer, err := ParseDayClock("2025-07-01", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 8, summer.UTC().Hour())

	_, err = ParseDayClock("2025-03-14", "25:00")
	assert.Error(t, err)
}
