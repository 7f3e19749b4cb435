package model_test

import (
	"salon/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthAdjustmentFor(t *testing.T) {
	tests := []struct {
		length model.Length
		want   model.LengthAdjustment
	}{
		{length: model.LengthSmall, want: model.LengthAdjustment{DurationMinutes: 0, PriceAdjustment: 0}},
		{length: model.LengthMedium, want: model.LengthAdjustment{DurationMinutes: 10, PriceAdjustment: 1000}},
		{length: model.LengthLong, want: model.LengthAdjustment{DurationMinutes: 20, PriceAdjustment: 2000}},
		{length: "xl", want: model.LengthAdjustment{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.length), func(t *testing.T) {
			assert.Equal(t, tt.want, model.LengthAdjustmentFor(tt.length))
			assert.Equal(t, tt.want, model.LengthAdjustmentFor(tt.length))
		})
	}
}

func TestLength_Valid(t *testing.T) {
	assert.True(t, model.LengthSmall.Valid())
	assert.True(t, model.LengthMedium.Valid())
	assert.True(t, model.LengthLong.Valid())
	assert.False(t, model.Length("").Valid())
	assert.False(t, model.Length("Long").Valid())
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "CHF 65.00", model.FormatPrice(6500))
	assert.Equal(t, "CHF 0.05", model.FormatPrice(5))
	assert.Equal(t, "CHF 75.50", model.FormatPrice(7550))
	assert.Equal(t, "-CHF 10.00", model.FormatPrice(-1000))
}

func TestNewQuote(t *testing.T) {
	quote := model.NewQuote(60, 6500, model.LengthLong)

	assert.Equal(t, model.Quote{DurationMin: 80, Price: 8500, FormattedPrice: "CHF 85.00"}, quote)
}

func TestStatus(t *testing.T) {
	for _, status := range []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusNeedsManual, model.StatusCancelled} {
		assert.True(t, status.Valid(), status)
	}

	assert.False(t, model.Status("rejected").Valid())
	assert.True(t, model.StatusPending.Blocking())
	assert.True(t, model.StatusConfirmed.Blocking())
	assert.False(t, model.StatusNeedsManual.Blocking())
	assert.False(t, model.StatusCancelled.Blocking())
}

func TestImages_ValueScan(t *testing.T) {
	var nilImages model.Images

	value, err := nilImages.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	var scanned model.Images
	require.NoError(t, scanned.Scan([]byte(`[{"url":"https://cdn.example/a.png","name":"a.png"}]`)))
	assert.Equal(t, model.Images{{URL: "https://cdn.example/a.png", Name: "a.png"}}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	booking := model.Booking{StartTime: base, EndTime: base.Add(time.Hour)}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		padding time.Duration
		want    bool
	}{
		{name: "inside", start: base.Add(15 * time.Minute), end: base.Add(30 * time.Minute), want: true},
		{name: "touching end", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), want: false},
		{name: "touching end with padding", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), padding: 10 * time.Minute, want: true},
		{name: "before", start: base.Add(-time.Hour), end: base, want: false},
		{name: "after padding", start: base.Add(70 * time.Minute), end: base.Add(2 * time.Hour), padding: 10 * time.Minute, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end, tt.padding))
		})
	}
}
