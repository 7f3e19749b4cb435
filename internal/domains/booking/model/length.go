package model

import "fmt"

type Length string

const (
	LengthSmall  Length = "small"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// LengthAdjustment is added on top of a service's base duration and price.
// PriceAdjustment is in cents.
type LengthAdjustment struct {
	DurationMinutes int `json:"durationMinutes"`
	PriceAdjustment int `json:"priceAdjustment"`
}

var lengthAdjustments = map[Length]LengthAdjustment{
	LengthSmall:  {DurationMinutes: 0, PriceAdjustment: 0},
	LengthMedium: {DurationMinutes: 10, PriceAdjustment: 1000},
	LengthLong:   {DurationMinutes: 20, PriceAdjustment: 2000},
}

// LengthAdjustmentFor returns the adjustment of length; unknown lengths adjust nothing.
func LengthAdjustmentFor(length Length) LengthAdjustment {
	return lengthAdjustments[length]
}

func (l Length) Valid() bool {
	_, ok := lengthAdjustments[l]

	return ok
}

// FormatPrice renders cents as Swiss francs, e.g. "CHF 65.00".
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%sCHF %d.%02d", sign, cents/100, cents%100)
}

// Quote is the final duration and price of a service at a given length.
type Quote struct {
	DurationMin    int    `json:"durationMin"`
	Price          int    `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
}

func NewQuote(baseDurationMin, basePrice int, length Length) Quote {
	adjustment := LengthAdjustmentFor(length)
	price := basePrice + adjustment.PriceAdjustment

	return Quote{
		DurationMin:    baseDurationMin + adjustment.DurationMinutes,
		Price:          price,
		FormattedPrice: FormatPrice(price),
	}
}
