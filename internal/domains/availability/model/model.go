package model

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Schedule describes the bookable part of a salon day.
type Schedule struct {
	OpeningHour     int
	ClosingHour     int
	SlotMinutes     int
	LeadTimeMinutes int
	PaddingMinutes  int
}
