package dto

import "salon/internal/domains/availability/model"

const MessageAvailabilityFailed = "Failed to fetch availability"

type AvailabilityRequest struct {
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	DurationMin int    `json:"durationMin" validate:"gte=15,lte=480"`
}

type AvailabilityResponse struct {
	Slots    []model.TimeSlot `json:"slots"`
	NextDate string           `json:"nextDate"`
}
