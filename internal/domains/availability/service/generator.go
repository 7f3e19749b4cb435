package service

import (
	"salon/internal/domains/availability/model"
	bookingModel "salon/internal/domains/booking/model"
	"salon/shared/constant"
	"time"
)

// Generator derives the bookable slots of one day from the schedule and the booking ledger.
type Generator struct {
	schedule model.Schedule
	location *time.Location
}

func NewGenerator(schedule model.Schedule, location *time.Location) Generator {
	if schedule.SlotMinutes <= 0 {
		schedule.SlotMinutes = 15
	}

	return Generator{
		schedule: schedule,
		location: location,
	}
}

// Window returns opening and closing time of day in the salon zone.
func (g Generator) Window(day time.Time) (time.Time, time.Time) {
	year, month, date := day.In(g.location).Date()

	open := time.Date(year, month, date, g.schedule.OpeningHour, 0, 0, 0, g.location)
	closing := time.Date(year, month, date, g.schedule.ClosingHour, 0, 0, 0, g.location)

	return open, closing
}

// Padding is the gap kept free on both sides of an existing booking.
func (g Generator) Padding() time.Duration {
	return time.Duration(g.schedule.PaddingMinutes) * time.Minute
}

// Generate lists candidate start times ascending. A candidate is dropped when the
// appointment would end after closing or starts before now plus the lead time; it is
// unavailable when it overlaps a blocking booking widened by the padding.
func (g Generator) Generate(day time.Time, durationMin int, now time.Time, busy []bookingModel.Booking) []model.TimeSlot {
	slots := []model.TimeSlot{}

	open, closing := g.Window(day)
	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(g.schedule.SlotMinutes) * time.Minute
	earliest := now.Add(time.Duration(g.schedule.LeadTimeMinutes) * time.Minute)

	for start := open; !start.Add(duration).After(closing); start = start.Add(step) {
		if start.Before(earliest) {
			continue
		}

		slots = append(slots, model.TimeSlot{
			Time:      start.In(g.location).Format(constant.ClockFormat),
			Available: !g.blocked(start, start.Add(duration), busy),
		})
	}

	return slots
}

func (g Generator) blocked(start, end time.Time, busy []bookingModel.Booking) bool {
	for _, booking := range busy {
		if booking.Status.Blocking() && booking.Overlaps(start, end, g.Padding()) {
			return true
		}
	}

	return false
}
