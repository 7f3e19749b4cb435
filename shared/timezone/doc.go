// Package timezone holds the salon's wall-clock zone.
//
// Opening hours, slot times and the draft's date/time pair are all
// expressed in this zone. It is read from APP_TIMEZONE (IANA name, default
// "Europe/Zurich") when the package is imported:
//
//	now := timezone.Now()
//	start, err := timezone.ParseDayClock("2025-03-14", "10:30")
//	day, err := timezone.Parse("2006-01-02", "2025-03-14")
package timezone
