package timezone

import (
	"salon/config"
	"salon/shared/constant"
	"time"
	_ "time/tzdata" // containers often ship without a zoneinfo database

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var appLocation *time.Location

func init() {
	appLocation = resolve(config.Get().App.Timezone)
}

// resolve loads the named IANA zone and falls back to UTC when the name is empty or unknown.
func resolve(name string) *time.Location {
	if name == constant.Empty {
		log.Warn().Msg("No salon timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Str("fallback", fallbackZone).
			Msg("Unknown salon timezone, expected an IANA name like Europe/Zurich")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Salon timezone loaded")

	return loc
}

// Now returns the current wall-clock time of the salon.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse reads value as salon local time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// ParseDayClock combines a YYYY-MM-DD day and a HH:mm clock into one instant of salon local time.
func ParseDayClock(day, clock string) (time.Time, error) {
	return Parse(constant.DayClockFormat, day+" "+clock)
}
