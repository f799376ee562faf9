package timezone

import (
	"hostly/config"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE not set, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Str("fallback", fallbackZone).Msg("Unknown application timezone")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// NowUTC returns the current instant in UTC. Persisted timestamps always use it.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// GetLocation returns the application location.
func GetLocation() *time.Location {
	return appLocation
}

// ParseIn parses value in the named IANA zone, falling back to the application timezone
// when name is empty or unknown. The result is in UTC.
func ParseIn(layout, value, name string) (time.Time, error) {
	loc := appLocation

	if name != "" {
		named, err := time.LoadLocation(name)
		if err != nil {
			log.Warn().Err(err).Str("timezone", name).Msg("Unknown request timezone, using application timezone")
		} else {
			loc = named
		}
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t.UTC(), nil
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(appLocation).Format(layout)
}

// EndOfMonthUTC returns the last millisecond of t's UTC month.
func EndOfMonthUTC(t time.Time) time.Time {
	u := t.UTC()
	firstOfNext := time.Date(u.Year(), u.Month()+1, 1, 0, 0, 0, 0, time.UTC)

	return firstOfNext.Add(-time.Millisecond)
}
