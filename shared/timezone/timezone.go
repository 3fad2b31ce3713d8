package timezone

import (
	"roombooking/config"
	"roombooking/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Msg("No timezone configured, using local time")
		appLocation = time.Local

		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to local time. Please use standard timezone names like 'Africa/Nairobi', 'UTC', 'America/New_York'")
		appLocation = time.Local

		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Date returns the given calendar day as a civil date: midnight UTC. Calendar days
// never live in the app location, where midnight may not exist on DST changes.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date into a civil date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.ISODateFormat, value)
}

// FormatDate renders the calendar day of t, in t's own location, as zero-padded YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constant.ISODateFormat)
}

// Truncate drops the time of day and returns the civil date t falls on in its own
// location. Convert an instant with ToAppTime first to get the app calendar day.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Today is the current calendar day in the application timezone.
func Today() time.Time {
	return Truncate(Now())
}

// NextDay advances one calendar day. Month and year rollovers are handled by the
// calendar, not by adding 24 hours.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
