package timezone

import (
	"hotel/config"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

func init() {
	Setup(config.Get().App.Timezone)
}

// Setup switches the application location. Unknown names fall back to UTC.
func Setup(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		loc = time.UTC
	}

	appLocation.Store(loc)
}

// GetLocation returns the application location.
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday midnight that opens t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)

	return day.AddDate(0, 0, -int(day.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
