// Package timezone keeps every timestamp the service produces in one
// configured IANA location (APP_TIMEZONE, UTC when unset).
//
//	now := timezone.Now()
//	day, err := timezone.Parse(time.DateOnly, "2024-01-01")
//	week := timezone.StartOfWeek(now)
package timezone
