// Package timezone pins every wall-clock decision of the service to one location.
//
// Usage Examples:
//
//  1. Current time and conversion:
//     now := timezone.Now()
//     appTime := timezone.ToAppTime(cleaning.PerformedAt)
//
//  2. Calendar comparisons (cleaning status uses this):
//     if timezone.SameDay(lastCleaning, timezone.Now()) { ... }
//
//  3. Parsing form values in app timezone:
//     t, err := timezone.ParseAny(value, time.RFC3339, "2006-01-02T15:04")
//
// The location is read from APP_TIMEZONE (IANA names such as "Europe/Madrid" or "UTC")
// when the package is imported, falling back to UTC.
package timezone
