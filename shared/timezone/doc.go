// Package timezone provides calendar and timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Calendar days:
//     day, err := timezone.ParseDate("2024-01-30") // civil date, midnight UTC
//     next := timezone.NextDay(day)                // 2024-01-31
//     timezone.FormatDate(next)                    // "2024-01-31"
//     today := timezone.Today()                    // app timezone's current day
//
//  3. Formatting and parsing arbitrary layouts:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. When it is unset the machine's local
// timezone is used, matching the calendar a user sees on their own device.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
