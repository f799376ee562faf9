// Package timezone holds the application location loaded from APP_TIMEZONE at import time.
//
// Persisted instants are always UTC:
//
//	createdAt := timezone.NowUTC()
//	closing := timezone.EndOfMonthUTC(createdAt)
//
// Session starts arrive as local wall clock plus the caller's IANA zone:
//
//	start, err := timezone.ParseIn("2006-01-02T15:04", "2025-01-20T10:00", "America/Lima")
package timezone
