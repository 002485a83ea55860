// Package benefit - Age derivation
package benefit

import "time"

// AgeOn returns the age in completed years at the reference date, using
// calendar-accurate year/month/day subtraction rather than a naive year
// difference.
func AgeOn(birthDate, ref time.Time) int {
	years := ref.Year() - birthDate.Year()
	if ref.Month() < birthDate.Month() ||
		(ref.Month() == birthDate.Month() && ref.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
