package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The recognizer sets are process-wide read-only state, initialized once.

// datePattern matches slash-separated numeric M/D/Y values: 1-2 digits for
// month and day, 2-4 digits for year.
var datePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)

// booleanValues maps every recognized boolean-like token (uppercased) to
// its canonical form.
var booleanValues = map[string]string{
	"TRUE":  "true",
	"YES":   "true",
	"Y":     "true",
	"T":     "true",
	"FALSE": "false",
	"NO":    "false",
	"N":     "false",
	"F":     "false",
}

// Normalize rewrites a raw CSV value into its canonical form:
//
//   - M/D/Y dates become the integer count of days since Dec 30, 1899
//     (spreadsheet serial convention), in decimal string form.
//   - Boolean-like tokens (TRUE, FALSE, YES, NO, Y, N, T, F in any casing)
//     become "true" or "false".
//   - Everything else, including the empty string, passes through unchanged.
//
// Normalize is pure and never fails. A date-shaped value that is not a
// real calendar date (e.g. "13/45/99") passes through unchanged; use
// normalizeValue to observe that case.
//
// Only CSV-origin values are normalized. Sheet-origin values are assumed
// to already be in canonical display form; the asymmetry is intentional.
func Normalize(raw string) string {
	out, _ := normalizeValue(raw)
	return out
}

// normalizeValue is Normalize plus an ok flag: ok is false only when the
// value matched the date pattern but failed calendar validation.
func normalizeValue(raw string) (string, bool) {
	if datePattern.MatchString(raw) {
		serial, ok := dateSerial(raw)
		if !ok {
			return raw, false
		}
		return strconv.Itoa(serial), true
	}

	if canonical, ok := booleanValues[strings.ToUpper(raw)]; ok {
		return canonical, true
	}

	return raw, true
}

// dateSerial converts an M/D/Y string to its spreadsheet serial day count.
// Time-of-day is never involved; dates are interpreted at UTC midnight.
func dateSerial(raw string) (int, bool) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return 0, false
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	// Two-digit years pivot the same way the standard library's "06"
	// reference layout does: 00-68 -> 2000s, 69-99 -> 1900s.
	// Three- and four-digit years are taken literally.
	if year < 100 {
		if year <= 68 {
			year += 2000
		} else {
			year += 1900
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}

	// time.Date normalizes overflowing components (Feb 30 -> Mar 2);
	// a round-trip mismatch means the date was not real.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return 0, false
	}

	// Integer day arithmetic: a time.Duration subtraction saturates a
	// few hundred years out from the epoch and would clamp distant dates.
	// The serial epoch (Dec 30, 1899) sits 25569 days before Jan 1, 1970.
	return int(floorDiv(t.Unix(), 86400)) + 25569, true
}

// floorDiv divides rounding toward negative infinity, so pre-1970 dates
// land on the correct day boundary.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
