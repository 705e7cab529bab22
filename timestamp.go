package oradb

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is an Oracle DATE / TIMESTAMP / TIMESTAMP WITH TIME ZONE value.
//
// It is an immutable value type. The precision controls only the text
// representation; it is ignored when timestamps are compared with Equal.
type Timestamp struct {
	year       int
	month      int
	day        int
	hour       int
	minute     int
	second     int
	nanosecond int
	tzHour     int
	tzMinute   int
	precision  uint8
	withTZ     bool
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func (t Timestamp) checkValidity() (Timestamp, error) {
	switch {
	case t.year < -4713 || t.year > 9999:
		return t, newOutOfRange("year must be between -4713 and 9999 but %d", t.year)
	case t.month < 1 || t.month > 12:
		return t, newOutOfRange("month must be between 1 and 12 but %d", t.month)
	case t.day < 1 || t.day > daysInMonth(t.year, t.month):
		return t, newOutOfRange("day %d is out of range for %04d-%02d", t.day, t.year, t.month)
	case t.hour < 0 || t.hour > 23:
		return t, newOutOfRange("hour must be between 0 and 23 but %d", t.hour)
	case t.minute < 0 || t.minute > 59:
		return t, newOutOfRange("minute must be between 0 and 59 but %d", t.minute)
	case t.second < 0 || t.second > 59:
		return t, newOutOfRange("second must be between 0 and 59 but %d", t.second)
	case t.nanosecond < 0 || t.nanosecond > 999999999:
		return t, newOutOfRange("nanosecond must be between 0 and 999,999,999 but %d", t.nanosecond)
	}
	return t, nil
}

func checkTZHMOffset(hourOffset, minuteOffset int) error {
	switch {
	case hourOffset < -23 || hourOffset > 23:
		return newOutOfRange("time zone hour offset must be between -23 and 23 but %d", hourOffset)
	case minuteOffset < -59 || minuteOffset > 59:
		return newOutOfRange("time zone minute offset must be between -59 and 59 but %d", minuteOffset)
	case hourOffset < 0 && minuteOffset > 0:
		return newOutOfRange("time zone hour offset is negative but minute offset is positive")
	case hourOffset > 0 && minuteOffset < 0:
		return newOutOfRange("time zone hour offset is positive but minute offset is negative")
	}
	return nil
}

// NewTimestamp creates a timestamp without time zone, at full (9-digit)
// display precision. The calendar fields must form a valid proleptic
// Gregorian date; year ranges -4713 to 9999, nanosecond 0 to 999,999,999.
func NewTimestamp(year, month, day, hour, minute, second, nanosecond int) (Timestamp, error) {
	return Timestamp{
		year:       year,
		month:      month,
		day:        day,
		hour:       hour,
		minute:     minute,
		second:     second,
		nanosecond: nanosecond,
		precision:  9,
	}.checkValidity()
}

// AndTZOffset returns a copy with the time zone offset given in seconds
// from UTC.
func (t Timestamp) AndTZOffset(offset int) (Timestamp, error) {
	return t.AndTZHMOffset(offset/3600, offset%3600/60)
}

// AndTZHMOffset returns a copy with the time zone offset given in hours
// and minutes from UTC. Both components must be zero or share the same
// sign.
func (t Timestamp) AndTZHMOffset(hourOffset, minuteOffset int) (Timestamp, error) {
	if err := checkTZHMOffset(hourOffset, minuteOffset); err != nil {
		return t, err
	}
	t.tzHour = hourOffset
	t.tzMinute = minuteOffset
	t.withTZ = true
	return t, nil
}

// AndPrecision returns a copy with the given display precision (0 to 9
// fractional digits). The precision affects only the text representation.
func (t Timestamp) AndPrecision(precision uint8) (Timestamp, error) {
	if precision > 9 {
		return t, newOutOfRange("precision must be 0 to 9 but %d", precision)
	}
	t.precision = precision
	return t, nil
}

// Year returns the year from -4713 to 9999.
func (t Timestamp) Year() int { return t.year }

// Month returns the month from 1 to 12.
func (t Timestamp) Month() int { return t.month }

// Day returns the day from 1 to 31.
func (t Timestamp) Day() int { return t.day }

// Hour returns the hour from 0 to 23.
func (t Timestamp) Hour() int { return t.hour }

// Minute returns the minute from 0 to 59.
func (t Timestamp) Minute() int { return t.minute }

// Second returns the second from 0 to 59.
func (t Timestamp) Second() int { return t.second }

// Nanosecond returns the nanosecond from 0 to 999,999,999.
func (t Timestamp) Nanosecond() int { return t.nanosecond }

// TZHourOffset returns the hour component of the time zone offset.
func (t Timestamp) TZHourOffset() int { return t.tzHour }

// TZMinuteOffset returns the minute component of the time zone offset.
func (t Timestamp) TZMinuteOffset() int { return t.tzMinute }

// TZOffset returns the total time zone offset from UTC in seconds.
func (t Timestamp) TZOffset() int { return t.tzHour*3600 + t.tzMinute*60 }

// Precision returns the display precision.
func (t Timestamp) Precision() uint8 { return t.precision }

// WithTZ reports whether the text representation includes a time zone.
func (t Timestamp) WithTZ() bool { return t.withTZ }

// Equal reports whether two timestamps denote the same instant fields.
// Display precision is ignored.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.year == other.year &&
		t.month == other.month &&
		t.day == other.day &&
		t.hour == other.hour &&
		t.minute == other.minute &&
		t.second == other.second &&
		t.nanosecond == other.nanosecond &&
		t.tzHour == other.tzHour &&
		t.tzMinute == other.tzMinute
}

// GoTime converts the timestamp to a time.Time. Zoned timestamps carry a
// fixed zone at their offset; unzoned ones are interpreted in UTC.
func (t Timestamp) GoTime() time.Time {
	loc := time.UTC
	if t.withTZ && t.TZOffset() != 0 {
		loc = time.FixedZone(fmt.Sprintf("%+03d:%02d", t.tzHour, abs(t.tzMinute)), t.TZOffset())
	}
	return time.Date(t.year, time.Month(t.month), t.day, t.hour, t.minute, t.second, t.nanosecond, loc)
}

// TimestampFromGoTime converts a time.Time to a zoned Timestamp at full
// precision.
func TimestampFromGoTime(tm time.Time) Timestamp {
	_, offset := tm.Zone()
	ts := Timestamp{
		year:       tm.Year(),
		month:      int(tm.Month()),
		day:        tm.Day(),
		hour:       tm.Hour(),
		minute:     tm.Minute(),
		second:     tm.Second(),
		nanosecond: tm.Nanosecond(),
		tzHour:     offset / 3600,
		tzMinute:   offset % 3600 / 60,
		precision:  9,
		withTZ:     true,
	}
	return ts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// writeFraction appends the fractional-second part of nsec at the given
// display precision, including the leading separator. Precision 0 writes
// nothing.
func writeFraction(sb *strings.Builder, nsec int, prec uint8) {
	if prec == 0 || prec > 9 {
		return
	}
	div := 1
	for i := uint8(0); i < 9-prec; i++ {
		div *= 10
	}
	fmt.Fprintf(sb, ".%0*d", prec, nsec/div)
}

// String renders the canonical form "YYYY-MM-DD HH:MM:SS" followed by a
// fractional part at the display precision and, for zoned values, a
// signed "HH:MM" offset.
func (t Timestamp) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-%02d-%02d %02d:%02d:%02d",
		t.year, t.month, t.day, t.hour, t.minute, t.second)
	writeFraction(&sb, t.nanosecond, t.precision)
	if t.withTZ {
		sign := '+'
		if t.tzHour < 0 || t.tzMinute < 0 {
			sign = '-'
		}
		fmt.Fprintf(&sb, " %c%02d:%02d", sign, abs(t.tzHour), abs(t.tzMinute))
	}
	return sb.String()
}

// ParseTimestamp parses the canonical timestamp form, including the
// compact "YYYYMMDD" and "HHMMSS" digit runs, an optional fractional
// part whose digit count sets the display precision, and an optional
// time zone offset or trailing "Z".
func ParseTimestamp(s string) (Timestamp, error) {
	sc := newScanner(s)
	perr := newParseError("Timestamp")
	minus := sc.peek() == '-'
	if minus {
		sc.advance()
	}
	year64, ok := sc.readDigits()
	if !ok {
		return Timestamp{}, perr
	}
	year := int(year64)
	month, day := 1, 1
	switch sc.peek() {
	case 'T', ' ', 0:
		if year > 10000 {
			day = year % 100
			month = (year / 100) % 100
			year /= 10000
		}
	case '-':
		sc.advance()
		m, ok := sc.readDigits()
		if !ok {
			return Timestamp{}, perr
		}
		month = int(m)
		if sc.peek() == '-' {
			sc.advance()
			d, ok := sc.readDigits()
			if !ok {
				return Timestamp{}, perr
			}
			day = int(d)
		}
	default:
		return Timestamp{}, perr
	}
	var hour, minute, second, nsec int
	var tzHour, tzMinute int
	var precision uint8
	withTZ := false
	if !sc.done() {
		switch sc.peek() {
		case 'T', ' ':
			sc.advance()
			h, ok := sc.readDigits()
			if !ok {
				return Timestamp{}, perr
			}
			if sc.peek() == ':' {
				hour = int(h)
				sc.advance()
				m, ok := sc.readDigits()
				if !ok {
					return Timestamp{}, perr
				}
				minute = int(m)
				if sc.peek() == ':' {
					sc.advance()
					s2, ok := sc.readDigits()
					if !ok {
						return Timestamp{}, perr
					}
					second = int(s2)
				}
			} else if sc.ndigits == 6 {
				// 123456 -> 12:34:56
				second = int(h % 100)
				minute = int(h / 100 % 100)
				hour = int(h / 10000)
			} else {
				return Timestamp{}, perr
			}
		default:
			return Timestamp{}, perr
		}
		if sc.peek() == '.' {
			sc.advance()
			frac, ok := sc.readDigits()
			if !ok {
				return Timestamp{}, perr
			}
			nd := sc.ndigits
			precision = uint8(min(nd, 9))
			for ; nd < 9; nd++ {
				frac *= 10
			}
			for ; nd > 9; nd-- {
				frac /= 10
			}
			nsec = int(frac)
		}
		if sc.peek() == ' ' {
			sc.advance()
		}
		switch sc.peek() {
		case '+', '-':
			neg := sc.peek() == '-'
			sc.advance()
			h, ok := sc.readDigits()
			if !ok {
				return Timestamp{}, perr
			}
			tzHour = int(h)
			if sc.peek() == ':' {
				sc.advance()
				m, ok := sc.readDigits()
				if !ok {
					return Timestamp{}, perr
				}
				tzMinute = int(m)
			} else {
				tzMinute = tzHour % 100
				tzHour /= 100
			}
			if neg {
				tzHour = -tzHour
				tzMinute = -tzMinute
			}
			withTZ = true
		case 'Z':
			sc.advance()
			withTZ = true
		}
		if !sc.done() {
			return Timestamp{}, perr
		}
	}
	if minus {
		year = -year
	}
	ts, err := NewTimestamp(year, month, day, hour, minute, second, nsec)
	if err != nil {
		return Timestamp{}, perr
	}
	ts.precision = precision
	if withTZ {
		ts, err = ts.AndTZHMOffset(tzHour, tzMinute)
		if err != nil {
			return Timestamp{}, perr
		}
	}
	return ts, nil
}
