package oradb

import (
	"fmt"
	"strings"
)

// IntervalDS is an Oracle INTERVAL DAY TO SECOND value.
//
// All components share the same sign (or are zero). The leading field and
// fractional second precisions control only the text representation; they
// are ignored when intervals are compared with Equal.
type IntervalDS struct {
	days        int
	hours       int
	minutes     int
	seconds     int
	nanoseconds int
	lfprec      uint8
	fsprec      uint8
}

func (it IntervalDS) checkValidity() (IntervalDS, error) {
	switch {
	case it.days < -999999999 || it.days > 999999999:
		return it, newOutOfRange("days must be between -999999999 and 999999999 but %d", it.days)
	case it.hours < -23 || it.hours > 23:
		return it, newOutOfRange("hours must be between -23 and 23 but %d", it.hours)
	case it.minutes < -59 || it.minutes > 59:
		return it, newOutOfRange("minutes must be between -59 and 59 but %d", it.minutes)
	case it.seconds < -59 || it.seconds > 59:
		return it, newOutOfRange("seconds must be between -59 and 59 but %d", it.seconds)
	case it.nanoseconds < -999999999 || it.nanoseconds > 999999999:
		return it, newOutOfRange("nanoseconds must be between -999,999,999 and 999,999,999 but %d", it.nanoseconds)
	}
	if it.days >= 0 && it.hours >= 0 && it.minutes >= 0 && it.seconds >= 0 && it.nanoseconds >= 0 {
		return it, nil
	}
	if it.days <= 0 && it.hours <= 0 && it.minutes <= 0 && it.seconds <= 0 && it.nanoseconds <= 0 {
		return it, nil
	}
	return it, newOutOfRange("days, hours, minutes, seconds and nanoseconds must be all zero or positive, or all zero or negative, but %s", it.debugString())
}

func (it IntervalDS) debugString() string {
	return fmt.Sprintf("IntervalDS(%d, %d, %d, %d, %d)", it.days, it.hours, it.minutes, it.seconds, it.nanoseconds)
}

// NewIntervalDS creates an interval at full (9-digit) leading and
// fractional precision. Valid ranges: days -999,999,999 to 999,999,999;
// hours -23 to 23; minutes and seconds -59 to 59; nanoseconds
// -999,999,999 to 999,999,999. All components must be zero or positive,
// or zero or negative.
func NewIntervalDS(days, hours, minutes, seconds, nanoseconds int) (IntervalDS, error) {
	return IntervalDS{
		days:        days,
		hours:       hours,
		minutes:     minutes,
		seconds:     seconds,
		nanoseconds: nanoseconds,
		lfprec:      9,
		fsprec:      9,
	}.checkValidity()
}

// AndPrecision returns a copy with the given leading field and fractional
// second precisions (each 0 to 9). Precisions affect only the text
// representation.
func (it IntervalDS) AndPrecision(lfprec, fsprec uint8) (IntervalDS, error) {
	if lfprec > 9 {
		return it, newOutOfRange("lfprec must be 0 to 9 but %d", lfprec)
	}
	if fsprec > 9 {
		return it, newOutOfRange("fsprec must be 0 to 9 but %d", fsprec)
	}
	it.lfprec = lfprec
	it.fsprec = fsprec
	return it, nil
}

// Days returns the days component.
func (it IntervalDS) Days() int { return it.days }

// Hours returns the hours component.
func (it IntervalDS) Hours() int { return it.hours }

// Minutes returns the minutes component.
func (it IntervalDS) Minutes() int { return it.minutes }

// Seconds returns the seconds component.
func (it IntervalDS) Seconds() int { return it.seconds }

// Nanoseconds returns the nanoseconds component.
func (it IntervalDS) Nanoseconds() int { return it.nanoseconds }

// LfPrec returns the leading field precision.
func (it IntervalDS) LfPrec() uint8 { return it.lfprec }

// FsPrec returns the fractional second precision.
func (it IntervalDS) FsPrec() uint8 { return it.fsprec }

// Equal compares the interval components. Precisions are ignored.
func (it IntervalDS) Equal(other IntervalDS) bool {
	return it.days == other.days &&
		it.hours == other.hours &&
		it.minutes == other.minutes &&
		it.seconds == other.seconds &&
		it.nanoseconds == other.nanoseconds
}

// String renders the canonical form "±D HH:MM:SS[.F]" with the day field
// zero-padded to the leading field precision and the fraction rendered at
// the fractional second precision (omitted at precision 0).
func (it IntervalDS) String() string {
	var sb strings.Builder
	if it.days < 0 || it.hours < 0 || it.minutes < 0 || it.seconds < 0 || it.nanoseconds < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	if it.lfprec >= 2 {
		fmt.Fprintf(&sb, "%0*d", it.lfprec, abs(it.days))
	} else {
		fmt.Fprintf(&sb, "%d", abs(it.days))
	}
	fmt.Fprintf(&sb, " %02d:%02d:%02d", abs(it.hours), abs(it.minutes), abs(it.seconds))
	writeFraction(&sb, abs(it.nanoseconds), it.fsprec)
	return sb.String()
}

// ParseIntervalDS parses the canonical day-to-second interval form. The
// digit counts of the day field and the fractional part set the displayed
// precisions.
func ParseIntervalDS(s string) (IntervalDS, error) {
	sc := newScanner(s)
	perr := newParseError("IntervalDS")
	minus := sc.readSign()
	days64, ok := sc.readDigits()
	if !ok {
		return IntervalDS{}, perr
	}
	lfprec := min(sc.ndigits, 9)
	if !sc.expect(' ') {
		return IntervalDS{}, perr
	}
	hours64, ok := sc.readDigits()
	if !ok {
		return IntervalDS{}, perr
	}
	if !sc.expect(':') {
		return IntervalDS{}, perr
	}
	minutes64, ok := sc.readDigits()
	if !ok {
		return IntervalDS{}, perr
	}
	if !sc.expect(':') {
		return IntervalDS{}, perr
	}
	seconds64, ok := sc.readDigits()
	if !ok {
		return IntervalDS{}, perr
	}
	var nsecs uint64
	fsprec := 0
	if sc.peek() == '.' {
		sc.advance()
		nsecs, ok = sc.readDigits()
		if !ok {
			return IntervalDS{}, perr
		}
		nd := sc.ndigits
		fsprec = min(nd, 9)
		for ; nd < 9; nd++ {
			nsecs *= 10
		}
		for ; nd > 9; nd-- {
			nsecs /= 10
		}
	}
	if !sc.done() {
		return IntervalDS{}, perr
	}
	days, hours, minutes, seconds, nanoseconds := int(days64), int(hours64), int(minutes64), int(seconds64), int(nsecs)
	if minus {
		days, hours, minutes, seconds, nanoseconds = -days, -hours, -minutes, -seconds, -nanoseconds
	}
	it, err := NewIntervalDS(days, hours, minutes, seconds, nanoseconds)
	if err != nil {
		return IntervalDS{}, perr
	}
	it.lfprec = uint8(lfprec)
	it.fsprec = uint8(fsprec)
	return it, nil
}
