package oradb

import (
	"fmt"
	"strings"
)

// IntervalYM is an Oracle INTERVAL YEAR TO MONTH value.
//
// Years and months share the same sign (or are zero). The precision
// controls only the text representation; it is ignored when intervals are
// compared with Equal.
type IntervalYM struct {
	years     int
	months    int
	precision uint8
}

func (it IntervalYM) checkValidity() (IntervalYM, error) {
	switch {
	case it.years < -999999999 || it.years > 999999999:
		return it, newOutOfRange("years must be between -999999999 and 999999999 but %d", it.years)
	case it.months < -11 || it.months > 11:
		return it, newOutOfRange("months must be between -11 and 11 but %d", it.months)
	}
	if (it.years >= 0 && it.months >= 0) || (it.years <= 0 && it.months <= 0) {
		return it, nil
	}
	return it, newOutOfRange("years and months must be both zero or positive, or both zero or negative, but IntervalYM(%d, %d)", it.years, it.months)
}

// NewIntervalYM creates an interval at full (9-digit) precision. Valid
// ranges: years -999,999,999 to 999,999,999; months -11 to 11. Both must
// be zero or positive, or zero or negative.
func NewIntervalYM(years, months int) (IntervalYM, error) {
	return IntervalYM{
		years:     years,
		months:    months,
		precision: 9,
	}.checkValidity()
}

// AndPrecision returns a copy with the given display precision (0 to 9).
// The precision affects only the text representation.
func (it IntervalYM) AndPrecision(precision uint8) (IntervalYM, error) {
	if precision > 9 {
		return it, newOutOfRange("precision must be 0 to 9 but %d", precision)
	}
	it.precision = precision
	return it, nil
}

// Years returns the years component.
func (it IntervalYM) Years() int { return it.years }

// Months returns the months component.
func (it IntervalYM) Months() int { return it.months }

// Precision returns the display precision.
func (it IntervalYM) Precision() uint8 { return it.precision }

// Equal compares the interval components. Precision is ignored.
func (it IntervalYM) Equal(other IntervalYM) bool {
	return it.years == other.years && it.months == other.months
}

// String renders the canonical form "±Y-MM" with the year field
// zero-padded to the display precision.
func (it IntervalYM) String() string {
	var sb strings.Builder
	if it.years < 0 || it.months < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	if it.precision >= 2 {
		fmt.Fprintf(&sb, "%0*d", it.precision, abs(it.years))
	} else {
		fmt.Fprintf(&sb, "%d", abs(it.years))
	}
	fmt.Fprintf(&sb, "-%02d", abs(it.months))
	return sb.String()
}

// ParseIntervalYM parses the canonical year-to-month interval form. The
// digit count of the year field sets the displayed precision.
func ParseIntervalYM(s string) (IntervalYM, error) {
	sc := newScanner(s)
	perr := newParseError("IntervalYM")
	minus := sc.readSign()
	years64, ok := sc.readDigits()
	if !ok {
		return IntervalYM{}, perr
	}
	precision := min(sc.ndigits, 9)
	if !sc.expect('-') {
		return IntervalYM{}, perr
	}
	months64, ok := sc.readDigits()
	if !ok {
		return IntervalYM{}, perr
	}
	if !sc.done() {
		return IntervalYM{}, perr
	}
	years, months := int(years64), int(months64)
	if minus {
		years, months = -years, -months
	}
	it, err := NewIntervalYM(years, months)
	if err != nil {
		return IntervalYM{}, perr
	}
	it.precision = uint8(precision)
	return it, nil
}
