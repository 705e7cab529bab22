package oradb

import (
	"testing"
	"time"
)

func mustTimestamp(t *testing.T, year, month, day, hour, minute, second, nsec int) Timestamp {
	t.Helper()
	ts, err := NewTimestamp(year, month, day, hour, minute, second, nsec)
	if err != nil {
		t.Fatalf("NewTimestamp(%d, %d, %d, %d, %d, %d, %d): %v",
			year, month, day, hour, minute, second, nsec, err)
	}
	return ts
}

func TestNewTimestampValidity(t *testing.T) {
	tests := []struct {
		name                                        string
		year, month, day, hour, minute, second, nsec int
		wantErr                                     bool
	}{
		{"min year", -4713, 1, 1, 0, 0, 0, 0, false},
		{"max year", 9999, 12, 31, 23, 59, 59, 999999999, false},
		{"year too small", -4714, 1, 1, 0, 0, 0, 0, true},
		{"year too large", 10000, 1, 1, 0, 0, 0, 0, true},
		{"month zero", 2024, 0, 1, 0, 0, 0, 0, true},
		{"month 13", 2024, 13, 1, 0, 0, 0, 0, true},
		{"feb 29 leap", 2024, 2, 29, 0, 0, 0, 0, false},
		{"feb 29 non-leap", 2023, 2, 29, 0, 0, 0, 0, true},
		{"feb 29 century", 1900, 2, 29, 0, 0, 0, 0, true},
		{"feb 29 quadricentennial", 2000, 2, 29, 0, 0, 0, 0, false},
		{"april 31", 2024, 4, 31, 0, 0, 0, 0, true},
		{"hour 24", 2024, 1, 1, 24, 0, 0, 0, true},
		{"minute 60", 2024, 1, 1, 0, 60, 0, 0, true},
		{"second 60", 2024, 1, 1, 0, 0, 60, 0, true},
		{"nsec overflow", 2024, 1, 1, 0, 0, 0, 1000000000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimestamp(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, tt.nsec)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && ErrKind(err) != KindOutOfRange {
				t.Errorf("got kind %v, want KindOutOfRange", ErrKind(err))
			}
		})
	}
}

func TestTimestampTZOffset(t *testing.T) {
	ts := mustTimestamp(t, 2024, 5, 6, 7, 8, 9, 0)

	zoned, err := ts.AndTZHMOffset(8, 45)
	if err != nil {
		t.Fatalf("AndTZHMOffset: %v", err)
	}
	if !zoned.WithTZ() || zoned.TZOffset() != 8*3600+45*60 {
		t.Errorf("got offset %d seconds, want %d", zoned.TZOffset(), 8*3600+45*60)
	}

	neg, err := ts.AndTZOffset(-(5*3600 + 30*60))
	if err != nil {
		t.Fatalf("AndTZOffset: %v", err)
	}
	if neg.TZHourOffset() != -5 || neg.TZMinuteOffset() != -30 {
		t.Errorf("got %d:%d, want -5:-30", neg.TZHourOffset(), neg.TZMinuteOffset())
	}

	if _, err := ts.AndTZHMOffset(24, 0); ErrKind(err) != KindOutOfRange {
		t.Errorf("hour 24: got %v, want out of range", err)
	}
	if _, err := ts.AndTZHMOffset(-8, 30); ErrKind(err) != KindOutOfRange {
		t.Errorf("mixed sign: got %v, want out of range", err)
	}
}

func TestTimestampString(t *testing.T) {
	full := mustTimestamp(t, 2012, 3, 4, 5, 6, 7, 891234567)
	tests := []struct {
		name string
		ts   func() (Timestamp, error)
		want string
	}{
		{"full precision", func() (Timestamp, error) { return full, nil }, "2012-03-04 05:06:07.891234567"},
		{"precision 3", func() (Timestamp, error) { return full.AndPrecision(3) }, "2012-03-04 05:06:07.891"},
		{"precision 1", func() (Timestamp, error) { return full.AndPrecision(1) }, "2012-03-04 05:06:07.8"},
		{"precision 0", func() (Timestamp, error) { return full.AndPrecision(0) }, "2012-03-04 05:06:07"},
		{"positive zone", func() (Timestamp, error) {
			ts, err := full.AndTZHMOffset(8, 45)
			if err != nil {
				return ts, err
			}
			return ts.AndPrecision(0)
		}, "2012-03-04 05:06:07 +08:45"},
		{"negative zone", func() (Timestamp, error) {
			ts, err := full.AndTZHMOffset(-8, -45)
			if err != nil {
				return ts, err
			}
			return ts.AndPrecision(0)
		}, "2012-03-04 05:06:07 -08:45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := tt.ts()
			if err != nil {
				t.Fatal(err)
			}
			if got := ts.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2012-03-04 05:06:07.891234567", "2012-03-04 05:06:07.891234567"},
		{"2012-03-04 05:06:07.8", "2012-03-04 05:06:07.8"},
		{"2012-03-04T05:06:07", "2012-03-04 05:06:07"},
		{"2012-03-04", "2012-03-04 00:00:00"},
		{"20120304T050607", "2012-03-04 05:06:07"},
		{"2012-03-04 05:06:07 +08:45", "2012-03-04 05:06:07 +08:45"},
		{"2012-03-04 05:06:07+0845", "2012-03-04 05:06:07 +08:45"},
		{"2012-03-04 05:06:07 -08:45", "2012-03-04 05:06:07 -08:45"},
		{"2012-03-04 05:06:07Z", "2012-03-04 05:06:07 +00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tt.in, err)
			}
			if got := ts.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimestampPrecisionFromDigits(t *testing.T) {
	ts, err := ParseTimestamp("2012-03-04 05:06:07.123")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Precision() != 3 {
		t.Errorf("got precision %d, want 3", ts.Precision())
	}
	if ts.Nanosecond() != 123000000 {
		t.Errorf("got nanosecond %d, want 123000000", ts.Nanosecond())
	}
}

func TestParseTimestampErrors(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"2012-13-04",
		"2012-03-04x",
		"2012-03-04 05:06:07 junk",
		"2012-03-04 0506",
		"2012-02-30",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseTimestamp(in); ErrKind(err) != KindParse {
				t.Errorf("ParseTimestamp(%q): got %v, want parse error", in, err)
			}
		})
	}
}

func TestTimestampEqualIgnoresPrecision(t *testing.T) {
	a := mustTimestamp(t, 2024, 1, 2, 3, 4, 5, 600000000)
	b, err := a.AndPrecision(2)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("timestamps differing only in precision should be equal")
	}
	c := mustTimestamp(t, 2024, 1, 2, 3, 4, 5, 600000001)
	if a.Equal(c) {
		t.Error("timestamps differing in nanoseconds should not be equal")
	}
}

func TestTimestampGoTimeRoundTrip(t *testing.T) {
	loc := time.FixedZone("+09:00", 9*3600)
	in := time.Date(2024, 6, 7, 8, 9, 10, 123456789, loc)
	ts := TimestampFromGoTime(in)
	if ts.TZHourOffset() != 9 || ts.TZMinuteOffset() != 0 {
		t.Fatalf("got zone %d:%d, want 9:0", ts.TZHourOffset(), ts.TZMinuteOffset())
	}
	if !ts.GoTime().Equal(in) {
		t.Errorf("round trip: got %v, want %v", ts.GoTime(), in)
	}
}
