package oradb

import "testing"

func mustIntervalDS(t *testing.T, days, hours, minutes, seconds, nsecs int) IntervalDS {
	t.Helper()
	it, err := NewIntervalDS(days, hours, minutes, seconds, nsecs)
	if err != nil {
		t.Fatalf("NewIntervalDS(%d, %d, %d, %d, %d): %v", days, hours, minutes, seconds, nsecs, err)
	}
	return it
}

func TestNewIntervalDSValidity(t *testing.T) {
	tests := []struct {
		name                                 string
		days, hours, minutes, seconds, nsecs int
		wantErr                              bool
	}{
		{"zero", 0, 0, 0, 0, 0, false},
		{"max", 999999999, 23, 59, 59, 999999999, false},
		{"min", -999999999, -23, -59, -59, -999999999, false},
		{"days overflow", 1000000000, 0, 0, 0, 0, true},
		{"hours overflow", 0, 24, 0, 0, 0, true},
		{"minutes overflow", 0, 0, 60, 0, 0, true},
		{"seconds overflow", 0, 0, 0, 60, 0, true},
		{"nsecs overflow", 0, 0, 0, 0, 1000000000, true},
		{"mixed sign", 1, -2, 0, 0, 0, true},
		{"mixed sign nsec", -1, 0, 0, 0, 1, true},
		{"negative with zeros", -1, 0, -3, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntervalDS(tt.days, tt.hours, tt.minutes, tt.seconds, tt.nsecs)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && ErrKind(err) != KindOutOfRange {
				t.Errorf("got kind %v, want KindOutOfRange", ErrKind(err))
			}
		})
	}
}

func TestIntervalDSString(t *testing.T) {
	base := mustIntervalDS(t, 1, 2, 3, 4, 500000000)
	prec := func(it IntervalDS, lf, fs uint8) IntervalDS {
		out, err := it.AndPrecision(lf, fs)
		if err != nil {
			t.Fatalf("AndPrecision(%d, %d): %v", lf, fs, err)
		}
		return out
	}
	tests := []struct {
		name string
		it   IntervalDS
		want string
	}{
		{"full precision", base, "+000000001 02:03:04.500000000"},
		{"day 2 fs 3", prec(base, 2, 3), "+01 02:03:04.500"},
		{"day 1 fs 0", prec(base, 1, 0), "+1 02:03:04"},
		{"negative", prec(mustIntervalDS(t, -1, -2, -3, -4, -500000000), 2, 3), "-01 02:03:04.500"},
		{"zero", prec(mustIntervalDS(t, 0, 0, 0, 0, 0), 2, 0), "+00 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseIntervalDS(t *testing.T) {
	tests := []struct {
		in                                   string
		days, hours, minutes, seconds, nsecs int
		lfprec, fsprec                       uint8
	}{
		{"+01 02:03:04.500", 1, 2, 3, 4, 500000000, 2, 3},
		{"-01 02:03:04.500", -1, -2, -3, -4, -500000000, 2, 3},
		{"+1 02:03:04", 1, 2, 3, 4, 0, 1, 0},
		{"+000000001 02:03:04.123456789", 1, 2, 3, 4, 123456789, 9, 9},
		{"+0 00:00:00.000000000001", 0, 0, 0, 0, 0, 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			it, err := ParseIntervalDS(tt.in)
			if err != nil {
				t.Fatalf("ParseIntervalDS(%q): %v", tt.in, err)
			}
			want := IntervalDS{
				days: tt.days, hours: tt.hours, minutes: tt.minutes,
				seconds: tt.seconds, nanoseconds: tt.nsecs,
			}
			if !it.Equal(want) {
				t.Errorf("got %s, want %s", it.debugString(), want.debugString())
			}
			if it.LfPrec() != tt.lfprec || it.FsPrec() != tt.fsprec {
				t.Errorf("got precision (%d, %d), want (%d, %d)", it.LfPrec(), it.FsPrec(), tt.lfprec, tt.fsprec)
			}
		})
	}
}

func TestParseIntervalDSRoundTrip(t *testing.T) {
	for _, in := range []string{"+01 02:03:04.500", "-123 23:59:59.999", "+0 00:00:00"} {
		it, err := ParseIntervalDS(in)
		if err != nil {
			t.Fatalf("ParseIntervalDS(%q): %v", in, err)
		}
		if got := it.String(); got != in {
			t.Errorf("round trip of %q: got %q", in, got)
		}
	}
}

func TestParseIntervalDSErrors(t *testing.T) {
	tests := []string{
		"",
		"1",
		"+01",
		"+01 02",
		"+01 02:03",
		"+01 02:03:04x",
		"+01 24:00:00",
		"abc",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseIntervalDS(in); ErrKind(err) != KindParse {
				t.Errorf("ParseIntervalDS(%q): got %v, want parse error", in, err)
			}
		})
	}
}

func TestIntervalDSEqualIgnoresPrecision(t *testing.T) {
	a := mustIntervalDS(t, 1, 2, 3, 4, 5)
	b, err := a.AndPrecision(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("intervals differing only in precision should be equal")
	}
	if a.Equal(mustIntervalDS(t, 1, 2, 3, 4, 6)) {
		t.Error("intervals differing in nanoseconds should not be equal")
	}
}
