package oradb

import "testing"

func TestNewIntervalYMValidity(t *testing.T) {
	tests := []struct {
		name          string
		years, months int
		wantErr       bool
	}{
		{"zero", 0, 0, false},
		{"max", 999999999, 11, false},
		{"min", -999999999, -11, false},
		{"years overflow", 1000000000, 0, true},
		{"months overflow", 0, 12, true},
		{"months underflow", 0, -12, true},
		{"mixed sign", 1, -1, true},
		{"negative with zero years", 0, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntervalYM(tt.years, tt.months)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && ErrKind(err) != KindOutOfRange {
				t.Errorf("got kind %v, want KindOutOfRange", ErrKind(err))
			}
		})
	}
}

func TestIntervalYMString(t *testing.T) {
	it, err := NewIntervalYM(12, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := it.String(); got != "+000000012-03" {
		t.Errorf("full precision: got %q, want %q", got, "+000000012-03")
	}
	p2, err := it.AndPrecision(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := p2.String(); got != "+12-03" {
		t.Errorf("precision 2: got %q, want %q", got, "+12-03")
	}
	neg, err := NewIntervalYM(-2, -6)
	if err != nil {
		t.Fatal(err)
	}
	neg, err = neg.AndPrecision(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := neg.String(); got != "-2-06" {
		t.Errorf("negative: got %q, want %q", got, "-2-06")
	}
}

func TestParseIntervalYM(t *testing.T) {
	tests := []struct {
		in            string
		years, months int
		precision     uint8
	}{
		{"+12-03", 12, 3, 2},
		{"-12-03", -12, -3, 2},
		{"+2-06", 2, 6, 1},
		{"+000000012-03", 12, 3, 9},
		{"0-00", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			it, err := ParseIntervalYM(tt.in)
			if err != nil {
				t.Fatalf("ParseIntervalYM(%q): %v", tt.in, err)
			}
			if it.Years() != tt.years || it.Months() != tt.months {
				t.Errorf("got (%d, %d), want (%d, %d)", it.Years(), it.Months(), tt.years, tt.months)
			}
			if it.Precision() != tt.precision {
				t.Errorf("got precision %d, want %d", it.Precision(), tt.precision)
			}
		})
	}
}

func TestParseIntervalYMErrors(t *testing.T) {
	tests := []string{"", "12", "+12-", "+12-3x", "+12-12", "abc"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseIntervalYM(in); ErrKind(err) != KindParse {
				t.Errorf("ParseIntervalYM(%q): got %v, want parse error", in, err)
			}
		})
	}
}

func TestIntervalYMEqualIgnoresPrecision(t *testing.T) {
	a, err := NewIntervalYM(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := a.AndPrecision(2)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("intervals differing only in precision should be equal")
	}
}
