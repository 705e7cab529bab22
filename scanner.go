package oradb

// scanner is a single-pass cursor over the text form of a timestamp or
// interval literal. readDigits records how many digits it consumed so the
// parsers can derive display precision from field width.
type scanner struct {
	s       string
	pos     int
	ndigits int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

// peek returns the current byte, or 0 at end of input.
func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// advance moves past the current byte.
func (sc *scanner) advance() {
	if sc.pos < len(sc.s) {
		sc.pos++
	}
}

// expect consumes ch or fails.
func (sc *scanner) expect(ch byte) bool {
	if sc.peek() != ch {
		return false
	}
	sc.advance()
	return true
}

// done reports whether the whole input has been consumed.
func (sc *scanner) done() bool {
	return sc.pos >= len(sc.s)
}

// readDigits consumes a run of decimal digits and returns its value.
// It fails when no digit is present.
func (sc *scanner) readDigits() (uint64, bool) {
	var num uint64
	sc.ndigits = 0
	for {
		ch := sc.peek()
		if ch < '0' || ch > '9' {
			break
		}
		num = num*10 + uint64(ch-'0')
		sc.ndigits++
		sc.advance()
	}
	return num, sc.ndigits > 0
}

// readSign consumes an optional leading sign and reports whether the value
// is negative.
func (sc *scanner) readSign() bool {
	switch sc.peek() {
	case '+':
		sc.advance()
		return false
	case '-':
		sc.advance()
		return true
	}
	return false
}
