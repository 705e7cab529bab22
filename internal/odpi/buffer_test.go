package odpi

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestStructLayout(t *testing.T) {
	// These mirror C struct layouts; the sizes and offsets are fixed by the
	// native ABI.
	if got := unsafe.Sizeof(DataBuffer{}); got != 24 {
		t.Errorf("sizeof(DataBuffer) = %d, want 24", got)
	}
	if got := unsafe.Sizeof(Data{}); got != 32 {
		t.Errorf("sizeof(Data) = %d, want 32", got)
	}
	if got := unsafe.Offsetof(Data{}.Buffer); got != 8 {
		t.Errorf("offsetof(Data.Buffer) = %d, want 8", got)
	}
	if got := unsafe.Sizeof(IntervalDSData{}); got != 20 {
		t.Errorf("sizeof(IntervalDSData) = %d, want 20", got)
	}
	if got := unsafe.Sizeof(IntervalYMData{}); got != 8 {
		t.Errorf("sizeof(IntervalYMData) = %d, want 8", got)
	}
	if got := unsafe.Sizeof(TimestampData{}); got != 16 {
		t.Errorf("sizeof(TimestampData) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(BytesData{}); got != 24 {
		t.Errorf("sizeof(BytesData) = %d, want 24", got)
	}
}

func TestDataBufferScalars(t *testing.T) {
	var b DataBuffer

	if n := b.SetInt64(-12345678901234); n != 8 {
		t.Errorf("SetInt64 length = %d, want 8", n)
	}
	if got := b.Int64(); got != -12345678901234 {
		t.Errorf("Int64 = %d", got)
	}

	if n := b.SetUint8(0xAB); n != 1 {
		t.Errorf("SetUint8 length = %d, want 1", n)
	}
	if got := b.Uint8(); got != 0xAB {
		t.Errorf("Uint8 = %#x", got)
	}

	if n := b.SetUint16(0xBEEF); n != 2 {
		t.Errorf("SetUint16 length = %d, want 2", n)
	}
	if got := b.Uint16(); got != 0xBEEF {
		t.Errorf("Uint16 = %#x", got)
	}

	if n := b.SetUint32(0xDEADBEEF); n != 4 {
		t.Errorf("SetUint32 length = %d, want 4", n)
	}
	if got := b.Uint32(); got != 0xDEADBEEF {
		t.Errorf("Uint32 = %#x", got)
	}

	b.SetFloat64(3.25)
	if got := b.Float64(); got != 3.25 {
		t.Errorf("Float64 = %g", got)
	}
	b.SetFloat32(1.5)
	if got := b.Float32(); got != 1.5 {
		t.Errorf("Float32 = %g", got)
	}

	if n := b.SetBool(true); n != 4 {
		t.Errorf("SetBool length = %d, want 4", n)
	}
	if !b.Bool() {
		t.Error("Bool = false, want true")
	}
	b.SetBool(false)
	if b.Bool() {
		t.Error("Bool = true, want false")
	}
}

func TestDataBufferBytes(t *testing.T) {
	var b DataBuffer
	src := []byte("hello")
	b.SetBytes(src)

	ref := b.BytesRef()
	if !bytes.Equal(ref, src) {
		t.Errorf("BytesRef = %q, want %q", ref, src)
	}
	// BytesRef aliases the caller's buffer.
	src[0] = 'H'
	if ref[0] != 'H' {
		t.Error("BytesRef should alias the source buffer")
	}

	owned := b.Bytes()
	src[0] = 'X'
	if owned[0] != 'H' {
		t.Error("Bytes should be an owned copy")
	}

	if got := b.String(); got != "Xello" {
		t.Errorf("String = %q, want %q", got, "Xello")
	}

	b.SetBytes(nil)
	if b.BytesRef() != nil || b.Bytes() != nil || b.String() != "" {
		t.Error("empty counted bytes should read back as empty")
	}
}

func TestDataBufferStructs(t *testing.T) {
	var b DataBuffer

	ts := TimestampData{
		Year: 2024, Month: 5, Day: 6,
		Hour: 7, Minute: 8, Second: 9, Fsecond: 123456789,
		TZHourOffset: 5, TZMinuteOffset: 30,
	}
	b.SetTimestamp(ts)
	if got := b.Timestamp(); got != ts {
		t.Errorf("Timestamp round trip: got %+v", got)
	}

	ds := IntervalDSData{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Fseconds: 5}
	b.SetIntervalDS(ds)
	if got := b.IntervalDS(); got != ds {
		t.Errorf("IntervalDS round trip: got %+v", got)
	}

	ym := IntervalYMData{Years: -7, Months: -8}
	b.SetIntervalYM(ym)
	if got := b.IntervalYM(); got != ym {
		t.Errorf("IntervalYM round trip: got %+v", got)
	}
}

func TestDataNullFlag(t *testing.T) {
	var d Data
	if d.Null() {
		t.Error("zero Data should not be null")
	}
	d.SetNull(true)
	if !d.Null() {
		t.Error("SetNull(true) should mark the data null")
	}
	d.SetNull(false)
	if d.Null() {
		t.Error("SetNull(false) should clear the flag")
	}
}
