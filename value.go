package oradb

import (
	"encoding/hex"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// Value is a slot binding an Oracle type descriptor, a native data buffer
// and a null flag. It carries one bound parameter or one fetched column
// or element value.
//
// A Value is owned by the statement, row or collection context that
// created it and must not be mutated concurrently. The buffer layout is
// kept consistent with the slot's Oracle type at all times: getters and
// setters route every access through the buffer shape selected by the
// type, so a width mismatch cannot be expressed through this API.
//
// Getters return a null-value error when the slot is null; Scan with a
// double-pointer destination yields nil instead. Numeric getters narrower
// than the stored value fail with an out-of-range error rather than
// truncating.
type Value struct {
	oratype OracleType
	native  nativeType
	data    *odpi.Data
	buf     []byte
}

// NewValue allocates a slot for the given Oracle type. The slot starts
// out null.
func NewValue(oratype OracleType) (*Value, error) {
	native, err := oratype.nativeType()
	if err != nil {
		return nil, err
	}
	v := &Value{
		oratype: oratype,
		native:  native,
		data:    &odpi.Data{},
	}
	v.data.SetNull(true)
	return v, nil
}

// NewValueFromData wraps a native data buffer owned by the caller (a
// fetched column or attribute buffer) without copying it.
func NewValueFromData(oratype OracleType, data *odpi.Data) (*Value, error) {
	native, err := oratype.nativeType()
	if err != nil {
		return nil, err
	}
	return &Value{oratype: oratype, native: native, data: data}, nil
}

// OracleType returns the slot's type descriptor.
func (v *Value) OracleType() OracleType {
	return v.oratype
}

// Data returns the slot's native data buffer for binding.
func (v *Value) Data() *odpi.Data {
	return v.data
}

// NativeTypeNum returns the ODPI-C native type number backing the slot.
func (v *Value) NativeTypeNum() uint32 {
	return v.native.num()
}

// IsNull reports whether the slot holds a null.
func (v *Value) IsNull() bool {
	return v.data.Null()
}

// SetNull makes the slot null.
func (v *Value) SetNull() {
	v.data.SetNull(true)
}

// setBytes copies b into the slot's backing buffer, growing it when the
// capacity is insufficient, and points the counted-bytes shape at it.
func (v *Value) setBytes(b []byte) {
	if cap(v.buf) < len(b) {
		v.buf = make([]byte, len(b))
	}
	v.buf = v.buf[:len(b)]
	copy(v.buf, b)
	v.data.Buffer.SetBytes(v.buf)
	v.data.SetNull(false)
}

func (v *Value) convErrTo(to string) error {
	return newInvalidConversion(v.oratype.String(), to)
}

func (v *Value) convErrFrom(from string) error {
	return newInvalidConversion(from, v.oratype.String())
}

func floatToInt64(f float64) (int64, error) {
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, newOutOfRange("%g is out of range for int64", f)
	}
	return int64(f), nil
}

func floatToUint64(f float64) (uint64, error) {
	if f < 0 || f >= math.MaxUint64 {
		return 0, newOutOfRange("%g is out of range for uint64", f)
	}
	return uint64(f), nil
}

// Int64 decodes the slot as a signed 64-bit integer.
func (v *Value) Int64() (int64, error) {
	if v.IsNull() {
		return 0, newNullValue()
	}
	switch v.native {
	case nativeInt64:
		return v.data.Buffer.Int64(), nil
	case nativeUInt64:
		u := v.data.Buffer.Uint64()
		if u > math.MaxInt64 {
			return 0, newOutOfRange("%d is out of range for int64", u)
		}
		return int64(u), nil
	case nativeFloat:
		return floatToInt64(float64(v.data.Buffer.Float32()))
	case nativeDouble:
		return floatToInt64(v.data.Buffer.Float64())
	case nativeChar, nativeNumber:
		s := v.data.Buffer.String()
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, newOutOfRange("cannot read %q as int64", s)
		}
		return n, nil
	default:
		return 0, v.convErrTo("int64")
	}
}

// Uint64 decodes the slot as an unsigned 64-bit integer.
func (v *Value) Uint64() (uint64, error) {
	if v.IsNull() {
		return 0, newNullValue()
	}
	switch v.native {
	case nativeInt64:
		n := v.data.Buffer.Int64()
		if n < 0 {
			return 0, newOutOfRange("%d is out of range for uint64", n)
		}
		return uint64(n), nil
	case nativeUInt64:
		return v.data.Buffer.Uint64(), nil
	case nativeFloat:
		return floatToUint64(float64(v.data.Buffer.Float32()))
	case nativeDouble:
		return floatToUint64(v.data.Buffer.Float64())
	case nativeChar, nativeNumber:
		s := v.data.Buffer.String()
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, newOutOfRange("cannot read %q as uint64", s)
		}
		return n, nil
	default:
		return 0, v.convErrTo("uint64")
	}
}

// Int32 decodes the slot as a signed 32-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Int32() (int32, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, newOutOfRange("%d is out of range for int32", n)
	}
	return int32(n), nil
}

// Int16 decodes the slot as a signed 16-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Int16() (int16, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt16 || n > math.MaxInt16 {
		return 0, newOutOfRange("%d is out of range for int16", n)
	}
	return int16(n), nil
}

// Int8 decodes the slot as a signed 8-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Int8() (int8, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt8 || n > math.MaxInt8 {
		return 0, newOutOfRange("%d is out of range for int8", n)
	}
	return int8(n), nil
}

// Uint32 decodes the slot as an unsigned 32-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Uint32() (uint32, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, newOutOfRange("%d is out of range for uint32", n)
	}
	return uint32(n), nil
}

// Uint16 decodes the slot as an unsigned 16-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Uint16() (uint16, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint16 {
		return 0, newOutOfRange("%d is out of range for uint16", n)
	}
	return uint16(n), nil
}

// Uint8 decodes the slot as an unsigned 8-bit integer, failing with an
// out-of-range error when the stored value does not fit.
func (v *Value) Uint8() (uint8, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint8 {
		return 0, newOutOfRange("%d is out of range for uint8", n)
	}
	return uint8(n), nil
}

// Float64 decodes the slot as a 64-bit float.
func (v *Value) Float64() (float64, error) {
	if v.IsNull() {
		return 0, newNullValue()
	}
	switch v.native {
	case nativeInt64:
		return float64(v.data.Buffer.Int64()), nil
	case nativeUInt64:
		return float64(v.data.Buffer.Uint64()), nil
	case nativeFloat:
		return float64(v.data.Buffer.Float32()), nil
	case nativeDouble:
		return v.data.Buffer.Float64(), nil
	case nativeChar, nativeNumber:
		s := v.data.Buffer.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, newOutOfRange("cannot read %q as float64", s)
		}
		return f, nil
	default:
		return 0, v.convErrTo("float64")
	}
}

// Float32 decodes the slot as a 32-bit float.
func (v *Value) Float32() (float32, error) {
	f, err := v.Float64()
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// Bool decodes the slot as a boolean.
func (v *Value) Bool() (bool, error) {
	if v.IsNull() {
		return false, newNullValue()
	}
	switch v.native {
	case nativeBoolean:
		return v.data.Buffer.Bool(), nil
	default:
		return false, v.convErrTo("bool")
	}
}

// String decodes the slot as a string. Non-character slots render their
// canonical text form; raw slots render upper-case hex.
func (v *Value) String() (string, error) {
	if v.IsNull() {
		return "", newNullValue()
	}
	switch v.native {
	case nativeChar, nativeNumber:
		return v.data.Buffer.String(), nil
	case nativeRaw:
		return upperHex(v.data.Buffer.BytesRef()), nil
	case nativeInt64:
		return strconv.FormatInt(v.data.Buffer.Int64(), 10), nil
	case nativeUInt64:
		return strconv.FormatUint(v.data.Buffer.Uint64(), 10), nil
	case nativeFloat:
		return strconv.FormatFloat(float64(v.data.Buffer.Float32()), 'g', -1, 32), nil
	case nativeDouble:
		return strconv.FormatFloat(v.data.Buffer.Float64(), 'g', -1, 64), nil
	case nativeTimestamp:
		ts, err := v.Timestamp()
		if err != nil {
			return "", err
		}
		return ts.String(), nil
	case nativeIntervalDS:
		it, err := v.IntervalDS()
		if err != nil {
			return "", err
		}
		return it.String(), nil
	case nativeIntervalYM:
		it, err := v.IntervalYM()
		if err != nil {
			return "", err
		}
		return it.String(), nil
	case nativeBoolean:
		if v.data.Buffer.Bool() {
			return "TRUE", nil
		}
		return "FALSE", nil
	default:
		return "", v.convErrTo("string")
	}
}

func upperHex(b []byte) string {
	const hexDigits = "0123456789ABCDEF"
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, hexDigits[c>>4], hexDigits[c&0xf])
	}
	return string(out)
}

// Bytes decodes the slot as an owned byte slice.
func (v *Value) Bytes() ([]byte, error) {
	if v.IsNull() {
		return nil, newNullValue()
	}
	switch v.native {
	case nativeRaw, nativeChar:
		return v.data.Buffer.Bytes(), nil
	default:
		return nil, v.convErrTo("[]byte")
	}
}

// Timestamp decodes the slot as a Timestamp. The display precision and
// zone flag come from the slot's Oracle type.
func (v *Value) Timestamp() (Timestamp, error) {
	if v.IsNull() {
		return Timestamp{}, newNullValue()
	}
	switch v.native {
	case nativeTimestamp:
		return timestampFromData(v.data.Buffer.Timestamp(), v.oratype)
	case nativeChar:
		ts, err := ParseTimestamp(v.data.Buffer.String())
		if err != nil {
			return Timestamp{}, err
		}
		return ts, nil
	default:
		return Timestamp{}, v.convErrTo("Timestamp")
	}
}

// IntervalDS decodes the slot as a day-to-second interval. The display
// precisions come from the slot's Oracle type.
func (v *Value) IntervalDS() (IntervalDS, error) {
	if v.IsNull() {
		return IntervalDS{}, newNullValue()
	}
	switch v.native {
	case nativeIntervalDS:
		d := v.data.Buffer.IntervalDS()
		it, err := NewIntervalDS(int(d.Days), int(d.Hours), int(d.Minutes), int(d.Seconds), int(d.Fseconds))
		if err != nil {
			return IntervalDS{}, err
		}
		if v.oratype.ID == TypeIntervalDS {
			return it.AndPrecision(v.oratype.LfPrec, v.oratype.FsPrec)
		}
		return it, nil
	case nativeChar:
		return ParseIntervalDS(v.data.Buffer.String())
	default:
		return IntervalDS{}, v.convErrTo("IntervalDS")
	}
}

// IntervalYM decodes the slot as a year-to-month interval. The display
// precision comes from the slot's Oracle type.
func (v *Value) IntervalYM() (IntervalYM, error) {
	if v.IsNull() {
		return IntervalYM{}, newNullValue()
	}
	switch v.native {
	case nativeIntervalYM:
		d := v.data.Buffer.IntervalYM()
		it, err := NewIntervalYM(int(d.Years), int(d.Months))
		if err != nil {
			return IntervalYM{}, err
		}
		if v.oratype.ID == TypeIntervalYM {
			return it.AndPrecision(v.oratype.LfPrec)
		}
		return it, nil
	case nativeChar:
		return ParseIntervalYM(v.data.Buffer.String())
	default:
		return IntervalYM{}, v.convErrTo("IntervalYM")
	}
}

// UUID decodes a RAW(16) or character slot as a UUID.
func (v *Value) UUID() (uuid.UUID, error) {
	if v.IsNull() {
		return uuid.UUID{}, newNullValue()
	}
	switch v.native {
	case nativeRaw:
		b := v.data.Buffer.BytesRef()
		u, err := uuid.FromBytes(b)
		if err != nil {
			return uuid.UUID{}, newOutOfRange("cannot read %d raw bytes as UUID", len(b))
		}
		return u, nil
	case nativeChar:
		u, err := uuid.Parse(v.data.Buffer.String())
		if err != nil {
			return uuid.UUID{}, newParseError("UUID")
		}
		return u, nil
	default:
		return uuid.UUID{}, v.convErrTo("UUID")
	}
}

func timestampFromData(td odpi.TimestampData, oratype OracleType) (Timestamp, error) {
	ts, err := NewTimestamp(int(td.Year), int(td.Month), int(td.Day),
		int(td.Hour), int(td.Minute), int(td.Second), int(td.Fsecond))
	if err != nil {
		return Timestamp{}, err
	}
	switch oratype.ID {
	case TypeTimestamp:
		return ts.AndPrecision(oratype.FsPrec)
	case TypeTimestampTZ, TypeTimestampLTZ:
		ts, err = ts.AndTZHMOffset(int(td.TZHourOffset), int(td.TZMinuteOffset))
		if err != nil {
			return Timestamp{}, err
		}
		return ts.AndPrecision(oratype.FsPrec)
	default:
		return ts.AndPrecision(0)
	}
}

func timestampToData(ts Timestamp) odpi.TimestampData {
	return odpi.TimestampData{
		Year:           int16(ts.Year()),
		Month:          uint8(ts.Month()),
		Day:            uint8(ts.Day()),
		Hour:           uint8(ts.Hour()),
		Minute:         uint8(ts.Minute()),
		Second:         uint8(ts.Second()),
		Fsecond:        uint32(ts.Nanosecond()),
		TZHourOffset:   int8(ts.TZHourOffset()),
		TZMinuteOffset: int8(ts.TZMinuteOffset()),
	}
}

// SetInt64 encodes a signed 64-bit integer into the slot.
func (v *Value) SetInt64(n int64) error {
	switch v.native {
	case nativeInt64:
		v.data.Buffer.SetInt64(n)
	case nativeUInt64:
		if n < 0 {
			return newOutOfRange("%d is out of range for %s", n, v.oratype)
		}
		v.data.Buffer.SetUint64(uint64(n))
	case nativeFloat:
		v.data.Buffer.SetFloat32(float32(n))
	case nativeDouble:
		v.data.Buffer.SetFloat64(float64(n))
	case nativeChar, nativeNumber:
		v.setBytes(strconv.AppendInt(nil, n, 10))
		return nil
	default:
		return v.convErrFrom("int64")
	}
	v.data.SetNull(false)
	return nil
}

// SetUint64 encodes an unsigned 64-bit integer into the slot.
func (v *Value) SetUint64(n uint64) error {
	switch v.native {
	case nativeInt64:
		if n > math.MaxInt64 {
			return newOutOfRange("%d is out of range for %s", n, v.oratype)
		}
		v.data.Buffer.SetInt64(int64(n))
	case nativeUInt64:
		v.data.Buffer.SetUint64(n)
	case nativeFloat:
		v.data.Buffer.SetFloat32(float32(n))
	case nativeDouble:
		v.data.Buffer.SetFloat64(float64(n))
	case nativeChar, nativeNumber:
		v.setBytes(strconv.AppendUint(nil, n, 10))
		return nil
	default:
		return v.convErrFrom("uint64")
	}
	v.data.SetNull(false)
	return nil
}

// SetFloat64 encodes a 64-bit float into the slot.
func (v *Value) SetFloat64(f float64) error {
	switch v.native {
	case nativeFloat:
		v.data.Buffer.SetFloat32(float32(f))
	case nativeDouble:
		v.data.Buffer.SetFloat64(f)
	case nativeChar, nativeNumber:
		v.setBytes(strconv.AppendFloat(nil, f, 'g', -1, 64))
		return nil
	default:
		return v.convErrFrom("float64")
	}
	v.data.SetNull(false)
	return nil
}

// SetString encodes a string into the slot, parsing it when the slot's
// type is not character data.
func (v *Value) SetString(s string) error {
	switch v.native {
	case nativeChar, nativeNumber:
		v.setBytes([]byte(s))
		return nil
	case nativeRaw:
		b, err := hex.DecodeString(s)
		if err != nil {
			return newParseError("RAW")
		}
		v.setBytes(b)
		return nil
	case nativeInt64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return newParseError("Int64")
		}
		return v.SetInt64(n)
	case nativeUInt64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return newParseError("UInt64")
		}
		return v.SetUint64(n)
	case nativeFloat, nativeDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return newParseError("Number")
		}
		return v.SetFloat64(f)
	case nativeTimestamp:
		ts, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		return v.SetTimestamp(ts)
	case nativeIntervalDS:
		it, err := ParseIntervalDS(s)
		if err != nil {
			return err
		}
		return v.SetIntervalDS(it)
	case nativeIntervalYM:
		it, err := ParseIntervalYM(s)
		if err != nil {
			return err
		}
		return v.SetIntervalYM(it)
	default:
		return v.convErrFrom("string")
	}
}

// SetBytes encodes a byte slice into the slot.
func (v *Value) SetBytes(b []byte) error {
	switch v.native {
	case nativeRaw, nativeChar:
		v.setBytes(b)
		return nil
	default:
		return v.convErrFrom("[]byte")
	}
}

// SetBool encodes a boolean into the slot.
func (v *Value) SetBool(b bool) error {
	switch v.native {
	case nativeBoolean:
		v.data.Buffer.SetBool(b)
	default:
		return v.convErrFrom("bool")
	}
	v.data.SetNull(false)
	return nil
}

// SetTimestamp encodes a Timestamp into the slot.
func (v *Value) SetTimestamp(ts Timestamp) error {
	switch v.native {
	case nativeTimestamp:
		v.data.Buffer.SetTimestamp(timestampToData(ts))
	case nativeChar:
		v.setBytes([]byte(ts.String()))
		return nil
	default:
		return v.convErrFrom("Timestamp")
	}
	v.data.SetNull(false)
	return nil
}

// SetIntervalDS encodes a day-to-second interval into the slot.
func (v *Value) SetIntervalDS(it IntervalDS) error {
	switch v.native {
	case nativeIntervalDS:
		v.data.Buffer.SetIntervalDS(odpi.IntervalDSData{
			Days:     int32(it.Days()),
			Hours:    int32(it.Hours()),
			Minutes:  int32(it.Minutes()),
			Seconds:  int32(it.Seconds()),
			Fseconds: int32(it.Nanoseconds()),
		})
	case nativeChar:
		v.setBytes([]byte(it.String()))
		return nil
	default:
		return v.convErrFrom("IntervalDS")
	}
	v.data.SetNull(false)
	return nil
}

// SetIntervalYM encodes a year-to-month interval into the slot.
func (v *Value) SetIntervalYM(it IntervalYM) error {
	switch v.native {
	case nativeIntervalYM:
		v.data.Buffer.SetIntervalYM(odpi.IntervalYMData{
			Years:  int32(it.Years()),
			Months: int32(it.Months()),
		})
	case nativeChar:
		v.setBytes([]byte(it.String()))
		return nil
	default:
		return v.convErrFrom("IntervalYM")
	}
	v.data.SetNull(false)
	return nil
}

// Set encodes an arbitrary host value into the slot. nil encodes a null.
func (v *Value) Set(val any) error {
	switch x := val.(type) {
	case nil:
		v.SetNull()
		return nil
	case int:
		return v.SetInt64(int64(x))
	case int8:
		return v.SetInt64(int64(x))
	case int16:
		return v.SetInt64(int64(x))
	case int32:
		return v.SetInt64(int64(x))
	case int64:
		return v.SetInt64(x)
	case uint:
		return v.SetUint64(uint64(x))
	case uint8:
		return v.SetUint64(uint64(x))
	case uint16:
		return v.SetUint64(uint64(x))
	case uint32:
		return v.SetUint64(uint64(x))
	case uint64:
		return v.SetUint64(x)
	case float32:
		return v.SetFloat64(float64(x))
	case float64:
		return v.SetFloat64(x)
	case string:
		return v.SetString(x)
	case []byte:
		return v.SetBytes(x)
	case bool:
		return v.SetBool(x)
	case time.Time:
		return v.SetTimestamp(TimestampFromGoTime(x))
	case Timestamp:
		return v.SetTimestamp(x)
	case IntervalDS:
		return v.SetIntervalDS(x)
	case IntervalYM:
		return v.SetIntervalYM(x)
	case uuid.UUID:
		return v.SetBytes(x[:])
	case OracleType:
		// A bare OracleType binds a null of that type.
		v.SetNull()
		return nil
	default:
		return v.convErrFrom("unsupported host type")
	}
}

// Scan decodes the slot into dest, which must be a pointer to a supported
// host type. A double pointer makes the destination nullable: a null slot
// stores nil instead of failing.
func (v *Value) Scan(dest any) error {
	switch d := dest.(type) {
	case *int64:
		n, err := v.Int64()
		if err != nil {
			return err
		}
		*d = n
	case *int32:
		n, err := v.Int32()
		if err != nil {
			return err
		}
		*d = n
	case *int16:
		n, err := v.Int16()
		if err != nil {
			return err
		}
		*d = n
	case *int8:
		n, err := v.Int8()
		if err != nil {
			return err
		}
		*d = n
	case *int:
		n, err := v.Int64()
		if err != nil {
			return err
		}
		*d = int(n)
	case *uint64:
		n, err := v.Uint64()
		if err != nil {
			return err
		}
		*d = n
	case *uint32:
		n, err := v.Uint32()
		if err != nil {
			return err
		}
		*d = n
	case *uint16:
		n, err := v.Uint16()
		if err != nil {
			return err
		}
		*d = n
	case *uint8:
		n, err := v.Uint8()
		if err != nil {
			return err
		}
		*d = n
	case *float64:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		*d = f
	case *float32:
		f, err := v.Float32()
		if err != nil {
			return err
		}
		*d = f
	case *string:
		s, err := v.String()
		if err != nil {
			return err
		}
		*d = s
	case *[]byte:
		b, err := v.Bytes()
		if err != nil {
			return err
		}
		*d = b
	case *bool:
		b, err := v.Bool()
		if err != nil {
			return err
		}
		*d = b
	case *Timestamp:
		ts, err := v.Timestamp()
		if err != nil {
			return err
		}
		*d = ts
	case *IntervalDS:
		it, err := v.IntervalDS()
		if err != nil {
			return err
		}
		*d = it
	case *IntervalYM:
		it, err := v.IntervalYM()
		if err != nil {
			return err
		}
		*d = it
	case *time.Time:
		ts, err := v.Timestamp()
		if err != nil {
			return err
		}
		*d = ts.GoTime()
	case *uuid.UUID:
		u, err := v.UUID()
		if err != nil {
			return err
		}
		*d = u
	case **int64:
		return scanNullable(v, d, (*Value).Int64)
	case **int32:
		return scanNullable(v, d, (*Value).Int32)
	case **int16:
		return scanNullable(v, d, (*Value).Int16)
	case **int8:
		return scanNullable(v, d, (*Value).Int8)
	case **int:
		return scanNullable(v, d, func(v *Value) (int, error) {
			n, err := v.Int64()
			return int(n), err
		})
	case **uint64:
		return scanNullable(v, d, (*Value).Uint64)
	case **uint32:
		return scanNullable(v, d, (*Value).Uint32)
	case **uint16:
		return scanNullable(v, d, (*Value).Uint16)
	case **uint8:
		return scanNullable(v, d, (*Value).Uint8)
	case **float64:
		return scanNullable(v, d, (*Value).Float64)
	case **float32:
		return scanNullable(v, d, (*Value).Float32)
	case **string:
		return scanNullable(v, d, (*Value).String)
	case **[]byte:
		return scanNullable(v, d, (*Value).Bytes)
	case **bool:
		return scanNullable(v, d, (*Value).Bool)
	case **Timestamp:
		return scanNullable(v, d, (*Value).Timestamp)
	case **IntervalDS:
		return scanNullable(v, d, (*Value).IntervalDS)
	case **IntervalYM:
		return scanNullable(v, d, (*Value).IntervalYM)
	case **time.Time:
		return scanNullable(v, d, func(v *Value) (time.Time, error) {
			ts, err := v.Timestamp()
			if err != nil {
				return time.Time{}, err
			}
			return ts.GoTime(), nil
		})
	case *any:
		x, err := v.generic()
		if err != nil {
			return err
		}
		*d = x
	default:
		return v.convErrTo("unsupported destination type")
	}
	return nil
}

// scanNullable stores nil for a null slot and a freshly decoded value
// otherwise.
func scanNullable[T any](v *Value, dest **T, get func(*Value) (T, error)) error {
	if v.IsNull() {
		*dest = nil
		return nil
	}
	x, err := get(v)
	if err != nil {
		return err
	}
	*dest = &x
	return nil
}

// generic decodes the slot into the natural host type for its native
// shape. Null decodes to nil.
func (v *Value) generic() (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	switch v.native {
	case nativeInt64:
		return v.data.Buffer.Int64(), nil
	case nativeUInt64:
		return v.data.Buffer.Uint64(), nil
	case nativeFloat:
		return v.data.Buffer.Float32(), nil
	case nativeDouble:
		return v.data.Buffer.Float64(), nil
	case nativeChar, nativeNumber:
		return v.data.Buffer.String(), nil
	case nativeRaw:
		return v.data.Buffer.Bytes(), nil
	case nativeBoolean:
		return v.data.Buffer.Bool(), nil
	case nativeTimestamp:
		return v.Timestamp()
	case nativeIntervalDS:
		return v.IntervalDS()
	case nativeIntervalYM:
		return v.IntervalYM()
	default:
		return nil, v.convErrTo("a host value")
	}
}

// DefaultOracleType returns the Oracle type a non-null host value of
// val's type binds as.
func DefaultOracleType(val any) (OracleType, error) {
	switch x := val.(type) {
	case nil:
		// An untyped null; the server coerces it to the column type.
		return OracleType{ID: TypeVarchar2, Size: 1}, nil
	case int, int8, int16, int32, int64:
		return OracleType{ID: TypeInt64}, nil
	case uint, uint8, uint16, uint32, uint64:
		return OracleType{ID: TypeUInt64}, nil
	case float32:
		return OracleType{ID: TypeBinaryFloat}, nil
	case float64:
		return OracleType{ID: TypeBinaryDouble}, nil
	case string:
		return OracleType{ID: TypeVarchar2, Size: uint32(max(len(x), 1))}, nil
	case []byte:
		return OracleType{ID: TypeRaw, Size: uint32(max(len(x), 1))}, nil
	case bool:
		return OracleType{ID: TypeBoolean}, nil
	case time.Time:
		return OracleType{ID: TypeTimestampTZ, FsPrec: 9}, nil
	case Timestamp:
		if x.WithTZ() {
			return OracleType{ID: TypeTimestampTZ, FsPrec: x.Precision()}, nil
		}
		return OracleType{ID: TypeTimestamp, FsPrec: x.Precision()}, nil
	case IntervalDS:
		return OracleType{ID: TypeIntervalDS, LfPrec: x.LfPrec(), FsPrec: x.FsPrec()}, nil
	case IntervalYM:
		return OracleType{ID: TypeIntervalYM, LfPrec: x.Precision()}, nil
	case uuid.UUID:
		return OracleType{ID: TypeRaw, Size: 16}, nil
	case OracleType:
		// Binding a bare OracleType requests a null of that type.
		return x, nil
	default:
		return OracleType{}, newInvalidConversion("unsupported host type", "an Oracle type")
	}
}

// NullOracleType returns the Oracle type a null binding of dest's pointee
// type requests. dest is a (possibly nil) typed pointer such as
// (*int32)(nil).
func NullOracleType(dest any) (OracleType, error) {
	switch dest.(type) {
	case *int, *int8, *int16, *int32, *int64:
		return OracleType{ID: TypeInt64}, nil
	case *uint, *uint8, *uint16, *uint32, *uint64:
		return OracleType{ID: TypeUInt64}, nil
	case *float32:
		return OracleType{ID: TypeBinaryFloat}, nil
	case *float64:
		return OracleType{ID: TypeBinaryDouble}, nil
	case *string:
		return OracleType{ID: TypeVarchar2, Size: 1}, nil
	case *[]byte:
		return OracleType{ID: TypeRaw, Size: 1}, nil
	case *bool:
		return OracleType{ID: TypeBoolean}, nil
	case *time.Time, *Timestamp:
		return OracleType{ID: TypeTimestampTZ, FsPrec: 9}, nil
	case *IntervalDS:
		return OracleType{ID: TypeIntervalDS, LfPrec: 2, FsPrec: 9}, nil
	case *IntervalYM:
		return OracleType{ID: TypeIntervalYM, LfPrec: 2}, nil
	case *uuid.UUID:
		return OracleType{ID: TypeRaw, Size: 16}, nil
	default:
		return OracleType{}, newInvalidConversion("unsupported host type", "an Oracle type")
	}
}
