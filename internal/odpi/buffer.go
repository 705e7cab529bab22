package odpi

import "unsafe"

// DataBuffer mirrors the C dpiDataBuffer union: a 24-byte, 8-byte aligned
// buffer holding exactly one of a closed set of fixed-width shapes.
//
// The accessors below reinterpret the buffer per shape without any runtime
// check. Reading or writing through a shape that does not match the native
// type actually backing the buffer is undefined behavior: bits are
// misinterpreted or, for the counted-bytes shape, an out-of-bounds read can
// occur. Callers select the shape from the slot's native type before
// touching the buffer; nothing outside this package reinterprets it
// directly.
type DataBuffer [3]uint64

func (b *DataBuffer) ptr() unsafe.Pointer {
	return unsafe.Pointer(&b[0])
}

// Uint8 reads the buffer as an unsigned 8-bit integer.
func (b *DataBuffer) Uint8() uint8 {
	return *(*uint8)(b.ptr())
}

// SetUint8 writes an unsigned 8-bit integer and returns the written length.
func (b *DataBuffer) SetUint8(v uint8) uint32 {
	*(*uint8)(b.ptr()) = v
	return 1
}

// Uint16 reads the buffer as an unsigned 16-bit integer.
func (b *DataBuffer) Uint16() uint16 {
	return *(*uint16)(b.ptr())
}

// SetUint16 writes an unsigned 16-bit integer and returns the written length.
func (b *DataBuffer) SetUint16(v uint16) uint32 {
	*(*uint16)(b.ptr()) = v
	return 2
}

// Uint32 reads the buffer as an unsigned 32-bit integer.
func (b *DataBuffer) Uint32() uint32 {
	return *(*uint32)(b.ptr())
}

// SetUint32 writes an unsigned 32-bit integer and returns the written length.
func (b *DataBuffer) SetUint32(v uint32) uint32 {
	*(*uint32)(b.ptr()) = v
	return 4
}

// Uint64 reads the buffer as an unsigned 64-bit integer.
func (b *DataBuffer) Uint64() uint64 {
	return *(*uint64)(b.ptr())
}

// SetUint64 writes an unsigned 64-bit integer and returns the written length.
func (b *DataBuffer) SetUint64(v uint64) uint32 {
	*(*uint64)(b.ptr()) = v
	return 8
}

// Int64 reads the buffer as a signed 64-bit integer.
func (b *DataBuffer) Int64() int64 {
	return *(*int64)(b.ptr())
}

// SetInt64 writes a signed 64-bit integer and returns the written length.
func (b *DataBuffer) SetInt64(v int64) uint32 {
	*(*int64)(b.ptr()) = v
	return 8
}

// Float32 reads the buffer as a 32-bit float.
func (b *DataBuffer) Float32() float32 {
	return *(*float32)(b.ptr())
}

// SetFloat32 writes a 32-bit float and returns the written length.
func (b *DataBuffer) SetFloat32(v float32) uint32 {
	*(*float32)(b.ptr()) = v
	return 4
}

// Float64 reads the buffer as a 64-bit float.
func (b *DataBuffer) Float64() float64 {
	return *(*float64)(b.ptr())
}

// SetFloat64 writes a 64-bit float and returns the written length.
func (b *DataBuffer) SetFloat64(v float64) uint32 {
	*(*float64)(b.ptr()) = v
	return 8
}

// Bool reads the buffer as a 4-byte boolean encoded as 0/1.
func (b *DataBuffer) Bool() bool {
	return *(*int32)(b.ptr()) != 0
}

// SetBool writes a 4-byte boolean encoded as 0/1 and returns the written
// length.
func (b *DataBuffer) SetBool(v bool) uint32 {
	var n int32
	if v {
		n = 1
	}
	*(*int32)(b.ptr()) = n
	return 4
}

// Pointer reads the buffer as a pointer-sized opaque handle.
func (b *DataBuffer) Pointer() unsafe.Pointer {
	return *(*unsafe.Pointer)(b.ptr())
}

// SetPointer writes a pointer-sized opaque handle and returns the written
// length.
func (b *DataBuffer) SetPointer(p unsafe.Pointer) uint32 {
	*(*unsafe.Pointer)(b.ptr()) = p
	return uint32(unsafe.Sizeof(p))
}

// Object reads the buffer as an object handle.
func (b *DataBuffer) Object() Object {
	return *(*Object)(b.ptr())
}

// SetObject writes an object handle and returns the written length.
func (b *DataBuffer) SetObject(obj Object) uint32 {
	*(*Object)(b.ptr()) = obj
	return uint32(unsafe.Sizeof(obj))
}

// BytesRef reads the counted-bytes shape and returns the native buffer
// as a slice aliasing native memory. The slice is valid only as long as
// the native buffer is.
func (b *DataBuffer) BytesRef() []byte {
	bd := (*BytesData)(b.ptr())
	if bd.Ptr == nil || bd.Length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(bd.Ptr), bd.Length)
}

// Bytes reads the counted-bytes shape and returns an owned copy.
func (b *DataBuffer) Bytes() []byte {
	ref := b.BytesRef()
	if ref == nil {
		return nil
	}
	out := make([]byte, len(ref))
	copy(out, ref)
	return out
}

// String reads the counted-bytes shape and returns an owned string.
func (b *DataBuffer) String() string {
	return string(b.BytesRef())
}

// SetBytes points the counted-bytes shape at buf and returns the written
// length of the shape itself. The caller keeps buf alive for as long as
// the buffer may be read.
func (b *DataBuffer) SetBytes(buf []byte) uint32 {
	bd := (*BytesData)(b.ptr())
	if len(buf) == 0 {
		bd.Ptr = nil
		bd.Length = 0
		return uint32(unsafe.Sizeof(*bd))
	}
	bd.Ptr = unsafe.Pointer(&buf[0])
	bd.Length = uint32(len(buf))
	return uint32(unsafe.Sizeof(*bd))
}

// Timestamp reads the buffer as a dpiTimestamp struct.
func (b *DataBuffer) Timestamp() TimestampData {
	return *(*TimestampData)(b.ptr())
}

// SetTimestamp writes a dpiTimestamp struct and returns the written length.
func (b *DataBuffer) SetTimestamp(ts TimestampData) uint32 {
	*(*TimestampData)(b.ptr()) = ts
	return uint32(unsafe.Sizeof(ts))
}

// IntervalDS reads the buffer as a dpiIntervalDS struct.
func (b *DataBuffer) IntervalDS() IntervalDSData {
	return *(*IntervalDSData)(b.ptr())
}

// SetIntervalDS writes a dpiIntervalDS struct and returns the written length.
func (b *DataBuffer) SetIntervalDS(it IntervalDSData) uint32 {
	*(*IntervalDSData)(b.ptr()) = it
	return uint32(unsafe.Sizeof(it))
}

// IntervalYM reads the buffer as a dpiIntervalYM struct.
func (b *DataBuffer) IntervalYM() IntervalYMData {
	return *(*IntervalYMData)(b.ptr())
}

// SetIntervalYM writes a dpiIntervalYM struct and returns the written length.
func (b *DataBuffer) SetIntervalYM(it IntervalYMData) uint32 {
	*(*IntervalYMData)(b.ptr()) = it
	return uint32(unsafe.Sizeof(it))
}
