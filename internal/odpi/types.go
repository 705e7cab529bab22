package odpi

import "unsafe"

// ODPI-C handle types represented as Go types
type (
	Context    uintptr
	Conn       uintptr
	Stmt       uintptr
	Pool       uintptr
	Var        uintptr
	Lob        uintptr
	Object     uintptr
	ObjectType uintptr
	ObjectAttr uintptr
	Rowid      uintptr
)

// ODPI-C return states
const (
	Success = 0
	Failure = -1
)

// ODPI-C native type numbers (dpiNativeTypeNum)
const (
	NativeTypeInt64      = 3000
	NativeTypeUint64     = 3001
	NativeTypeFloat      = 3002
	NativeTypeDouble     = 3003
	NativeTypeBytes      = 3004
	NativeTypeTimestamp  = 3005
	NativeTypeIntervalDS = 3006
	NativeTypeIntervalYM = 3007
	NativeTypeLob        = 3008
	NativeTypeObject     = 3009
	NativeTypeStmt       = 3010
	NativeTypeBoolean    = 3011
	NativeTypeRowid      = 3012
	NativeTypeJSON       = 3013
)

// ODPI-C Oracle type numbers (dpiOracleTypeNum)
const (
	OracleTypeNone         = 2000
	OracleTypeVarchar      = 2001
	OracleTypeNvarchar     = 2002
	OracleTypeChar         = 2003
	OracleTypeNchar        = 2004
	OracleTypeRowid        = 2005
	OracleTypeRaw          = 2006
	OracleTypeNativeFloat  = 2007
	OracleTypeNativeDouble = 2008
	OracleTypeNativeInt    = 2009
	OracleTypeNumber       = 2010
	OracleTypeDate         = 2011
	OracleTypeTimestamp    = 2012
	OracleTypeTimestampTZ  = 2013
	OracleTypeTimestampLTZ = 2014
	OracleTypeIntervalDS   = 2015
	OracleTypeIntervalYM   = 2016
	OracleTypeClob         = 2017
	OracleTypeNclob        = 2018
	OracleTypeBlob         = 2019
	OracleTypeBfile        = 2020
	OracleTypeStmt         = 2021
	OracleTypeBoolean      = 2022
	OracleTypeObject       = 2023
	OracleTypeLongVarchar  = 2024
	OracleTypeLongRaw      = 2025
	OracleTypeNativeUint   = 2026
	OracleTypeJSON         = 2027
)

// ODPI-C statement execution modes (dpiExecMode)
const (
	ModeExecDefault         = 0x00000000
	ModeExecCommitOnSuccess = 0x00000020
)

// OCI handle types accepted by the OCI attribute entry points
const (
	HandleTypeSvcCtx  = 3
	HandleTypeServer  = 8
	HandleTypeSession = 9
	HandleTypeStmt    = 4
)

// Data mirrors the C dpiData struct: a null indicator followed by the
// dynamically-typed value buffer. The union is 8-byte aligned in C, hence
// the explicit padding.
type Data struct {
	IsNull int32
	_      [4]byte
	Buffer DataBuffer
}

// SetNull marks the data as null.
func (d *Data) SetNull(null bool) {
	if null {
		d.IsNull = 1
	} else {
		d.IsNull = 0
	}
}

// Null reports whether the data is null.
func (d *Data) Null() bool {
	return d.IsNull != 0
}

// TimestampData mirrors the C dpiTimestamp struct.
type TimestampData struct {
	Year           int16
	Month          uint8
	Day            uint8
	Hour           uint8
	Minute         uint8
	Second         uint8
	_              uint8
	Fsecond        uint32
	TZHourOffset   int8
	TZMinuteOffset int8
	_              [2]byte
}

// IntervalDSData mirrors the C dpiIntervalDS struct.
type IntervalDSData struct {
	Days     int32
	Hours    int32
	Minutes  int32
	Seconds  int32
	Fseconds int32
}

// IntervalYMData mirrors the C dpiIntervalYM struct.
type IntervalYMData struct {
	Years  int32
	Months int32
}

// BytesData mirrors the C dpiBytes struct: a counted byte buffer with the
// character set it is encoded in. The buffer is not nul-terminated.
type BytesData struct {
	Ptr      unsafe.Pointer
	Length   uint32
	_        [4]byte
	Encoding unsafe.Pointer
}

// ErrorInfo mirrors the C dpiErrorInfo struct.
type ErrorInfo struct {
	Code          int32
	Offset16      uint16
	_             [2]byte
	Message       unsafe.Pointer
	MessageLength uint32
	_             [4]byte
	Encoding      unsafe.Pointer
	FnName        unsafe.Pointer
	Action        unsafe.Pointer
	SQLState      unsafe.Pointer
	IsRecoverable int32
	IsWarning     int32
	Offset        uint32
	_             [4]byte
}

// DataTypeInfo mirrors the C dpiDataTypeInfo struct.
type DataTypeInfo struct {
	OracleTypeNum        uint32
	DefaultNativeTypeNum uint32
	OciTypeCode          uint16
	_                    [2]byte
	DBSizeInBytes        uint32
	ClientSizeInBytes    uint32
	SizeInChars          uint32
	Precision            int16
	Scale                int8
	FsPrecision          uint8
	ObjectType           ObjectType
	IsJSON               int32
	_                    [4]byte
}

// QueryInfo mirrors the C dpiQueryInfo struct.
type QueryInfo struct {
	Name       unsafe.Pointer
	NameLength uint32
	_          [4]byte
	TypeInfo   DataTypeInfo
	NullOK     int32
	_          [4]byte
}

// goString copies a counted native string into a Go string.
func goString(p unsafe.Pointer, n uint32) string {
	if p == nil || n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// toPtr converts a Go string to a nul-terminated C string pointer
func toPtr(s string) unsafe.Pointer {
	if s == "" {
		return nil
	}
	return unsafe.Pointer(&[]byte(s + "\x00")[0])
}
