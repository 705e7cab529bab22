package oradb

import (
	"fmt"

	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// TypeID identifies an Oracle SQL data type. The set is closed: the native
// client's type universe is fixed, and every switch over TypeID in this
// package enumerates it.
type TypeID int

const (
	TypeNone TypeID = iota
	TypeVarchar2
	TypeNVarchar2
	TypeChar
	TypeNChar
	TypeRowid
	TypeRaw
	TypeBinaryFloat
	TypeBinaryDouble
	TypeNumber
	TypeDate
	TypeTimestamp
	TypeTimestampTZ
	TypeTimestampLTZ
	TypeIntervalDS
	TypeIntervalYM
	TypeCLOB
	TypeNCLOB
	TypeBLOB
	TypeBFile
	TypeRefCursor
	TypeBoolean
	TypeObject
	TypeLong
	TypeLongRaw
	TypeInt64
	TypeUInt64
)

// OracleType describes an Oracle SQL type together with its size and
// precision parameters. Only the fields relevant to the ID are meaningful:
// Size for character/raw types, Precision and Scale for NUMBER, FsPrec for
// timestamp and interval fractional seconds, LfPrec for interval leading
// fields, ObjectType for object and collection types.
type OracleType struct {
	ID         TypeID
	Size       uint32
	Precision  int16
	Scale      int8
	FsPrec     uint8
	LfPrec     uint8
	ObjectType *ObjectType
}

// nativeType is the fixed-width buffer shape backing a slot of a given
// Oracle type. Char, Number and Rowid are all counted-bytes shapes at the
// buffer level but carry different host semantics, mirroring how the
// native layer transfers NUMBER and ROWID values as text.
type nativeType int

const (
	nativeInt64 nativeType = iota
	nativeUInt64
	nativeFloat
	nativeDouble
	nativeChar
	nativeNumber
	nativeRaw
	nativeTimestamp
	nativeIntervalDS
	nativeIntervalYM
	nativeBoolean
	nativeObject
)

// num returns the ODPI-C native type number for the shape.
func (n nativeType) num() uint32 {
	switch n {
	case nativeInt64:
		return odpi.NativeTypeInt64
	case nativeUInt64:
		return odpi.NativeTypeUint64
	case nativeFloat:
		return odpi.NativeTypeFloat
	case nativeDouble:
		return odpi.NativeTypeDouble
	case nativeChar, nativeNumber, nativeRaw:
		return odpi.NativeTypeBytes
	case nativeTimestamp:
		return odpi.NativeTypeTimestamp
	case nativeIntervalDS:
		return odpi.NativeTypeIntervalDS
	case nativeIntervalYM:
		return odpi.NativeTypeIntervalYM
	case nativeBoolean:
		return odpi.NativeTypeBoolean
	case nativeObject:
		return odpi.NativeTypeObject
	default:
		return odpi.NativeTypeBytes
	}
}

func (n nativeType) String() string {
	switch n {
	case nativeInt64:
		return "Int64"
	case nativeUInt64:
		return "UInt64"
	case nativeFloat:
		return "Float"
	case nativeDouble:
		return "Double"
	case nativeChar:
		return "Char"
	case nativeNumber:
		return "Number"
	case nativeRaw:
		return "Raw"
	case nativeTimestamp:
		return "Timestamp"
	case nativeIntervalDS:
		return "IntervalDS"
	case nativeIntervalYM:
		return "IntervalYM"
	case nativeBoolean:
		return "Boolean"
	case nativeObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// validate checks the descriptor's parameter invariants.
func (t OracleType) validate() error {
	if t.FsPrec > 9 {
		return newOutOfRange("fractional second precision must be 0 to 9 but %d", t.FsPrec)
	}
	if t.LfPrec > 9 {
		return newOutOfRange("leading field precision must be 0 to 9 but %d", t.LfPrec)
	}
	return nil
}

// nativeType returns the buffer shape used for slots of this type.
func (t OracleType) nativeType() (nativeType, error) {
	if err := t.validate(); err != nil {
		return 0, err
	}
	switch t.ID {
	case TypeVarchar2, TypeNVarchar2, TypeChar, TypeNChar, TypeLong, TypeCLOB, TypeNCLOB:
		return nativeChar, nil
	case TypeRowid:
		return nativeChar, nil
	case TypeNumber:
		return nativeNumber, nil
	case TypeRaw, TypeLongRaw, TypeBLOB, TypeBFile:
		return nativeRaw, nil
	case TypeBinaryFloat:
		return nativeFloat, nil
	case TypeBinaryDouble:
		return nativeDouble, nil
	case TypeInt64:
		return nativeInt64, nil
	case TypeUInt64:
		return nativeUInt64, nil
	case TypeDate, TypeTimestamp, TypeTimestampTZ, TypeTimestampLTZ:
		return nativeTimestamp, nil
	case TypeIntervalDS:
		return nativeIntervalDS, nil
	case TypeIntervalYM:
		return nativeIntervalYM, nil
	case TypeBoolean:
		return nativeBoolean, nil
	case TypeObject:
		return nativeObject, nil
	default:
		return 0, newInvalidConversion(t.String(), "a native buffer shape")
	}
}

// oracleTypeNum returns the ODPI-C Oracle type number.
func (t OracleType) oracleTypeNum() uint32 {
	switch t.ID {
	case TypeVarchar2:
		return odpi.OracleTypeVarchar
	case TypeNVarchar2:
		return odpi.OracleTypeNvarchar
	case TypeChar:
		return odpi.OracleTypeChar
	case TypeNChar:
		return odpi.OracleTypeNchar
	case TypeRowid:
		return odpi.OracleTypeRowid
	case TypeRaw:
		return odpi.OracleTypeRaw
	case TypeBinaryFloat:
		return odpi.OracleTypeNativeFloat
	case TypeBinaryDouble:
		return odpi.OracleTypeNativeDouble
	case TypeNumber:
		return odpi.OracleTypeNumber
	case TypeDate:
		return odpi.OracleTypeDate
	case TypeTimestamp:
		return odpi.OracleTypeTimestamp
	case TypeTimestampTZ:
		return odpi.OracleTypeTimestampTZ
	case TypeTimestampLTZ:
		return odpi.OracleTypeTimestampLTZ
	case TypeIntervalDS:
		return odpi.OracleTypeIntervalDS
	case TypeIntervalYM:
		return odpi.OracleTypeIntervalYM
	case TypeCLOB:
		return odpi.OracleTypeClob
	case TypeNCLOB:
		return odpi.OracleTypeNclob
	case TypeBLOB:
		return odpi.OracleTypeBlob
	case TypeBFile:
		return odpi.OracleTypeBfile
	case TypeRefCursor:
		return odpi.OracleTypeStmt
	case TypeBoolean:
		return odpi.OracleTypeBoolean
	case TypeObject:
		return odpi.OracleTypeObject
	case TypeLong:
		return odpi.OracleTypeLongVarchar
	case TypeLongRaw:
		return odpi.OracleTypeLongRaw
	case TypeInt64:
		return odpi.OracleTypeNativeInt
	case TypeUInt64:
		return odpi.OracleTypeNativeUint
	default:
		return odpi.OracleTypeNone
	}
}

// OracleTypeFromColumnInfo builds a descriptor from the native layer's
// per-column type information. It is used by the driver layer when shaping
// fetch buffers for a query's select list.
func OracleTypeFromColumnInfo(info odpi.ColumnInfo) (OracleType, error) {
	size := info.SizeInChars
	if size == 0 {
		size = info.DBSizeInBytes
	}
	switch info.OracleTypeNum {
	case odpi.OracleTypeVarchar:
		return OracleType{ID: TypeVarchar2, Size: size}, nil
	case odpi.OracleTypeNvarchar:
		return OracleType{ID: TypeNVarchar2, Size: size}, nil
	case odpi.OracleTypeChar:
		return OracleType{ID: TypeChar, Size: size}, nil
	case odpi.OracleTypeNchar:
		return OracleType{ID: TypeNChar, Size: size}, nil
	case odpi.OracleTypeRowid:
		return OracleType{ID: TypeRowid}, nil
	case odpi.OracleTypeRaw:
		return OracleType{ID: TypeRaw, Size: info.DBSizeInBytes}, nil
	case odpi.OracleTypeNativeFloat:
		return OracleType{ID: TypeBinaryFloat}, nil
	case odpi.OracleTypeNativeDouble:
		return OracleType{ID: TypeBinaryDouble}, nil
	case odpi.OracleTypeNativeInt:
		return OracleType{ID: TypeInt64}, nil
	case odpi.OracleTypeNativeUint:
		return OracleType{ID: TypeUInt64}, nil
	case odpi.OracleTypeNumber:
		return OracleType{ID: TypeNumber, Precision: info.Precision, Scale: info.Scale}, nil
	case odpi.OracleTypeDate:
		return OracleType{ID: TypeDate}, nil
	case odpi.OracleTypeTimestamp:
		return OracleType{ID: TypeTimestamp, FsPrec: info.FsPrecision}, nil
	case odpi.OracleTypeTimestampTZ:
		return OracleType{ID: TypeTimestampTZ, FsPrec: info.FsPrecision}, nil
	case odpi.OracleTypeTimestampLTZ:
		return OracleType{ID: TypeTimestampLTZ, FsPrec: info.FsPrecision}, nil
	case odpi.OracleTypeIntervalDS:
		return OracleType{ID: TypeIntervalDS, LfPrec: uint8(info.Precision), FsPrec: info.FsPrecision}, nil
	case odpi.OracleTypeIntervalYM:
		return OracleType{ID: TypeIntervalYM, LfPrec: uint8(info.Precision)}, nil
	case odpi.OracleTypeClob:
		return OracleType{ID: TypeCLOB}, nil
	case odpi.OracleTypeNclob:
		return OracleType{ID: TypeNCLOB}, nil
	case odpi.OracleTypeBlob:
		return OracleType{ID: TypeBLOB}, nil
	case odpi.OracleTypeBfile:
		return OracleType{ID: TypeBFile}, nil
	case odpi.OracleTypeStmt:
		return OracleType{ID: TypeRefCursor}, nil
	case odpi.OracleTypeBoolean:
		return OracleType{ID: TypeBoolean}, nil
	case odpi.OracleTypeLongVarchar:
		return OracleType{ID: TypeLong}, nil
	case odpi.OracleTypeLongRaw:
		return OracleType{ID: TypeLongRaw}, nil
	default:
		return OracleType{}, newInternal("unsupported Oracle type number %d", info.OracleTypeNum)
	}
}

// String renders the type the way Oracle DDL names it.
func (t OracleType) String() string {
	switch t.ID {
	case TypeVarchar2:
		return fmt.Sprintf("VARCHAR2(%d)", t.Size)
	case TypeNVarchar2:
		return fmt.Sprintf("NVARCHAR2(%d)", t.Size)
	case TypeChar:
		return fmt.Sprintf("CHAR(%d)", t.Size)
	case TypeNChar:
		return fmt.Sprintf("NCHAR(%d)", t.Size)
	case TypeRowid:
		return "ROWID"
	case TypeRaw:
		return fmt.Sprintf("RAW(%d)", t.Size)
	case TypeBinaryFloat:
		return "BINARY_FLOAT"
	case TypeBinaryDouble:
		return "BINARY_DOUBLE"
	case TypeNumber:
		switch {
		case t.Precision == 0:
			return "NUMBER"
		case t.Scale == 0:
			return fmt.Sprintf("NUMBER(%d)", t.Precision)
		default:
			return fmt.Sprintf("NUMBER(%d,%d)", t.Precision, t.Scale)
		}
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return fmt.Sprintf("TIMESTAMP(%d)", t.FsPrec)
	case TypeTimestampTZ:
		return fmt.Sprintf("TIMESTAMP(%d) WITH TIME ZONE", t.FsPrec)
	case TypeTimestampLTZ:
		return fmt.Sprintf("TIMESTAMP(%d) WITH LOCAL TIME ZONE", t.FsPrec)
	case TypeIntervalDS:
		return fmt.Sprintf("INTERVAL DAY(%d) TO SECOND(%d)", t.LfPrec, t.FsPrec)
	case TypeIntervalYM:
		return fmt.Sprintf("INTERVAL YEAR(%d) TO MONTH", t.LfPrec)
	case TypeCLOB:
		return "CLOB"
	case TypeNCLOB:
		return "NCLOB"
	case TypeBLOB:
		return "BLOB"
	case TypeBFile:
		return "BFILE"
	case TypeRefCursor:
		return "REF CURSOR"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeObject:
		if t.ObjectType != nil {
			return t.ObjectType.Name()
		}
		return "OBJECT"
	case TypeLong:
		return "LONG"
	case TypeLongRaw:
		return "LONG RAW"
	case TypeInt64:
		return "INT64"
	case TypeUInt64:
		return "UINT64"
	default:
		return "NONE"
	}
}
