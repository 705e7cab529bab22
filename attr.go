package oradb

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// OCI handle type selectors for connection-scoped attributes. A connection
// owns three distinct native handles (service context, server, session) and
// each attribute code is defined against exactly one of them.
const (
	HandleSvcCtx  uint32 = odpi.HandleTypeSvcCtx
	HandleServer  uint32 = odpi.HandleTypeServer
	HandleSession uint32 = odpi.HandleTypeSession
)

// MaxStringSize is the database's MAX_STRING_SIZE initialization setting as
// reported through the VARTYPE_MAXLEN_COMPAT attribute.
type MaxStringSize int

const (
	// MaxStringSizeStandard limits VARCHAR2 to 4000 bytes.
	MaxStringSizeStandard MaxStringSize = iota + 1
	// MaxStringSizeExtended extends VARCHAR2 to 32767 bytes.
	MaxStringSizeExtended
)

func (m MaxStringSize) String() string {
	switch m {
	case MaxStringSizeStandard:
		return "STANDARD"
	case MaxStringSizeExtended:
		return "EXTENDED"
	default:
		return "UNKNOWN"
	}
}

// attrCodec converts one attribute payload representation between its raw
// native form and a host value. A nil write marks the representation as
// read-only at the protocol level, independent of any particular attribute.
type attrCodec[T any] struct {
	read  func(buf odpi.DataBuffer, length uint32) (T, error)
	write func(buf *odpi.DataBuffer, value T) (ptr unsafe.Pointer, length uint32, ref any, err error)
}

func bufPtr(buf *odpi.DataBuffer) unsafe.Pointer {
	return unsafe.Pointer(buf)
}

var ub1Codec = attrCodec[uint8]{
	read: func(buf odpi.DataBuffer, _ uint32) (uint8, error) {
		return buf.Uint8(), nil
	},
	write: func(buf *odpi.DataBuffer, v uint8) (unsafe.Pointer, uint32, any, error) {
		return bufPtr(buf), buf.SetUint8(v), nil, nil
	},
}

var ub2Codec = attrCodec[uint16]{
	read: func(buf odpi.DataBuffer, _ uint32) (uint16, error) {
		return buf.Uint16(), nil
	},
	write: func(buf *odpi.DataBuffer, v uint16) (unsafe.Pointer, uint32, any, error) {
		return bufPtr(buf), buf.SetUint16(v), nil, nil
	},
}

var ub4Codec = attrCodec[uint32]{
	read: func(buf odpi.DataBuffer, _ uint32) (uint32, error) {
		return buf.Uint32(), nil
	},
	write: func(buf *odpi.DataBuffer, v uint32) (unsafe.Pointer, uint32, any, error) {
		return bufPtr(buf), buf.SetUint32(v), nil, nil
	},
}

var ub8Codec = attrCodec[uint64]{
	read: func(buf odpi.DataBuffer, _ uint32) (uint64, error) {
		return buf.Uint64(), nil
	},
	write: func(buf *odpi.DataBuffer, v uint64) (unsafe.Pointer, uint32, any, error) {
		return bufPtr(buf), buf.SetUint64(v), nil, nil
	},
}

// boolCodec transfers booleans in the native ub1 0/1 encoding.
var boolCodec = attrCodec[bool]{
	read: func(buf odpi.DataBuffer, _ uint32) (bool, error) {
		return buf.Uint8() != 0, nil
	},
	write: func(buf *odpi.DataBuffer, v bool) (unsafe.Pointer, uint32, any, error) {
		var n uint8
		if v {
			n = 1
		}
		return bufPtr(buf), buf.SetUint8(n), nil, nil
	},
}

// textCodec transfers counted character data. On read the native layer
// stores a pointer to its own buffer; on write the payload pointer aims at
// the first character and the caller keeps the bytes alive for the call.
var textCodec = attrCodec[string]{
	read: func(buf odpi.DataBuffer, length uint32) (string, error) {
		p := buf.Pointer()
		if p == nil || length == 0 {
			return "", nil
		}
		return string(unsafe.Slice((*byte)(p), length)), nil
	},
	write: func(_ *odpi.DataBuffer, v string) (unsafe.Pointer, uint32, any, error) {
		if v == "" {
			return nil, 0, nil, nil
		}
		b := []byte(v)
		return unsafe.Pointer(&b[0]), uint32(len(b)), b, nil
	},
}

var binaryCodec = attrCodec[[]byte]{
	read: func(buf odpi.DataBuffer, length uint32) ([]byte, error) {
		p := buf.Pointer()
		if p == nil || length == 0 {
			return nil, nil
		}
		out := make([]byte, length)
		copy(out, unsafe.Slice((*byte)(p), length))
		return out, nil
	},
	write: func(_ *odpi.DataBuffer, v []byte) (unsafe.Pointer, uint32, any, error) {
		if len(v) == 0 {
			return nil, 0, nil, nil
		}
		return unsafe.Pointer(&v[0]), uint32(len(v)), v, nil
	},
}

// durationUsecCodec reads a ub8 microsecond counter as a time.Duration.
// The native layer exposes no write form for these counters.
var durationUsecCodec = attrCodec[time.Duration]{
	read: func(buf odpi.DataBuffer, _ uint32) (time.Duration, error) {
		return time.Duration(buf.Uint64()) * time.Microsecond, nil
	},
}

var maxStringSizeCodec = attrCodec[MaxStringSize]{
	read: func(buf odpi.DataBuffer, _ uint32) (MaxStringSize, error) {
		switch n := buf.Uint8(); n {
		case 1:
			return MaxStringSizeStandard, nil
		case 2:
			return MaxStringSizeExtended, nil
		default:
			return 0, newInternal("unexpected max string size number %d", n)
		}
	},
}

// ConnAttr identifies one connection-scoped OCI attribute: its numeric
// code, the handle it is defined against and the payload representation.
type ConnAttr[T any] struct {
	HandleType uint32
	Code       uint32
	name       string
	readOnly   bool
	codec      attrCodec[T]
}

// StmtAttr identifies one statement-scoped OCI attribute.
type StmtAttr[T any] struct {
	Code     uint32
	name     string
	readOnly bool
	codec    attrCodec[T]
}

// ConnAttrHandle grants attribute access to a connection's native handles.
// It is constructed by the driver layer, which owns the handles.
type ConnAttrHandle struct {
	api  *odpi.ODPI
	conn odpi.Conn
}

// NewConnAttrHandle wraps a connection for attribute access.
func NewConnAttrHandle(api *odpi.ODPI, conn odpi.Conn) ConnAttrHandle {
	return ConnAttrHandle{api: api, conn: conn}
}

// StmtAttrHandle grants attribute access to a statement's native handle.
type StmtAttrHandle struct {
	api  *odpi.ODPI
	stmt odpi.Stmt
}

// NewStmtAttrHandle wraps a statement for attribute access.
func NewStmtAttrHandle(api *odpi.ODPI, stmt odpi.Stmt) StmtAttrHandle {
	return StmtAttrHandle{api: api, stmt: stmt}
}

// GetConnAttr reads a typed connection attribute.
func GetConnAttr[T any](h ConnAttrHandle, attr ConnAttr[T]) (T, error) {
	var zero T
	buf, length, err := h.api.GetConnOciAttr(h.conn, attr.HandleType, attr.Code)
	if err != nil {
		return zero, wrapNative(err)
	}
	return attr.codec.read(buf, length)
}

// SetConnAttr writes a typed connection attribute. Writing a read-only
// attribute fails with a not-implemented error.
func SetConnAttr[T any](h ConnAttrHandle, attr ConnAttr[T], value T) error {
	if attr.readOnly || attr.codec.write == nil {
		return newNotImplemented("writing " + attr.name)
	}
	var buf odpi.DataBuffer
	ptr, length, ref, err := attr.codec.write(&buf, value)
	if err != nil {
		return err
	}
	err = h.api.SetConnOciAttr(h.conn, attr.HandleType, attr.Code, ptr, length)
	runtime.KeepAlive(ref)
	runtime.KeepAlive(&buf)
	return wrapNative(err)
}

// GetStmtAttr reads a typed statement attribute.
func GetStmtAttr[T any](h StmtAttrHandle, attr StmtAttr[T]) (T, error) {
	var zero T
	buf, length, err := h.api.GetStmtOciAttr(h.stmt, attr.Code)
	if err != nil {
		return zero, wrapNative(err)
	}
	return attr.codec.read(buf, length)
}

// SetStmtAttr writes a typed statement attribute. Writing a read-only
// attribute fails with a not-implemented error.
func SetStmtAttr[T any](h StmtAttrHandle, attr StmtAttr[T], value T) error {
	if attr.readOnly || attr.codec.write == nil {
		return newNotImplemented("writing " + attr.name)
	}
	var buf odpi.DataBuffer
	ptr, length, ref, err := attr.codec.write(&buf, value)
	if err != nil {
		return err
	}
	err = h.api.SetStmtOciAttr(h.stmt, attr.Code, ptr, length)
	runtime.KeepAlive(ref)
	runtime.KeepAlive(&buf)
	return wrapNative(err)
}

// Predefined attributes. The codes are OCI attribute numbers; each is bound
// to the handle type OCI defines it on.
var (
	// AttrCallTime is the server-side elapsed time of the last call, in
	// microseconds, collected only while AttrCollectCallTime is enabled.
	AttrCallTime = ConnAttr[time.Duration]{
		HandleType: HandleSession,
		Code:       370,
		name:       "OCI_ATTR_CALL_TIME",
		readOnly:   true,
		codec:      durationUsecCodec,
	}

	// AttrCollectCallTime enables collection of AttrCallTime.
	AttrCollectCallTime = ConnAttr[bool]{
		HandleType: HandleSession,
		Code:       369,
		name:       "OCI_ATTR_COLLECT_CALL_TIME",
		codec:      boolCodec,
	}

	// AttrDefaultLobPrefetchSize is the default LOB prefetch size for the
	// session, in bytes.
	AttrDefaultLobPrefetchSize = ConnAttr[uint32]{
		HandleType: HandleSession,
		Code:       438,
		name:       "OCI_ATTR_DEFAULT_LOBPREFETCH_SIZE",
		codec:      ub4Codec,
	}

	// AttrMaxOpenCursors is the maximum number of open cursors the session
	// allows, as reported by the server.
	AttrMaxOpenCursors = ConnAttr[uint32]{
		HandleType: HandleSvcCtx,
		Code:       471,
		name:       "OCI_ATTR_MAX_OPEN_CURSORS",
		readOnly:   true,
		codec:      ub4Codec,
	}

	// AttrTransactionInProgress reports whether the connection has an
	// active transaction.
	AttrTransactionInProgress = ConnAttr[bool]{
		HandleType: HandleSvcCtx,
		Code:       484,
		name:       "OCI_ATTR_TRANSACTION_IN_PROGRESS",
		readOnly:   true,
		codec:      boolCodec,
	}

	// AttrVarTypeMaxLenCompat is the database's MAX_STRING_SIZE setting.
	AttrVarTypeMaxLenCompat = ConnAttr[MaxStringSize]{
		HandleType: HandleSvcCtx,
		Code:       489,
		name:       "OCI_ATTR_VARTYPE_MAXLEN_COMPAT",
		readOnly:   true,
		codec:      maxStringSizeCodec,
	}

	// AttrSqlFnCode is the SQL function code of the last executed statement.
	AttrSqlFnCode = StmtAttr[uint16]{
		Code:     10,
		name:     "OCI_ATTR_SQLFNCODE",
		readOnly: true,
		codec:    ub2Codec,
	}

	// AttrStatementText is the text of the prepared statement.
	AttrStatementText = StmtAttr[string]{
		Code:     144,
		name:     "OCI_ATTR_STATEMENT",
		readOnly: true,
		codec:    textCodec,
	}

	// AttrModule is the end-to-end tracing module name for the session.
	AttrModule = ConnAttr[string]{
		HandleType: HandleSession,
		Code:       366,
		name:       "OCI_ATTR_MODULE",
		codec:      textCodec,
	}

	// AttrAction is the end-to-end tracing action name for the session.
	AttrAction = ConnAttr[string]{
		HandleType: HandleSession,
		Code:       367,
		name:       "OCI_ATTR_ACTION",
		codec:      textCodec,
	}

	// AttrClientInfo is the end-to-end tracing client info for the session.
	AttrClientInfo = ConnAttr[string]{
		HandleType: HandleSession,
		Code:       368,
		name:       "OCI_ATTR_CLIENT_INFO",
		codec:      textCodec,
	}
)
