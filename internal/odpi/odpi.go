package odpi

import (
	"fmt"
	"unsafe"
)

// ODPI-C version this binding is written against.
const (
	MajorVersion = 5
	MinorVersion = 4
)

// ODPI represents a loaded ODPI-C library with registered entry points.
//
// The function fields are populated from the shared library by New. Tests
// exercise the higher-level wrappers against hand-built instances whose
// fields are Go closures, the same way the native library would drive them.
type ODPI struct {
	lib *Library
	ctx Context

	// Context functions
	ContextCreate   func(major int, minor int, params unsafe.Pointer, ctx *Context, errInfo *ErrorInfo) int32
	ContextDestroy  func(ctx Context) int32
	ContextGetError func(ctx Context, errInfo *ErrorInfo)

	// Connection functions
	ConnCreate      func(ctx Context, user unsafe.Pointer, userLen uint32, pass unsafe.Pointer, passLen uint32, connStr unsafe.Pointer, connStrLen uint32, commonParams unsafe.Pointer, connParams unsafe.Pointer, conn *Conn) int32
	ConnRelease     func(conn Conn) int32
	ConnCommit      func(conn Conn) int32
	ConnRollback    func(conn Conn) int32
	ConnPing        func(conn Conn) int32
	ConnPrepareStmt func(conn Conn, scrollable int32, sql unsafe.Pointer, sqlLen uint32, tag unsafe.Pointer, tagLen uint32, stmt *Stmt) int32

	// OCI attribute functions
	ConnGetOciAttr func(conn Conn, handleType uint32, attr uint32, value *DataBuffer, valueLen *uint32) int32
	ConnSetOciAttr func(conn Conn, handleType uint32, attr uint32, value unsafe.Pointer, valueLen uint32) int32
	StmtGetOciAttr func(stmt Stmt, attr uint32, value *DataBuffer, valueLen *uint32) int32
	StmtSetOciAttr func(stmt Stmt, attr uint32, value unsafe.Pointer, valueLen uint32) int32

	// Statement functions
	StmtExecute        func(stmt Stmt, mode uint32, numQueryColumns *uint32) int32
	StmtFetch          func(stmt Stmt, found *int32, bufferRowIndex *uint32) int32
	StmtGetRowCount    func(stmt Stmt, count *uint64) int32
	StmtGetQueryInfo   func(stmt Stmt, pos uint32, info *QueryInfo) int32
	StmtGetQueryValue  func(stmt Stmt, pos uint32, nativeTypeNum *uint32, data **Data) int32
	StmtBindValueByPos func(stmt Stmt, pos uint32, nativeTypeNum uint32, data *Data) int32
	StmtRelease        func(stmt Stmt) int32

	// Object (collection) functions
	ObjectGetFirstIndex           func(obj Object, index *int32, exists *int32) int32
	ObjectGetLastIndex            func(obj Object, index *int32, exists *int32) int32
	ObjectGetNextIndex            func(obj Object, index int32, next *int32, exists *int32) int32
	ObjectGetPrevIndex            func(obj Object, index int32, prev *int32, exists *int32) int32
	ObjectGetElementExistsByIndex func(obj Object, index int32, exists *int32) int32
	ObjectGetElementValueByIndex  func(obj Object, index int32, nativeTypeNum uint32, data *Data) int32
	ObjectSetElementValueByIndex  func(obj Object, index int32, nativeTypeNum uint32, data *Data) int32
	ObjectAppendElement           func(obj Object, nativeTypeNum uint32, data *Data) int32
	ObjectDeleteElementByIndex    func(obj Object, index int32) int32
	ObjectGetSize                 func(obj Object, size *int32) int32
	ObjectAddRef                  func(obj Object) int32
	ObjectRelease                 func(obj Object) int32

	// Object type functions
	ObjectTypeAddRef       func(objType ObjectType) int32
	ObjectTypeRelease      func(objType ObjectType) int32
	ObjectTypeCreateObject func(objType ObjectType, obj *Object) int32
}

// New loads the ODPI-C library, registers all required entry points and
// initializes the library context.
func New() (*ODPI, error) {
	lib, err := LoadLibrary()
	if err != nil {
		return nil, err
	}

	d := &ODPI{lib: lib}
	if err := d.registerFunctions(); err != nil {
		_ = lib.Close() // Library closing errors not critical in error path
		return nil, err
	}

	var errInfo ErrorInfo
	if d.ContextCreate(MajorVersion, MinorVersion, nil, &d.ctx, &errInfo) != Success {
		_ = lib.Close()
		return nil, &NativeError{
			Code:    errInfo.Code,
			Message: goString(errInfo.Message, errInfo.MessageLength),
			FnName:  "dpiContext_createWithParams",
		}
	}
	return d, nil
}

// Close destroys the library context and unloads the library.
func (d *ODPI) Close() error {
	if d.ctx != 0 && d.ContextDestroy != nil {
		d.ContextDestroy(d.ctx)
		d.ctx = 0
	}
	if d.lib != nil {
		return d.lib.Close()
	}
	return nil
}

// registerFunctions registers all ODPI-C entry points used by the binding.
func (d *ODPI) registerFunctions() error {
	funcs := []struct {
		fn   interface{}
		name string
	}{
		{&d.ContextCreate, "dpiContext_createWithParams"},
		{&d.ContextDestroy, "dpiContext_destroy"},
		{&d.ContextGetError, "dpiContext_getError"},

		{&d.ConnCreate, "dpiConn_create"},
		{&d.ConnRelease, "dpiConn_release"},
		{&d.ConnCommit, "dpiConn_commit"},
		{&d.ConnRollback, "dpiConn_rollback"},
		{&d.ConnPing, "dpiConn_ping"},
		{&d.ConnPrepareStmt, "dpiConn_prepareStmt"},

		{&d.ConnGetOciAttr, "dpiConn_getOciAttr"},
		{&d.ConnSetOciAttr, "dpiConn_setOciAttr"},
		{&d.StmtGetOciAttr, "dpiStmt_getOciAttr"},
		{&d.StmtSetOciAttr, "dpiStmt_setOciAttr"},

		{&d.StmtExecute, "dpiStmt_execute"},
		{&d.StmtFetch, "dpiStmt_fetch"},
		{&d.StmtGetRowCount, "dpiStmt_getRowCount"},
		{&d.StmtGetQueryInfo, "dpiStmt_getQueryInfo"},
		{&d.StmtGetQueryValue, "dpiStmt_getQueryValue"},
		{&d.StmtBindValueByPos, "dpiStmt_bindValueByPos"},
		{&d.StmtRelease, "dpiStmt_release"},

		{&d.ObjectGetFirstIndex, "dpiObject_getFirstIndex"},
		{&d.ObjectGetLastIndex, "dpiObject_getLastIndex"},
		{&d.ObjectGetNextIndex, "dpiObject_getNextIndex"},
		{&d.ObjectGetPrevIndex, "dpiObject_getPrevIndex"},
		{&d.ObjectGetElementExistsByIndex, "dpiObject_getElementExistsByIndex"},
		{&d.ObjectGetElementValueByIndex, "dpiObject_getElementValueByIndex"},
		{&d.ObjectSetElementValueByIndex, "dpiObject_setElementValueByIndex"},
		{&d.ObjectAppendElement, "dpiObject_appendElement"},
		{&d.ObjectDeleteElementByIndex, "dpiObject_deleteElementByIndex"},
		{&d.ObjectGetSize, "dpiObject_getSize"},
		{&d.ObjectAddRef, "dpiObject_addRef"},
		{&d.ObjectRelease, "dpiObject_release"},

		{&d.ObjectTypeAddRef, "dpiObjectType_addRef"},
		{&d.ObjectTypeRelease, "dpiObjectType_release"},
		{&d.ObjectTypeCreateObject, "dpiObjectType_createObject"},
	}
	for _, f := range funcs {
		if err := d.lib.RegisterFunc(f.fn, f.name); err != nil {
			return fmt.Errorf("failed to register %s: %w", f.name, err)
		}
	}
	return nil
}

// NativeError is an error reported by the ODPI-C layer.
type NativeError struct {
	Code    int32
	Message string
	FnName  string
	Action  string
}

func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ODPI-C error in %s", e.FnName)
	}
	return e.Message
}

// lastError retrieves the most recent error from the library context.
func (d *ODPI) lastError(fnName string) error {
	if d.ContextGetError == nil || d.ctx == 0 {
		return &NativeError{FnName: fnName, Message: "unknown ODPI-C error"}
	}
	var info ErrorInfo
	d.ContextGetError(d.ctx, &info)
	return &NativeError{
		Code:    info.Code,
		Message: goString(info.Message, info.MessageLength),
		FnName:  goString(info.FnName, uint32(cStrLen(info.FnName))),
		Action:  goString(info.Action, uint32(cStrLen(info.Action))),
	}
}

// cStrLen measures a nul-terminated native string.
func cStrLen(p unsafe.Pointer) int {
	if p == nil {
		return 0
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return n
}
