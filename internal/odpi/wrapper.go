package odpi

import "unsafe"

// High-level wrappers over the raw ODPI-C entry points. Each wrapper turns
// the C-style status/out-parameter calling convention into Go return values
// and surfaces native failures through lastError.

// Connect creates a standalone connection.
func (d *ODPI) Connect(user, password, connString string) (Conn, error) {
	var conn Conn
	if d.ConnCreate(d.ctx,
		toPtr(user), uint32(len(user)),
		toPtr(password), uint32(len(password)),
		toPtr(connString), uint32(len(connString)),
		nil, nil, &conn) != Success {
		return 0, d.lastError("dpiConn_create")
	}
	return conn, nil
}

// ReleaseConn releases a connection handle.
func (d *ODPI) ReleaseConn(conn Conn) error {
	if conn != 0 && d.ConnRelease(conn) != Success {
		return d.lastError("dpiConn_release")
	}
	return nil
}

// Commit commits the current transaction.
func (d *ODPI) Commit(conn Conn) error {
	if d.ConnCommit(conn) != Success {
		return d.lastError("dpiConn_commit")
	}
	return nil
}

// Rollback rolls back the current transaction.
func (d *ODPI) Rollback(conn Conn) error {
	if d.ConnRollback(conn) != Success {
		return d.lastError("dpiConn_rollback")
	}
	return nil
}

// Ping checks that the connection is still alive.
func (d *ODPI) Ping(conn Conn) error {
	if d.ConnPing(conn) != Success {
		return d.lastError("dpiConn_ping")
	}
	return nil
}

// PrepareStmt prepares a SQL statement.
func (d *ODPI) PrepareStmt(conn Conn, sql string) (Stmt, error) {
	var stmt Stmt
	if d.ConnPrepareStmt(conn, 0, toPtr(sql), uint32(len(sql)), nil, 0, &stmt) != Success {
		return 0, d.lastError("dpiConn_prepareStmt")
	}
	return stmt, nil
}

// Execute executes a prepared statement and returns the number of query
// columns (zero for non-queries).
func (d *ODPI) Execute(stmt Stmt, mode uint32) (uint32, error) {
	var numCols uint32
	if d.StmtExecute(stmt, mode, &numCols) != Success {
		return 0, d.lastError("dpiStmt_execute")
	}
	return numCols, nil
}

// Fetch advances to the next row. found is false once the result set is
// exhausted.
func (d *ODPI) Fetch(stmt Stmt) (found bool, bufferRowIndex uint32, err error) {
	var f int32
	if d.StmtFetch(stmt, &f, &bufferRowIndex) != Success {
		return false, 0, d.lastError("dpiStmt_fetch")
	}
	return f != 0, bufferRowIndex, nil
}

// RowCount returns the number of rows affected or fetched so far.
func (d *ODPI) RowCount(stmt Stmt) (uint64, error) {
	var count uint64
	if d.StmtGetRowCount(stmt, &count) != Success {
		return 0, d.lastError("dpiStmt_getRowCount")
	}
	return count, nil
}

// ColumnInfo is the per-column type descriptor reported by the native layer.
type ColumnInfo struct {
	Name                 string
	OracleTypeNum        uint32
	DefaultNativeTypeNum uint32
	DBSizeInBytes        uint32
	SizeInChars          uint32
	Precision            int16
	Scale                int8
	FsPrecision          uint8
	NullOK               bool
	ObjectType           ObjectType
}

// QueryColumnInfo returns the type descriptor for a query column
// (1-based position).
func (d *ODPI) QueryColumnInfo(stmt Stmt, pos uint32) (ColumnInfo, error) {
	var info QueryInfo
	if d.StmtGetQueryInfo(stmt, pos, &info) != Success {
		return ColumnInfo{}, d.lastError("dpiStmt_getQueryInfo")
	}
	return ColumnInfo{
		Name:                 goString(info.Name, info.NameLength),
		OracleTypeNum:        info.TypeInfo.OracleTypeNum,
		DefaultNativeTypeNum: info.TypeInfo.DefaultNativeTypeNum,
		DBSizeInBytes:        info.TypeInfo.DBSizeInBytes,
		SizeInChars:          info.TypeInfo.SizeInChars,
		Precision:            info.TypeInfo.Precision,
		Scale:                info.TypeInfo.Scale,
		FsPrecision:          info.TypeInfo.FsPrecision,
		NullOK:               info.NullOK != 0,
		ObjectType:           info.TypeInfo.ObjectType,
	}, nil
}

// QueryValue returns the native type and data buffer of a column in the
// current fetched row (1-based position). The buffer is owned by the
// statement and valid until the next fetch.
func (d *ODPI) QueryValue(stmt Stmt, pos uint32) (uint32, *Data, error) {
	var nativeTypeNum uint32
	var data *Data
	if d.StmtGetQueryValue(stmt, pos, &nativeTypeNum, &data) != Success {
		return 0, nil, d.lastError("dpiStmt_getQueryValue")
	}
	return nativeTypeNum, data, nil
}

// BindValue binds a data buffer to a statement placeholder (1-based
// position).
func (d *ODPI) BindValue(stmt Stmt, pos uint32, nativeTypeNum uint32, data *Data) error {
	if d.StmtBindValueByPos(stmt, pos, nativeTypeNum, data) != Success {
		return d.lastError("dpiStmt_bindValueByPos")
	}
	return nil
}

// ReleaseStmt releases a statement handle.
func (d *ODPI) ReleaseStmt(stmt Stmt) error {
	if stmt != 0 && d.StmtRelease(stmt) != Success {
		return d.lastError("dpiStmt_release")
	}
	return nil
}

// GetConnOciAttr reads a raw OCI attribute value from a connection-scoped
// handle.
func (d *ODPI) GetConnOciAttr(conn Conn, handleType uint32, attr uint32) (DataBuffer, uint32, error) {
	var buf DataBuffer
	var length uint32
	if d.ConnGetOciAttr(conn, handleType, attr, &buf, &length) != Success {
		return DataBuffer{}, 0, d.lastError("dpiConn_getOciAttr")
	}
	return buf, length, nil
}

// SetConnOciAttr writes a raw OCI attribute value on a connection-scoped
// handle. value points at the attribute payload itself: the scalar or the
// first character of a text value.
func (d *ODPI) SetConnOciAttr(conn Conn, handleType uint32, attr uint32, value unsafe.Pointer, length uint32) error {
	if d.ConnSetOciAttr(conn, handleType, attr, value, length) != Success {
		return d.lastError("dpiConn_setOciAttr")
	}
	return nil
}

// GetStmtOciAttr reads a raw OCI attribute value from a statement handle.
func (d *ODPI) GetStmtOciAttr(stmt Stmt, attr uint32) (DataBuffer, uint32, error) {
	var buf DataBuffer
	var length uint32
	if d.StmtGetOciAttr(stmt, attr, &buf, &length) != Success {
		return DataBuffer{}, 0, d.lastError("dpiStmt_getOciAttr")
	}
	return buf, length, nil
}

// SetStmtOciAttr writes a raw OCI attribute value on a statement handle.
// value points at the attribute payload itself.
func (d *ODPI) SetStmtOciAttr(stmt Stmt, attr uint32, value unsafe.Pointer, length uint32) error {
	if d.StmtSetOciAttr(stmt, attr, value, length) != Success {
		return d.lastError("dpiStmt_setOciAttr")
	}
	return nil
}

// FirstIndex returns the first occupied index of a collection. exists is
// false when the collection is empty.
func (d *ODPI) FirstIndex(obj Object) (int32, bool, error) {
	var index, exists int32
	if d.ObjectGetFirstIndex(obj, &index, &exists) != Success {
		return 0, false, d.lastError("dpiObject_getFirstIndex")
	}
	return index, exists != 0, nil
}

// LastIndex returns the last occupied index of a collection. exists is
// false when the collection is empty.
func (d *ODPI) LastIndex(obj Object) (int32, bool, error) {
	var index, exists int32
	if d.ObjectGetLastIndex(obj, &index, &exists) != Success {
		return 0, false, d.lastError("dpiObject_getLastIndex")
	}
	return index, exists != 0, nil
}

// NextIndex returns the next occupied index after index. exists is false
// when there is none.
func (d *ODPI) NextIndex(obj Object, index int32) (int32, bool, error) {
	var next, exists int32
	if d.ObjectGetNextIndex(obj, index, &next, &exists) != Success {
		return 0, false, d.lastError("dpiObject_getNextIndex")
	}
	return next, exists != 0, nil
}

// PrevIndex returns the previous occupied index before index. exists is
// false when there is none.
func (d *ODPI) PrevIndex(obj Object, index int32) (int32, bool, error) {
	var prev, exists int32
	if d.ObjectGetPrevIndex(obj, index, &prev, &exists) != Success {
		return 0, false, d.lastError("dpiObject_getPrevIndex")
	}
	return prev, exists != 0, nil
}

// ElementExists reports whether an element occupies the given index.
func (d *ODPI) ElementExists(obj Object, index int32) (bool, error) {
	var exists int32
	if d.ObjectGetElementExistsByIndex(obj, index, &exists) != Success {
		return false, d.lastError("dpiObject_getElementExistsByIndex")
	}
	return exists != 0, nil
}

// ElementValue reads the element at index into data using the given
// native type.
func (d *ODPI) ElementValue(obj Object, index int32, nativeTypeNum uint32, data *Data) error {
	if d.ObjectGetElementValueByIndex(obj, index, nativeTypeNum, data) != Success {
		return d.lastError("dpiObject_getElementValueByIndex")
	}
	return nil
}

// SetElementValue writes data to the element at index using the given
// native type.
func (d *ODPI) SetElementValue(obj Object, index int32, nativeTypeNum uint32, data *Data) error {
	if d.ObjectSetElementValueByIndex(obj, index, nativeTypeNum, data) != Success {
		return d.lastError("dpiObject_setElementValueByIndex")
	}
	return nil
}

// AppendElement appends data to the end of a collection.
func (d *ODPI) AppendElement(obj Object, nativeTypeNum uint32, data *Data) error {
	if d.ObjectAppendElement(obj, nativeTypeNum, data) != Success {
		return d.lastError("dpiObject_appendElement")
	}
	return nil
}

// DeleteElement removes the element at index, leaving a hole in the
// collection's index space.
func (d *ODPI) DeleteElement(obj Object, index int32) error {
	if d.ObjectDeleteElementByIndex(obj, index) != Success {
		return d.lastError("dpiObject_deleteElementByIndex")
	}
	return nil
}

// CollectionSize returns the number of elements in a collection including
// deleted holes.
func (d *ODPI) CollectionSize(obj Object) (int32, error) {
	var size int32
	if d.ObjectGetSize(obj, &size) != Success {
		return 0, d.lastError("dpiObject_getSize")
	}
	return size, nil
}

// AddObjectRef increments the reference count of an object handle.
func (d *ODPI) AddObjectRef(obj Object) error {
	if d.ObjectAddRef(obj) != Success {
		return d.lastError("dpiObject_addRef")
	}
	return nil
}

// ReleaseObject decrements the reference count of an object handle.
func (d *ODPI) ReleaseObject(obj Object) error {
	if obj != 0 && d.ObjectRelease(obj) != Success {
		return d.lastError("dpiObject_release")
	}
	return nil
}

// AddObjectTypeRef increments the reference count of an object type handle.
func (d *ODPI) AddObjectTypeRef(objType ObjectType) error {
	if d.ObjectTypeAddRef(objType) != Success {
		return d.lastError("dpiObjectType_addRef")
	}
	return nil
}

// ReleaseObjectType decrements the reference count of an object type handle.
func (d *ODPI) ReleaseObjectType(objType ObjectType) error {
	if objType != 0 && d.ObjectTypeRelease(objType) != Success {
		return d.lastError("dpiObjectType_release")
	}
	return nil
}

// CreateObject creates a new object instance of the given type.
func (d *ODPI) CreateObject(objType ObjectType) (Object, error) {
	var obj Object
	if d.ObjectTypeCreateObject(objType, &obj) != Success {
		return 0, d.lastError("dpiObjectType_createObject")
	}
	return obj, nil
}
