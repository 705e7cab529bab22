package driver

import (
	"context"
	"database/sql/driver"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	oradb "github.com/connerohnesorge/oradb-go"
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// column is the per-column fetch descriptor built at execute time.
type column struct {
	name    string
	oratype oradb.OracleType
	nullOK  bool
}

// Rows implements the database/sql/driver.Rows interface
type Rows struct {
	api  *odpi.ODPI
	stmt odpi.Stmt
	cols []column
	ctx  context.Context

	// ownedStmt is set when the statement was prepared for this query only
	// and must be closed together with the rows.
	ownedStmt *Stmt
}

// Columns returns the column names
func (r *Rows) Columns() []string {
	names := make([]string, len(r.cols))
	for i, col := range r.cols {
		names[i] = col.name
	}
	return names
}

// Close closes the rows iterator
func (r *Rows) Close() error {
	if r.ownedStmt != nil {
		_ = r.ownedStmt.Close() // Closing errors are not critical during cleanup
		r.ownedStmt = nil
	}
	return nil
}

// Next populates the provided slice with the next row values
func (r *Rows) Next(dest []driver.Value) error {
	if r.ctx != nil {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}
	}

	found, _, err := r.api.Fetch(r.stmt)
	if err != nil {
		return err
	}
	if !found {
		return io.EOF
	}

	for i := range dest {
		if i >= len(r.cols) {
			return fmt.Errorf("destination has more columns than result")
		}
		_, data, err := r.api.QueryValue(r.stmt, uint32(i+1))
		if err != nil {
			return err
		}
		v, err := oradb.NewValueFromData(r.cols[i].oratype, data)
		if err != nil {
			return err
		}
		dest[i], err = toDriverValue(v, r.cols[i].oratype)
		if err != nil {
			return fmt.Errorf("column %q: %w", r.cols[i].name, err)
		}
	}
	return nil
}

// toDriverValue decodes a fetched slot into one of the driver.Value types.
// RAW(16) columns decode to a UUID, timestamps to time.Time and intervals
// to their canonical text form.
func toDriverValue(v *oradb.Value, oratype oradb.OracleType) (driver.Value, error) {
	if v.IsNull() {
		return nil, nil
	}
	if oratype.ID == oradb.TypeRaw && oratype.Size == 16 {
		u, err := v.UUID()
		if err == nil {
			return u.String(), nil
		}
	}
	var x any
	if err := v.Scan(&x); err != nil {
		return nil, err
	}
	switch val := x.(type) {
	case int64, float64, bool, []byte, string:
		return val, nil
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val), nil
		}
		return strconv.FormatUint(val, 10), nil
	case float32:
		return float64(val), nil
	case oradb.Timestamp:
		return val.GoTime(), nil
	case oradb.IntervalDS:
		return val.String(), nil
	case oradb.IntervalYM:
		return val.String(), nil
	default:
		return nil, fmt.Errorf("unsupported column value of type %T", x)
	}
}

// ColumnTypeDatabaseTypeName returns the database type name
func (r *Rows) ColumnTypeDatabaseTypeName(index int) string {
	if index < 0 || index >= len(r.cols) {
		return ""
	}
	return r.cols[index].oratype.String()
}

// ColumnTypeLength returns the column length
func (r *Rows) ColumnTypeLength(index int) (length int64, ok bool) {
	if index < 0 || index >= len(r.cols) {
		return 0, false
	}
	t := r.cols[index].oratype
	switch t.ID {
	case oradb.TypeVarchar2, oradb.TypeNVarchar2, oradb.TypeChar, oradb.TypeNChar, oradb.TypeRaw:
		return int64(t.Size), true
	}
	return 0, false
}

// ColumnTypeNullable returns whether the column can be null
func (r *Rows) ColumnTypeNullable(index int) (nullable, ok bool) {
	if index < 0 || index >= len(r.cols) {
		return false, false
	}
	return r.cols[index].nullOK, true
}

// ColumnTypePrecisionScale returns the precision and scale for NUMBER columns
func (r *Rows) ColumnTypePrecisionScale(index int) (precision, scale int64, ok bool) {
	if index < 0 || index >= len(r.cols) {
		return 0, 0, false
	}
	t := r.cols[index].oratype
	if t.ID == oradb.TypeNumber && t.Precision > 0 {
		return int64(t.Precision), int64(t.Scale), true
	}
	return 0, 0, false
}

// ColumnTypeScanType returns the Go type for scanning
func (r *Rows) ColumnTypeScanType(index int) reflect.Type {
	if index < 0 || index >= len(r.cols) {
		return nil
	}
	t := r.cols[index].oratype
	switch t.ID {
	case oradb.TypeInt64:
		return reflect.TypeOf(int64(0))
	case oradb.TypeUInt64:
		return reflect.TypeOf(uint64(0))
	case oradb.TypeBinaryFloat:
		return reflect.TypeOf(float32(0))
	case oradb.TypeBinaryDouble:
		return reflect.TypeOf(float64(0))
	case oradb.TypeBoolean:
		return reflect.TypeOf(false)
	case oradb.TypeRaw, oradb.TypeLongRaw, oradb.TypeBLOB:
		if t.ID == oradb.TypeRaw && t.Size == 16 {
			return reflect.TypeOf(uuid.UUID{})
		}
		return reflect.TypeOf([]byte(nil))
	case oradb.TypeDate, oradb.TypeTimestamp, oradb.TypeTimestampTZ, oradb.TypeTimestampLTZ:
		return reflect.TypeOf(time.Time{})
	case oradb.TypeIntervalDS:
		return reflect.TypeOf(oradb.IntervalDS{})
	case oradb.TypeIntervalYM:
		return reflect.TypeOf(oradb.IntervalYM{})
	default:
		return reflect.TypeOf("")
	}
}
