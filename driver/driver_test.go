package driver

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"

	oradb "github.com/connerohnesorge/oradb-go"
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		in                         string
		user, password, connString string
		wantErr                    bool
	}{
		{"scott/tiger@localhost/XEPDB1", "scott", "tiger", "localhost/XEPDB1", false},
		{"scott/tiger@tns_alias", "scott", "tiger", "tns_alias", false},
		{"scott/pw@host:1521/svc", "scott", "pw", "host:1521/svc", false},
		{"scott@db", "", "", "", true},
		{"scott/tiger", "", "", "", true},
		{"", "", "", "", true},
		{"/pw@db", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			user, password, connString, err := parseDSN(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got err %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if user != tt.user || password != tt.password || connString != tt.connString {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)",
					user, password, connString, tt.user, tt.password, tt.connString)
			}
		})
	}
}

func TestValuesToNamedValues(t *testing.T) {
	named := valuesToNamedValues([]driver.Value{int64(1), "two"})
	if len(named) != 2 {
		t.Fatalf("got %d values, want 2", len(named))
	}
	if named[0].Ordinal != 1 || named[1].Ordinal != 2 {
		t.Errorf("ordinals = %d, %d, want 1, 2", named[0].Ordinal, named[1].Ordinal)
	}
	if named[1].Value != "two" {
		t.Errorf("value = %v, want \"two\"", named[1].Value)
	}
}

func TestBindArgsNulls(t *testing.T) {
	var bound []*odpi.Data
	api := &odpi.ODPI{
		StmtBindValueByPos: func(_ odpi.Stmt, pos uint32, _ uint32, data *odpi.Data) int32 {
			if int(pos) != len(bound)+1 {
				t.Errorf("bound position %d out of order", pos)
			}
			bound = append(bound, data)
			return odpi.Success
		},
	}
	s := &Stmt{conn: &Conn{api: api}, stmt: 1}
	args := []driver.NamedValue{
		{Ordinal: 1, Value: nil},
		{Ordinal: 2, Value: oradb.OracleType{ID: oradb.TypeDate}},
		{Ordinal: 3, Value: int64(7)},
	}
	if err := s.bindArgs(args); err != nil {
		t.Fatalf("bindArgs: %v", err)
	}
	if len(bound) != 3 {
		t.Fatalf("bound %d parameters, want 3", len(bound))
	}
	if bound[0].IsNull == 0 {
		t.Error("nil argument should bind as null")
	}
	if bound[1].IsNull == 0 {
		t.Error("bare OracleType argument should bind as a typed null")
	}
	if bound[2].IsNull != 0 {
		t.Error("int64 argument should not bind as null")
	}
}

func TestBeginTxIsolationLevels(t *testing.T) {
	c := &Conn{api: &odpi.ODPI{}}

	// Levels 0 (driver default) and 2 (read committed) need no SET
	// TRANSACTION and must not touch the native layer.
	for _, level := range []driver.IsolationLevel{0, 2} {
		tx, err := c.BeginTx(context.Background(), driver.TxOptions{Isolation: level})
		if err != nil || tx == nil {
			t.Errorf("level %d: got (%v, %v)", level, tx, err)
		}
	}
	if _, err := c.BeginTx(context.Background(), driver.TxOptions{Isolation: 4}); err == nil {
		t.Error("level 4 (repeatable read) should be rejected")
	}
}

func newSlot(t *testing.T, oratype oradb.OracleType, set func(*oradb.Value) error) *oradb.Value {
	t.Helper()
	v, err := oradb.NewValue(oratype)
	if err != nil {
		t.Fatal(err)
	}
	if err := set(v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestToDriverValue(t *testing.T) {
	intType := oradb.OracleType{ID: oradb.TypeInt64}
	v := newSlot(t, intType, func(v *oradb.Value) error { return v.SetInt64(42) })
	got, err := toDriverValue(v, intType)
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(42) {
		t.Errorf("int: got %v (%T), want 42", got, got)
	}

	nullSlot := newSlot(t, intType, func(*oradb.Value) error { return nil })
	got, err = toDriverValue(nullSlot, intType)
	if err != nil || got != nil {
		t.Errorf("null: got (%v, %v), want (nil, nil)", got, err)
	}

	tsType := oradb.OracleType{ID: oradb.TypeTimestampTZ, FsPrec: 6}
	when := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	v = newSlot(t, tsType, func(v *oradb.Value) error {
		return v.SetTimestamp(oradb.TimestampFromGoTime(when))
	})
	got, err = toDriverValue(v, tsType)
	if err != nil {
		t.Fatal(err)
	}
	if tm, ok := got.(time.Time); !ok || !tm.Equal(when) {
		t.Errorf("timestamp: got %v (%T), want %v", got, got, when)
	}

	rawType := oradb.OracleType{ID: oradb.TypeRaw, Size: 16}
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	v = newSlot(t, rawType, func(v *oradb.Value) error { return v.Set(u) })
	got, err = toDriverValue(v, rawType)
	if err != nil {
		t.Fatal(err)
	}
	if got != u.String() {
		t.Errorf("raw(16): got %v, want %s", got, u)
	}

	floatType := oradb.OracleType{ID: oradb.TypeBinaryFloat}
	v = newSlot(t, floatType, func(v *oradb.Value) error { return v.SetFloat64(1.5) })
	got, err = toDriverValue(v, floatType)
	if err != nil {
		t.Fatal(err)
	}
	if got != float64(1.5) {
		t.Errorf("binary_float: got %v (%T), want 1.5 (float64)", got, got)
	}
}

func TestRowsColumnMetadata(t *testing.T) {
	r := &Rows{cols: []column{
		{name: "ID", oratype: oradb.OracleType{ID: oradb.TypeNumber, Precision: 10, Scale: 2}, nullOK: false},
		{name: "NAME", oratype: oradb.OracleType{ID: oradb.TypeVarchar2, Size: 40}, nullOK: true},
		{name: "BORN", oratype: oradb.OracleType{ID: oradb.TypeTimestampTZ, FsPrec: 6}, nullOK: true},
	}}

	cols := r.Columns()
	if len(cols) != 3 || cols[0] != "ID" || cols[2] != "BORN" {
		t.Errorf("Columns = %v", cols)
	}

	if name := r.ColumnTypeDatabaseTypeName(1); name != "VARCHAR2(40)" {
		t.Errorf("ColumnTypeDatabaseTypeName(1) = %q", name)
	}
	if length, ok := r.ColumnTypeLength(1); !ok || length != 40 {
		t.Errorf("ColumnTypeLength(1) = (%d, %v)", length, ok)
	}
	if _, ok := r.ColumnTypeLength(0); ok {
		t.Error("ColumnTypeLength on NUMBER should report not ok")
	}
	if prec, scale, ok := r.ColumnTypePrecisionScale(0); !ok || prec != 10 || scale != 2 {
		t.Errorf("ColumnTypePrecisionScale(0) = (%d, %d, %v)", prec, scale, ok)
	}
	if nullable, ok := r.ColumnTypeNullable(0); !ok || nullable {
		t.Errorf("ColumnTypeNullable(0) = (%v, %v)", nullable, ok)
	}
	if typ := r.ColumnTypeScanType(2); typ != nil && typ.String() != "time.Time" {
		t.Errorf("ColumnTypeScanType(2) = %v", typ)
	}
	if name := r.ColumnTypeDatabaseTypeName(9); name != "" {
		t.Errorf("out of range column name = %q", name)
	}
}
