package driver

import (
	"context"
	"database/sql/driver"
	"fmt"

	oradb "github.com/connerohnesorge/oradb-go"
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// Stmt implements the database/sql/driver.Stmt interface
type Stmt struct {
	conn   *Conn
	stmt   odpi.Stmt
	query  string
	closed bool

	// binds keeps the encoded parameter slots alive until execution.
	binds []*oradb.Value
}

// Close closes the statement
func (s *Stmt) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.api.ReleaseStmt(s.stmt)
}

// NumInput returns the number of placeholder parameters. The native layer
// does not report a count before execution, so it is unknown.
func (s *Stmt) NumInput() int {
	return -1
}

// CheckNamedValue accepts every type the value layer can encode.
func (s *Stmt) CheckNamedValue(nv *driver.NamedValue) error {
	return s.conn.CheckNamedValue(nv)
}

// bindArgs encodes each argument into a typed slot and binds the slot's
// buffer to its placeholder.
func (s *Stmt) bindArgs(args []driver.NamedValue) error {
	s.binds = s.binds[:0]
	for _, arg := range args {
		oratype, err := oradb.DefaultOracleType(arg.Value)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", arg.Ordinal, err)
		}
		v, err := oradb.NewValue(oratype)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", arg.Ordinal, err)
		}
		if err := v.Set(arg.Value); err != nil {
			return fmt.Errorf("parameter %d: %w", arg.Ordinal, err)
		}
		if err := s.conn.api.BindValue(s.stmt, uint32(arg.Ordinal), v.NativeTypeNum(), v.Data()); err != nil {
			return fmt.Errorf("failed to bind parameter %d: %w", arg.Ordinal, err)
		}
		s.binds = append(s.binds, v)
	}
	return nil
}

// Exec executes a statement that doesn't return rows
func (s *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), valuesToNamedValues(args))
}

// ExecContext executes a statement with context
func (s *Stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := s.bindArgs(args); err != nil {
		return nil, err
	}
	if _, err := s.conn.api.Execute(s.stmt, odpi.ModeExecDefault); err != nil {
		return nil, err
	}
	count, err := s.conn.api.RowCount(s.stmt)
	if err != nil {
		return nil, err
	}
	return &Result{rowsAffected: int64(count)}, nil
}

// Query executes a query that returns rows
func (s *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), valuesToNamedValues(args))
}

// QueryContext executes a query with context
func (s *Stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	return s.queryContext(ctx, args, false)
}

func (s *Stmt) queryContext(ctx context.Context, args []driver.NamedValue, ownStmt bool) (driver.Rows, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := s.bindArgs(args); err != nil {
		return nil, err
	}
	numCols, err := s.conn.api.Execute(s.stmt, odpi.ModeExecDefault)
	if err != nil {
		return nil, err
	}

	cols := make([]column, numCols)
	for i := uint32(0); i < numCols; i++ {
		info, err := s.conn.api.QueryColumnInfo(s.stmt, i+1)
		if err != nil {
			return nil, err
		}
		oratype, err := oradb.OracleTypeFromColumnInfo(info)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", info.Name, err)
		}
		cols[i] = column{name: info.Name, oratype: oratype, nullOK: info.NullOK}
	}

	r := &Rows{
		api:  s.conn.api,
		stmt: s.stmt,
		cols: cols,
		ctx:  ctx,
	}
	if ownStmt {
		r.ownedStmt = s
	}
	return r, nil
}

// AttrHandle exposes the statement for typed OCI attribute access.
func (s *Stmt) AttrHandle() oradb.StmtAttrHandle {
	return oradb.NewStmtAttrHandle(s.conn.api, s.stmt)
}

// valuesToNamedValues converts []driver.Value to []driver.NamedValue
func valuesToNamedValues(args []driver.Value) []driver.NamedValue {
	named := make([]driver.NamedValue, len(args))
	for i, arg := range args {
		named[i] = driver.NamedValue{
			Ordinal: i + 1,
			Value:   arg,
		}
	}
	return named
}
