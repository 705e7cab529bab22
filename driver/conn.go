package driver

import (
	"context"
	"database/sql/driver"
	"errors"

	oradb "github.com/connerohnesorge/oradb-go"
	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// Conn implements the database/sql/driver.Conn interface
type Conn struct {
	api  *odpi.ODPI
	conn odpi.Conn
}

// Prepare returns a prepared statement
func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

// PrepareContext returns a prepared statement
func (c *Conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	stmt, err := c.api.PrepareStmt(c.conn, query)
	if err != nil {
		return nil, err
	}
	return &Stmt{conn: c, stmt: stmt, query: query}, nil
}

// Close closes the connection
func (c *Conn) Close() error {
	err := c.api.ReleaseConn(c.conn)
	c.conn = 0
	return err
}

// Begin starts a transaction
func (c *Conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

// BeginTx starts a transaction with options. Oracle opens the transaction
// implicitly on the first statement; options that need a SET TRANSACTION
// are issued eagerly here.
func (c *Conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	switch sqlLevel := opts.Isolation; sqlLevel {
	case 0, 2: // driver default and sql.LevelReadCommitted, Oracle's default
	case 6: // sql.LevelSerializable
		if _, err := c.ExecContext(ctx, "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE", nil); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unsupported isolation level")
	}
	if opts.ReadOnly {
		if _, err := c.ExecContext(ctx, "SET TRANSACTION READ ONLY", nil); err != nil {
			return nil, err
		}
	}
	return &Tx{conn: c}, nil
}

// ExecContext executes a query that doesn't return rows
func (c *Conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	stmt, err := c.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	return stmt.(*Stmt).ExecContext(ctx, args)
}

// QueryContext executes a query that returns rows
func (c *Conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	stmt, err := c.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	// The statement stays open until the rows are closed.
	rows, err := stmt.(*Stmt).queryContext(ctx, args, true)
	if err != nil {
		stmt.Close()
		return nil, err
	}
	return rows, nil
}

// Ping verifies the connection
func (c *Conn) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return c.api.Ping(c.conn)
}

// CheckNamedValue is called to check named values. Conversion happens in
// the typed value layer at bind time, so every type it can encode is
// accepted here as-is.
func (c *Conn) CheckNamedValue(nv *driver.NamedValue) error {
	if nv.Value == nil {
		return nil
	}
	_, err := oradb.DefaultOracleType(nv.Value)
	return err
}

// AttrHandle exposes the connection for typed OCI attribute access via
// sql.Conn.Raw.
func (c *Conn) AttrHandle() oradb.ConnAttrHandle {
	return oradb.NewConnAttrHandle(c.api, c.conn)
}

// Result implements driver.Result
type Result struct {
	rowsAffected int64
}

// LastInsertId is not supported; Oracle returns generated keys through
// RETURNING clauses instead.
func (r *Result) LastInsertId() (int64, error) {
	return 0, errors.New("LastInsertId is not supported, use a RETURNING clause")
}

// RowsAffected returns the number of affected rows
func (r *Result) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}
