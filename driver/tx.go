package driver

import (
	"database/sql/driver"
)

// Tx implements the database/sql/driver.Tx interface. Oracle starts a
// transaction implicitly on the first statement, so only the end of the
// transaction talks to the server.
type Tx struct {
	conn     *Conn
	finished bool
}

// Commit commits the transaction
func (tx *Tx) Commit() error {
	if tx.finished {
		return driver.ErrBadConn
	}
	tx.finished = true
	return tx.conn.api.Commit(tx.conn.conn)
}

// Rollback rolls back the transaction
func (tx *Tx) Rollback() error {
	if tx.finished {
		return driver.ErrBadConn
	}
	tx.finished = true
	return tx.conn.api.Rollback(tx.conn.conn)
}
