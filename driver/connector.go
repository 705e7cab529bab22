package driver

import (
	"context"
	"database/sql/driver"
)

// Connector implements the database/sql/driver.Connector interface
type Connector struct {
	driver     *Driver
	user       string
	password   string
	connString string
}

// Connect returns a new connection
func (c *Connector) Connect(ctx context.Context) (driver.Conn, error) {
	// Check context cancellation before starting
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return c.connect()
}

func (c *Connector) connect() (driver.Conn, error) {
	api, err := c.driver.lib()
	if err != nil {
		return nil, err
	}
	conn, err := api.Connect(c.user, c.password, c.connString)
	if err != nil {
		return nil, err
	}
	return &Conn{api: api, conn: conn}, nil
}

// Driver returns the underlying driver
func (c *Connector) Driver() driver.Driver {
	return c.driver
}
