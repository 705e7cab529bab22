package driver

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

func init() {
	sql.Register("oradb", &Driver{})
}

// Driver implements the database/sql/driver.Driver interface
type Driver struct {
	api      *odpi.ODPI
	initOnce sync.Once
}

// lib loads and initializes the native client library once per process.
func (d *Driver) lib() (*odpi.ODPI, error) {
	var initErr error
	d.initOnce.Do(func() {
		d.api, initErr = odpi.New()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize Oracle client: %w", initErr)
	}
	if d.api == nil {
		return nil, fmt.Errorf("Oracle client failed to initialize previously")
	}
	return d.api, nil
}

// Open returns a new connection to the database
func (d *Driver) Open(name string) (driver.Conn, error) {
	c, err := d.OpenConnector(name)
	if err != nil {
		return nil, err
	}
	return c.(*Connector).connect()
}

// OpenConnector returns a new connector
func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	user, password, connString, err := parseDSN(name)
	if err != nil {
		return nil, err
	}
	return &Connector{
		driver:     d,
		user:       user,
		password:   password,
		connString: connString,
	}, nil
}

// parseDSN splits a "user/password@connstring" data source name. The
// connect string part is passed through to the native client untouched, so
// Easy Connect and TNS alias forms both work.
func parseDSN(name string) (user, password, connString string, err error) {
	cred, connString, found := strings.Cut(name, "@")
	if !found || connString == "" {
		return "", "", "", fmt.Errorf("invalid DSN %q: want user/password@connstring", name)
	}
	user, password, found = strings.Cut(cred, "/")
	if !found || user == "" {
		return "", "", "", fmt.Errorf("invalid DSN %q: want user/password@connstring", name)
	}
	return user, password, connString, nil
}
