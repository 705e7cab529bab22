// Package oradb provides a pure-Go Oracle Database client built on the
// ODPI-C library loaded through purego instead of CGO, allowing for easier
// cross-compilation and deployment.
//
// This package holds the typed value layer: Oracle type descriptors,
// calendar values (Timestamp, IntervalDS, IntervalYM), the bind/fetch
// conversion protocol, collection access and typed OCI attributes. The
// database/sql driver lives in the driver subpackage:
//
//	import (
//	    "database/sql"
//	    _ "github.com/connerohnesorge/oradb-go/driver"
//	)
//
//	func main() {
//	    db, err := sql.Open("oradb", "scott/tiger@localhost/XEPDB1")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer db.Close()
//
//	    // Use db as normal...
//	}
package oradb

// Version is the version of the Oracle Go client
const Version = "0.1.0"
