// Package repository is the persistence gateway: it maps users and
// contacts onto MySQL tables.  Callers distinguish failure scenarios with
// errors.Is against the sentinels below; every other error is a wrapped
// driver failure.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a row does not exist or, for contacts, is
// not owned by the caller.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when an insert collides with an existing
// username.
var ErrUsernameExists = errors.New("username already exists")

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
