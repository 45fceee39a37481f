package iopg

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when the database cannot be reached.
func ConnectionError(host string, port int, database, user string, err error) error {
	msg := `Cannot connect to PostgreSQL database <em>%s</em> at <em>%s:%d</em>.
Check that PostgreSQL is running and the 'database' section
of the config file is correct (user <em>%s</em>).`
	vars := []any{database, host, port, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			fn.Name(), host, port, database, err),
	}
}

// UnknownColumnError is returned for lookups by a column that is not
// part of the traits export.
func UnknownColumnError(column string) error {
	msg := "Column <em>%s</em> is not a column of the traits table"
	vars := []any{column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PgUnknownColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown column %q", fn.Name(), column),
	}
}

// QueryError is returned when reading the traits table fails.
func QueryError(table string, err error) error {
	msg := "Cannot read traits from table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PgQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query of %s failed: %w", fn.Name(), table, err),
	}
}
