package iocsv

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadFileError is returned when the traits file cannot be read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read traits file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// ColumnsError is returned when the traits file misses required columns.
func ColumnsError(path string, missing []string) error {
	msg := "Traits file <em>%s</em> has no columns: <em>%s</em>"
	cols := strings.Join(missing, ", ")
	vars := []any{path, cols}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CSVColumnsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing columns %s", fn.Name(), cols),
	}
}
