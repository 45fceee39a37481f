package iolookup

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError is returned when a lookup file cannot be read.
func ReadError(path string, err error) error {
	msg := "Cannot read lookup file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LookupReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// CacheError is returned when the lookup cache database fails.
func CacheError(path string, err error) error {
	msg := "Cannot use lookup cache <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LookupCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cache failure: %w", fn.Name(), err),
	}
}
