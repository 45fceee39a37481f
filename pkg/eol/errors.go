package eol

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// ConverterNotSetError is returned when identifier conversion is requested
// but the identifier map is not configured.
func ConverterNotSetError() error {
	msg := "Identifier map is not set, use <em>mapping.provider_ids_file</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConverterNotSetError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: identifier converter is not set", fn.Name()),
	}
}

// SourceNotSetError is returned when traits are requested from a processor
// created without a trait data source.
func SourceNotSetError() error {
	msg := "Trait data source is not set"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceNotSetError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: trait source is not set", fn.Name()),
	}
}

// IsConverterNotSet returns true if the error means that identifier
// conversion is not configured.
func IsConverterNotSet(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.ConverterNotSetError
	}
	return false
}
