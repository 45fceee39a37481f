package idconv

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// InvalidPageIDError is returned when a page ID is not an integer.
func InvalidPageIDError(pageID string, err error) error {
	msg := "EOL page ID <em>%s</em> is not a number"
	vars := []any{pageID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IDConvInvalidPageIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse page ID: %w", fn.Name(), err),
	}
}
