package lookup

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// FilterMismatchError is returned when filter criteria and column indices
// have different lengths.
func FilterMismatchError(criteria, columns int) error {
	msg := "Got <em>%d</em> filter values for <em>%d</em> columns"
	vars := []any{criteria, columns}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LookupFilterMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: filter criteria and column index lengths differ",
			fn.Name()),
	}
}
