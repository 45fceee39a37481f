package traitsrc

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownSourceError is returned for a source type that has no handler.
func UnknownSourceError(s string) error {
	msg := "Unknown trait source <em>%s</em>, use csv, api or pg"
	vars := []any{s}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown source type %q", fn.Name(), s),
	}
}
