package normalizer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// ValueCollisionError is returned when two raw fields that map to the same
// canonical key hold different non-nil values.
func ValueCollisionError(from, to string, old, new any) error {
	msg := "Fields <em>%s</em> and <em>%s</em> have conflicting values"
	vars := []any{from, to}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NormValueCollisionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: value collision for key %s: %v != %v",
			fn.Name(), to, old, new),
	}
}

// IsValueCollision returns true if the error is a value collision.
func IsValueCollision(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.NormValueCollisionError
	}
	return false
}
