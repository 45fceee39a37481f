package triplegen

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// IncompleteRecordError is returned when a record produces a triple but
// lacks one of the keys every triple needs.
func IncompleteRecordError(key record.Key, n record.Normalized) error {
	msg := "Record <em>%s</em> has no <em>%s</em> field"
	vars := []any{n.String(record.RecordID), string(key)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TripleIncompleteRecordError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: required key %s is missing",
			fn.Name(), key),
	}
}
