package iocypher

import (
	"fmt"
	"runtime"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
)

// MissingLimitError is returned for queries that cannot be paginated.
func MissingLimitError(query string) error {
	msg := "Cypher query has no <em>LIMIT</em> clause"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CypherMissingLimitError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no LIMIT in query %q", fn.Name(), query),
	}
}

// RequestError is returned when the API cannot be reached.
func RequestError(url string, err error) error {
	msg := "Cannot reach EOL API at <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CypherRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request failed: %w", fn.Name(), err),
	}
}

// ResponseError is returned when the API answers with a status other
// than 200.
func ResponseError(status int, body string) error {
	msg := "EOL API returned status <em>%d</em>"
	vars := []any{status}
	if len(body) > 200 {
		body = body[:200]
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CypherResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: status %d: %s", fn.Name(), status, body),
	}
}

// DecodeError is returned when the API response is not a Cypher result.
func DecodeError(err error) error {
	msg := "Cannot decode EOL API response"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CypherDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// CacheError is returned when the disk cache of API responses fails.
func CacheError(dir string, err error) error {
	msg := "Cannot use API cache at <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.APICacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cache failure: %w", fn.Name(), err),
	}
}
