package triple

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Object is the value of a triple. It is either a string or an exact
// decimal number.
type Object struct {
	str   string
	num   decimal.Decimal
	isNum bool
}

// StringObject creates a string object.
func StringObject(s string) Object {
	return Object{str: s}
}

// NumberObject creates a numeric object.
func NumberObject(d decimal.Decimal) Object {
	return Object{num: d, isNum: true}
}

// IsNumber returns true for numeric objects.
func (o Object) IsNumber() bool {
	return o.isNum
}

// Number returns the numeric value and true for numeric objects.
func (o Object) Number() (decimal.Decimal, bool) {
	return o.num, o.isNum
}

// String returns the canonical string form of the object.
func (o Object) String() string {
	if o.isNum {
		return o.num.String()
	}
	return o.str
}

// Equal compares two objects. A number never equals a string.
func (o Object) Equal(other Object) bool {
	return o.Compare(other) == 0
}

// Compare orders objects. All numbers go before all strings. Numbers are
// compared numerically, strings lexically.
func (o Object) Compare(other Object) int {
	switch {
	case o.isNum && other.isNum:
		return o.num.Cmp(other.num)
	case !o.isNum && !other.isNum:
		return strings.Compare(o.str, other.str)
	case o.isNum:
		return -1
	default:
		return 1
	}
}

// MarshalJSON renders numbers as JSON numbers and strings as JSON strings.
func (o Object) MarshalJSON() ([]byte, error) {
	if o.isNum {
		return []byte(o.num.String()), nil
	}
	return json.Marshal(o.str)
}

// key is a kind-aware representation used for triple identity.
func (o Object) key() string {
	if o.isNum {
		return "n:" + o.num.String()
	}
	return "s:" + o.str
}
