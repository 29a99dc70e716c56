package hashtable

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// String renders the table as {k: v, ...} in insertion order, with keys and
// values in Go syntax.
func (ht *HashTable[K, V]) String() string {
	var sb strings.Builder
	ht.writeEntries(&sb, false)

	return sb.String()
}

// GoString renders the table as a FromMap call that builds an equal table.
// Keys and values held in an interface carry an explicit conversion when
// the bare literal would default to another type, e.g. float64(1).
func (ht *HashTable[K, V]) GoString() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "hashtable.FromMap(map[%s]%s", reflect.TypeFor[K](), reflect.TypeFor[V]())
	ht.writeEntries(&sb, true)
	sb.WriteByte(')')

	return sb.String()
}

func (ht *HashTable[K, V]) writeEntries(sb *strings.Builder, typed bool) {
	sb.WriteByte('{')

	i := 0
	for key, v := range ht.All() {
		if i > 0 {
			sb.WriteString(", ")
		}

		if typed {
			sb.WriteString(goLiteral(key))
			sb.WriteString(": ")
			sb.WriteString(goLiteral(v))
		} else {
			fmt.Fprintf(sb, "%#v: %#v", key, v)
		}
		i++
	}

	sb.WriteByte('}')
}

// goLiteral renders x as a Go expression assignable to T that evaluates to
// an equal value.
func goLiteral[T any](x T) string {
	v := any(x)
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()

	s := fmt.Sprintf("%#v", v)
	convert := reflect.TypeFor[T]().Kind() == reflect.Interface && isBasic(rt) && !isUntypedDefault(rt)

	if k := rt.Kind(); k == reflect.Float32 || k == reflect.Float64 {
		switch f := rv.Float(); {
		case math.IsNaN(f):
			s, convert = "math.NaN()", true
		case math.IsInf(f, 1):
			s, convert = "math.Inf(1)", true
		case math.IsInf(f, -1):
			s, convert = "math.Inf(-1)", true
		}
	}

	if convert {
		return fmt.Sprintf("%s(%s)", rt, s)
	}

	return s
}

func isBasic(rt reflect.Type) bool {
	k := rt.Kind()
	return k == reflect.String || (k >= reflect.Bool && k <= reflect.Complex128)
}

// isUntypedDefault reports whether a bare literal of rt's %#v form already
// has type rt when stored in an interface.
func isUntypedDefault(rt reflect.Type) bool {
	switch rt {
	case reflect.TypeFor[bool](), reflect.TypeFor[int](), reflect.TypeFor[string](), reflect.TypeFor[complex128]():
		return true
	}

	return false
}
