package internal

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is a single key/value entry. Flatten emits its key and value as they
// are, without flattening either of them further.
type Pair struct {
	Key   any
	Value any
}

// Flatten normalizes nested variadic input into one linear slice.
//
// Slices, arrays, iter.Seq funcs of any element type and receive channels
// are expanded recursively. Maps, ordered maps and iter.Seq2 funcs
// contribute key, value for every entry, and a Pair contributes its key and
// value; neither is expanded further. Everything else, nil included, is
// appended unchanged. Byte slices are treated as scalar text.
func Flatten(items ...any) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = appendFlat(out, it)
	}
	return out
}

func appendFlat(out []any, it any) []any {
	switch v := it.(type) {
	case nil, string, []byte:
		return append(out, v)
	case Pair:
		return append(out, v.Key, v.Value)
	case *Pair:
		if v == nil {
			return append(out, it)
		}
		return append(out, v.Key, v.Value)
	case []any:
		for _, e := range v {
			out = appendFlat(out, e)
		}
		return out
	case []string:
		for _, e := range v {
			out = append(out, e)
		}
		return out
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return append(out, it)
		}
		for p := v.Oldest(); p != nil; p = p.Next() {
			out = append(out, p.Key, p.Value)
		}
		return out
	case *orderedmap.OrderedMap[any, any]:
		if v == nil {
			return append(out, it)
		}
		for p := v.Oldest(); p != nil; p = p.Next() {
			out = append(out, p.Key, p.Value)
		}
		return out
	case iter.Seq[any]:
		return appendSeq(out, v)
	case func(func(any) bool):
		return appendSeq(out, v)
	case <-chan any:
		if v == nil {
			return append(out, it)
		}
		for e := range v {
			out = appendFlat(out, e)
		}
		return out
	case chan any:
		if v == nil {
			return append(out, it)
		}
		for e := range v {
			out = appendFlat(out, e)
		}
		return out
	default:
		return appendReflect(out, it)
	}
}

func appendSeq(out []any, seq iter.Seq[any]) []any {
	if seq == nil {
		return append(out, seq)
	}
	for e := range seq {
		out = appendFlat(out, e)
	}
	return out
}

// appendReflect handles the container kinds the type switch cannot name.
func appendReflect(out []any, it any) []any {
	rv := reflect.ValueOf(it)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append(out, it)
		}
		for i := 0; i < rv.Len(); i++ {
			out = appendFlat(out, rv.Index(i).Interface())
		}
		return out

	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			out = append(out, k.Interface(), rv.MapIndex(k).Interface())
		}
		return out

	case reflect.Func:
		return appendFunc(out, rv, it)

	case reflect.Pointer:
		if isOrderedMap(rv) {
			return appendOrderedMap(out, rv)
		}
		return append(out, it)

	case reflect.Chan:
		if rv.IsNil() || rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return append(out, it)
		}
		for {
			e, ok := rv.Recv()
			if !ok {
				return out
			}
			out = appendFlat(out, e.Interface())
		}

	default:
		return append(out, it)
	}
}

// appendFunc drains funcs shaped like iter.Seq[T] or iter.Seq2[K, V].
// Other funcs are scalars.
func appendFunc(out []any, rv reflect.Value, it any) []any {
	t := rv.Type()
	if rv.IsNil() || t.NumIn() != 1 || t.NumOut() != 0 {
		return append(out, it)
	}
	yt := t.In(0)
	if yt.Kind() != reflect.Func || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return append(out, it)
	}

	cont := reflect.ValueOf(true).Convert(yt.Out(0))
	var yield reflect.Value
	switch yt.NumIn() {
	case 1:
		yield = reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			out = appendFlat(out, args[0].Interface())
			return []reflect.Value{cont}
		})
	case 2:
		// key/value sequences behave like mapping entries
		yield = reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			out = append(out, args[0].Interface(), args[1].Interface())
			return []reflect.Value{cont}
		})
	default:
		return append(out, it)
	}

	rv.Call([]reflect.Value{yield})
	return out
}

// isOrderedMap reports whether rv is a non-nil *orderedmap.OrderedMap of
// any key and value type.
func isOrderedMap(rv reflect.Value) bool {
	if rv.IsNil() {
		return false
	}
	et := rv.Type().Elem()
	return et.Kind() == reflect.Struct &&
		et.PkgPath() == orderedMapPkgPath &&
		strings.HasPrefix(et.Name(), orderedMapTypeName)
}

// appendOrderedMap walks the Oldest/Next chain of an ordered map.
func appendOrderedMap(out []any, rv reflect.Value) []any {
	pair := rv.MethodByName(orderedMapOldest).Call(nil)[0]
	for !pair.IsNil() {
		entry := pair.Elem()
		out = append(out,
			entry.FieldByName(orderedMapKey).Interface(),
			entry.FieldByName(orderedMapValue).Interface(),
		)
		pair = pair.MethodByName(orderedMapNext).Call(nil)[0]
	}
	return out
}

// compareKeys orders map keys so plain Go maps flatten deterministically.
// Strings and numbers compare by value, anything else by its printed form.
func compareKeys(a, b reflect.Value) int {
	switch {
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String())
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanFloat() && b.CanFloat():
		return cmp.Compare(a.Float(), b.Float())
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}
