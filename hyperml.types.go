package hyperml

import (
	"github.com/krizzdewizz/hyperml/internal"
	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// endMarker is the type of End. It is unexported and carries a field so no
// other value can ever compare equal to End.
type endMarker struct{ _ byte }

// End requests auto-close when passed as the last argument of E, Text or
// Raw. It is compared by identity only.
//
//	b.E("h1", "class", "title", "hello world", hyperml.End)
var End = &endMarker{}

func (*endMarker) String() string { return "hyperml.End" }

// isEnd reports whether v is the End sentinel.
func isEnd(v any) bool {
	m, ok := v.(*endMarker)
	return ok && m == End
}

// Pair is a single attribute name/value entry. Pairs are flattened into their
// key and value without expanding either of them.
type Pair = internal.Pair

// Attrs is an insertion-ordered attribute map. The flattener emits its
// entries in insertion order.
type Attrs = orderedmap.OrderedMap[string, any]

// Attr returns an attribute name/value pair which can be passed directly to E.
func Attr(name string, value any) Pair {
	return Pair{Key: name, Value: value}
}

// Map builds an ordered attribute map from alternating name/value arguments.
// A trailing name without value is ignored.
func Map(keyValuePairs ...any) *Attrs {
	m := orderedmap.New[string, any]()
	for i := 0; i+1 < len(keyValuePairs); i += 2 {
		m.Set(cast.ToString(keyValuePairs[i]), keyValuePairs[i+1])
	}
	return m
}

// List returns items as a slice, handy for grouping arguments.
func List(items ...any) []any {
	return items
}

// Flatten normalizes nested arguments (slices, arrays, iterators, channels,
// maps and pairs) into one linear slice. See E for how the result is read.
func Flatten(items ...any) []any {
	return internal.Flatten(items...)
}

// Escape replaces the markup metacharacters ", &, < and > with entities.
// s is returned unchanged when it contains none of them.
func Escape(s string) string {
	return internal.Escape(s)
}
