package hyperml

import (
	"github.com/krizzdewizz/hyperml/internal"
)

// call is the resolved shape of the arguments passed to E.
type call interface {
	isCall()
}

// closeCall ends the innermost open element.
type closeCall struct{}

// openCall starts an element named (or identified) by handle.
type openCall struct {
	handle any
	params []any
}

func (closeCall) isCall() {}
func (openCall) isCall()  {}

// classifyCall tells a close call (no arguments) from a start call.
func classifyCall(args []any) call {
	if len(args) == 0 {
		return closeCall{}
	}
	return openCall{handle: args[0], params: args[1:]}
}

// attribute is a resolved name/value pair with a non-nil value.
type attribute struct {
	name  string
	value any
}

// startCall is a start call after arity resolution.
type startCall struct {
	name      string
	attrs     []attribute
	value     string
	hasValue  bool
	autoClose bool
}

// resolveStart splits flattened params into attributes, an optional element
// value and the auto-close request.
//
// A trailing End requests auto-close and is dropped. Of the rest, an odd
// count makes the last item the element value; the even prefix is read as
// name/value pairs. Pairs with a nil value are skipped, and every other pair
// needs a non-empty name.
func resolveStart(name string, params []any) (startCall, error) {
	sc := startCall{name: name}

	n := len(params)
	if n > 0 && isEnd(params[n-1]) {
		sc.autoClose = true
		n--
	}

	if n%2 == 1 {
		n--
		sc.value, sc.hasValue = internal.ToText(params[n])
	}

	for i := 0; i < n; i += 2 {
		value := params[i+1]
		if value == nil {
			continue
		}
		attrName, err := attributeName(name, params[i])
		if err != nil {
			return startCall{}, err
		}
		sc.attrs = append(sc.attrs, attribute{name: attrName, value: value})
	}

	return sc, nil
}

func attributeName(element string, v any) (string, error) {
	s, ok := internal.ToText(v)
	if !ok {
		return "", NewInvalidAttributeNameError(element, true)
	}
	if s == "" {
		return "", NewInvalidAttributeNameError(element, false)
	}
	return s, nil
}
