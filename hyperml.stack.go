package hyperml

// frame is one entry of the element stack: either a plainFrame for an open
// element or an extensionFrame for an intercepted start call.
type frame interface {
	elementName() string
}

// plainFrame is an open element, closed by writing its end tag.
type plainFrame string

func (f plainFrame) elementName() string { return string(f) }

// extensionFrame sits directly above the plainFrame of its host element.
// Closing it runs the hook's OnEnd before the host element is closed.
type extensionFrame struct {
	name   string
	params []any
	owner  any
	hook   ExtensionHook
}

func (f *extensionFrame) elementName() string { return f.name }

// elementStack is a LIFO of frames.
type elementStack []frame

func (s *elementStack) push(f frame) {
	*s = append(*s, f)
}

func (s *elementStack) pop() (frame, bool) {
	n := len(*s)
	if n == 0 {
		return nil, false
	}
	f := (*s)[n-1]
	(*s)[n-1] = nil
	*s = (*s)[:n-1]
	return f, true
}

func (s elementStack) empty() bool {
	return len(s) == 0
}

// depth counts the open elements, ignoring extension frames.
func (s elementStack) depth() int {
	n := 0
	for _, f := range s {
		if _, ok := f.(plainFrame); ok {
			n++
		}
	}
	return n
}

// current returns the innermost open element, or "" at the top level.
func (s elementStack) current() string {
	for i := len(s) - 1; i >= 0; i-- {
		if p, ok := s[i].(plainFrame); ok {
			return string(p)
		}
	}
	return ""
}

// openNames lists the open elements innermost first.
func (s elementStack) openNames() []string {
	names := make([]string, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if p, ok := s[i].(plainFrame); ok {
			names = append(names, string(p))
		}
	}
	return names
}
