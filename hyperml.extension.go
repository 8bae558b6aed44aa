package hyperml

// Shape is an intercepted start call. Name and Params replace what the
// caller passed; Owner is handed back to every later hook call for this
// element.
type Shape struct {
	Name   string
	Params []any
	Owner  any
}

// ExtensionHook lets a nested grammar reuse the E call syntax. The builder
// asks the flavor for its hook on every start call.
//
// Interpret returns nil to leave the call alone. When it returns a Shape, the
// element it names becomes the host element: attributes are first offered to
// ApplyAttribute, OnHeadEnd runs before the head's closing bracket, OnStart
// after it, and OnEnd when the matching close unwinds, before the host
// element's own end tag is written.
type ExtensionHook interface {
	Interpret(name any, params []any) *Shape
	ApplyAttribute(owner any, name string, value any) bool
	OnHeadEnd(owner any)
	OnStart(owner any)
	OnEnd(owner any)
}

// HookProvider returns the hook the builder consults for a start call.
type HookProvider func(b *Builder) ExtensionHook

// NopHook declines every call, making the builder a plain tag emitter.
type NopHook struct{}

var _ ExtensionHook = NopHook{}

func (NopHook) Interpret(any, []any) *Shape          { return nil }
func (NopHook) ApplyAttribute(any, string, any) bool { return false }
func (NopHook) OnHeadEnd(any)                        {}
func (NopHook) OnStart(any)                          {}
func (NopHook) OnEnd(any)                            {}
