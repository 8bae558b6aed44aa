package hyperml

import (
	"io"
	"strings"

	"github.com/krizzdewizz/hyperml/internal"
	"go.uber.org/zap"
)

// Builder writes nested markup from a flat sequence of E calls.
//
// A Builder is not safe for concurrent use; use one per document. The first
// structural error is kept: every later call is ignored and the error is
// returned by Err, RenderTo and Render.
type Builder struct {
	flavor  Flavor
	config  *builderConfig
	logger  *zap.Logger
	metrics *Metrics

	stack    elementStack
	fluent   *sink // destination of direct calls
	sink     *sink // current destination
	written  bool  // something was written to the fluent sink
	headOpen bool
	inHook   int // nesting depth of running OnHeadEnd/OnStart hooks
	err      error
}

// New creates a builder for the given flavor.
func New(flavor Flavor, opts ...Option) *Builder {
	config := defaultBuilderConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var dest io.Writer = &strings.Builder{}
	if config.writer != nil {
		dest = config.writer
	}
	fluent := newSink(dest)

	logger.Debug(LogMsgBuilderCreated, zap.String(LogFieldFlavor, flavor.Name()))

	return &Builder{
		flavor:  flavor,
		config:  config,
		logger:  logger,
		metrics: config.metrics,
		fluent:  fluent,
		sink:    fluent,
	}
}

// E is the single entry point for structure.
//
// Without arguments it closes the innermost open element. Otherwise the first
// argument names the element (or is a handle the extension hook resolves) and
// the rest, once flattened, are attribute name/value pairs, optionally
// followed by the element's text value, optionally followed by End:
//
//	b.E("html")
//	b.E("body", "onload", "init()")
//	b.E("h1", "class", "title", "hello world", hyperml.End)
//	b.E() // body
//	b.E() // html
func (b *Builder) E(args ...any) *Builder {
	if b.err != nil {
		return b
	}

	switch c := classifyCall(args).(type) {
	case closeCall:
		b.close()
	case openCall:
		b.start(c.handle, c.params)
	}
	return b
}

// Start starts an element; it is E with a mandatory name.
func (b *Builder) Start(name any, params ...any) *Builder {
	return b.E(append([]any{name}, params...)...)
}

// Close ends the innermost open element; it is E without arguments.
func (b *Builder) Close() *Builder {
	return b.E()
}

// Text writes values as text content of the current element, escaped
// according to the flavor. nil and empty values are skipped. A trailing End
// closes the current element afterwards.
func (b *Builder) Text(values ...any) *Builder {
	return b.emitText(values, true)
}

// Raw writes values unescaped. Otherwise it behaves like Text.
func (b *Builder) Raw(values ...any) *Builder {
	return b.emitText(values, false)
}

// Attribute writes one attribute into the element head currently being
// written. It is meant for extension hooks running OnHeadEnd; anywhere else
// it fails with ErrHeadClosed.
func (b *Builder) Attribute(name string, value any) *Builder {
	if b.err != nil {
		return b
	}
	if !b.headOpen {
		b.fail(NewHeadClosedError(name))
		return b
	}
	if name == "" {
		b.fail(NewInvalidAttributeNameError(b.stack.current(), false))
		return b
	}
	if value != nil {
		b.writeAttribute(name, value)
	}
	return b
}

// Abort records err as the builder's error. Extension hooks use it to report
// failures. A nil err is ignored.
func (b *Builder) Abort(err error) *Builder {
	if err != nil {
		b.fail(err)
	}
	return b
}

// Err returns the first error the builder ran into.
func (b *Builder) Err() error {
	return b.err
}

// Depth returns the number of open elements.
func (b *Builder) Depth() int {
	return b.stack.depth()
}

// Flavor returns the builder's flavor.
func (b *Builder) Flavor() Flavor {
	return b.flavor
}

// Flush hands buffered output to the current destination. The builder
// flushes by itself whenever the last open element is closed.
func (b *Builder) Flush() error {
	b.flush()
	return b.err
}

// RenderTo runs the construction function against w, checks that every
// element was closed, and restores the previous destination.
func (b *Builder) RenderTo(w io.Writer) error {
	prev := b.sink
	b.sink = newSink(w)
	defer func() { b.sink = prev }()

	b.logger.Debug(LogMsgRenderStart,
		zap.String(LogFieldFlavor, b.flavor.Name()),
		zap.Bool(LogFieldFluent, b.written),
	)

	if b.config.content != nil {
		b.config.content(b)
	}
	if b.err == nil {
		if err := b.checkStack(); err != nil {
			b.fail(err)
		}
	}
	if b.err == nil && b.sink.Buffered() > 0 {
		b.flush()
	}

	if b.err != nil {
		b.logger.Debug(LogMsgRenderFailed, zap.Error(b.err))
		return b.err
	}

	b.logger.Debug(LogMsgRenderEnd, zap.String(LogFieldFlavor, b.flavor.Name()))
	return nil
}

// Render returns the markup. A builder that was written to directly returns
// what it accumulated; otherwise the construction function is run against a
// fresh buffer, so Render may be called repeatedly.
//
// In fluent mode the markup is read back from the WithWriter destination. A
// writer that does not implement fmt.Stringer yields "" with a nil error; its
// output has already been flushed to it.
func (b *Builder) Render() (string, error) {
	if b.written {
		if b.err != nil {
			return "", b.err
		}
		if err := b.checkStack(); err != nil {
			return "", err
		}
		if err := b.Flush(); err != nil {
			return "", err
		}
		// a WithWriter destination that is not a fmt.Stringer reads back as ""
		s, _ := b.fluent.String()
		return s, nil
	}

	var sb strings.Builder
	if err := b.RenderTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. It returns "" if rendering failed; use
// Render or Err to get the error.
func (b *Builder) String() string {
	s, err := b.Render()
	if err != nil {
		return ""
	}
	return s
}

// hook returns the extension hook for the next start call.
func (b *Builder) hook() ExtensionHook {
	var h ExtensionHook
	if b.config.hookProvider != nil {
		h = b.config.hookProvider(b)
	} else {
		h = b.flavor.ExtensionHook(b)
	}
	if h == nil {
		return NopHook{}
	}
	return h
}

func (b *Builder) start(handle any, raw []any) {
	params := internal.Flatten(raw...)
	hook := b.hook()
	shape := hook.Interpret(handle, params)

	var name string
	var owner any
	if shape != nil {
		name, params, owner = shape.Name, shape.Params, shape.Owner
	} else {
		name, _ = internal.ToText(handle)
	}
	if name == "" {
		b.fail(NewInvalidElementNameError(handle))
		return
	}

	sc, err := resolveStart(name, params)
	if err != nil {
		b.fail(err)
		return
	}

	void := b.flavor.IsVoidElement(name)
	if sc.autoClose && void {
		b.fail(NewVoidElementCloseError(name))
		return
	}

	b.write(SyntaxOpenTag)
	b.write(name)

	b.headOpen = true
	for _, a := range sc.attrs {
		if shape != nil && hook.ApplyAttribute(owner, a.name, a.value) {
			continue
		}
		b.writeAttribute(a.name, a.value)
	}
	if shape != nil {
		b.inHook++
		hook.OnHeadEnd(owner)
		b.inHook--
	}
	b.headOpen = false

	if b.err != nil {
		return
	}

	if b.config.selfClosing && sc.autoClose && shape == nil && sc.value == "" {
		b.write(SyntaxSelfClose)
		b.metrics.elementStarted(b.flavor)
		b.metrics.elementClosed(b.flavor)
		b.flushIfIdle()
		return
	}

	b.write(SyntaxCloseTag)
	b.metrics.elementStarted(b.flavor)

	if shape != nil {
		// the host frame is not pushed yet, so children emitted here
		// must not trigger the top-level flush
		b.inHook++
		hook.OnStart(owner)
		b.inHook--
		if b.err != nil {
			return
		}
	}

	if void {
		b.flushIfIdle()
		return
	}

	if sc.hasValue {
		b.writeText(sc.value, b.flavor.EscapeText(name))
	}

	b.stack.push(plainFrame(name))
	if shape != nil {
		b.stack.push(&extensionFrame{name: name, params: params, owner: owner, hook: hook})
	}

	if sc.autoClose {
		b.close()
	}
}

func (b *Builder) close() {
	f, ok := b.stack.pop()
	if !ok {
		b.fail(NewStackUnderflowError())
		return
	}

	switch fr := f.(type) {
	case *extensionFrame:
		fr.hook.OnEnd(fr.owner)
		if b.err != nil {
			return
		}
		// the host element sits right below
		b.close()
		return
	case plainFrame:
		b.write(SyntaxEndTagOpen)
		b.write(string(fr))
		b.write(SyntaxCloseTag)
		b.metrics.elementClosed(b.flavor)
	}

	b.flushIfIdle()
}

// flushIfIdle flushes once the outermost element is complete.
func (b *Builder) flushIfIdle() {
	if b.stack.empty() && b.inHook == 0 {
		b.flush()
	}
}

func (b *Builder) emitText(values []any, escape bool) *Builder {
	if b.err != nil || len(values) == 0 {
		return b
	}

	n := len(values)
	end := isEnd(values[n-1])
	if end {
		n--
	}

	escape = escape && b.flavor.EscapeText(b.stack.current())
	for _, v := range values[:n] {
		if s, ok := internal.ToText(v); ok && s != "" {
			b.writeText(s, escape)
		}
	}

	if end {
		b.close()
	}
	return b
}

func (b *Builder) writeText(s string, escape bool) {
	if s == "" {
		return
	}
	if escape {
		s = internal.Escape(s)
	}
	b.write(s)
}

func (b *Builder) writeAttribute(name string, value any) {
	policy, hasPolicy := b.flavor.(AttributePolicy)
	if hasPolicy && !policy.WriteAttribute(value) {
		return
	}

	s, _ := internal.ToText(value)
	if s == "" {
		return
	}

	b.write(SyntaxSpace)
	b.write(name)
	if !hasPolicy || policy.WriteAttributeValue(value) {
		b.write(SyntaxAttrAssign)
		b.write(internal.Escape(s))
		b.write(SyntaxAttrQuoteEnd)
	}
}

func (b *Builder) write(s string) {
	if b.err != nil {
		return
	}
	if b.sink == b.fluent {
		b.written = true
	}

	n, err := b.sink.WriteString(s)
	b.metrics.bytesWritten(b.flavor, n)
	if err != nil {
		b.fail(NewSinkError(ErrMsgSinkWrite, err))
	}
}

func (b *Builder) flush() {
	if b.err != nil {
		return
	}
	if err := b.sink.Flush(); err != nil {
		b.fail(NewSinkError(ErrMsgSinkFlush, err))
		return
	}
	b.logger.Debug(LogMsgSinkFlushed, zap.String(LogFieldFlavor, b.flavor.Name()))
}

func (b *Builder) checkStack() error {
	if b.stack.empty() {
		return nil
	}
	return NewUnterminatedStructureError(b.stack.openNames())
}

func (b *Builder) fail(err error) {
	if b.err != nil {
		return
	}
	b.err = err
	b.logger.Warn(LogMsgBuilderFailed,
		zap.String(LogFieldFlavor, b.flavor.Name()),
		zap.Int(LogFieldDepth, b.stack.depth()),
		zap.Error(err),
	)
	b.metrics.errorRecorded(b.flavor, err)
}
