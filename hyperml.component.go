package hyperml

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Component is a reusable fragment passed to E in place of an element name.
// It is rendered inside the element named by Host. Attributes of the start
// call that match an exported field (by `attr` tag or case-insensitive
// name) are decoded into the component, the rest are written on the host
// element. Components must be pointers for attributes to bind.
//
//	b.E(&Card{}, "title", "Hello", "id", "c1")
//	{
//		b.E("p", "body text", hyperml.End)
//	}
//	b.E()
type Component interface {
	Host() string
}

// HeadEnder is implemented by components adding attributes to their host
// element through (*Builder).Attribute.
type HeadEnder interface {
	HeadEnd(b *Builder)
}

// Starter is implemented by components writing content right after the
// host element's start tag.
type Starter interface {
	Start(b *Builder)
}

// Ender is implemented by components writing content right before the host
// element's end tag.
type Ender interface {
	End(b *Builder)
}

// componentHook is the HTML flavor's extension hook.
type componentHook struct {
	b *Builder
}

var _ ExtensionHook = (*componentHook)(nil)

func (h *componentHook) Interpret(name any, params []any) *Shape {
	c, ok := name.(Component)
	if !ok {
		return nil
	}
	h.b.logger.Debug(LogMsgComponentHosted,
		zap.String(LogFieldComponent, componentName(c)),
		zap.String(LogFieldElement, c.Host()),
	)
	return &Shape{Name: c.Host(), Params: params, Owner: c}
}

func (h *componentHook) ApplyAttribute(owner any, name string, value any) bool {
	if rv := reflect.ValueOf(owner); rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return false
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           owner,
		TagName:          ComponentAttrTag,
		WeaklyTypedInput: true,
		Metadata:         &md,
	})
	if err != nil {
		h.b.Abort(NewComponentAttributeError(componentName(owner), name, err))
		return true
	}
	if err := dec.Decode(map[string]any{name: value}); err != nil {
		h.b.Abort(NewComponentAttributeError(componentName(owner), name, err))
		return true
	}
	return !slices.Contains(md.Unused, name)
}

func (h *componentHook) OnHeadEnd(owner any) {
	if c, ok := owner.(HeadEnder); ok {
		c.HeadEnd(h.b)
	}
}

func (h *componentHook) OnStart(owner any) {
	if c, ok := owner.(Starter); ok {
		c.Start(h.b)
	}
}

func (h *componentHook) OnEnd(owner any) {
	if c, ok := owner.(Ender); ok {
		c.End(h.b)
	}
}

func componentName(c any) string {
	return fmt.Sprintf("%T", c)
}
