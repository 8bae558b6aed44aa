package hyperml

import (
	"io"
	"strings"

	"github.com/krizzdewizz/hyperml/internal"
	"github.com/spf13/cast"
)

// htmlVoidElements can hold neither content nor an end tag.
var htmlVoidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// htmlRawTextElements hold literal text that must not be escaped.
var htmlRawTextElements = map[string]struct{}{
	"script": {},
	"style":  {},
}

// HTMLFlavor writes HTML5: void elements, unescaped script and style
// bodies, boolean attributes, and components as element handles.
type HTMLFlavor struct{}

var (
	_ Flavor          = HTMLFlavor{}
	_ AttributePolicy = HTMLFlavor{}
)

func (HTMLFlavor) Name() string { return FlavorNameHTML }

func (HTMLFlavor) IsVoidElement(name string) bool {
	_, ok := htmlVoidElements[strings.ToLower(name)]
	return ok
}

func (HTMLFlavor) EscapeText(element string) bool {
	_, raw := htmlRawTextElements[strings.ToLower(element)]
	return !raw
}

func (HTMLFlavor) ExtensionHook(b *Builder) ExtensionHook {
	return &componentHook{b: b}
}

// WriteAttribute drops attributes whose value is the boolean false.
func (HTMLFlavor) WriteAttribute(value any) bool {
	v, ok := value.(bool)
	return !ok || v
}

// WriteAttributeValue writes attributes whose value is the boolean true as
// a bare name.
func (HTMLFlavor) WriteAttributeValue(value any) bool {
	v, ok := value.(bool)
	return !ok || !v
}

// HTML creates an HTML builder writing to an internal buffer.
func HTML(opts ...Option) *Builder {
	return New(HTMLFlavor{}, opts...)
}

// HTMLTo creates an HTML builder whose direct calls write to w.
func HTMLTo(w io.Writer, opts ...Option) *Builder {
	return New(HTMLFlavor{}, append(opts, WithWriter(w))...)
}

// Classes builds a class attribute value from name/flag pairs, keeping the
// names whose flag is true. Maps of name to flag work as well. A trailing
// name without flag is kept.
//
//	b.E("a", "class", hyperml.Classes("peter", true, "paul", false), hyperml.End)
//	// <a class="peter"></a>
func Classes(namesAndFlags ...any) string {
	flat := internal.Flatten(namesAndFlags...)
	names := make([]string, 0, len(flat)/2+1)
	for i := 0; i < len(flat); i += 2 {
		name, ok := internal.ToText(flat[i])
		if !ok || name == "" {
			continue
		}
		if i+1 < len(flat) && !cast.ToBool(flat[i+1]) {
			continue
		}
		names = append(names, name)
	}
	return strings.Join(names, ClassSeparator)
}

// Styles builds a style attribute value from property/value pairs or maps.
// A property written as "name.unit" gets unit appended to its value. nil and
// empty values are skipped, as is a trailing property without value.
//
//	hyperml.Styles("height.px", 20, "color", nil, "display", "none")
//	// height:20px;display:none
func Styles(propsAndValues ...any) string {
	decls := declarations(internal.Flatten(propsAndValues...))
	return strings.Join(decls, CSSDeclEnd)
}

// CSS writes one style rule as raw text, for use inside a style element:
//
//	b.E("style")
//	b.CSS("body", "color", "red", "margin.px", 0)
//	b.E()
//	// <style>body{color:red;margin:0px;}</style>
//
// An odd number of flattened declarations fails with ErrInvalidDeclarations.
func (b *Builder) CSS(selector string, decls ...any) *Builder {
	if b.err != nil {
		return b
	}
	flat := internal.Flatten(decls...)
	if len(flat)%2 != 0 {
		return b.Abort(NewInvalidDeclarationsError(selector, len(flat)))
	}

	var sb strings.Builder
	sb.WriteString(selector)
	sb.WriteString(CSSBlockOpen)
	for _, d := range declarations(flat) {
		sb.WriteString(d)
		sb.WriteString(CSSDeclEnd)
	}
	sb.WriteString(CSSBlockClose)
	return b.Raw(sb.String())
}

// declarations renders property/value pairs as "prop:value" strings.
func declarations(flat []any) []string {
	decls := make([]string, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		prop, ok := internal.ToText(flat[i])
		if !ok || prop == "" {
			continue
		}
		value, ok := internal.ToText(flat[i+1])
		if !ok || value == "" {
			continue
		}
		if name, unit, found := strings.Cut(prop, CSSUnitSeparator); found {
			prop, value = name, value+unit
		}
		decls = append(decls, prop+CSSPropSeparator+value)
	}
	return decls
}
