package hyperml

import (
	"io"
)

// XMLFlavor writes plain XML: no void elements, text always escaped, no
// extension hook.
type XMLFlavor struct{}

var _ Flavor = XMLFlavor{}

func (XMLFlavor) Name() string                         { return FlavorNameXML }
func (XMLFlavor) IsVoidElement(string) bool            { return false }
func (XMLFlavor) EscapeText(string) bool               { return true }
func (XMLFlavor) ExtensionHook(*Builder) ExtensionHook { return NopHook{} }

// XML creates an XML builder writing to an internal buffer.
//
//	out := hyperml.XML().
//		E("xml").
//		E("content", hyperml.End).
//		E().
//		String()
//	// <xml><content></content></xml>
func XML(opts ...Option) *Builder {
	return New(XMLFlavor{}, opts...)
}

// XMLTo creates an XML builder whose direct calls write to w.
func XMLTo(w io.Writer, opts ...Option) *Builder {
	return New(XMLFlavor{}, append(opts, WithWriter(w))...)
}
