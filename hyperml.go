// Package hyperml writes well-formed nested markup (XML, HTML) from a flat
// sequence of calls, without building a tree first.
//
// A single call, E, does all the structural work:
//
//	b := hyperml.HTML()
//	b.E("html")
//	b.E("body", "onload", "init()")
//	b.E("h1", "class", "title", "hello world", hyperml.End)
//	b.E() // body
//	b.E() // html
//	out := b.String()
//	// <html><body onload="init()"><h1 class="title">hello world</h1></body></html>
//
// # Call Shapes
//
// E without arguments closes the innermost open element. Otherwise the first
// argument names the element and the rest are flattened (slices, iterators,
// channels, maps and pairs expand in place) and read by arity:
//
//   - a trailing End closes the element right away
//   - of the remaining values, an odd count makes the last one the element
//     value, written as escaped text
//   - the rest are attribute name/value pairs; nil values are skipped and
//     empty values are omitted
//
// # Rendering
//
// Calls issued directly on a builder go to its writer (WithWriter) or to an
// internal buffer read back by String. A builder created WithContent runs its
// construction function on every RenderTo or String instead:
//
//	page := hyperml.XML(hyperml.WithContent(func(b *hyperml.Builder) {
//	    b.E("note", "to", "you", "hello", hyperml.End)
//	}))
//	err := page.RenderTo(os.Stdout)
//
// Output is flushed each time the last open element is closed.
//
// # Errors
//
// Structural mistakes (closing with no open element, open elements left at
// the end of a render, ending a void element, empty attribute names) stop the
// builder: the first error is kept, later calls are ignored, and the error is
// returned by Err, Render and RenderTo. Every error wraps one of the Err*
// sentinels and is a *cuserr.CustomError carrying metadata such as the
// offending element.
//
// # Components
//
// The HTML flavor accepts a Component in place of an element name. Attributes
// matching its fields are decoded into it; HeadEnder, Starter and Ender let it
// add attributes and content around whatever the caller nests inside:
//
//	b.E(&Card{}, "title", "Hello", "id", "c1")
//	b.E("p", "body text", hyperml.End)
//	b.E()
//
// Other nested grammars plug in through ExtensionHook and WithExtensionHook.
//
// # Documents
//
// LoadDocument reads a YAML node tree whose Emit method replays it through a
// builder; the hyperml command renders such documents from the shell.
package hyperml
