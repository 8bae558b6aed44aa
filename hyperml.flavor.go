package hyperml

// Flavor supplies the rules of a concrete markup language.
type Flavor interface {
	// Name identifies the flavor in logs and metrics.
	Name() string

	// IsVoidElement reports whether name can hold neither content nor an end
	// tag. Void elements are never pushed on the element stack.
	IsVoidElement(name string) bool

	// EscapeText reports whether text written inside element is escaped.
	// element is "" at the top level.
	EscapeText(element string) bool

	// ExtensionHook returns the hook consulted for a start call on b.
	ExtensionHook(b *Builder) ExtensionHook
}

// AttributePolicy is an optional Flavor extension controlling how attribute
// values are rendered.
type AttributePolicy interface {
	// WriteAttribute reports whether an attribute with value is written at all.
	WriteAttribute(value any) bool

	// WriteAttributeValue reports whether the ="value" part is written, as
	// opposed to the bare attribute name.
	WriteAttributeValue(value any) bool
}
