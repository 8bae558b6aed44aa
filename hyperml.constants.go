package hyperml

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Markup syntax fragments
const (
	SyntaxOpenTag      = "<"
	SyntaxCloseTag     = ">"
	SyntaxEndTagOpen   = "</"
	SyntaxSelfClose    = "/>"
	SyntaxSpace        = " "
	SyntaxAttrAssign   = `="`
	SyntaxAttrQuoteEnd = `"`
)

// CSS syntax fragments
const (
	CSSBlockOpen     = "{"
	CSSBlockClose    = "}"
	CSSPropSeparator = ":"
	CSSDeclEnd       = ";"
	CSSUnitSeparator = "."
	ClassSeparator   = " "
)

// Flavor names
const (
	FlavorNameXML  = "xml"
	FlavorNameHTML = "html"
)

// Error message constants
const (
	ErrMsgStackUnderflow       = "too many calls to close: no element is open"
	ErrMsgUnterminated         = "missing end element call, names left on stack"
	ErrMsgVoidElementEnded     = "void elements must not be ended"
	ErrMsgElementNameEmpty     = "element name must not be empty"
	ErrMsgAttrNameNil          = "attribute name must not be nil"
	ErrMsgAttrNameEmpty        = "attribute name must not be empty"
	ErrMsgHeadClosed           = "attribute written outside of an element head"
	ErrMsgSinkWrite            = "writing to sink failed"
	ErrMsgSinkFlush            = "flushing sink failed"
	ErrMsgDeclarationsOdd      = "declaration list length must be even"
	ErrMsgComponentAttribute   = "binding component attribute failed"
	ErrMsgDocumentParse        = "parsing document failed"
	ErrMsgDocumentNoElement    = "node has children but no element name"
	ErrMsgDocumentAttrsNotMap  = "attrs must be a mapping"
	ErrMsgDocumentMixedContent = "node must set exactly one of element, text or raw"
	ErrMsgMetricsRegister      = "registering metrics failed"
)

// Error code constants for categorization
const (
	ErrCodeStructure = "HYPERML_STRUCTURE"
	ErrCodeAttribute = "HYPERML_ATTRIBUTE"
	ErrCodeIO        = "HYPERML_IO"
	ErrCodeComponent = "HYPERML_COMPONENT"
	ErrCodeDocument  = "HYPERML_DOCUMENT"
	ErrCodeMetrics   = "HYPERML_METRICS"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyElement   = "element"
	MetaKeyAttribute = "attribute"
	MetaKeyStack     = "stack"
	MetaKeyDepth     = "depth"
	MetaKeyPath      = "path"
	MetaKeyCount     = "count"
	MetaKeyComponent = "component"
)

// Error format strings
const (
	ErrFmtWithName  = "%s: %s"
	ErrFmtWithStack = "%s: '%s'"
	StackSeparator  = ", "
)

// Log message constants
const (
	LogMsgBuilderCreated  = "builder created"
	LogMsgRenderStart     = "render started"
	LogMsgRenderEnd       = "render complete"
	LogMsgRenderFailed    = "render failed"
	LogMsgSinkFlushed     = "sink flushed"
	LogMsgBuilderFailed   = "builder failed, further calls are ignored"
	LogMsgComponentHosted = "component hosted"
	LogMsgDocumentLoaded  = "document loaded"
)

// Log field names
const (
	LogFieldFlavor    = "flavor"
	LogFieldElement   = "element"
	LogFieldDepth     = "depth"
	LogFieldFluent    = "fluent"
	LogFieldComponent = "component"
	LogFieldNodes     = "node_count"
)

// Metric names
const (
	MetricNamespace        = "hyperml"
	MetricElementsStarted  = "elements_started_total"
	MetricElementsClosed   = "elements_closed_total"
	MetricBytesWritten     = "bytes_written_total"
	MetricErrors           = "errors_total"
	MetricLabelFlavor      = "flavor"
	MetricLabelCode        = "code"
	MetricHelpStarted      = "Number of elements started."
	MetricHelpClosed       = "Number of elements closed."
	MetricHelpBytesWritten = "Number of bytes written to sinks."
	MetricHelpErrors       = "Number of structural errors by code."
)

// Struct tag used to bind element attributes to component fields
const ComponentAttrTag = "attr"
