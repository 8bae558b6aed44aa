package main

// Command names
const (
	CmdNameRoot    = "hyperml"
	CmdNameRender  = "render"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagFlavor      = "flavor"
	FlagSelfClosing = "self-closing"
	FlagVerbose     = "verbose"
	FlagFormat      = "format"
)

// Flag names - short form
const (
	FlagInputShort   = "i"
	FlagOutputShort  = "o"
	FlagFlavorShort  = "F"
	FlagVerboseShort = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFlavor = "html"
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess      = 0
	ExitCodeError        = 1
	ExitCodeUsageError   = 2
	ExitCodeInputError   = 4
	ExitCodeDocumentFail = 5
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages
const (
	ErrMsgUsage             = "invalid usage"
	ErrMsgMissingInput      = "document source required"
	ErrMsgUnknownFlavor     = "unknown flavor"
	ErrMsgReadFileFailed    = "failed to read document"
	ErrMsgLoadFailed        = "document loading failed"
	ErrMsgRenderFailed      = "rendering failed"
	ErrMsgCreateFileFailed  = "failed to create output file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgLoggerFailed      = "failed to create logger"
)

// Help texts
const (
	HelpRootShort   = "Render markup documents"
	HelpRootLong    = `hyperml renders XML and HTML from YAML node documents.`
	HelpRenderShort = "Render a YAML node document as markup"
	HelpRenderLong  = `Render a YAML node document as XML or HTML.

A node sets exactly one of element, text or raw:

    element: html
    attrs:
      lang: en
    children:
      - element: p
        text: Hello

Examples:
    hyperml render -i page.yaml
    hyperml render -i page.yaml -F xml -o page.xml
    cat page.yaml | hyperml render -i -`
	HelpVersionShort = "Print the version number of hyperml"

	HelpFlagInput       = `document file (use "-" for stdin)`
	HelpFlagOutput      = "output file (default: stdout)"
	HelpFlagFlavor      = "markup flavor: xml, html"
	HelpFlagSelfClosing = "write empty elements as <name/>"
	HelpFlagVerbose     = "log builder activity to stderr"
	HelpFlagFormat      = "output format: text, json"
)

// Version output format templates
const (
	VersionTextTemplate = "hyperml version %s\nGo: %s"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtErrorPlain     = "%s: %v"
	FmtNewline        = "\n"
)
