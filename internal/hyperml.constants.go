package internal

// Markup metacharacters and their entity replacements
const (
	CharQuote     = '"'
	CharAmpersand = '&'
	CharLess      = '<'
	CharGreater   = '>'

	EntityQuote     = "&quot;"
	EntityAmpersand = "&amp;"
	EntityLess      = "&lt;"
	EntityGreater   = "&gt;"

	// EscapeChars lists every character Escape replaces.
	EscapeChars = `"&<>`
)

// Reflective access to github.com/wk8/go-ordered-map/v2 instantiations
const (
	orderedMapPkgPath  = "github.com/wk8/go-ordered-map/v2"
	orderedMapTypeName = "OrderedMap["
	orderedMapOldest   = "Oldest"
	orderedMapNext     = "Next"
	orderedMapKey      = "Key"
	orderedMapValue    = "Value"
)

// escapeGrowth is the extra capacity reserved when an escape is needed.
const escapeGrowth = 16

// String constants
const (
	StringValueEmpty = ""
)
