package hyperml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Sentinel errors. Every error returned by this package wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrUnterminatedStructure = errors.New("unterminated structure")
	ErrVoidElementClose      = errors.New("void element close")
	ErrInvalidElementName    = errors.New("invalid element name")
	ErrInvalidAttributeName  = errors.New("invalid attribute name")
	ErrHeadClosed            = errors.New("element head closed")
	ErrSinkWrite             = errors.New("sink write")
	ErrInvalidDeclarations   = errors.New("invalid declarations")
	ErrComponentAttribute    = errors.New("component attribute")
	ErrInvalidDocument       = errors.New("invalid document")
)

// NewStackUnderflowError creates the error for a close call on an empty stack.
func NewStackUnderflowError() error {
	return cuserr.WrapStdError(ErrStackUnderflow, ErrCodeStructure, ErrMsgStackUnderflow).
		WithMetadata(MetaKeyDepth, "0")
}

// NewUnterminatedStructureError creates the error for a build that ended
// with open elements. names must be ordered innermost first.
func NewUnterminatedStructureError(names []string) error {
	joined := strings.Join(names, StackSeparator)
	return cuserr.WrapStdError(ErrUnterminatedStructure, ErrCodeStructure,
		fmt.Sprintf(ErrFmtWithStack, ErrMsgUnterminated, joined)).
		WithMetadata(MetaKeyStack, joined).
		WithMetadata(MetaKeyDepth, strconv.Itoa(len(names)))
}

// NewVoidElementCloseError creates the error for ending a void element.
func NewVoidElementCloseError(name string) error {
	return cuserr.WrapStdError(ErrVoidElementClose, ErrCodeStructure,
		fmt.Sprintf(ErrFmtWithName, ErrMsgVoidElementEnded, name)).
		WithMetadata(MetaKeyElement, name)
}

// NewInvalidElementNameError creates the error for a start call whose
// element name resolves to empty text.
func NewInvalidElementNameError(handle any) error {
	return cuserr.WrapStdError(ErrInvalidElementName, ErrCodeStructure, ErrMsgElementNameEmpty).
		WithMetadata(MetaKeyElement, fmt.Sprintf("%T", handle))
}

// NewInvalidAttributeNameError creates the error for a nil or empty
// attribute name on the given element.
func NewInvalidAttributeNameError(element string, isNil bool) error {
	msg := ErrMsgAttrNameEmpty
	if isNil {
		msg = ErrMsgAttrNameNil
	}
	return cuserr.WrapStdError(ErrInvalidAttributeName, ErrCodeAttribute,
		fmt.Sprintf(ErrFmtWithName, msg, element)).
		WithMetadata(MetaKeyElement, element)
}

// NewHeadClosedError creates the error for an attribute written while no
// element head is open.
func NewHeadClosedError(attribute string) error {
	return cuserr.WrapStdError(ErrHeadClosed, ErrCodeStructure,
		fmt.Sprintf(ErrFmtWithName, ErrMsgHeadClosed, attribute)).
		WithMetadata(MetaKeyAttribute, attribute)
}

// NewSinkError wraps an I/O failure of the destination sink.
func NewSinkError(msg string, cause error) error {
	return cuserr.WrapStdError(fmt.Errorf("%w: %w", ErrSinkWrite, cause), ErrCodeIO, msg)
}

// NewInvalidDeclarationsError creates the error for an odd-length CSS or
// style declaration list.
func NewInvalidDeclarationsError(selector string, count int) error {
	return cuserr.WrapStdError(ErrInvalidDeclarations, ErrCodeAttribute,
		fmt.Sprintf(ErrFmtWithName, ErrMsgDeclarationsOdd, selector)).
		WithMetadata(MetaKeyElement, selector).
		WithMetadata(MetaKeyCount, strconv.Itoa(count))
}

// NewComponentAttributeError wraps a failure to bind an attribute to a
// component field.
func NewComponentAttributeError(component, attribute string, cause error) error {
	return cuserr.WrapStdError(fmt.Errorf("%w: %w", ErrComponentAttribute, cause), ErrCodeComponent,
		fmt.Sprintf(ErrFmtWithName, ErrMsgComponentAttribute, attribute)).
		WithMetadata(MetaKeyComponent, component).
		WithMetadata(MetaKeyAttribute, attribute)
}

// NewDocumentError creates a document loading error for the node at path.
func NewDocumentError(msg, path string, cause error) error {
	wrapped := ErrInvalidDocument
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrInvalidDocument, cause)
	}
	return cuserr.WrapStdError(wrapped, ErrCodeDocument, fmt.Sprintf(ErrFmtWithName, msg, path)).
		WithMetadata(MetaKeyPath, path)
}

// errorCode maps err onto one of the ErrCode constants.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrStackUnderflow),
		errors.Is(err, ErrUnterminatedStructure),
		errors.Is(err, ErrVoidElementClose),
		errors.Is(err, ErrHeadClosed),
		errors.Is(err, ErrInvalidElementName):
		return ErrCodeStructure
	case errors.Is(err, ErrInvalidAttributeName),
		errors.Is(err, ErrInvalidDeclarations):
		return ErrCodeAttribute
	case errors.Is(err, ErrComponentAttribute):
		return ErrCodeComponent
	case errors.Is(err, ErrInvalidDocument):
		return ErrCodeDocument
	default:
		return ErrCodeIO
	}
}
