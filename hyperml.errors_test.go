package hyperml

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackUnderflowError(t *testing.T) {
	err := NewStackUnderflowError()

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStackUnderflow)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, ErrCodeStructure, errorCode(err))
}

func TestNewUnterminatedStructureError(t *testing.T) {
	err := NewUnterminatedStructureError([]string{"li", "ul", "body"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'li, ul, body'")
	assert.True(t, errors.Is(err, ErrUnterminatedStructure))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	stack, ok := customErr.GetMetadata(MetaKeyStack)
	assert.True(t, ok)
	assert.Equal(t, "li, ul, body", stack)

	depth, ok := customErr.GetMetadata(MetaKeyDepth)
	assert.True(t, ok)
	assert.Equal(t, "3", depth)
}

func TestNewVoidElementCloseError(t *testing.T) {
	err := NewVoidElementCloseError("input")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgVoidElementEnded)
	assert.Contains(t, err.Error(), "input")

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	element, ok := customErr.GetMetadata(MetaKeyElement)
	assert.True(t, ok)
	assert.Equal(t, "input", element)
}

func TestNewInvalidAttributeNameError(t *testing.T) {
	t.Run("nil name", func(t *testing.T) {
		err := NewInvalidAttributeNameError("a", true)
		assert.Contains(t, err.Error(), ErrMsgAttrNameNil)
		assert.True(t, errors.Is(err, ErrInvalidAttributeName))
	})

	t.Run("empty name", func(t *testing.T) {
		err := NewInvalidAttributeNameError("a", false)
		assert.Contains(t, err.Error(), ErrMsgAttrNameEmpty)
		assert.Equal(t, ErrCodeAttribute, errorCode(err))
	})
}

func TestNewSinkError(t *testing.T) {
	cause := errors.New("broken pipe")
	err := NewSinkError(ErrMsgSinkWrite, cause)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSinkWrite)
	assert.True(t, errors.Is(err, ErrSinkWrite))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrCodeIO, errorCode(err))
}

func TestNewComponentAttributeError(t *testing.T) {
	cause := errors.New("cannot parse")
	err := NewComponentAttributeError("*hyperml.card", "size", cause)

	assert.True(t, errors.Is(err, ErrComponentAttribute))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrCodeComponent, errorCode(err))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	component, ok := customErr.GetMetadata(MetaKeyComponent)
	assert.True(t, ok)
	assert.Equal(t, "*hyperml.card", component)
}

func TestNewDocumentError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("yaml: bad indent")
		err := NewDocumentError(ErrMsgDocumentParse, "$", cause)

		assert.True(t, errors.Is(err, ErrInvalidDocument))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewDocumentError(ErrMsgDocumentNoElement, "$.children[1]", nil)

		assert.True(t, errors.Is(err, ErrInvalidDocument))
		assert.Contains(t, err.Error(), "$.children[1]")
		assert.Equal(t, ErrCodeDocument, errorCode(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		path, ok := customErr.GetMetadata(MetaKeyPath)
		assert.True(t, ok)
		assert.Equal(t, "$.children[1]", path)
	})
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"underflow", NewStackUnderflowError(), ErrCodeStructure},
		{"void close", NewVoidElementCloseError("br"), ErrCodeStructure},
		{"element name", NewInvalidElementNameError(nil), ErrCodeStructure},
		{"head closed", NewHeadClosedError("x"), ErrCodeStructure},
		{"declarations", NewInvalidDeclarationsError("body", 3), ErrCodeAttribute},
		{"unknown", errors.New("other"), ErrCodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorCode(tt.err))
		})
	}
}
