package hyperml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementStack(t *testing.T) {
	var s elementStack
	assert.True(t, s.empty())
	assert.Equal(t, "", s.current())

	_, ok := s.pop()
	assert.False(t, ok)

	s.push(plainFrame("html"))
	s.push(plainFrame("body"))
	s.push(&extensionFrame{name: "body"})

	assert.Equal(t, 2, s.depth())
	assert.Equal(t, "body", s.current())
	assert.Equal(t, []string{"body", "html"}, s.openNames())

	f, ok := s.pop()
	require.True(t, ok)
	assert.IsType(t, &extensionFrame{}, f)

	f, ok = s.pop()
	require.True(t, ok)
	assert.Equal(t, plainFrame("body"), f)
	assert.Equal(t, "html", s.current())

	_, ok = s.pop()
	require.True(t, ok)
	assert.True(t, s.empty())
}
