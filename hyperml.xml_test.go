package hyperml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXML(t *testing.T) {
	out := XML().
		E("xml").
		E("content", End).
		E().
		String()

	assert.Equal(t, "<xml><content></content></xml>", out)
}

func TestXMLFlavor(t *testing.T) {
	f := XMLFlavor{}

	assert.Equal(t, FlavorNameXML, f.Name())
	assert.False(t, f.IsVoidElement("br"))
	assert.True(t, f.EscapeText("script"))
	assert.Equal(t, NopHook{}, f.ExtensionHook(nil))
}

func TestXML_NoVoidElements(t *testing.T) {
	b := XML()
	b.E("input", End)

	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "<input></input>", out)
}

func TestXML_ScriptIsEscaped(t *testing.T) {
	out := XML().E("script", "a < b", End).String()
	assert.Equal(t, "<script>a &lt; b</script>", out)
}

func TestXML_BooleanAttributesAreText(t *testing.T) {
	out := XML().E("a", "x", true, "y", false, End).String()
	assert.Equal(t, `<a x="true" y="false"></a>`, out)
}
