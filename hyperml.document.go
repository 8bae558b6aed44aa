package hyperml

import (
	"io"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Document path formatting
const (
	docPathRoot     = "$"
	docPathChildren = ".children["
	docPathIndexEnd = "]"
)

// Node is one node of a markup document described in YAML:
//
//	element: html
//	attrs:
//	  lang: en
//	children:
//	  - element: h1
//	    text: Hello
//	  - text: plain text
//	  - raw: <hr>
//
// An element node may carry text, which becomes the element value. Nodes
// without element write their text (escaped) or raw content directly.
type Node struct {
	Element  string
	Attrs    *Attrs
	Text     *string
	Raw      *string
	Children []*Node
}

// Document is a loaded node tree.
type Document struct {
	Root *Node
}

// documentNode is the YAML shape of a Node. Attrs stays a yaml.Node so the
// attribute order of the source is kept.
type documentNode struct {
	Element  string          `yaml:"element"`
	Attrs    yaml.Node       `yaml:"attrs"`
	Text     *string         `yaml:"text"`
	Raw      *string         `yaml:"raw"`
	Children []*documentNode `yaml:"children"`
}

// LoadDocument reads a YAML (or JSON) document from r.
func LoadDocument(r io.Reader) (*Document, error) {
	var raw documentNode
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentParse, docPathRoot, err)
	}

	root, err := convertNode(&raw, docPathRoot)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

func convertNode(raw *documentNode, path string) (*Node, error) {
	kinds := 0
	for _, set := range []bool{raw.Element != "", raw.Raw != nil, raw.Text != nil && raw.Element == ""} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		if raw.Element == "" && len(raw.Children) > 0 {
			return nil, NewDocumentError(ErrMsgDocumentNoElement, path, nil)
		}
		return nil, NewDocumentError(ErrMsgDocumentMixedContent, path, nil)
	}

	node := &Node{
		Element: raw.Element,
		Text:    raw.Text,
		Raw:     raw.Raw,
	}

	if raw.Attrs.Kind != 0 {
		attrs, err := convertAttrs(&raw.Attrs, path)
		if err != nil {
			return nil, err
		}
		node.Attrs = attrs
	}

	for i, c := range raw.Children {
		child, err := convertNode(c, path+docPathChildren+strconv.Itoa(i)+docPathIndexEnd)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

func convertAttrs(n *yaml.Node, path string) (*Attrs, error) {
	if n.Kind != yaml.MappingNode {
		return nil, NewDocumentError(ErrMsgDocumentAttrsNotMap, path, nil)
	}

	attrs := orderedmap.New[string, any]()
	for i := 0; i+1 < len(n.Content); i += 2 {
		var value any
		if err := n.Content[i+1].Decode(&value); err != nil {
			return nil, NewDocumentError(ErrMsgDocumentParse, path, err)
		}
		attrs.Set(n.Content[i].Value, value)
	}
	return attrs, nil
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	return countNodes(d.Root)
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

// Emit replays the document through b. It can be used as a construction
// function:
//
//	b := hyperml.HTML(hyperml.WithContent(doc.Emit))
func (d *Document) Emit(b *Builder) {
	emitNode(b, d.Root)
}

func emitNode(b *Builder, n *Node) {
	switch {
	case n == nil:
		return
	case n.Raw != nil:
		b.Raw(*n.Raw)
		return
	case n.Element == "":
		b.Text(*n.Text)
		return
	}

	params := make([]any, 0, 3)
	if n.Attrs != nil {
		params = append(params, n.Attrs)
	}
	if n.Text != nil {
		// odd arity marks the element value; the attrs map flattens to pairs
		params = append(params, *n.Text)
	}
	if len(n.Children) == 0 {
		if !b.Flavor().IsVoidElement(n.Element) {
			params = append(params, End)
		}
		b.Start(n.Element, params...)
		return
	}

	b.Start(n.Element, params...)
	for _, c := range n.Children {
		emitNode(b, c)
	}
	b.Close()
}
