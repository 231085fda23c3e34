package wbxmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oma-wbxml/wbxmlconv/langtable"
)

func TestAppendChildCoalescesConsecutiveText(t *testing.T) {
	parent := NewNode(Element)
	AppendChild(parent, &Node{Type: Text, Content: []byte("foo")})
	AppendChild(parent, &Node{Type: Text, Content: []byte("bar")})
	kids := Children(parent)
	require.Len(t, kids, 1)
	assert.Equal(t, "foobar", string(kids[0].Content))
}

func TestAppendChildCoalescesThreeRuns(t *testing.T) {
	parent := NewNode(Element)
	AppendChild(parent, &Node{Type: Text, Content: []byte("a")})
	AppendChild(parent, &Node{Type: Text, Content: []byte("b")})
	AppendChild(parent, &Node{Type: Text, Content: []byte("c")})
	kids := Children(parent)
	require.Len(t, kids, 1)
	assert.Equal(t, "abc", string(kids[0].Content))
}

func TestAppendChildDoesNotCoalesceAcrossElement(t *testing.T) {
	parent := NewNode(Element)
	AppendChild(parent, &Node{Type: Text, Content: []byte("a")})
	AppendChild(parent, &Node{Type: Element, Tag: Tag{Literal: []byte("br")}})
	AppendChild(parent, &Node{Type: Text, Content: []byte("b")})
	kids := Children(parent)
	require.Len(t, kids, 3)
	assert.Equal(t, Text, kids[0].Type)
	assert.Equal(t, Element, kids[1].Type)
	assert.Equal(t, Text, kids[2].Type)
}

func TestExtractNodeMiddleOfSiblingList(t *testing.T) {
	parent := NewNode(Element)
	a := &Node{Type: Element, Tag: Tag{Literal: []byte("a")}}
	b := &Node{Type: Element, Tag: Tag{Literal: []byte("b")}}
	c := &Node{Type: Element, Tag: Tag{Literal: []byte("c")}}
	AppendChild(parent, a)
	AppendChild(parent, b)
	AppendChild(parent, c)

	ExtractNode(b)

	kids := Children(parent)
	require.Len(t, kids, 2)
	assert.Same(t, a, kids[0])
	assert.Same(t, c, kids[1])
	assert.Nil(t, b.Parent)
}

func TestFindElementDirectVsRecursive(t *testing.T) {
	root := NewNode(Element)
	root.Tag = Tag{Literal: []byte("root")}
	mid := &Node{Type: Element, Tag: Tag{Literal: []byte("mid")}}
	AppendChild(root, mid)
	deep := &Node{Type: Element, Tag: Tag{Literal: []byte("deep")}}
	AppendChild(mid, deep)

	assert.Nil(t, FindElement(root, "deep", false))
	assert.Same(t, deep, FindElement(root, "deep", true))
	assert.Same(t, mid, FindElement(root, "mid", false))
}

func TestTagNameKnownVsLiteral(t *testing.T) {
	known := Tag{Known: &langtable.TagEntry{Name: "si"}}
	lit := Tag{Literal: []byte("custom")}
	assert.Equal(t, "si", known.Name())
	assert.False(t, known.IsLiteral())
	assert.Equal(t, "custom", lit.Name())
	assert.True(t, lit.IsLiteral())
}

func TestExtractNodeForSubtreeSplice(t *testing.T) {
	outer := NewNode(Element)
	placeholder := &Node{Type: SubTree, Sub: NewTree(nil)}
	AppendChild(outer, placeholder)

	extracted := ExtractNode(placeholder)
	require.Same(t, placeholder, extracted)
	assert.Nil(t, outer.FirstChild)
}
