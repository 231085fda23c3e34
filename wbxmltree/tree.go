// Package wbxmltree implements the labelled n-ary tree that both
// conversion directions build first and serialise from: WBXML parsing
// builds a Tree and an XML encoder walks it, XML parsing builds a Tree
// and a WBXML encoder walks it.
package wbxmltree

import "github.com/oma-wbxml/wbxmlconv/langtable"

// NodeType discriminates the five node shapes spec.md §3 allows.
type NodeType int

const (
	Element NodeType = iota
	Text
	CData
	Pi
	SubTree
)

// Tag is the two-variant tagged value from spec.md §9: either a
// reference to a known, static TagEntry, or an owned literal name the
// active dialect does not define a token for.
type Tag struct {
	Known   *langtable.TagEntry
	Literal []byte
}

// Name returns the tag's XML local name regardless of which variant
// it is.
func (t Tag) Name() string {
	if t.Known != nil {
		return t.Known.Name
	}
	return string(t.Literal)
}

// IsLiteral reports whether this Tag has no known table entry.
func (t Tag) IsLiteral() bool {
	return t.Known == nil
}

// AttributeName is the equivalent of Tag, over AttrEntry.
type AttributeName struct {
	Known   *langtable.AttrEntry
	Literal []byte
}

// Name returns the attribute's XML local name regardless of variant.
func (n AttributeName) Name() string {
	if n.Known != nil {
		return n.Known.Name
	}
	return string(n.Literal)
}

// IsLiteral reports whether this AttributeName has no known table entry.
func (n AttributeName) IsLiteral() bool {
	return n.Known == nil
}

// Attribute is a single name/value pair on an Element node. Value is
// always the full, reconstructed XML value — prefix tokens and
// attribute-value-entry segments have already been concatenated.
type Attribute struct {
	Name  AttributeName
	Value []byte
}

// Node is one entry in a Tree. Which fields are meaningful depends on
// Type: Element carries Tag/Attrs/children, Text and CData carry
// Content only, SubTree carries a nested Tree and nothing else.
type Node struct {
	Type NodeType

	Tag     Tag
	Attrs   []Attribute
	Content []byte
	Sub     *Tree

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	NextSibling *Node
	PrevSibling *Node
}

// Tree is the top-level owner of all its nodes.
type Tree struct {
	Language *langtable.LanguageRecord
	Root     *Node
	// Charset is the MIBenum the document was (or will be) declared
	// in; 0 means unspecified.
	Charset uint32
	// CodePage is a tag code page slot for callers that build a Tree by
	// hand. Neither tree builder in the convert package sets it, and the
	// encoders do not read it; they take pages from each Tag's entry.
	CodePage byte
}

// NewTree creates an empty tree for lang. lang may be nil for a tree
// under construction whose language has not been resolved yet.
func NewTree(lang *langtable.LanguageRecord) *Tree {
	return &Tree{Language: lang}
}

// NewNode creates a detached node of the given type.
func NewNode(typ NodeType) *Node {
	return &Node{Type: typ}
}

// AppendChild links child as the last child of parent. A Text child
// appended directly after another Text child is coalesced into that
// sibling's Content instead of being inserted as a new node — this
// mirrors the upstream XML parser's habit of splitting one run of
// characters into several CharData events, and downstream consumers
// (attribute matching, mixed-content detection) rely on the
// coalescing already having happened by the time they see the tree.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	if child.Type == Text && parent.LastChild != nil && parent.LastChild.Type == Text {
		parent.LastChild.Content = append(parent.LastChild.Content, child.Content...)
		return
	}
	child.Parent = parent
	child.PrevSibling = parent.LastChild
	child.NextSibling = nil
	if parent.LastChild != nil {
		parent.LastChild.NextSibling = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// ExtractNode unlinks n from its parent and sibling list without
// destroying it, returning n so the caller can relink it elsewhere.
// DestroyNode uses it to detach a node before dropping its children.
func ExtractNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else if n.Parent != nil {
		n.Parent.LastChild = n.PrevSibling
	}
	n.Parent = nil
	n.NextSibling = nil
	n.PrevSibling = nil
	return n
}

// Children returns n's direct children, in order.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// FindElement returns the first Element descendant of root named
// name. When recursive is false only root's direct children are
// considered; when true the whole subtree is searched depth-first.
func FindElement(root *Node, name string, recursive bool) *Node {
	if root == nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == Element && c.Tag.Name() == name {
			return c
		}
		if recursive && c.Type == Element {
			if found := FindElement(c, name, true); found != nil {
				return found
			}
		}
	}
	return nil
}

// DestroyNode unlinks n and drops its children. Go's garbage collector
// reclaims the memory; this exists for symmetry with callers that
// otherwise read as if nothing were ever freed, and so extracted
// subtrees that are discarded rather than relinked don't keep a
// dangling Parent pointer alive.
func DestroyNode(n *Node) {
	if n == nil {
		return
	}
	ExtractNode(n)
	n.FirstChild = nil
	n.LastChild = nil
	n.Sub = nil
}

// DestroyTree releases t's root. See DestroyNode.
func DestroyTree(t *Tree) {
	if t == nil {
		return
	}
	DestroyNode(t.Root)
	t.Root = nil
}
