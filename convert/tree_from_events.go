package convert

import (
	"github.com/oma-wbxml/wbxmlconv/wbxml/parser"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// eventsToTree drains p, building the wbxmltree.Tree its event stream
// describes. Every Opaque block is handed to recognizeEmbeddedDocument,
// which recovers a nested SyncML DevInf/MgmtTree sub-document from the
// block's own bytes when present — the reverse of wbxml/encoder's
// OPAQUE nested-document emission — and otherwise keeps it as raw
// opaque content.
func eventsToTree(p *parser.Parser) (*wbxmltree.Tree, error) {
	tree := &wbxmltree.Tree{}
	var stack []*wbxmltree.Node

	for {
		ev, err := p.Token()
		if err != nil {
			return nil, err
		}

		switch e := ev.(type) {
		case parser.StartDocument:
			tree.Language = e.Language
			tree.Charset = e.Charset

		case parser.StartElement:
			n := wbxmltree.NewNode(wbxmltree.Element)
			n.Tag = e.Tag
			n.Attrs = e.Attrs
			if len(stack) == 0 {
				tree.Root = n
			} else {
				wbxmltree.AppendChild(stack[len(stack)-1], n)
			}
			if !e.Empty {
				stack = append(stack, n)
			}

		case parser.EndElement:
			if !e.WasEmpty && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case parser.Characters:
			if len(stack) == 0 {
				continue
			}
			wbxmltree.AppendChild(stack[len(stack)-1], &wbxmltree.Node{
				Type:    wbxmltree.Text,
				Content: []byte(e),
			})

		case parser.Opaque:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			n, err := recognizeEmbeddedDocument(parent, []byte(e))
			if err != nil {
				return nil, err
			}
			wbxmltree.AppendChild(parent, n)

		case parser.ProcessingInstruction:
			n := &wbxmltree.Node{
				Type:    wbxmltree.Pi,
				Tag:     wbxmltree.Tag{Literal: []byte(e.Target)},
				Content: []byte(e.Data),
			}
			if len(stack) == 0 {
				continue
			}
			wbxmltree.AppendChild(stack[len(stack)-1], n)

		case parser.EndDocument:
			if tree.Root == nil {
				return nil, wbxmlerr.New(wbxmlerr.EmptyDocument, "document has no root element")
			}
			return tree, nil
		}
	}
}

// recognizeEmbeddedDocument decides whether an OPAQUE block found
// directly inside parent is a nested WBXML sub-document or genuinely
// opaque payload (a binary-tagged element's content, or unrecognised
// data stored verbatim). encodeSubTree wraps the nested Tree's own
// root (DevInf/MgmtTree) and its full independent header/body inside
// the OPAQUE block — parent is whatever element carries that block
// (SyncBody, Item, Data, ...), never DevInf/MgmtTree itself — so the
// identity has to be read off the decoded payload's own root tag, not
// off parent. A binary-tagged parent is checked first so a legitimate
// binary blob that happens to decode as a well-formed WBXML document
// is never mistaken for one.
func recognizeEmbeddedDocument(parent *wbxmltree.Node, raw []byte) (*wbxmltree.Node, error) {
	if parent.Tag.Known != nil && parent.Tag.Known.BinaryBase64 {
		return &wbxmltree.Node{Type: wbxmltree.Text, Content: raw}, nil
	}
	if sub, ok := trySpeculativeEmbeddedDocument(raw); ok {
		return &wbxmltree.Node{Type: wbxmltree.SubTree, Sub: sub}, nil
	}
	return &wbxmltree.Node{Type: wbxmltree.CData, Content: raw}, nil
}

// trySpeculativeEmbeddedDocument attempts to parse raw as a standalone
// WBXML document and reports success only if it parses cleanly and its
// own root element is one of the SyncML embedded-document roots
// (DevInf/MgmtTree). A parse failure, or a root tag outside that set,
// is not an error here: it just means raw is ordinary opaque content.
func trySpeculativeEmbeddedDocument(raw []byte) (*wbxmltree.Tree, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	sub, err := ParseWBXMLTree(raw)
	if err != nil || sub.Root == nil || sub.Root.Type != wbxmltree.Element {
		return nil, false
	}
	if _, ok := isEmbeddedDocumentBoundary(sub.Root.Tag.Name()); !ok {
		return nil, false
	}
	return sub, true
}

// ParseWBXMLTree parses data into a standalone tree, the building
// block both the top-level ToXML path and nested sub-document
// recognition share.
func ParseWBXMLTree(data []byte, opts ...parser.ParserOption) (*wbxmltree.Tree, error) {
	p := parser.NewParser(data, opts...)
	return eventsToTree(p)
}
