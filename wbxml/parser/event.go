// Package parser turns a WBXML byte document into a stream of
// SAX-style events, resolving code pages, the string table, and
// attribute value reconstruction along the way. It does not build a
// tree; wbxmltree construction is the caller's job (see the convert
// package), matching spec.md §4.3's "both directions build the tree
// first" by keeping this layer a pure, tree-agnostic tokenizer.
package parser

import (
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// Event is one token in the stream a Parser produces. It is one of
// StartDocument, StartElement, EndElement, Characters, Opaque,
// ProcessingInstruction, or EndDocument.
type Event interface {
	isEvent()
}

// StartDocument is always the first event, carrying the resolved
// charset and language once the header has been read in full.
type StartDocument struct {
	Charset  uint32
	Language *langtable.LanguageRecord
}

// StartElement opens an element. Empty is true when the tag byte had
// the has-content bit clear, whether or not it carried attributes.
type StartElement struct {
	Tag   wbxmltree.Tag
	Attrs []wbxmltree.Attribute
	Empty bool
}

// EndElement closes the most recently opened, not-yet-closed element.
type EndElement struct {
	Tag      wbxmltree.Tag
	WasEmpty bool
}

// Characters carries decoded, UTF-8 inline or string-table text,
// already reassembled from any run of adjacent STR_I/STR_T/ENTITY
// tokens (spec.md §4.4: "emitting characters for strings").
type Characters []byte

// Opaque carries one OPAQUE block's raw bytes, kept distinct from
// Characters because the tree builder must decide, from context (a
// binary-tagged element, a CData node, or a SyncML nested
// sub-document), how to interpret them.
type Opaque []byte

// ProcessingInstruction carries a parsed PI's target and its
// attribute-style data already reconstructed into a value string.
type ProcessingInstruction struct {
	Target string
	Data   string
}

// EndDocument is always the last event in a successful parse.
type EndDocument struct{}

func (StartDocument) isEvent()         {}
func (StartElement) isEvent()          {}
func (EndElement) isEvent()            {}
func (Characters) isEvent()            {}
func (Opaque) isEvent()                {}
func (ProcessingInstruction) isEvent() {}
func (EndDocument) isEvent()           {}
