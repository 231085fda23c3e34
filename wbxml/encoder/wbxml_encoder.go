// Package encoder walks a wbxmltree.Tree and serialises it, either as
// WBXML bytes or as XML text.
package encoder

import (
	"io"
	"strings"

	"github.com/oma-wbxml/wbxmlconv/buffer"
	"github.com/oma-wbxml/wbxmlconv/internal/charset"
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxml"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// EncodeConfig controls WBXML-bytes serialisation (spec.md §4.5, §4.6).
type EncodeConfig struct {
	Version uint8
	// Anonymous forces public_id = 1 and skips literal public-id
	// expansion regardless of the tree's language.
	Anonymous bool
	// StringTable turns the pre-pass heuristic string table on. When
	// false, any literal tag/attribute name or literal public id fails
	// the encode with wbxmlerr.StringTableDisabled.
	StringTable bool
	// ForcedCharset overrides the tree's declared charset for both the
	// header field and outgoing string conversion. 0 means "use the
	// tree's Charset, defaulting to UTF-8".
	ForcedCharset uint32
	// IgnoreEmptyText skips a Text node whose content, after any
	// TrimWhitespace trimming, is empty (spec.md §4.5's "ignore empty
	// text" option).
	IgnoreEmptyText bool
	// TrimWhitespace strips leading/trailing whitespace from a Text
	// node's content before emission (spec.md §4.5's "remove text
	// blanks" option). It never applies inside a binary-option element
	// or to CData, since trimming there would corrupt non-text content.
	TrimWhitespace bool
}

type wbxmlEncoder struct {
	cfg     EncodeConfig
	lang    *langtable.LanguageRecord
	charset uint32
	strtbl  *stringTable
	body    *buffer.Buffer

	tagPage  byte
	attrPage byte
}

// EncodeWBXML serialises t into the WBXML wire format described in
// spec.md §6, writing the result to w.
func EncodeWBXML(w io.Writer, t *wbxmltree.Tree, cfg EncodeConfig) error {
	if t == nil || t.Root == nil {
		return wbxmlerr.New(wbxmlerr.BadParameter, "nil tree or root")
	}
	enc := &wbxmlEncoder{
		cfg:    cfg,
		lang:   t.Language,
		strtbl: newStringTable(cfg.StringTable),
		body:   buffer.New(256),
	}
	if enc.lang == nil {
		lang, _ := langtable.ByID(langtable.Generic)
		enc.lang = lang
	}
	if cfg.ForcedCharset != charset.Unspecified {
		enc.charset = cfg.ForcedCharset
	} else if t.Charset != charset.Unspecified {
		enc.charset = t.Charset
	} else {
		enc.charset = charset.MIBUTF8
	}

	forced := map[string]bool{}
	literalPublicID := !cfg.Anonymous && enc.lang.PublicID == 0 && enc.lang.PublicIDString != ""
	if literalPublicID {
		forced[enc.lang.PublicIDString] = true
		enc.strtbl.count(enc.lang.PublicIDString)
	}
	if err := enc.collectCandidates(t.Root, forced); err != nil {
		return err
	}
	if !cfg.StringTable && len(forced) > 0 {
		return wbxmlerr.New(wbxmlerr.StringTableDisabled, "document requires literal names but the string table is disabled")
	}
	enc.strtbl.finalize(forced)

	header := buffer.New(32)
	header.AppendByte(cfg.Version)
	switch {
	case cfg.Anonymous:
		header.AppendMBUint32(wbxml.EncodeMBUint32(1))
	case enc.lang.PublicID != 0:
		header.AppendMBUint32(wbxml.EncodeMBUint32(enc.lang.PublicID))
	default:
		off, ok := enc.strtbl.offsetOf(enc.lang.PublicIDString)
		if !ok {
			return wbxmlerr.New(wbxmlerr.StringTableDisabled, "literal public id requires the string table")
		}
		header.AppendMBUint32(wbxml.EncodeMBUint32(0))
		header.AppendMBUint32(wbxml.EncodeMBUint32(off))
	}
	header.AppendMBUint32(wbxml.EncodeMBUint32(enc.charset))
	header.AppendMBUint32(wbxml.EncodeMBUint32(uint32(len(enc.strtbl.blob))))
	header.AppendBytes(enc.strtbl.blob)

	if err := enc.encodeNode(t.Root); err != nil {
		return err
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return wbxmlerr.Wrap(wbxmlerr.AppendFailed, err, "write header")
	}
	if _, err := w.Write(enc.body.Bytes()); err != nil {
		return wbxmlerr.Wrap(wbxmlerr.AppendFailed, err, "write body")
	}
	return nil
}

// collectCandidates is the string-table pre-pass of spec.md §4.5: walk
// the tree once, recording every literal tag/attribute name as forced
// and every text/residual-attribute-value string as a frequency
// candidate.
func (e *wbxmlEncoder) collectCandidates(n *wbxmltree.Node, forced map[string]bool) error {
	if n == nil {
		return nil
	}
	switch n.Type {
	case wbxmltree.Element:
		if n.Tag.IsLiteral() {
			forced[n.Tag.Name()] = true
			e.strtbl.count(n.Tag.Name())
		}
		for _, a := range n.Attrs {
			if a.Name.IsLiteral() {
				forced[a.Name.Name()] = true
				e.strtbl.count(a.Name.Name())
			}
			_, tail := e.attrResidual(a)
			e.strtbl.count(tail)
		}
	case wbxmltree.Text:
		e.strtbl.count(string(n.Content))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := e.collectCandidates(c, forced); err != nil {
			return err
		}
	}
	return nil
}

// attrResidual returns the attribute-value-entry segments matched
// (for token accounting during emission) and the final unmatched tail
// that must be emitted as an inline or table-referenced string.
func (e *wbxmlEncoder) attrResidual(a wbxmltree.Attribute) ([]*langtable.AttrValueEntry, string) {
	value := string(a.Value)
	if !a.Name.IsLiteral() {
		if entry, ok := e.lang.FindAttr(a.Name.Name(), value); ok {
			value = value[len(entry.ValuePrefix):]
		}
	}
	var segments []*langtable.AttrValueEntry
	for len(value) > 0 {
		seg, ok := e.lang.FindAttrValueSegment(value)
		if !ok {
			break
		}
		segments = append(segments, seg)
		value = value[len(seg.Value):]
	}
	return segments, value
}

func (e *wbxmlEncoder) switchTagPage(page byte) {
	if page != e.tagPage {
		e.body.AppendByte(wbxml.SwitchPage)
		e.body.AppendByte(page)
		e.tagPage = page
	}
}

func (e *wbxmlEncoder) switchAttrPage(page byte) {
	if page != e.attrPage {
		e.body.AppendByte(wbxml.SwitchPage)
		e.body.AppendByte(page)
		e.attrPage = page
	}
}

// encodeNode emits one tree node and, for Element nodes, its full
// subtree (spec.md §4.5 body emission).
func (e *wbxmlEncoder) encodeNode(n *wbxmltree.Node) error {
	switch n.Type {
	case wbxmltree.Element:
		return e.encodeElement(n)
	case wbxmltree.Text:
		return e.encodeText(n)
	case wbxmltree.CData:
		return e.encodeOpaqueBytes(n.Content)
	case wbxmltree.SubTree:
		return e.encodeSubTree(n)
	case wbxmltree.Pi:
		return e.encodePI(n)
	}
	return nil
}

func (e *wbxmlEncoder) encodeElement(n *wbxmltree.Node) error {
	hasAttr := len(n.Attrs) > 0
	hasContent := n.FirstChild != nil

	if n.Tag.IsLiteral() {
		e.body.AppendByte(wbxml.MakeLiteralTag(hasAttr, hasContent))
		off, ok := e.strtbl.offsetOf(n.Tag.Name())
		if !ok {
			return wbxmlerr.New(wbxmlerr.StringTableDisabled, "literal tag requires the string table")
		}
		e.body.AppendMBUint32(wbxml.EncodeMBUint32(off))
	} else {
		e.switchTagPage(n.Tag.Known.Page)
		e.body.AppendByte(byte(wbxml.MakeTag(n.Tag.Known.Code, hasAttr, hasContent)))
	}

	if hasAttr {
		if err := e.encodeAttributes(n.Attrs); err != nil {
			return err
		}
	}

	if !hasContent {
		return nil
	}
	if n.Tag.Known != nil && n.Tag.Known.BinaryBase64 {
		if err := e.encodeBinaryContent(n); err != nil {
			return err
		}
		e.body.AppendByte(wbxml.End)
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := e.encodeNode(c); err != nil {
			return err
		}
	}
	e.body.AppendByte(wbxml.End)
	return nil
}

// encodeBinaryContent emits the single child text node of a
// binary/base64-tagged element as one OPAQUE block of raw bytes
// (spec.md §4.5's "must not base64-encode again": the content has
// already been decoded into the tree by the XML-reading side).
func (e *wbxmlEncoder) encodeBinaryContent(n *wbxmltree.Node) error {
	var raw []byte
	if n.FirstChild != nil && n.FirstChild.Type == wbxmltree.Text {
		raw = n.FirstChild.Content
	}
	if len(raw) == 0 {
		return nil
	}
	return e.encodeOpaqueBytes(raw)
}

func (e *wbxmlEncoder) encodeOpaqueBytes(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	e.body.AppendByte(wbxml.Opaque)
	e.body.AppendMBUint32(wbxml.EncodeMBUint32(uint32(len(raw))))
	e.body.AppendBytes(raw)
	return nil
}

// encodeSubTree emits a nested Tree as an OPAQUE block wrapping a full
// WBXML sub-document, the SyncML embedded-document mechanism (spec.md
// §4.5, §8 scenario 6).
func (e *wbxmlEncoder) encodeSubTree(n *wbxmltree.Node) error {
	if n.Sub == nil {
		return nil
	}
	nested := buffer.New(64)
	if err := EncodeWBXML(nestedWriter{nested}, n.Sub, EncodeConfig{
		Version:     e.cfg.Version,
		StringTable: e.cfg.StringTable,
	}); err != nil {
		return err
	}
	return e.encodeOpaqueBytes(nested.Bytes())
}

// nestedWriter adapts *buffer.Buffer to io.Writer for the recursive
// EncodeWBXML call above.
type nestedWriter struct{ buf *buffer.Buffer }

func (w nestedWriter) Write(p []byte) (int, error) {
	w.buf.AppendBytes(p)
	return len(p), nil
}

func (e *wbxmlEncoder) encodeText(n *wbxmltree.Node) error {
	s := string(n.Content)
	if e.cfg.TrimWhitespace {
		s = strings.TrimSpace(s)
	}
	if len(s) == 0 && e.cfg.IgnoreEmptyText {
		return nil
	}
	return e.emitStringOrTableRef(s)
}

func (e *wbxmlEncoder) emitStringOrTableRef(s string) error {
	if off, ok := e.strtbl.offsetOf(s); ok {
		e.body.AppendByte(wbxml.StrT)
		e.body.AppendMBUint32(wbxml.EncodeMBUint32(off))
		return nil
	}
	raw, err := charset.FromUTF8([]byte(s), e.charset)
	if err != nil {
		return err
	}
	e.body.AppendByte(wbxml.StrI)
	e.body.AppendBytes(raw)
	e.body.AppendByte(0x00)
	return nil
}

func (e *wbxmlEncoder) encodeAttributes(attrs []wbxmltree.Attribute) error {
	for _, a := range attrs {
		if a.Name.IsLiteral() {
			e.body.AppendByte(wbxml.Literal)
			off, ok := e.strtbl.offsetOf(a.Name.Name())
			if !ok {
				return wbxmlerr.New(wbxmlerr.StringTableDisabled, "literal attribute requires the string table")
			}
			e.body.AppendMBUint32(wbxml.EncodeMBUint32(off))
		} else {
			entry, ok := e.lang.FindAttr(a.Name.Name(), string(a.Value))
			if !ok {
				return wbxmlerr.Newf(wbxmlerr.UnknownAttr, "no table entry for attribute %q", a.Name.Name())
			}
			e.switchAttrPage(entry.Page)
			e.body.AppendByte(entry.Code)
		}

		segments, tail := e.attrResidual(a)
		for _, seg := range segments {
			e.switchAttrPage(seg.Page)
			e.body.AppendByte(seg.Code)
		}
		if tail != "" {
			if err := e.emitStringOrTableRef(tail); err != nil {
				return err
			}
		}
	}
	e.body.AppendByte(wbxml.End)
	return nil
}

func (e *wbxmlEncoder) encodePI(n *wbxmltree.Node) error {
	e.body.AppendByte(wbxml.Pi)
	entry, ok := e.lang.FindAttr(n.Tag.Name(), "")
	if ok {
		e.switchAttrPage(entry.Page)
		e.body.AppendByte(entry.Code)
	} else {
		e.body.AppendByte(wbxml.Literal)
		off, ok := e.strtbl.offsetOf(n.Tag.Name())
		if !ok {
			return wbxmlerr.New(wbxmlerr.StringTableDisabled, "literal PI target requires the string table")
		}
		e.body.AppendMBUint32(wbxml.EncodeMBUint32(off))
	}
	if len(n.Content) > 0 {
		if err := e.emitStringOrTableRef(string(n.Content)); err != nil {
			return err
		}
	}
	e.body.AppendByte(wbxml.End)
	return nil
}
