package parser

import (
	"bytes"
	"unicode/utf8"

	"github.com/oma-wbxml/wbxmlconv/internal/charset"
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxml"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// ParserOption configures a Parser at construction time.
type ParserOption func(*options)

type options struct {
	forcedLanguage *langtable.LanguageRecord
	forcedCharset  uint32
	haveCharset    bool
}

// WithForcedLanguage makes the parser use lang regardless of the
// document's declared public identifier, for callers that already know
// the dialect out of band.
func WithForcedLanguage(lang *langtable.LanguageRecord) ParserOption {
	return func(o *options) { o.forcedLanguage = lang }
}

// WithForcedCharset makes the parser interpret every string in mib
// regardless of the document's declared charset.
func WithForcedCharset(mib uint32) ParserOption {
	return func(o *options) { o.forcedCharset = mib; o.haveCharset = true }
}

// Parser turns one WBXML document into a sequence of Events. It parses
// the whole document on the first call to Token and hands events out
// one at a time after that: spec.md §7 requires that a single error
// abort the whole conversion with no partial output surfaced, which a
// fully-materialised event slice (discarded whole on error) satisfies
// more simply than a goroutine draining a channel mid-document.
type Parser struct {
	data []byte
	opts options

	parsed  bool
	err     error
	events  []Event
	offsets []int
	idx     int

	lastOffset int
}

// NewParser creates a Parser over data. data is not copied; the caller
// must not mutate it while the Parser is in use.
func NewParser(data []byte, opts ...ParserOption) *Parser {
	p := &Parser{data: data}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Token returns the next event, or an error of kind from wbxmlerr on
// malformed input. Once an error is returned, every subsequent call
// returns the same error.
func (p *Parser) Token() (Event, error) {
	if !p.parsed {
		p.parsed = true
		p.err = p.runParse()
		if werr, ok := p.err.(*wbxmlerr.Error); ok && werr.Offset >= 0 {
			p.lastOffset = werr.Offset
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.idx >= len(p.events) {
		return nil, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "read past end of event stream")
	}
	ev := p.events[p.idx]
	p.lastOffset = p.offsets[p.idx]
	p.idx++
	return ev, nil
}

// Offset returns the byte offset of the most recently returned event,
// or of the failure, for diagnostics (spec.md §7).
func (p *Parser) Offset() int {
	return p.lastOffset
}

// cursor walks p.data and accumulates the emitted event stream.
type cursor struct {
	data []byte
	pos  int

	header  wbxml.Header
	lang    *langtable.LanguageRecord
	charset uint32

	tagPage  byte
	attrPage byte

	events  []Event
	offsets []int

	charBuf    []byte
	charOffset int
	haveChar   bool
}

func (p *Parser) runParse() error {
	if len(p.data) == 0 {
		return wbxmlerr.New(wbxmlerr.EmptyDocument, "empty WBXML document")
	}
	c := &cursor{data: p.data}
	if err := c.parseHeader(&p.opts); err != nil {
		return err
	}
	c.emit(StartDocument{Charset: c.charset, Language: c.lang}, 0)
	if err := c.parseBody(); err != nil {
		return err
	}
	c.flushChars()
	c.emit(EndDocument{}, c.pos)
	p.events = c.events
	p.offsets = c.offsets
	return nil
}

func (c *cursor) emit(ev Event, offset int) {
	c.events = append(c.events, ev)
	c.offsets = append(c.offsets, offset)
}

func (c *cursor) eof() bool { return c.pos >= len(c.data) }

func (c *cursor) readByte() (byte, error) {
	if c.eof() {
		return 0, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "unexpected end of document").At(c.pos)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) peekByte() (byte, error) {
	if c.eof() {
		return 0, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "unexpected end of document").At(c.pos)
	}
	return c.data[c.pos], nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "unexpected end of document").At(c.pos)
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

func (c *cursor) readMBUint32() (uint32, error) {
	v, n, err := wbxml.DecodeMBUint32(c.data[c.pos:])
	if err != nil {
		if werr, ok := err.(*wbxmlerr.Error); ok {
			return 0, werr.At(c.pos)
		}
		return 0, err
	}
	c.pos += n
	return v, nil
}

// readTermStr reads bytes up to and including the next NUL byte,
// decodes the portion before the NUL from the document's charset, and
// returns it as UTF-8.
func (c *cursor) readTermStr() ([]byte, error) {
	start := c.pos
	for {
		if c.eof() {
			return nil, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "unterminated string").At(start)
		}
		if c.data[c.pos] == 0x00 {
			raw := c.data[start:c.pos]
			c.pos++
			return charset.ToUTF8(raw, c.charset)
		}
		c.pos++
	}
}

// stringTableAt returns the NUL-terminated, charset-decoded string at
// byte offset idx inside the header's string table.
func (c *cursor) stringTableAt(idx uint32) ([]byte, error) {
	tbl := c.header.StringTable
	if int(idx) > len(tbl) {
		return nil, wbxmlerr.Newf(wbxmlerr.StringTableIndexOutOfRange, "string table offset %d out of range (len %d)", idx, len(tbl))
	}
	end := bytes.IndexByte(tbl[idx:], 0x00)
	if end < 0 {
		return nil, wbxmlerr.Newf(wbxmlerr.UnterminatedLiteral, "string table entry at %d has no terminator", idx)
	}
	return charset.ToUTF8(tbl[idx:int(idx)+end], c.charset)
}

func (c *cursor) pushChar(b []byte, offset int) {
	if !c.haveChar {
		c.haveChar = true
		c.charOffset = offset
	}
	c.charBuf = append(c.charBuf, b...)
}

func (c *cursor) flushChars() {
	if !c.haveChar {
		return
	}
	c.emit(Characters(c.charBuf), c.charOffset)
	c.charBuf = nil
	c.haveChar = false
}

// parseHeader reads version, public id, charset and string table, then
// resolves the active language from an override, the numeric public
// id, or the literal public id string, in that order.
func (c *cursor) parseHeader(opts *options) error {
	version, err := c.readByte()
	if err != nil {
		return err
	}
	c.header.Version = version

	idOrZero, err := c.readMBUint32()
	if err != nil {
		return err
	}
	var literalOffset uint32
	haveLiteral := false
	if idOrZero == 0 {
		literalOffset, err = c.readMBUint32()
		if err != nil {
			return err
		}
		haveLiteral = true
	} else {
		c.header.PublicID = idOrZero
	}

	declaredCharset, err := c.readMBUint32()
	if err != nil {
		return err
	}
	c.header.Charset = declaredCharset

	tblLen, err := c.readMBUint32()
	if err != nil {
		return err
	}
	tbl, err := c.readBytes(int(tblLen))
	if err != nil {
		return err
	}
	c.header.StringTable = tbl

	if opts.haveCharset {
		c.charset = opts.forcedCharset
	} else {
		c.charset = declaredCharset
	}

	if haveLiteral {
		c.header.LiteralPublicIDOffset = literalOffset
	}

	switch {
	case opts.forcedLanguage != nil:
		c.lang = opts.forcedLanguage
	case haveLiteral:
		name, err := c.stringTableAt(literalOffset)
		if err != nil {
			return err
		}
		lang, ok := langtable.ByPublicIDString(string(name))
		if !ok {
			return wbxmlerr.Newf(wbxmlerr.UnknownPublicID, "unknown literal public id %q", string(name))
		}
		c.lang = lang
	case c.header.IsAnonymous():
		// public_id == 1 means the document itself declares no
		// language; spec.md §8 scenario 5 requires this to fail
		// without an explicit override rather than silently fall back
		// to the literal-only Generic table.
		return wbxmlerr.New(wbxmlerr.UnknownPublicID, "anonymous document (public id 1) requires a forced language")
	default:
		lang, ok := langtable.ByPublicID(c.header.PublicID)
		if !ok {
			return wbxmlerr.Newf(wbxmlerr.UnknownPublicID, "unknown public id %d", c.header.PublicID)
		}
		c.lang = lang
	}
	return nil
}

// parseBody consumes *pi element *pi: any processing instructions
// before and after the single root element.
func (c *cursor) parseBody() error {
	for {
		if c.eof() {
			return wbxmlerr.New(wbxmlerr.UnexpectedEOF, "document has no root element").At(c.pos)
		}
		b, err := c.peekByte()
		if err != nil {
			return err
		}
		if b == wbxml.SwitchPage {
			if _, err := c.readByte(); err != nil {
				return err
			}
			newPage, err := c.readByte()
			if err != nil {
				return err
			}
			c.tagPage = newPage
			continue
		}
		if b == wbxml.Pi {
			if _, err := c.readByte(); err != nil {
				return err
			}
			if err := c.parsePI(); err != nil {
				return err
			}
			continue
		}
		break
	}
	if err := c.parseElement(); err != nil {
		return err
	}
	for !c.eof() {
		b, err := c.peekByte()
		if err != nil {
			return err
		}
		if b == wbxml.SwitchPage {
			if _, err := c.readByte(); err != nil {
				return err
			}
			newPage, err := c.readByte()
			if err != nil {
				return err
			}
			c.tagPage = newPage
			continue
		}
		if b != wbxml.Pi {
			break
		}
		if _, err := c.readByte(); err != nil {
			return err
		}
		if err := c.parsePI(); err != nil {
			return err
		}
	}
	return nil
}

// parseElement parses one stag, its optional attribute list, and its
// optional content, emitting a matched StartElement/EndElement pair.
func (c *cursor) parseElement() error {
	b, err := c.readByte()
	if err != nil {
		return err
	}
	for b == wbxml.SwitchPage {
		newPage, err := c.readByte()
		if err != nil {
			return err
		}
		c.tagPage = newPage
		b, err = c.readByte()
		if err != nil {
			return err
		}
	}
	startOffset := c.pos - 1

	var tag wbxmltree.Tag
	var hasAttr, hasContent bool

	if wbxml.IsLiteralTag(b) {
		hasAttr = b == wbxml.LiteralA || b == wbxml.LiteralAC
		hasContent = b == wbxml.LiteralC || b == wbxml.LiteralAC
		idx, err := c.readMBUint32()
		if err != nil {
			return err
		}
		name, err := c.stringTableAt(idx)
		if err != nil {
			return err
		}
		tag = wbxmltree.Tag{Literal: name}
	} else {
		t := wbxml.Tag(b)
		hasAttr = t.HasAttr()
		hasContent = t.HasContent()
		entry, ok := c.lang.FindTagByToken(c.tagPage, t.ID())
		if !ok {
			return wbxmlerr.Newf(wbxmlerr.UnknownTag, "unknown tag token 0x%02X on page %d", t.ID(), c.tagPage).At(startOffset)
		}
		tag = wbxmltree.Tag{Known: entry}
	}

	var attrs []wbxmltree.Attribute
	if hasAttr {
		attrs, err = c.parseAttributes()
		if err != nil {
			return err
		}
	}

	c.emit(StartElement{Tag: tag, Attrs: attrs, Empty: !hasContent}, startOffset)

	if hasContent {
		if err := c.parseContent(); err != nil {
			return err
		}
	}

	c.flushChars()
	c.emit(EndElement{Tag: tag, WasEmpty: !hasContent}, c.pos)
	return nil
}

// parseContent consumes the *content sequence up to and including the
// END token that closes this element.
func (c *cursor) parseContent() error {
	for {
		offset := c.pos
		b, err := c.peekByte()
		if err != nil {
			return err
		}
		switch {
		case b == wbxml.End:
			c.pos++
			return nil
		case b == wbxml.StrI:
			c.pos++
			s, err := c.readTermStr()
			if err != nil {
				return err
			}
			c.pushChar(s, offset)
		case b == wbxml.StrT:
			c.pos++
			idx, err := c.readMBUint32()
			if err != nil {
				return err
			}
			s, err := c.stringTableAt(idx)
			if err != nil {
				return err
			}
			c.pushChar(s, offset)
		case b == wbxml.Entity:
			c.pos++
			code, err := c.readMBUint32()
			if err != nil {
				return err
			}
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rune(code))
			c.pushChar(buf[:n], offset)
		case b == wbxml.Opaque:
			c.pos++
			c.flushChars()
			length, err := c.readMBUint32()
			if err != nil {
				return err
			}
			raw, err := c.readBytes(int(length))
			if err != nil {
				return err
			}
			c.emit(Opaque(append([]byte(nil), raw...)), offset)
		case b == wbxml.Pi:
			c.pos++
			c.flushChars()
			if err := c.parsePI(); err != nil {
				return err
			}
		case b == wbxml.SwitchPage:
			c.pos++
			newPage, err := c.readByte()
			if err != nil {
				return err
			}
			c.tagPage = newPage
		case isExtToken(b):
			c.pos++
			c.flushChars()
			val, err := c.readExtValue(b, c.tagPage)
			if err != nil {
				return err
			}
			c.pushChar([]byte(val), offset)
		default:
			c.flushChars()
			if err := c.parseElement(); err != nil {
				return err
			}
		}
	}
}

// parsePI parses PI attrStart *attrValue END, the PI token itself
// already consumed by the caller.
func (c *cursor) parsePI() error {
	name, err := c.parseAttrStartName()
	if err != nil {
		return err
	}
	var data []byte
	for {
		b, err := c.peekByte()
		if err != nil {
			return err
		}
		if b == wbxml.End {
			c.pos++
			break
		}
		seg, err := c.parseOneAttrValueToken(c.attrPage)
		if err != nil {
			return err
		}
		data = append(data, seg...)
	}
	c.emit(ProcessingInstruction{Target: name, Data: string(data)}, c.pos)
	return nil
}

// parseAttributes parses 1*attribute END, the list already known (by
// the element's has-attributes flag) to be present.
func (c *cursor) parseAttributes() ([]wbxmltree.Attribute, error) {
	var attrs []wbxmltree.Attribute
	for {
		b, err := c.peekByte()
		if err != nil {
			return nil, err
		}
		if b == wbxml.End {
			c.pos++
			return attrs, nil
		}
		if b == wbxml.SwitchPage {
			c.pos++
			newPage, err := c.readByte()
			if err != nil {
				return nil, err
			}
			c.attrPage = newPage
			continue
		}
		name, prefix, err := c.parseAttrStart()
		if err != nil {
			return nil, err
		}
		value := []byte(prefix)
		for {
			nb, err := c.peekByte()
			if err != nil {
				return nil, err
			}
			if nb == wbxml.End || isAttrStartToken(nb) {
				break
			}
			if nb == wbxml.SwitchPage {
				// A page switch inside a value position still applies
				// to the attribute-name space per spec.md §4.4; the
				// next token decides whether it starts a new attribute.
				c.pos++
				newPage, err := c.readByte()
				if err != nil {
					return nil, err
				}
				c.attrPage = newPage
				continue
			}
			seg, err := c.parseOneAttrValueToken(c.attrPage)
			if err != nil {
				return nil, err
			}
			value = append(value, seg...)
		}
		attrs = append(attrs, wbxmltree.Attribute{Name: name, Value: value})
	}
}

// parseAttrStart reads one attrStart token and returns the resolved
// name together with the value prefix (if any) a known AttrEntry
// token carries.
func (c *cursor) parseAttrStart() (wbxmltree.AttributeName, string, error) {
	offset := c.pos
	b, err := c.readByte()
	if err != nil {
		return wbxmltree.AttributeName{}, "", err
	}
	if b == wbxml.Literal {
		idx, err := c.readMBUint32()
		if err != nil {
			return wbxmltree.AttributeName{}, "", err
		}
		name, err := c.stringTableAt(idx)
		if err != nil {
			return wbxmltree.AttributeName{}, "", err
		}
		return wbxmltree.AttributeName{Literal: name}, "", nil
	}
	entry, ok := c.lang.FindAttrByToken(c.attrPage, b)
	if !ok {
		return wbxmltree.AttributeName{}, "", wbxmlerr.Newf(wbxmlerr.UnknownAttr, "unknown attribute token 0x%02X on page %d", b, c.attrPage).At(offset)
	}
	return wbxmltree.AttributeName{Known: entry}, entry.ValuePrefix, nil
}

// parseAttrStartName is parseAttrStart without the value-prefix
// plumbing, used for a PI's target name.
func (c *cursor) parseAttrStartName() (string, error) {
	name, _, err := c.parseAttrStart()
	if err != nil {
		return "", err
	}
	return name.Name(), nil
}

// parseOneAttrValueToken consumes exactly one attrValue token
// (ATTRVALUE | string | extension | entity) and returns its decoded
// text contribution.
func (c *cursor) parseOneAttrValueToken(page byte) ([]byte, error) {
	offset := c.pos
	b, err := c.readByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b == wbxml.StrI:
		return c.readTermStr()
	case b == wbxml.StrT:
		idx, err := c.readMBUint32()
		if err != nil {
			return nil, err
		}
		return c.stringTableAt(idx)
	case b == wbxml.Entity:
		code, err := c.readMBUint32()
		if err != nil {
			return nil, err
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], rune(code))
		return append([]byte(nil), buf[:n]...), nil
	case isExtToken(b):
		val, err := c.readExtValue(b, page)
		if err != nil {
			return nil, err
		}
		return []byte(val), nil
	default:
		entry, ok := c.lang.FindAttrValueByToken(page, b)
		if !ok {
			return nil, wbxmlerr.Newf(wbxmlerr.UnknownAttr, "unknown attribute value token 0x%02X on page %d", b, page).At(offset)
		}
		return []byte(entry.Value), nil
	}
}

// readExtValue consumes the operand (if any) of an already-identified
// extension token and resolves its meaning from the active language's
// table, failing with UnknownExtension when it defines none.
func (c *cursor) readExtValue(tok, page byte) (string, error) {
	offset := c.pos - 1
	switch tok {
	case wbxml.ExtI0, wbxml.ExtI1, wbxml.ExtI2:
		if _, err := c.readTermStr(); err != nil {
			return "", err
		}
	case wbxml.ExtT0, wbxml.ExtT1, wbxml.ExtT2:
		if _, err := c.readMBUint32(); err != nil {
			return "", err
		}
	case wbxml.Ext0, wbxml.Ext1, wbxml.Ext2:
		// no operand
	}
	code := extCode(tok)
	entry, ok := c.lang.ExtValueByToken(page, code)
	if !ok {
		return "", wbxmlerr.Newf(wbxmlerr.UnknownExtension, "unknown extension token 0x%02X on page %d", tok, page).At(offset)
	}
	return entry.Value, nil
}

func extCode(tok byte) byte {
	switch tok {
	case wbxml.ExtI0, wbxml.ExtT0, wbxml.Ext0:
		return 0
	case wbxml.ExtI1, wbxml.ExtT1, wbxml.Ext1:
		return 1
	default:
		return 2
	}
}

func isExtToken(b byte) bool {
	switch b {
	case wbxml.ExtI0, wbxml.ExtI1, wbxml.ExtI2,
		wbxml.ExtT0, wbxml.ExtT1, wbxml.ExtT2,
		wbxml.Ext0, wbxml.Ext1, wbxml.Ext2:
		return true
	}
	return false
}

// isAttrStartToken reports whether b can only appear as the start of a
// new attribute (an ATTRSTART code or LITERAL), as opposed to
// continuing the current attribute's value.
func isAttrStartToken(b byte) bool {
	if b == wbxml.Literal {
		return true
	}
	switch b {
	case wbxml.SwitchPage, wbxml.End, wbxml.Entity, wbxml.StrI,
		wbxml.ExtI0, wbxml.ExtI1, wbxml.ExtI2:
		return false
	}
	return b&0x80 == 0
}
