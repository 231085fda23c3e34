package encoder

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/oma-wbxml/wbxmlconv/internal/base64x"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// XMLStyle selects one of the three pretty-printing modes spec.md
// §4.5 describes.
type XMLStyle int

const (
	Compact XMLStyle = iota
	Indent
	Canonical
)

// XMLConfig controls XML-text serialisation.
type XMLConfig struct {
	Style XMLStyle
	// IndentWidth is the number of spaces used per nesting level in
	// Indent style. Zero defaults to 1, per spec.md §4.5.
	IndentWidth int
}

// EncodeXML serialises t as an XML document, writing it to w.
func EncodeXML(w io.Writer, t *wbxmltree.Tree, cfg XMLConfig) error {
	if t == nil || t.Root == nil {
		return wbxmlerr.New(wbxmlerr.BadParameter, "nil tree or root")
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 1
	}
	bw := bufio.NewWriter(w)
	enc := &xmlEncoder{w: bw, cfg: cfg}

	if cfg.Style != Canonical {
		fmt.Fprint(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
		enc.newline(false)
		if t.Language != nil && t.Language.RootElement != "" && t.Language.PublicIDString != "" {
			fmt.Fprintf(bw, `<!DOCTYPE %s PUBLIC "%s" "%s">`, t.Language.RootElement, t.Language.PublicIDString, t.Language.DTDSystemID)
			enc.newline(false)
		}
	}

	if err := enc.writeNode(t.Root, 0, false); err != nil {
		return wbxmlerr.Wrap(wbxmlerr.AppendFailed, err, "write xml")
	}
	if err := bw.Flush(); err != nil {
		return wbxmlerr.Wrap(wbxmlerr.AppendFailed, err, "flush xml writer")
	}
	return nil
}

type xmlEncoder struct {
	w   *bufio.Writer
	cfg XMLConfig
}

// newline emits a line break in Indent style, unless inline is true —
// inline marks a position inside a mixed-content element, where
// spec.md §4.5 requires compact printing regardless of the configured
// style so injected whitespace cannot change the text's meaning.
func (e *xmlEncoder) newline(inline bool) {
	if e.cfg.Style == Indent && !inline {
		e.w.WriteByte('\n')
	}
}

func (e *xmlEncoder) indent(depth int, inline bool) {
	if e.cfg.Style != Indent || inline {
		return
	}
	for i := 0; i < depth*e.cfg.IndentWidth; i++ {
		e.w.WriteByte(' ')
	}
}

// isMixed reports whether n (an Element) has both a Text child and an
// Element child, the case spec.md §4.5's indent mode prints compactly
// to avoid corrupting the text's meaning with injected whitespace.
func isMixed(n *wbxmltree.Node) bool {
	var sawText, sawElement bool
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case wbxmltree.Text:
			sawText = true
		case wbxmltree.Element:
			sawElement = true
		}
	}
	return sawText && sawElement
}

func (e *xmlEncoder) writeNode(n *wbxmltree.Node, depth int, inline bool) error {
	switch n.Type {
	case wbxmltree.Element:
		return e.writeElement(n, depth, inline)
	case wbxmltree.Text:
		return e.writeText(n.Content)
	case wbxmltree.CData:
		fmt.Fprintf(e.w, "<![CDATA[%s]]>", n.Content)
		return nil
	case wbxmltree.Pi:
		fmt.Fprintf(e.w, "<?%s %s?>", n.Tag.Name(), n.Content)
		return nil
	case wbxmltree.SubTree:
		if n.Sub != nil && n.Sub.Root != nil {
			return e.writeNode(n.Sub.Root, depth, inline)
		}
		return nil
	}
	return nil
}

func (e *xmlEncoder) writeElement(n *wbxmltree.Node, depth int, inline bool) error {
	name := n.Tag.Name()
	e.indent(depth, inline)
	e.w.WriteByte('<')
	e.w.WriteString(name)
	if err := e.writeAttrs(n); err != nil {
		return err
	}

	if n.FirstChild == nil {
		e.w.WriteString("/>")
		e.newline(inline)
		return nil
	}

	e.w.WriteByte('>')
	mixed := isMixed(n)
	childInline := inline || mixed
	if !childInline {
		e.newline(false)
	}

	if n.Tag.Known != nil && n.Tag.Known.BinaryBase64 {
		if n.FirstChild.Type == wbxmltree.Text {
			e.w.Write(base64x.Encode(n.FirstChild.Content))
		}
	} else {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := e.writeNode(c, depth+1, childInline); err != nil {
				return err
			}
		}
	}

	e.indent(depth, childInline)
	e.w.WriteString("</")
	e.w.WriteString(name)
	e.w.WriteByte('>')
	e.newline(inline)
	return nil
}

func (e *xmlEncoder) writeAttrs(n *wbxmltree.Node) error {
	attrs := n.Attrs
	if e.cfg.Style == Canonical {
		attrs = append([]wbxmltree.Attribute(nil), attrs...)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name.Name() < attrs[j].Name.Name() })
	}
	for _, a := range attrs {
		e.w.WriteByte(' ')
		e.w.WriteString(a.Name.Name())
		e.w.WriteString(`="`)
		var buf strings.Builder
		if err := xml.EscapeText(&buf, a.Value); err != nil {
			return err
		}
		e.w.WriteString(buf.String())
		e.w.WriteByte('"')
	}
	return nil
}

func (e *xmlEncoder) writeText(content []byte) error {
	return xml.EscapeText(e.w, content)
}
