package convert

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/oma-wbxml/wbxmlconv/internal/base64x"
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// xmlTreeBuilder walks an encoding/xml.Decoder token stream and
// builds the same wbxmltree.Tree shape the WBXML parser builds,
// applying the two SyncML hooks spec.md §4.6 names:
// tryEmbeddedDocument (a DevInf/MgmtTree child becomes a nested Tree
// under a SubTree node) and buildElement's base64 branch (a
// binary/base64-tagged element's text content is decoded to raw
// bytes before it reaches the tree).
type xmlTreeBuilder struct {
	dec  *xml.Decoder
	cfg  *Config
	lang *langtable.LanguageRecord
}

// buildTreeFromXML decodes data as XML and returns the resulting
// Tree, with language resolved by cfg.forcedLanguage, the DOCTYPE
// public identifier, or the root element name, in that order.
func buildTreeFromXML(data []byte, cfg *Config) (*wbxmltree.Tree, error) {
	if len(data) == 0 {
		return nil, wbxmlerr.New(wbxmlerr.BadParameter, "empty XML input")
	}
	dec := xml.NewDecoder(bytes.NewReader(data))

	var publicID string
	var root xml.StartElement
	var haveRoot bool
	for !haveRoot {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, wbxmlerr.New(wbxmlerr.XMLParsingFailed, "no root element")
		}
		if err != nil {
			return nil, wbxmlerr.Wrap(wbxmlerr.XMLParsingFailed, err, "read xml prolog")
		}
		switch t := tok.(type) {
		case xml.Directive:
			if id, ok := extractPublicID(t); ok {
				publicID = id
			}
		case xml.StartElement:
			root = t.Copy()
			haveRoot = true
		}
	}

	lang := cfg.forcedLanguage
	if lang == nil && publicID != "" {
		lang, _ = langtable.ByPublicIDString(publicID)
	}
	if lang == nil {
		lang, _ = langtable.ByRootElement(root.Name.Local)
	}
	if lang == nil {
		return nil, wbxmlerr.Newf(wbxmlerr.UnknownXMLLanguage, "no language matches root element %q", root.Name.Local)
	}

	b := &xmlTreeBuilder{dec: dec, cfg: cfg, lang: lang}
	rootNode, err := b.buildElement("", root)
	if err != nil {
		return nil, err
	}

	tree := wbxmltree.NewTree(lang)
	tree.Root = rootNode
	tree.Charset = cfg.charsetOrDefault()
	return tree, nil
}

// buildElement consumes tokens up to and including start's matching
// EndElement, returning the Element node built from them. parentName
// is the enclosing element's name, needed only to evaluate the
// vObject heuristic against start's own name.
func (b *xmlTreeBuilder) buildElement(parentName string, start xml.StartElement) (*wbxmltree.Node, error) {
	n := wbxmltree.NewNode(wbxmltree.Element)
	n.Tag = b.resolveTag(start.Name.Local)
	n.Attrs = b.resolveAttrs(start)

	binary := n.Tag.Known != nil && n.Tag.Known.BinaryBase64
	vobject := b.cfg.vObjectHeuristic && isImplicitVObjectData(parentName, start.Name.Local)

	for {
		tok, err := b.dec.Token()
		if err != nil {
			return nil, wbxmlerr.Wrap(wbxmlerr.XMLParsingFailed, err, "read element content")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if sub, handled, err := b.tryEmbeddedDocument(start.Name.Local, t.Copy()); err != nil {
				return nil, err
			} else if handled {
				wbxmltree.AppendChild(n, sub)
				continue
			}
			child, err := b.buildElement(start.Name.Local, t.Copy())
			if err != nil {
				return nil, err
			}
			wbxmltree.AppendChild(n, child)

		case xml.CharData:
			text := []byte(t.Copy())
			if !b.cfg.preserveWhitespace && len(bytes.TrimSpace(text)) == 0 {
				continue
			}
			if binary {
				raw, err := base64x.Decode(bytes.TrimSpace(text))
				if err != nil {
					return nil, err
				}
				wbxmltree.AppendChild(n, &wbxmltree.Node{Type: wbxmltree.Text, Content: raw})
				continue
			}
			if vobject {
				b.cfg.log.Debugw("treating Data as vObject without explicit Meta/Type", "parent", parentName)
				wbxmltree.AppendChild(n, &wbxmltree.Node{Type: wbxmltree.CData, Content: text})
				continue
			}
			wbxmltree.AppendChild(n, &wbxmltree.Node{Type: wbxmltree.Text, Content: text})

		case xml.ProcInst:
			wbxmltree.AppendChild(n, &wbxmltree.Node{
				Type:    wbxmltree.Pi,
				Tag:     wbxmltree.Tag{Literal: []byte(t.Target)},
				Content: t.Inst,
			})

		case xml.EndElement:
			return n, nil
		}
	}
}

// tryEmbeddedDocument recognizes a DevInf/MgmtTree child under
// parentName as the start of a nested dialect (spec.md §8 scenario 6)
// and, if so, fully consumes and parses it as its own Tree wrapped in
// a SubTree node.
func (b *xmlTreeBuilder) tryEmbeddedDocument(parentName string, start xml.StartElement) (*wbxmltree.Node, bool, error) {
	subLang, ok := isEmbeddedDocumentBoundary(start.Name.Local)
	if !ok || subLang == b.lang {
		return nil, false, nil
	}
	sub := &xmlTreeBuilder{dec: b.dec, cfg: b.cfg, lang: subLang}
	root, err := sub.buildElement(parentName, start)
	if err != nil {
		return nil, false, err
	}
	subTree := wbxmltree.NewTree(subLang)
	subTree.Root = root
	subTree.Charset = b.cfg.charsetOrDefault()
	return &wbxmltree.Node{Type: wbxmltree.SubTree, Sub: subTree}, true, nil
}

func (b *xmlTreeBuilder) resolveTag(name string) wbxmltree.Tag {
	if entry, ok := b.lang.FindTag(0, name); ok {
		return wbxmltree.Tag{Known: entry}
	}
	return wbxmltree.Tag{Literal: []byte(name)}
}

func (b *xmlTreeBuilder) resolveAttrs(start xml.StartElement) []wbxmltree.Attribute {
	attrs := make([]wbxmltree.Attribute, 0, len(start.Attr))
	for _, a := range start.Attr {
		name := a.Name.Local
		value := []byte(a.Value)
		if entry, ok := b.lang.FindAttr(name, a.Value); ok {
			attrs = append(attrs, wbxmltree.Attribute{Name: wbxmltree.AttributeName{Known: entry}, Value: value})
			continue
		}
		attrs = append(attrs, wbxmltree.Attribute{Name: wbxmltree.AttributeName{Literal: []byte(name)}, Value: value})
	}
	return attrs
}

// extractPublicID pulls the quoted PUBLIC identifier out of a raw
// DOCTYPE directive, e.g. `DOCTYPE si PUBLIC "-//WAPFORUM//DTD SI
// 1.0//EN" "http://www.wapforum.org/DTD/si.dtd"`.
func extractPublicID(d xml.Directive) (string, bool) {
	s := string(d)
	if !strings.Contains(s, "PUBLIC") {
		return "", false
	}
	i := strings.Index(s, `"`)
	if i < 0 {
		return "", false
	}
	j := strings.Index(s[i+1:], `"`)
	if j < 0 {
		return "", false
	}
	return s[i+1 : i+1+j], true
}
