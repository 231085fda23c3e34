package convert

import (
	"bytes"

	"github.com/oma-wbxml/wbxmlconv/wbxml/encoder"
	"github.com/oma-wbxml/wbxmlconv/wbxml/parser"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
)

// Driver runs one-shot conversions under a fixed Config. A Driver
// holds no state between calls — spec.md §5 requires each conversion
// to own and release its own parser, encoder, and tree.
type Driver struct {
	cfg *Config
}

// NewDriver builds a Driver from cfg. A nil cfg is replaced with
// defaults.
func NewDriver(cfg *Config) *Driver {
	if cfg == nil {
		cfg = New()
	}
	return &Driver{cfg: cfg}
}

// ToXML decodes a WBXML document and serialises it as XML text.
func (d *Driver) ToXML(wbxmlBytes []byte) ([]byte, error) {
	if len(wbxmlBytes) == 0 {
		return nil, wbxmlerr.New(wbxmlerr.BadParameter, "empty WBXML input")
	}

	var popts []parser.ParserOption
	if d.cfg.forcedLanguage != nil {
		popts = append(popts, parser.WithForcedLanguage(d.cfg.forcedLanguage))
	}
	if d.cfg.forcedCharset != 0 {
		popts = append(popts, parser.WithForcedCharset(d.cfg.forcedCharset))
	}

	tree, err := ParseWBXMLTree(wbxmlBytes, popts...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = encoder.EncodeXML(&buf, tree, encoder.XMLConfig{
		Style:       d.cfg.xmlStyle,
		IndentWidth: d.cfg.indentWidth,
	})
	if err != nil {
		return nil, err
	}
	d.cfg.log.Debugw("converted wbxml to xml", "inputBytes", len(wbxmlBytes), "outputBytes", buf.Len())
	return buf.Bytes(), nil
}

// ToWBXML parses an XML document and serialises it as WBXML bytes.
func (d *Driver) ToWBXML(xmlBytes []byte) ([]byte, error) {
	if len(xmlBytes) == 0 {
		return nil, wbxmlerr.New(wbxmlerr.BadParameter, "empty XML input")
	}

	tree, err := buildTreeFromXML(xmlBytes, d.cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = encoder.EncodeWBXML(&buf, tree, encoder.EncodeConfig{
		Version:         d.cfg.version,
		Anonymous:       d.cfg.anonymous,
		StringTable:     d.cfg.stringTable,
		ForcedCharset:   d.cfg.forcedCharset,
		IgnoreEmptyText: d.cfg.ignoreEmptyText,
		TrimWhitespace:  d.cfg.trimWhitespace,
	})
	if err != nil {
		return nil, err
	}
	d.cfg.log.Debugw("converted xml to wbxml", "inputBytes", len(xmlBytes), "outputBytes", buf.Len())
	return buf.Bytes(), nil
}
