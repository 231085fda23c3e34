package encoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxml"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

func buildSITree(t *testing.T) *wbxmltree.Tree {
	t.Helper()
	lang, ok := langtable.ByID(langtable.SI10)
	require.True(t, ok)

	tree := wbxmltree.NewTree(lang)
	siEntry, ok := lang.FindTag(0, "si")
	require.True(t, ok)
	indicationEntry, ok := lang.FindTag(0, "indication")
	require.True(t, ok)
	hrefEntry, ok := lang.FindAttr("href", "http://a/")
	require.True(t, ok)
	assert.Equal(t, "http://", hrefEntry.ValuePrefix)

	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: siEntry}
	tree.Root = root

	indication := wbxmltree.NewNode(wbxmltree.Element)
	indication.Tag = wbxmltree.Tag{Known: indicationEntry}
	indication.Attrs = []wbxmltree.Attribute{{
		Name:  wbxmltree.AttributeName{Known: hrefEntry},
		Value: []byte("http://a/"),
	}}
	wbxmltree.AppendChild(root, indication)
	return tree
}

func TestEncodeWBXMLMatchesSeedScenario(t *testing.T) {
	tree := buildSITree(t)
	var buf bytes.Buffer
	err := EncodeWBXML(&buf, tree, EncodeConfig{Version: 1})
	require.NoError(t, err)

	want := []byte{
		0x01, 0x05, 0x6A, 0x00,
		0x45,
		0x86,
		0x0C,
		0x03, 'a', '/', 0x00,
		0x01,
		0x01,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeWBXMLAnonymousForcesPublicIDOne(t *testing.T) {
	tree := buildSITree(t)
	var buf bytes.Buffer
	err := EncodeWBXML(&buf, tree, EncodeConfig{Version: 1, Anonymous: true})
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), buf.Bytes()[0]) // version
	assert.Equal(t, byte(0x01), buf.Bytes()[1]) // public_id = 1
}

func TestEncodeWBXMLLiteralTagRequiresStringTable(t *testing.T) {
	lang, _ := langtable.ByID(langtable.Generic)
	tree := wbxmltree.NewTree(lang)
	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Literal: []byte("root")}
	tree.Root = root

	var buf bytes.Buffer
	err := EncodeWBXML(&buf, tree, EncodeConfig{Version: 1, Anonymous: true, StringTable: false})
	require.Error(t, err)

	buf.Reset()
	err = EncodeWBXML(&buf, tree, EncodeConfig{Version: 1, Anonymous: true, StringTable: true})
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestEncodeWBXMLIgnoreEmptyTextSkipsBlankNode(t *testing.T) {
	lang, ok := langtable.ByID(langtable.SI10)
	require.True(t, ok)
	siEntry, ok := lang.FindTag(0, "si")
	require.True(t, ok)

	tree := wbxmltree.NewTree(lang)
	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: siEntry}
	tree.Root = root
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte("  \t")})

	var withOption bytes.Buffer
	require.NoError(t, EncodeWBXML(&withOption, tree, EncodeConfig{
		Version: 1, TrimWhitespace: true, IgnoreEmptyText: true,
	}))
	// The content bit stays set (the text child exists), but no STR_I/STR_T
	// token is emitted: just tag + END.
	body := withOption.Bytes()[4:]
	assert.NotContains(t, string(body), string([]byte{wbxml.StrI}))

	var withoutOption bytes.Buffer
	require.NoError(t, EncodeWBXML(&withoutOption, tree, EncodeConfig{Version: 1}))
	assert.Contains(t, string(withoutOption.Bytes()[4:]), string([]byte{wbxml.StrI, ' ', ' ', '\t', 0x00}))
}

func TestEncodeWBXMLTrimWhitespaceStripsSurroundingSpace(t *testing.T) {
	lang, ok := langtable.ByID(langtable.SI10)
	require.True(t, ok)
	siEntry, ok := lang.FindTag(0, "si")
	require.True(t, ok)

	tree := wbxmltree.NewTree(lang)
	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: siEntry}
	tree.Root = root
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte("  hi  ")})

	var buf bytes.Buffer
	require.NoError(t, EncodeWBXML(&buf, tree, EncodeConfig{Version: 1, TrimWhitespace: true}))
	assert.Contains(t, string(buf.Bytes()[4:]), string([]byte{wbxml.StrI, 'h', 'i', 0x00}))
}

func TestEncodeWBXMLCodePageSwitch(t *testing.T) {
	lang, ok := langtable.ByID(langtable.SyncML12)
	require.True(t, ok)
	tree := wbxmltree.NewTree(lang)

	syncHdr, ok := lang.FindTag(0, "SyncHdr")
	require.True(t, ok)
	anchor, ok := lang.FindTag(1, "Anchor")
	require.True(t, ok)

	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: syncHdr}
	tree.Root = root

	child := wbxmltree.NewNode(wbxmltree.Element)
	child.Tag = wbxmltree.Tag{Known: anchor}
	wbxmltree.AppendChild(root, child)

	var buf bytes.Buffer
	require.NoError(t, EncodeWBXML(&buf, tree, EncodeConfig{Version: 1}))
	body := buf.Bytes()[4:]
	// SyncHdr has content, then a page switch to 1 before Anchor.
	assert.Contains(t, string(body), string([]byte{0x00, 0x01}))
}
