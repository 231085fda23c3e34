package encoder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

func TestEncodeXMLCompactRoundtripsAttributesAndText(t *testing.T) {
	tree := buildSITree(t)
	var buf bytes.Buffer
	require.NoError(t, EncodeXML(&buf, tree, XMLConfig{Style: Compact}))
	out := buf.String()
	assert.Contains(t, out, `<si>`)
	assert.Contains(t, out, `<indication href="http://a/"/>`)
	assert.Contains(t, out, `</si>`)
	assert.NotContains(t, out, "\n")
}

func TestEncodeXMLIndentAddsDoctypeAndNewlines(t *testing.T) {
	tree := buildSITree(t)
	var buf bytes.Buffer
	require.NoError(t, EncodeXML(&buf, tree, XMLConfig{Style: Indent}))
	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<!DOCTYPE si PUBLIC "-//WAPFORUM//DTD SI 1.0//EN" "http://www.wapforum.org/DTD/si.dtd">`)
	assert.Contains(t, out, "\n")
}

func TestEncodeXMLCanonicalOmitsPreambleAndSortsAttrs(t *testing.T) {
	lang, _ := langtable.ByID(langtable.SI10)
	tree := wbxmltree.NewTree(lang)
	indEntry, _ := lang.FindTag(0, "indication")
	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: indEntry}
	hrefEntry, _ := lang.FindAttr("href", "http://a/")
	createdEntry, ok := lang.FindAttr("created", "")
	require.True(t, ok)
	root.Attrs = []wbxmltree.Attribute{
		{Name: wbxmltree.AttributeName{Known: hrefEntry}, Value: []byte("http://a/")},
		{Name: wbxmltree.AttributeName{Known: createdEntry}, Value: []byte("2020")},
	}
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte("x")})
	tree.Root = root

	var buf bytes.Buffer
	require.NoError(t, EncodeXML(&buf, tree, XMLConfig{Style: Canonical}))
	out := buf.String()
	assert.NotContains(t, out, "<?xml")
	assert.Less(t, strings.Index(out, `created=`), strings.Index(out, `href=`))
}

func TestMixedContentPrintsCompactlyEvenInIndentMode(t *testing.T) {
	lang, _ := langtable.ByID(langtable.SI10)
	tree := wbxmltree.NewTree(lang)
	siEntry, _ := lang.FindTag(0, "si")
	indEntry, _ := lang.FindTag(0, "indication")
	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: siEntry}
	tree.Root = root
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte("before ")})
	child := wbxmltree.NewNode(wbxmltree.Element)
	child.Tag = wbxmltree.Tag{Known: indEntry}
	wbxmltree.AppendChild(root, child)
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte(" after")})

	var buf bytes.Buffer
	require.NoError(t, EncodeXML(&buf, tree, XMLConfig{Style: Indent}))
	out := buf.String()
	assert.Contains(t, out, "before <indication/> after")
}
