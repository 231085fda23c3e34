package convert

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxml/encoder"
	"github.com/oma-wbxml/wbxmlconv/wbxmltree"
)

// siSeedWBXML is the scenario-1 document from spec.md §8: version
// 1.1, SI 1.0 public id, UTF-8, empty string table, si/indication
// body with href="http://a/".
var siSeedWBXML = []byte{
	0x01, 0x05, 0x6A, 0x00,
	0x45,
	0x86,
	0x0C,
	0x03, 'a', '/', 0x00,
	0x01,
	0x01,
}

func TestDriverToXMLDecodesSeedDocument(t *testing.T) {
	d := NewDriver(New())
	out, err := d.ToXML(siSeedWBXML)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<si>")
	assert.Contains(t, s, `<indication href="http://a/"/>`)
	assert.Contains(t, s, "</si>")
}

func TestDriverRoundtripsWBXMLThroughXML(t *testing.T) {
	d := NewDriver(New())
	xmlBytes, err := d.ToXML(siSeedWBXML)
	require.NoError(t, err)

	back, err := d.ToWBXML(xmlBytes)
	require.NoError(t, err)
	assert.Equal(t, siSeedWBXML, back)
}

func TestDriverToXMLRejectsEmptyInput(t *testing.T) {
	d := NewDriver(New())
	_, err := d.ToXML(nil)
	assert.Error(t, err)
}

func TestDriverToWBXMLRejectsEmptyInput(t *testing.T) {
	d := NewDriver(New())
	_, err := d.ToWBXML(nil)
	assert.Error(t, err)
}

func TestDriverAnonymousRoundtripRequiresForcedLanguageToDecode(t *testing.T) {
	d := NewDriver(New(WithAnonymous(true)))
	xmlBytes, err := d.ToXML(siSeedWBXML)
	require.NoError(t, err)

	wbxmlBytes, err := d.ToWBXML(xmlBytes)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), wbxmlBytes[1]) // public_id forced to 1

	plain := NewDriver(New())
	_, err = plain.ToXML(wbxmlBytes)
	assert.Error(t, err)
}

// TestEmbeddedDevInfSubDocumentRoundtrips exercises the SyncML
// nested-document mechanism (spec.md §8 scenario 6): a DevInf tree,
// encoded by encodeSubTree as one OPAQUE block wrapping a full
// independent WBXML document, must decode back into a SubTree node
// whose own root is DevInf, not fall through to CData.
func TestEmbeddedDevInfSubDocumentRoundtrips(t *testing.T) {
	devInfLang, ok := langtable.ByID(langtable.DevInf12)
	require.True(t, ok)
	devInfEntry, ok := devInfLang.FindTag(0, "DevInf")
	require.True(t, ok)
	devIDEntry, ok := devInfLang.FindTag(0, "DevID")
	require.True(t, ok)

	devInfRoot := wbxmltree.NewNode(wbxmltree.Element)
	devInfRoot.Tag = wbxmltree.Tag{Known: devInfEntry}
	devID := wbxmltree.NewNode(wbxmltree.Element)
	devID.Tag = wbxmltree.Tag{Known: devIDEntry}
	wbxmltree.AppendChild(devID, &wbxmltree.Node{Type: wbxmltree.Text, Content: []byte("dev1")})
	wbxmltree.AppendChild(devInfRoot, devID)

	devInfTree := wbxmltree.NewTree(devInfLang)
	devInfTree.Root = devInfRoot
	devInfTree.Charset = New().charsetOrDefault()

	syncLang, ok := langtable.ByID(langtable.SyncML12)
	require.True(t, ok)
	syncHdrEntry, ok := syncLang.FindTag(0, "SyncHdr")
	require.True(t, ok)

	root := wbxmltree.NewNode(wbxmltree.Element)
	root.Tag = wbxmltree.Tag{Known: syncHdrEntry}
	wbxmltree.AppendChild(root, &wbxmltree.Node{Type: wbxmltree.SubTree, Sub: devInfTree})

	tree := wbxmltree.NewTree(syncLang)
	tree.Root = root
	tree.Charset = New().charsetOrDefault()

	var buf bytes.Buffer
	require.NoError(t, encoder.EncodeWBXML(&buf, tree, encoder.EncodeConfig{Version: 1, StringTable: true}))

	decoded, err := ParseWBXMLTree(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "SyncHdr", decoded.Root.Tag.Name())

	sub := decoded.Root.FirstChild
	require.NotNil(t, sub)
	require.Equal(t, wbxmltree.SubTree, sub.Type, "embedded document must decode as SubTree, not CData")
	require.NotNil(t, sub.Sub)
	require.NotNil(t, sub.Sub.Root)
	assert.Equal(t, "DevInf", sub.Sub.Root.Tag.Name())

	subDevID := sub.Sub.Root.FirstChild
	require.NotNil(t, subDevID)
	assert.Equal(t, "DevID", subDevID.Tag.Name())
	require.NotNil(t, subDevID.FirstChild)
	assert.Equal(t, "dev1", string(subDevID.FirstChild.Content))
}

// binaryFixtureLanguage is a synthetic, unregistered dialect used only
// to exercise the BinaryBase64 tag option end-to-end: no shipped table
// currently marks a real tag binary (spec.md §9's binary/base64 option
// has no seed-scenario fixture of its own), so a forced language is
// the grounded way to drive the feature without inventing fake real-
// world table data.
func binaryFixtureLanguage() *langtable.LanguageRecord {
	return &langtable.LanguageRecord{
		ID:             langtable.LanguageId(-1),
		PublicIDString: "-//WBXMLCONV//DTD BINARY FIXTURE 1.0//EN",
		RootElement:    "photo",
		Tags: []langtable.TagEntry{
			{Page: 0, Code: 0x05, Name: "photo", BinaryBase64: true},
		},
	}
}

func TestDriverRoundtripsBinaryBase64Element(t *testing.T) {
	lang := binaryFixtureLanguage()
	d := NewDriver(New(WithForcedLanguage(lang)))

	xmlIn := []byte(`<photo>dGVzdA==</photo>`)
	wbxmlBytes, err := d.ToWBXML(xmlIn)
	require.NoError(t, err)

	// The content is a single 4-byte OPAQUE block ("test"), not a
	// re-encoded base64 string: spec.md §8's exact-byte-count property.
	assert.Contains(t, string(wbxmlBytes), string([]byte{0xC3, 0x04, 't', 'e', 's', 't'}))

	xmlOut, err := d.ToXML(wbxmlBytes)
	require.NoError(t, err)
	assert.Contains(t, string(xmlOut), "dGVzdA==")
}
