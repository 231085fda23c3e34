package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oma-wbxml/wbxmlconv/internal/charset"
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
)

// drain collects every event a Parser yields until EndDocument.
func drain(t *testing.T, p *Parser) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := p.Token()
		require.NoError(t, err)
		out = append(out, ev)
		if _, ok := ev.(EndDocument); ok {
			return out
		}
	}
}

func TestEmptySIDocument(t *testing.T) {
	// spec.md §8 scenario 1: version 1, SI 1.0 public id, UTF-8,
	// empty string table, <si><indication href="http://a/" /></si>.
	data := []byte{
		0x01, 0x05, 0x6A, 0x00, // header: 01 05 6A 00
		0x45,                         // si, has content
		0x86,                         // indication, has attrs, no content
		0x0C,                         // href, prefix "http://"
		0x03, 'a', '/', 0x00,         // STR_I "a/"
		0x01, // END attribute list
		0x01, // END si content
	}
	p := NewParser(data)
	events := drain(t, p)

	require.Len(t, events, 6)
	sd := events[0].(StartDocument)
	assert.Equal(t, uint32(charset.MIBUTF8), sd.Charset)
	require.NotNil(t, sd.Language)
	assert.Equal(t, langtable.SI10, sd.Language.ID)

	si := events[1].(StartElement)
	assert.Equal(t, "si", si.Tag.Name())
	assert.False(t, si.Empty)

	indication := events[2].(StartElement)
	assert.Equal(t, "indication", indication.Tag.Name())
	assert.True(t, indication.Empty)
	require.Len(t, indication.Attrs, 1)
	assert.Equal(t, "href", indication.Attrs[0].Name.Name())
	assert.Equal(t, "http://a/", string(indication.Attrs[0].Value))

	endIndication := events[3].(EndElement)
	assert.Equal(t, "indication", endIndication.Tag.Name())
	assert.True(t, endIndication.WasEmpty)

	endSi := events[4].(EndElement)
	assert.Equal(t, "si", endSi.Tag.Name())
}

func TestUnknownTagReportsOffset(t *testing.T) {
	data := []byte{
		0x01, 0x05, 0x6A, 0x00, // header
		0x07, // no TagEntry at (page 0, code 0x07) in the SI table
	}
	p := NewParser(data)
	_, err := p.Token() // the whole document is parsed on this first call, so it already fails
	require.Error(t, err)
	_, err = p.Token() // every later call returns the same error
	require.Error(t, err)

	kind, ok := wbxmlerr.Of(err)
	require.True(t, ok)
	assert.Equal(t, wbxmlerr.UnknownTag, kind)

	werr, ok := err.(*wbxmlerr.Error)
	require.True(t, ok)
	assert.Equal(t, 4, werr.Offset)
}

func TestAnonymousDocumentRequiresForcedLanguage(t *testing.T) {
	data := anonymousRootDocument()

	_, err := NewParser(data).Token()
	require.Error(t, err)
	kind, ok := wbxmlerr.Of(err)
	require.True(t, ok)
	assert.Equal(t, wbxmlerr.UnknownPublicID, kind)

	generic, ok := langtable.ByID(langtable.Generic)
	require.True(t, ok)
	p := NewParser(data, WithForcedLanguage(generic))
	events := drain(t, p)
	require.Len(t, events, 4)
	root := events[1].(StartElement)
	assert.Equal(t, "root", root.Tag.Name())
	assert.True(t, root.Tag.IsLiteral())
}

// anonymousRootDocument builds a public_id=1 document whose single
// root element is a bare literal tag named "root", via a one-entry
// string table.
func anonymousRootDocument() []byte {
	return []byte{
		0x01,             // version
		0x01,             // public_id = 1 (anonymous)
		0x6A,             // charset UTF-8
		0x05,             // strtbl length = 5
		'r', 'o', 'o', 't', 0x00,
		0x04, 0x00, // LITERAL tag, index 0 ("root"), no attrs/content
	}
}

func TestEntityAndInlineTextCoalesceInContent(t *testing.T) {
	// Entities decode to the UTF-8 encoding of their code point and
	// coalesce with any adjacent inline text into one Characters event.
	data := []byte{
		0x01, 0x05, 0x6A, 0x00, // header (reuse SI's public id)
		0x45,            // si, has content
		0x03, 'a', 0x00, // STR_I "a"
		0x02, 0x41, // ENTITY, code point 0x41 ('A')
		0x01, // END si content
	}
	p := NewParser(data)
	events := drain(t, p)
	require.Len(t, events, 5)
	chars := events[2].(Characters)
	assert.Equal(t, "aA", string(chars))
}
