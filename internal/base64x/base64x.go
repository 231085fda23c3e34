// Package base64x isolates the base64 codec behind the binary/base64
// tag option flag (spec.md §9's "layering violation" note): the XML
// reader decodes such an element's base64 text before it reaches the
// intermediate tree, so the tree always holds the raw bytes, and the
// XML encoder encodes them again on the way out. This package is the
// single place that encodes or decodes it.
//
// encoding/base64 is the standard library's own implementation of a
// fixed IETF algorithm with no format-specific variation this codec
// needs (no custom alphabet, no streaming requirement beyond what
// encoding/base64.Encoding already offers); nothing in the retrieval
// pack carries a third-party base64 implementation, so this component
// is built directly on the standard library.
package base64x

import (
	"encoding/base64"

	"github.com/oma-wbxml/wbxmlconv/wbxmlerr"
)

// Decode decodes standard (RFC 4648) base64 text, as found in the XML
// representation of a binary-tagged element, into raw bytes.
func Decode(text []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return nil, wbxmlerr.Wrap(wbxmlerr.Base64DecodeFailed, err, "decode binary element content")
	}
	return out[:n], nil
}

// Encode encodes raw bytes, as found in a WBXML OPAQUE block for a
// binary-tagged element, into standard base64 text with no embedded
// whitespace.
func Encode(raw []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out
}
