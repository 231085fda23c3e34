// Package wbxmlerr defines the flat tagged error kind shared by every
// layer of the codec, mirroring the error enum of the original
// library so that a caller mapping errors to process exit codes keeps
// the same numbering.
package wbxmlerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a codec failure. Kinds cluster the way spec.md §7
// describes: parameters, memory, parser framing, semantic, charset,
// encoder.
type Kind int

const (
	// BadParameter marks an invalid argument to a driver entry point.
	BadParameter Kind = iota
	// NotEnoughMemory marks an allocation failure.
	NotEnoughMemory
	// EmptyDocument marks a zero-length input document.
	EmptyDocument
	// UnexpectedEOF marks a short read mid-token.
	UnexpectedEOF
	// InvalidMBUint32 marks a multi-byte integer with more than five
	// continuation bytes.
	InvalidMBUint32
	// StringTableIndexOutOfRange marks a STR_T or LITERAL offset that
	// does not address a byte inside the emitted/parsed string table.
	StringTableIndexOutOfRange
	// UnterminatedLiteral marks a string-table entry with no NUL
	// terminator before the end of the table blob.
	UnterminatedLiteral
	// UnknownPublicID marks a public identifier with no matching
	// LanguageRecord and no forced-language override.
	UnknownPublicID
	// UnknownTag marks a (code page, token) pair absent from the
	// active language's tag table.
	UnknownTag
	// UnknownAttr marks a (code page, token) pair absent from the
	// active language's attribute table.
	UnknownAttr
	// UnknownExtension marks an EXT token the active language does not
	// define a meaning for.
	UnknownExtension
	// UnknownCharset marks a charset MIBEnum with no known decoder.
	UnknownCharset
	// UnsupportedCharset marks a charset this build cannot convert.
	UnsupportedCharset
	// CharsetConversionFailed marks a byte sequence that is invalid in
	// its declared charset.
	CharsetConversionFailed
	// StringTableDisabled marks an attempt to emit a literal tag or
	// attribute while the encoder's string table is turned off.
	StringTableDisabled
	// AppendFailed marks a failure writing to the output sink.
	AppendFailed
	// UnknownXMLLanguage marks an XML root element with no language
	// whose public identifier, DTD or root element name matches.
	UnknownXMLLanguage
	// XMLParsingFailed marks a malformed XML input document.
	XMLParsingFailed
	// Base64DecodeFailed marks invalid base64 text in a binary-tagged
	// element.
	Base64DecodeFailed
)

var kindNames = map[Kind]string{
	BadParameter:               "BAD_PARAMETER",
	NotEnoughMemory:            "NOT_ENOUGH_MEMORY",
	EmptyDocument:              "EMPTY_DOCUMENT",
	UnexpectedEOF:              "UNEXPECTED_EOF",
	InvalidMBUint32:            "INVALID_MB_UINT32",
	StringTableIndexOutOfRange: "STRTBL_INDEX_OUT_OF_RANGE",
	UnterminatedLiteral:        "UNTERMINATED_LITERAL",
	UnknownPublicID:            "UNKNOWN_PUBLIC_ID",
	UnknownTag:                 "UNKNOWN_TAG",
	UnknownAttr:                "UNKNOWN_ATTR",
	UnknownExtension:           "UNKNOWN_EXTENSION",
	UnknownCharset:             "UNKNOWN_CHARSET",
	UnsupportedCharset:         "UNSUPPORTED_CHARSET",
	CharsetConversionFailed:    "CHARSET_CONVERSION_FAILED",
	StringTableDisabled:        "STRTBL_DISABLED",
	AppendFailed:               "APPEND_FAILED",
	UnknownXMLLanguage:         "UNKNOWN_XML_LANGUAGE",
	XMLParsingFailed:           "XML_PARSING_FAILED",
	Base64DecodeFailed:         "BASE64_DECODE_FAILED",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by every package in this module. It
// carries the Kind, the byte offset at which the failure was detected
// (-1 when not applicable, e.g. encoder-side or parameter errors), and
// the underlying cause wrapped with a stack trace.
type Error struct {
	Kind   Kind
	Offset int
	cause  error
}

// New builds an Error with no byte offset and no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Offset: -1, cause: errors.New(msg)}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: -1, cause: errors.Errorf(format, args...)}
}

// At attaches a byte offset to the error, returning a new *Error.
func (e *Error) At(offset int) *Error {
	return &Error{Kind: e.Kind, Offset: offset, cause: e.cause}
}

// Wrap builds an Error of the given kind around a lower-level cause,
// attaching a stack trace at the call site.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Offset: -1, cause: errors.Wrap(cause, msg)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.cause)
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap implements the standard errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target shares this error's Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Of returns the Kind of err if err is (or wraps) an *Error, and
// false otherwise.
func Of(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
