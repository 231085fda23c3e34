// Package langtable holds the static, read-only per-dialect token
// tables that let the WBXML codec dispatch numeric (code page, token)
// pairs to XML names and back. The tables themselves are data copied
// from the WBXML/OMA specifications, not design; this file is the
// shape they are poured into and the lookup rules spec.md §4.2
// describes.
package langtable

import "strings"

// LanguageId identifies a WBXML dialect. Values are process-wide and
// never change shape at runtime.
type LanguageId int

const (
	Generic LanguageId = iota
	SI10
	SL10
	CO10
	Prov10
	Prov11
	EMN10
	DRMREL10
	SyncML10
	SyncML11
	SyncML12
	DevInf10
	DevInf11
	DevInf12
	MetaInf11
	MetaInf12
	WVCSP10
	WVCSP11
	WVCSP12
	ActiveSync
)

// TagEntry maps one (code page, token) pair to an XML element local
// name, plus the option flags spec.md §3 lists.
type TagEntry struct {
	Page  byte
	Code  byte
	Name  string
	// BinaryBase64 marks an element whose XML text content is base64
	// and whose WBXML content is the raw decoded bytes in an OPAQUE
	// block (spec.md §3's binary/base64 option).
	BinaryBase64 bool
	// EmptyAllowed marks an element that may be emitted with the
	// content bit clear even when downstream schemas would otherwise
	// expect a child.
	EmptyAllowed bool
}

// AttrEntry maps one (code page, token) pair to an XML attribute name
// and an optional value prefix the token also encodes (spec.md §4.5's
// "ATTRSTART may carry a built-in value prefix").
type AttrEntry struct {
	Page        byte
	Code        byte
	Name        string
	ValuePrefix string
}

// AttrValueEntry maps one (code page, token) pair to a full
// substring of an attribute value, usable anywhere inside the value
// position once the attribute name token has been emitted.
type AttrValueEntry struct {
	Page  byte
	Code  byte
	Value string
}

// ExtValueEntry maps one (code page, token) pair in the 0xC0-0xC2 /
// 0x80-0x82 / 0x40-0x42 extension ranges to a language-specific
// meaning. This module does not interpret extension semantics beyond
// recording the table shape; see wbxml/parser's UnknownExtension path.
type ExtValueEntry struct {
	Page  byte
	Code  byte
	Value string
}

// NamespaceEntry names the code page used for dispatch from an XML
// namespace prefix, per the single-separator convention in spec.md
// §6 (External Interfaces).
type NamespaceEntry struct {
	Page   byte
	URI    string
	Prefix string
}

// LanguageRecord is the static, read-only per-dialect table bundle.
type LanguageRecord struct {
	ID LanguageId

	// PublicID is the numeric WBXML public identifier, 0 when the
	// dialect has none and must be carried as a literal string.
	PublicID uint32
	// PublicIDString is the "-//VENDOR//DTD NAME//EN"-style identifier.
	PublicIDString string
	// DTDSystemID is the external DTD URL used when emitting the XML
	// DOCTYPE declaration.
	DTDSystemID string
	// RootElement is the expected root element's local name, used for
	// language sniffing when no public id is present.
	RootElement string

	Namespaces []NamespaceEntry
	Tags       []TagEntry
	Attrs      []AttrEntry
	AttrValues []AttrValueEntry
	ExtValues  []ExtValueEntry
}

var registry = map[LanguageId]*LanguageRecord{}

func register(r *LanguageRecord) {
	registry[r.ID] = r
}

// ByID returns the LanguageRecord for id.
func ByID(id LanguageId) (*LanguageRecord, bool) {
	r, ok := registry[id]
	return r, ok
}

// ByPublicID returns the LanguageRecord whose numeric public id
// matches n.
func ByPublicID(n uint32) (*LanguageRecord, bool) {
	if n == 0 {
		return nil, false
	}
	for _, r := range registry {
		if r.PublicID == n {
			return r, true
		}
	}
	return nil, false
}

// ByPublicIDString returns the LanguageRecord whose literal public
// identifier string matches s exactly.
func ByPublicIDString(s string) (*LanguageRecord, bool) {
	for _, r := range registry {
		if r.PublicIDString == s {
			return r, true
		}
	}
	return nil, false
}

// ByRootElement returns the LanguageRecord whose declared root
// element name matches name.
func ByRootElement(name string) (*LanguageRecord, bool) {
	for _, r := range registry {
		if r.RootElement == name {
			return r, true
		}
	}
	return nil, false
}

// FindTagByToken looks up the TagEntry for a (code page, token) pair
// as seen while parsing, i.e. the token is already known to belong to
// the given page.
func (r *LanguageRecord) FindTagByToken(page, code byte) (*TagEntry, bool) {
	for i := range r.Tags {
		if r.Tags[i].Page == page && r.Tags[i].Code == code {
			return &r.Tags[i], true
		}
	}
	return nil, false
}

// FindTag resolves an XML element name to a TagEntry, preferring a
// match on the currently active page and falling back to the first
// match across all pages in table order otherwise (spec.md §4.2).
func (r *LanguageRecord) FindTag(page byte, name string) (*TagEntry, bool) {
	var fallback *TagEntry
	for i := range r.Tags {
		if r.Tags[i].Name != name {
			continue
		}
		if r.Tags[i].Page == page {
			return &r.Tags[i], true
		}
		if fallback == nil {
			fallback = &r.Tags[i]
		}
	}
	if fallback != nil {
		return fallback, true
	}
	return nil, false
}

// FindAttrByToken looks up the AttrEntry for a (code page, token)
// pair as seen while parsing.
func (r *LanguageRecord) FindAttrByToken(page, code byte) (*AttrEntry, bool) {
	for i := range r.Attrs {
		if r.Attrs[i].Page == page && r.Attrs[i].Code == code {
			return &r.Attrs[i], true
		}
	}
	return nil, false
}

// FindAttrValueByToken looks up the AttrValueEntry for a (code page,
// token) pair as seen while parsing an attribute value.
func (r *LanguageRecord) FindAttrValueByToken(page, code byte) (*AttrValueEntry, bool) {
	for i := range r.AttrValues {
		if r.AttrValues[i].Page == page && r.AttrValues[i].Code == code {
			return &r.AttrValues[i], true
		}
	}
	return nil, false
}

// ExtValueByToken looks up the ExtValueEntry for a (code page, 0-2
// extension slot) pair as seen while parsing.
func (r *LanguageRecord) ExtValueByToken(page, code byte) (*ExtValueEntry, bool) {
	for i := range r.ExtValues {
		if r.ExtValues[i].Page == page && r.ExtValues[i].Code == code {
			return &r.ExtValues[i], true
		}
	}
	return nil, false
}

// FindAttr resolves an XML attribute (name, value) pair to the
// AttrEntry whose name matches and whose ValuePrefix (if any) is a
// prefix of value, preferring the longest such prefix (spec.md §4.2).
func (r *LanguageRecord) FindAttr(name, value string) (*AttrEntry, bool) {
	var best *AttrEntry
	for i := range r.Attrs {
		a := &r.Attrs[i]
		if a.Name != name {
			continue
		}
		if a.ValuePrefix != "" && !strings.HasPrefix(value, a.ValuePrefix) {
			continue
		}
		if best == nil || len(a.ValuePrefix) > len(best.ValuePrefix) {
			best = a
		}
	}
	if best != nil {
		return best, true
	}
	return nil, false
}

// FindAttrValueSegment greedily matches the longest AttrValueEntry
// whose Value is a prefix of the remaining residual value, for the
// left-to-right segmenting spec.md §4.5 describes.
func (r *LanguageRecord) FindAttrValueSegment(residual string) (*AttrValueEntry, bool) {
	var best *AttrValueEntry
	for i := range r.AttrValues {
		v := &r.AttrValues[i]
		if v.Value == "" || !strings.HasPrefix(residual, v.Value) {
			continue
		}
		if best == nil || len(v.Value) > len(best.Value) {
			best = v
		}
	}
	if best != nil {
		return best, true
	}
	return nil, false
}
