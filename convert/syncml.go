package convert

import "github.com/oma-wbxml/wbxmlconv/langtable"

// embeddedDocumentTags are the element names that, per spec.md §8
// scenario 6, mark the boundary of a separately-tokenized nested
// WBXML document (DevInf capability data inside SyncML, the DM DDF
// tree inside OMA DM).
var embeddedDocumentTags = map[string]bool{
	"DevInf":   true,
	"MgmtTree": true,
}

// isEmbeddedDocumentBoundary reports whether name marks the start of
// a nested sub-document, and if so returns the LanguageRecord that
// sub-document should be parsed/encoded under. No registered
// LanguageRecord has MgmtTree as its root element, so for MgmtTree it
// reports false and a MgmtTree element is handled as ordinary content.
func isEmbeddedDocumentBoundary(name string) (*langtable.LanguageRecord, bool) {
	if !embeddedDocumentTags[name] {
		return nil, false
	}
	return langtable.ByRootElement(name)
}

// vObjectContainerTags are the SyncML command elements whose <Data>
// child the source treats as a vObject even without a Meta/Type
// announcing it (spec.md §9 Open Questions).
var vObjectContainerTags = map[string]bool{
	"Add":     true,
	"Replace": true,
}

// isImplicitVObjectData reports whether element name, as a child of
// parentName, should be treated as vObject content absent explicit
// typing — only consulted when Config.vObjectHeuristic is set.
func isImplicitVObjectData(parentName, name string) bool {
	return name == "Data" && vObjectContainerTags[parentName]
}
