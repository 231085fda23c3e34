// Package convert is the one-shot driver spec.md §4.6 describes: it
// owns the configuration a conversion runs under, and the two
// directions — WBXML bytes to XML text and back — each built by
// parsing the input into a wbxmltree.Tree and serialising that tree
// with the other side's encoder.
package convert

import (
	"go.uber.org/zap"

	"github.com/oma-wbxml/wbxmlconv/internal/charset"
	"github.com/oma-wbxml/wbxmlconv/internal/xlog"
	"github.com/oma-wbxml/wbxmlconv/langtable"
	"github.com/oma-wbxml/wbxmlconv/wbxml/encoder"
)

// Config carries every knob spec.md §4.6 lists. The zero value is not
// ready for use: it has version 0, the string table off and no logger.
// New with no options gives WBXML version 1.1, no forced
// language/charset, string table enabled, compact XML, and a no-op
// logger.
type Config struct {
	version            uint8
	forcedLanguage     *langtable.LanguageRecord
	forcedCharset      uint32
	indentWidth        int
	preserveWhitespace bool
	stringTable        bool
	anonymous          bool
	xmlStyle           encoder.XMLStyle
	ignoreEmptyText    bool
	trimWhitespace     bool
	// vObjectHeuristic reproduces the source's undocumented habit of
	// treating SyncML <Data> inside <Add>/<Replace> as a vObject even
	// with no Meta/Type present (spec.md §9 Open Questions). Off by
	// default; the caller opts in.
	vObjectHeuristic bool
	log              *xlog.Logger
}

// defaultVersion is the WBXML 1.1 version byte: (major-1)<<4 | minor,
// which for major=1, minor=1 is 0x01 — the value spec.md §8 scenario
// 1's seed document starts with.
const defaultVersion uint8 = 0x01

// Option configures a Config at construction time.
type Option func(*Config)

// New builds a Config from the given options, matching the defaults
// above where an option is not supplied.
func New(opts ...Option) *Config {
	cfg := &Config{
		version:     defaultVersion,
		stringTable: true,
		log:         xlog.NopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVersion sets the WBXML version byte written by ToWBXML.
func WithVersion(v uint8) Option {
	return func(c *Config) { c.version = v }
}

// WithForcedLanguage overrides language resolution in both
// directions: ToXML skips public-id lookup, ToWBXML skips root-element
// sniffing.
func WithForcedLanguage(lang *langtable.LanguageRecord) Option {
	return func(c *Config) { c.forcedLanguage = lang }
}

// WithForcedCharset sets a charset MIBenum. ToXML uses it in place of
// the charset declared in the WBXML header; ToWBXML writes it into the
// output header and encodes inline strings in it. The XML input's own
// encoding declaration is not affected.
func WithForcedCharset(mib uint32) Option {
	return func(c *Config) { c.forcedCharset = mib }
}

// WithIndentWidth sets the per-depth space count for Indent XML style.
func WithIndentWidth(n int) Option {
	return func(c *Config) { c.indentWidth = n }
}

// WithPreserveWhitespace disables trimming of insignificant whitespace
// text nodes when building a tree from XML.
func WithPreserveWhitespace(preserve bool) Option {
	return func(c *Config) { c.preserveWhitespace = preserve }
}

// WithStringTable toggles the encoder's string-table pass. Disabling
// it while the document contains literal tags or attributes makes
// ToWBXML fail with wbxmlerr.StringTableDisabled.
func WithStringTable(enabled bool) Option {
	return func(c *Config) { c.stringTable = enabled }
}

// WithAnonymous makes ToWBXML emit public_id = 1 and omit any literal
// public-id string, per spec.md §8 scenario 5.
func WithAnonymous(anonymous bool) Option {
	return func(c *Config) { c.anonymous = anonymous }
}

// WithXMLStyle selects compact, indented or canonical XML output.
func WithXMLStyle(style encoder.XMLStyle) Option {
	return func(c *Config) { c.xmlStyle = style }
}

// WithIgnoreEmptyText makes ToWBXML skip a text node that is empty
// after WithTrimWhitespace trimming (if enabled), instead of emitting
// an empty inline string.
func WithIgnoreEmptyText(enabled bool) Option {
	return func(c *Config) { c.ignoreEmptyText = enabled }
}

// WithTrimWhitespace makes ToWBXML strip leading/trailing whitespace
// from text content before emission. It never affects binary/base64
// or CData content. This is distinct from WithPreserveWhitespace,
// which controls whether whitespace-only text nodes survive XML
// parsing in the first place.
func WithTrimWhitespace(enabled bool) Option {
	return func(c *Config) { c.trimWhitespace = enabled }
}

// WithVObjectHeuristic opts into the SyncML Data/Add/Replace vObject
// heuristic (spec.md §9 Open Questions); it is never applied silently.
func WithVObjectHeuristic(enabled bool) Option {
	return func(c *Config) { c.vObjectHeuristic = enabled }
}

// WithLogger attaches a logger for the driver's diagnostic paths. A
// nil logger is equivalent to not calling this option.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.log = xlog.OrNop(l) }
}

func (c *Config) charsetOrDefault() uint32 {
	if c.forcedCharset != charset.Unspecified {
		return c.forcedCharset
	}
	return charset.MIBUTF8
}
