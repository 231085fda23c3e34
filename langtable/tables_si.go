package langtable

// SI 1.0 — WAP Service Indication, WAP-167-ServiceInd. Public
// identifier 0x05 and the si/indication element pair match the seed
// document in spec.md §8 scenario 1.
func init() {
	register(&LanguageRecord{
		ID:             SI10,
		PublicID:       0x05,
		PublicIDString: "-//WAPFORUM//DTD SI 1.0//EN",
		DTDSystemID:    "http://www.wapforum.org/DTD/si.dtd",
		RootElement:    "si",
		Tags: []TagEntry{
			{Page: 0, Code: 0x05, Name: "si"},
			{Page: 0, Code: 0x06, Name: "indication"},
		},
		Attrs: []AttrEntry{
			{Page: 0, Code: 0x05, Name: "action", ValuePrefix: "signal-none"},
			{Page: 0, Code: 0x06, Name: "action", ValuePrefix: "signal-low"},
			{Page: 0, Code: 0x07, Name: "action", ValuePrefix: "signal-medium"},
			{Page: 0, Code: 0x08, Name: "action", ValuePrefix: "signal-high"},
			{Page: 0, Code: 0x09, Name: "action", ValuePrefix: "delete"},
			{Page: 0, Code: 0x0A, Name: "created"},
			{Page: 0, Code: 0x0B, Name: "href"},
			{Page: 0, Code: 0x0C, Name: "href", ValuePrefix: "http://"},
			{Page: 0, Code: 0x0D, Name: "href", ValuePrefix: "http://www."},
			{Page: 0, Code: 0x0E, Name: "href", ValuePrefix: "https://"},
			{Page: 0, Code: 0x0F, Name: "href", ValuePrefix: "https://www."},
			{Page: 0, Code: 0x10, Name: "si-expire"},
			{Page: 0, Code: 0x11, Name: "class"},
		},
		AttrValues: []AttrValueEntry{
			{Page: 0, Code: 0x85, Value: ".com/"},
			{Page: 0, Code: 0x86, Value: ".edu/"},
			{Page: 0, Code: 0x87, Value: ".net/"},
			{Page: 0, Code: 0x88, Value: ".org/"},
		},
	})
}
