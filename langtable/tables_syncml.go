package langtable

// SyncML 1.2 — OMA-SyncML-RepresentationProtocol. Code page 0 carries
// the core SyncML element set; code page 1 ("MetInf") carries the
// elements that appear inside a <Meta> block. A separate LanguageRecord
// (DevInf12) models a device-information document sent embedded as a
// full WBXML sub-document (spec.md §4.5's SyncML nested-document
// OPAQUE mechanism).
func init() {
	register(&LanguageRecord{
		ID:             SyncML12,
		PublicID:       0x0D,
		PublicIDString: "-//SYNCML//DTD SyncML 1.2//EN",
		DTDSystemID:    "http://www.openmobilealliance.org/tech/DTD/OMA-SyncML-RepresentationProtocol_v1.2.dtd",
		RootElement:    "SyncML",
		Namespaces: []NamespaceEntry{
			{Page: 0, URI: "syncml:syncml1.2", Prefix: "SYNCML"},
			{Page: 1, URI: "syncml:metinf", Prefix: "METINF"},
		},
		Tags: []TagEntry{
			{Page: 0, Code: 0x05, Name: "Add"},
			{Page: 0, Code: 0x06, Name: "Alert"},
			{Page: 0, Code: 0x07, Name: "Archive"},
			{Page: 0, Code: 0x08, Name: "Atomic"},
			{Page: 0, Code: 0x09, Name: "Chal"},
			{Page: 0, Code: 0x0A, Name: "Cmd"},
			{Page: 0, Code: 0x0B, Name: "CmdID"},
			{Page: 0, Code: 0x0C, Name: "CmdRef"},
			{Page: 0, Code: 0x0D, Name: "Copy"},
			{Page: 0, Code: 0x0E, Name: "Cred"},
			{Page: 0, Code: 0x0F, Name: "Data"},
			{Page: 0, Code: 0x10, Name: "Delete"},
			{Page: 0, Code: 0x11, Name: "Exec"},
			{Page: 0, Code: 0x12, Name: "Final"},
			{Page: 0, Code: 0x13, Name: "Get"},
			{Page: 0, Code: 0x14, Name: "Item"},
			{Page: 0, Code: 0x15, Name: "Lang"},
			{Page: 0, Code: 0x16, Name: "LocName"},
			{Page: 0, Code: 0x17, Name: "LocURI"},
			{Page: 0, Code: 0x18, Name: "Map"},
			{Page: 0, Code: 0x19, Name: "MapItem"},
			{Page: 0, Code: 0x1A, Name: "Meta"},
			{Page: 0, Code: 0x1B, Name: "MsgID"},
			{Page: 0, Code: 0x1C, Name: "MsgRef"},
			{Page: 0, Code: 0x1D, Name: "NoResp"},
			{Page: 0, Code: 0x1E, Name: "NoResults"},
			{Page: 0, Code: 0x1F, Name: "Put"},
			{Page: 0, Code: 0x20, Name: "Replace"},
			{Page: 0, Code: 0x21, Name: "RespURI"},
			{Page: 0, Code: 0x22, Name: "Results"},
			{Page: 0, Code: 0x23, Name: "Search"},
			{Page: 0, Code: 0x24, Name: "Sequence"},
			{Page: 0, Code: 0x25, Name: "SessionID"},
			{Page: 0, Code: 0x26, Name: "SftDel"},
			{Page: 0, Code: 0x27, Name: "Source"},
			{Page: 0, Code: 0x28, Name: "SourceRef"},
			{Page: 0, Code: 0x29, Name: "Status"},
			{Page: 0, Code: 0x2A, Name: "Sync"},
			{Page: 0, Code: 0x2B, Name: "SyncBody"},
			{Page: 0, Code: 0x2C, Name: "SyncHdr"},
			{Page: 0, Code: 0x2D, Name: "SyncML"},
			{Page: 0, Code: 0x2E, Name: "SyncMLVer"},
			{Page: 0, Code: 0x2F, Name: "Target"},
			{Page: 0, Code: 0x30, Name: "TargetRef"},
			{Page: 0, Code: 0x31, Name: "VerDTD"},
			{Page: 0, Code: 0x32, Name: "VerProto"},
			{Page: 0, Code: 0x33, Name: "NumberOfChanges"},
			{Page: 0, Code: 0x34, Name: "MoreData"},
			{Page: 0, Code: 0x39, Name: "Move"},
			{Page: 0, Code: 0x3A, Name: "Correlator"},
			{Page: 1, Code: 0x05, Name: "Anchor"},
			{Page: 1, Code: 0x06, Name: "EMI"},
			{Page: 1, Code: 0x07, Name: "Format"},
			{Page: 1, Code: 0x08, Name: "FreeID"},
			{Page: 1, Code: 0x09, Name: "FreeMem"},
			{Page: 1, Code: 0x0A, Name: "Last"},
			{Page: 1, Code: 0x0B, Name: "Mark"},
			{Page: 1, Code: 0x0C, Name: "MaxMsgSize"},
			{Page: 1, Code: 0x0D, Name: "Mem"},
			{Page: 1, Code: 0x0E, Name: "MetInf"},
			{Page: 1, Code: 0x0F, Name: "Next"},
			{Page: 1, Code: 0x10, Name: "NextNonce"},
			{Page: 1, Code: 0x11, Name: "SharedMem"},
			{Page: 1, Code: 0x12, Name: "Size"},
			{Page: 1, Code: 0x13, Name: "Type"},
			{Page: 1, Code: 0x14, Name: "Version"},
			{Page: 1, Code: 0x15, Name: "MaxObjSize"},
			// DevInf/MgmtTree document-capability roots are always sent
			// as a nested full WBXML sub-document (see DevInf12 below);
			// the tags below exist only so an encountered-but-not-yet-
			// switched-into root is still recognised structurally.
			{Page: 0, Code: 0x35, Name: "DevInf"},
			{Page: 0, Code: 0x36, Name: "MgmtTree"},
		},
	})

	register(&LanguageRecord{
		ID:             DevInf12,
		PublicID:       0x0E,
		PublicIDString: "-//SYNCML//DTD DevInf 1.2//EN",
		DTDSystemID:    "http://www.openmobilealliance.org/tech/DTD/OMA-SyncML-DevInfo_v1.2.dtd",
		RootElement:    "DevInf",
		Tags: []TagEntry{
			{Page: 0, Code: 0x05, Name: "CTCap"},
			{Page: 0, Code: 0x06, Name: "CTType"},
			{Page: 0, Code: 0x07, Name: "DataStore"},
			{Page: 0, Code: 0x08, Name: "DataType"},
			{Page: 0, Code: 0x09, Name: "DevID"},
			{Page: 0, Code: 0x0A, Name: "DevInf"},
			{Page: 0, Code: 0x0B, Name: "DevTyp"},
			{Page: 0, Code: 0x0C, Name: "DisplayName"},
			{Page: 0, Code: 0x0D, Name: "DSMem"},
			{Page: 0, Code: 0x0E, Name: "Ext"},
			{Page: 0, Code: 0x0F, Name: "FwV"},
			{Page: 0, Code: 0x10, Name: "HwV"},
			{Page: 0, Code: 0x11, Name: "Man"},
			{Page: 0, Code: 0x12, Name: "MaxGUIDSize"},
			{Page: 0, Code: 0x13, Name: "MaxID"},
			{Page: 0, Code: 0x14, Name: "MaxMem"},
			{Page: 0, Code: 0x15, Name: "Mod"},
			{Page: 0, Code: 0x16, Name: "OEM"},
			{Page: 0, Code: 0x17, Name: "ParamName"},
			{Page: 0, Code: 0x18, Name: "PropName"},
			{Page: 0, Code: 0x19, Name: "Rx"},
			{Page: 0, Code: 0x1A, Name: "Rx-Pref"},
			{Page: 0, Code: 0x1B, Name: "SharedMem"},
			{Page: 0, Code: 0x1C, Name: "SourceRef"},
			{Page: 0, Code: 0x1D, Name: "SwV"},
			{Page: 0, Code: 0x1E, Name: "SyncCap"},
			{Page: 0, Code: 0x1F, Name: "SyncType"},
			{Page: 0, Code: 0x20, Name: "Tx"},
			{Page: 0, Code: 0x21, Name: "Tx-Pref"},
			{Page: 0, Code: 0x22, Name: "ValEnum"},
			{Page: 0, Code: 0x23, Name: "VerCT"},
			{Page: 0, Code: 0x24, Name: "VerDTD"},
			{Page: 0, Code: 0x25, Name: "XNam"},
			{Page: 0, Code: 0x26, Name: "XVal"},
			{Page: 0, Code: 0x27, Name: "UTC"},
			{Page: 0, Code: 0x28, Name: "SupportNumberOfChanges"},
			{Page: 0, Code: 0x29, Name: "SupportLargeObjs"},
		},
	})
}
