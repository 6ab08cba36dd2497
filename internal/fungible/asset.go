package fungible

import "github.com/dexcore/ledger/internal/types"

// MaxPrecision is the highest allowed decimal precision for an asset.
const MaxPrecision = 18

// AssetInfo describes a registered asset's static configuration.
type AssetInfo struct {
	Symbol      types.FixedString
	Name        types.FixedString
	Precision   uint8
	IsMintable  bool
	IsBurnable  bool
	Description string
}

// assetInfoRecord is the codec-friendly wire shape of AssetInfo (the
// codec round-trips FixedString as its raw 16 bytes via the array's
// default CBOR encoding, so no extra conversion is needed there).
type assetInfoRecord struct {
	Symbol      types.FixedString
	Name        types.FixedString
	Precision   uint8
	IsMintable  bool
	IsBurnable  bool
	Description string
}

func toRecord(info AssetInfo) assetInfoRecord {
	return assetInfoRecord(info)
}

func fromRecord(rec assetInfoRecord) AssetInfo {
	return AssetInfo(rec)
}
