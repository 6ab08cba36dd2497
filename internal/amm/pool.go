package amm

import "github.com/dexcore/ledger/internal/types"

// FeeDivisor is the denominator total_fee/exchange_fee are expressed
// against (basis-points-of-basis-points: 30 = 0.30%).
const FeeDivisor uint32 = 10_000

// InitSharesSupply is the number of LP shares minted for the first
// deposit into an empty pool, fixed regardless of the deposited amounts.
var InitSharesSupply = mustBalance("1000000000000000000000000") // 10^24

// MaxNumSymbols bounds how many assets a single pool may hold reserves of.
const MaxNumSymbols = 100

func mustBalance(s string) types.Balance {
	b, err := types.ParseBalance(s)
	if err != nil {
		panic(err)
	}
	return b
}

// VolumeEntry is the cumulative input/output volume tracked per symbol.
type VolumeEntry struct {
	Input  types.Balance
	Output types.Balance
}

// PoolInfo is the full state of one AMM pool: reserves, outstanding LP
// shares and who holds them, and cumulative swap volume, all keyed by
// pool ID the way the source keeps one storage item per pool.
type PoolInfo struct {
	Pid               types.FixedString
	TotalFee          uint32
	ExchangeFee       uint32
	SharesTotalSupply types.Balance
	SharesData        map[types.Account]types.Balance
	SymbolData        map[types.FixedString]types.Balance
	VolumeData        map[types.FixedString]VolumeEntry
	Description       string
}

func newPoolInfo(pid types.FixedString, totalFee, exchangeFee uint32, symbols []types.FixedString, description string) PoolInfo {
	symbolData := make(map[types.FixedString]types.Balance, len(symbols))
	for _, s := range symbols {
		symbolData[s] = types.ZeroBalance()
	}
	return PoolInfo{
		Pid:               pid,
		TotalFee:          totalFee,
		ExchangeFee:       exchangeFee,
		SharesTotalSupply: types.ZeroBalance(),
		SharesData:        make(map[types.Account]types.Balance),
		SymbolData:        symbolData,
		VolumeData:        make(map[types.FixedString]VolumeEntry),
		Description:       description,
	}
}

// poolInfoRecord is PoolInfo's on-disk shape: Balance holds an unexported
// big.Int and can't round-trip through the codec directly, so every
// quantity is carried as a decimal string, the same convention the
// ledger package uses for balance and issuance records.
type poolInfoRecord struct {
	Pid               types.FixedString
	TotalFee          uint32
	ExchangeFee       uint32
	SharesTotalSupply string
	SharesData        map[types.Account]string
	SymbolData        map[types.FixedString]string
	VolumeData        map[types.FixedString]volumeRecord
	Description       string
}

type volumeRecord struct {
	Input  string
	Output string
}

func toRecord(p PoolInfo) poolInfoRecord {
	shares := make(map[types.Account]string, len(p.SharesData))
	for a, b := range p.SharesData {
		shares[a] = b.String()
	}
	symbols := make(map[types.FixedString]string, len(p.SymbolData))
	for s, b := range p.SymbolData {
		symbols[s] = b.String()
	}
	volume := make(map[types.FixedString]volumeRecord, len(p.VolumeData))
	for s, v := range p.VolumeData {
		volume[s] = volumeRecord{Input: v.Input.String(), Output: v.Output.String()}
	}
	return poolInfoRecord{
		Pid:               p.Pid,
		TotalFee:          p.TotalFee,
		ExchangeFee:       p.ExchangeFee,
		SharesTotalSupply: p.SharesTotalSupply.String(),
		SharesData:        shares,
		SymbolData:        symbols,
		VolumeData:        volume,
		Description:       p.Description,
	}
}

func fromRecord(r poolInfoRecord) (PoolInfo, error) {
	total, err := types.ParseBalance(r.SharesTotalSupply)
	if err != nil {
		return PoolInfo{}, err
	}
	shares := make(map[types.Account]types.Balance, len(r.SharesData))
	for a, s := range r.SharesData {
		b, err := types.ParseBalance(s)
		if err != nil {
			return PoolInfo{}, err
		}
		shares[a] = b
	}
	symbols := make(map[types.FixedString]types.Balance, len(r.SymbolData))
	for sym, s := range r.SymbolData {
		b, err := types.ParseBalance(s)
		if err != nil {
			return PoolInfo{}, err
		}
		symbols[sym] = b
	}
	volume := make(map[types.FixedString]VolumeEntry, len(r.VolumeData))
	for sym, v := range r.VolumeData {
		in, err := types.ParseBalance(v.Input)
		if err != nil {
			return PoolInfo{}, err
		}
		out, err := types.ParseBalance(v.Output)
		if err != nil {
			return PoolInfo{}, err
		}
		volume[sym] = VolumeEntry{Input: in, Output: out}
	}
	return PoolInfo{
		Pid:               r.Pid,
		TotalFee:          r.TotalFee,
		ExchangeFee:       r.ExchangeFee,
		SharesTotalSupply: total,
		SharesData:        shares,
		SymbolData:        symbols,
		VolumeData:        volume,
		Description:       r.Description,
	}, nil
}
