package query

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

const (
	// satPerByteFactor converts BTC/kB into sat/byte: 1e8 sat per BTC over 1e3 bytes per kB.
	satPerByteFactor = 100_000

	minRelayTxFeeField = "minrelaytxfee"

	feeHistogramBinWidth  = 100_000
	feeHistogramBinGrowth = 1.1
)

// BtcPerKBToSatPerByte converts a node fee rate into sat/byte rounded to float32 precision.
func BtcPerKBToSatPerByte(rate float64) float32 {
	return float32(rate * satPerByteFactor)
}

// EstimateFee returns the node's smart fee estimate for confirmation within target
// blocks in sat/byte. The bool is false when the node has no estimate.
func (q *Query) EstimateFee(ctx context.Context, target uint16) (float32, bool, error) {
	const op = "estimate_fee"

	res, err := q.node.EstimateSmartFee(ctx, int64(target))
	if err != nil {
		return 0, false, nodeError(op, err)
	}
	if res == nil {
		return 0, false, malformed(op, "empty estimatesmartfee reply")
	}
	if res.FeeRate == nil {
		return 0, false, nil
	}
	if math.IsNaN(*res.FeeRate) || math.IsInf(*res.FeeRate, 0) {
		return 0, false, malformed(op, "field feerate: not a finite number")
	}
	return BtcPerKBToSatPerByte(*res.FeeRate), true, nil
}

// RelayFee returns the node's minimum relay fee rate in sat/byte.
func (q *Query) RelayFee(ctx context.Context) (float32, error) {
	const op = "relay_fee"

	raw, err := q.node.GetMempoolInfo(ctx)
	if err != nil {
		return 0, nodeError(op, err)
	}
	var info map[string]any
	if err := json.Unmarshal(raw, &info); err != nil {
		return 0, malformed(op, "getmempoolinfo reply: %w", err)
	}
	value, present := info[minRelayTxFeeField]
	if !present {
		return 0, malformed(op, "field %s: missing", minRelayTxFeeField)
	}
	rate, numeric := value.(float64)
	if !numeric {
		return 0, malformed(op, "field %s: expected number, got %T", minRelayTxFeeField, value)
	}
	return BtcPerKBToSatPerByte(rate), nil
}

type mempoolEntry struct {
	VSize *int64   `json:"vsize"`
	Size  *int64   `json:"size"`
	Fee   *float64 `json:"fee"`
	Fees  *struct {
		Base *float64 `json:"base"`
	} `json:"fees"`
}

type feeRateEntry struct {
	feeRate float32
	vsize   uint64
}

// GetFeeHistogram groups the mempool by fee rate, highest first. Each bin holds at least
// the current bin width of vsize except possibly the last; the width grows after each bin.
func (q *Query) GetFeeHistogram(ctx context.Context) ([]model.FeeHistogramBin, error) {
	const op = "get_fee_histogram"

	raw, err := q.node.GetRawMempool(ctx, true)
	if err != nil {
		return nil, nodeError(op, err)
	}
	var mempool map[string]mempoolEntry
	if err := json.Unmarshal(raw, &mempool); err != nil {
		return nil, malformed(op, "getrawmempool reply: %w", err)
	}

	entries := make([]feeRateEntry, 0, len(mempool))
	for txid, entry := range mempool {
		e, err := entry.feeRate()
		if err != nil {
			return nil, malformed(op, "mempool entry %s: %w", txid, err)
		}
		entries = append(entries, e)
	}
	return feeHistogram(entries), nil
}

func (e mempoolEntry) feeRate() (feeRateEntry, error) {
	size := e.VSize
	if size == nil {
		size = e.Size
	}
	if size == nil || *size <= 0 {
		return feeRateEntry{}, errMissingField("vsize")
	}
	fee := e.Fee
	if e.Fees != nil && e.Fees.Base != nil {
		fee = e.Fees.Base
	}
	if fee == nil {
		return feeRateEntry{}, errMissingField("fees.base")
	}
	sats, err := bitcoin.BtcToSatoshis(*fee)
	if err != nil {
		return feeRateEntry{}, err
	}
	return feeRateEntry{
		feeRate: float32(float64(sats) / float64(*size)),
		vsize:   uint64(*size),
	}, nil
}

func feeHistogram(entries []feeRateEntry) []model.FeeHistogramBin {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].feeRate > entries[j].feeRate
	})

	histogram := make([]model.FeeHistogramBin, 0)
	width := float64(feeHistogramBinWidth)
	var (
		binSize  uint64
		lastRate float32
	)
	for _, e := range entries {
		if float64(binSize) > width && e.feeRate != lastRate {
			histogram = append(histogram, model.FeeHistogramBin{FeeRate: lastRate, VSize: binSize})
			binSize = 0
			width *= feeHistogramBinGrowth
		}
		lastRate = e.feeRate
		binSize += e.vsize
	}
	if binSize > 0 {
		histogram = append(histogram, model.FeeHistogramBin{FeeRate: lastRate, VSize: binSize})
	}
	return histogram
}

type errMissingField string

func (e errMissingField) Error() string {
	return "field " + string(e) + ": missing"
}
