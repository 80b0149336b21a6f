package querytest

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
)

var _ query.AddressIndex = (*Index)(nil)

// Index is an in-memory address index. Entries at height 0 are unconfirmed.
type Index struct {
	mu      sync.RWMutex
	tip     uint32
	history map[model.ScriptHash][]model.HistoryEntry
	utxos   map[model.ScriptHash][]model.Utxo
	err     error
}

// NewIndex returns an empty index synced to tip.
func NewIndex(tip uint32) *Index {
	return &Index{
		tip:     tip,
		history: make(map[model.ScriptHash][]model.HistoryEntry),
		utxos:   make(map[model.ScriptHash][]model.Utxo),
	}
}

// SetTip moves the height confirmations are counted from.
func (i *Index) SetTip(height uint32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tip = height
}

// AddHistory appends entries to the history of scriptHash.
func (i *Index) AddHistory(scriptHash model.ScriptHash, entries ...model.HistoryEntry) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.history[scriptHash] = append(i.history[scriptHash], entries...)
}

// AddUtxo records an unspent output of scriptHash. Confirmations are derived on read.
func (i *Index) AddUtxo(scriptHash model.ScriptHash, utxo model.Utxo) {
	i.mu.Lock()
	defer i.mu.Unlock()
	utxo.Confirmations = 0
	i.utxos[scriptHash] = append(i.utxos[scriptHash], utxo)
}

// Fail makes every lookup return err until cleared with nil.
func (i *Index) Fail(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.err = err
}

func (i *Index) History(ctx context.Context, scriptHash model.ScriptHash) ([]model.HistoryEntry, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if err := i.check(ctx); err != nil {
		return nil, err
	}
	return append([]model.HistoryEntry(nil), i.history[scriptHash]...), nil
}

func (i *Index) ListUnspent(ctx context.Context, scriptHash model.ScriptHash, minConf uint32) ([]model.Utxo, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if err := i.check(ctx); err != nil {
		return nil, err
	}
	var utxos []model.Utxo
	for _, utxo := range i.utxos[scriptHash] {
		utxo.Confirmations = i.confirmations(utxo.Height)
		if utxo.Confirmations < minConf {
			continue
		}
		utxos = append(utxos, utxo)
	}
	return utxos, nil
}

func (i *Index) Balance(ctx context.Context, scriptHash model.ScriptHash) (model.Balance, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if err := i.check(ctx); err != nil {
		return model.Balance{}, err
	}
	var balance model.Balance
	for _, utxo := range i.utxos[scriptHash] {
		if utxo.Height == 0 {
			balance.Unconfirmed += utxo.Value
			continue
		}
		balance.Confirmed += utxo.Value
	}
	return balance, nil
}

func (i *Index) confirmations(height uint32) uint32 {
	if height == 0 || height > i.tip {
		return 0
	}
	return i.tip - height + 1
}

func (i *Index) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.err
}
