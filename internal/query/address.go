package query

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

// GetHistory returns the transactions touching scriptHash in index order.
func (q *Query) GetHistory(ctx context.Context, scriptHash model.ScriptHash) ([]model.HistoryEntry, error) {
	history, err := q.index.History(ctx, scriptHash)
	if err != nil {
		return nil, indexError("get_history", err)
	}
	return history, nil
}

// ListUnspent returns unspent outputs of scriptHash with at least minConf confirmations.
// Filtering is done by the index.
func (q *Query) ListUnspent(ctx context.Context, scriptHash model.ScriptHash, minConf uint32) ([]model.Utxo, error) {
	utxos, err := q.index.ListUnspent(ctx, scriptHash, minConf)
	if err != nil {
		return nil, indexError("list_unspent", err)
	}
	return utxos, nil
}

// GetBalance returns the confirmed and unconfirmed balance of scriptHash.
func (q *Query) GetBalance(ctx context.Context, scriptHash model.ScriptHash) (model.Balance, error) {
	balance, err := q.index.Balance(ctx, scriptHash)
	if err != nil {
		return model.Balance{}, indexError("get_balance", err)
	}
	return balance, nil
}
