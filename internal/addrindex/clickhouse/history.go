package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

const historyQuery = `
SELECT
	txid,
	block_height,
	value_delta
FROM address_history FINAL
WHERE coin = ? AND network = ? AND scripthash = ?
ORDER BY
	block_height = 0,
	block_height,
	tx_position,
	txid`

// History returns the transactions touching scriptHash, confirmed ones by height and
// position in block, then unconfirmed ones.
func (r *Repository) History(ctx context.Context, scriptHash model.ScriptHash) (history []model.HistoryEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("history", r.coin, r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, historyQuery, string(r.coin), string(r.network), scriptHash.String())
	if err != nil {
		return nil, fmt.Errorf("query address history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			txid  string
			entry model.HistoryEntry
		)
		if err = rows.Scan(&txid, &entry.Height, &entry.Delta); err != nil {
			return nil, fmt.Errorf("scan address history: %w", err)
		}
		hash, parseErr := chainhash.NewHashFromStr(txid)
		if parseErr != nil {
			err = fmt.Errorf("parse history txid %q: %w", txid, parseErr)
			return nil, err
		}
		entry.TxID = *hash
		history = append(history, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address history: %w", err)
	}

	return history, nil
}
