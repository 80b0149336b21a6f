package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

const balanceQuery = `
SELECT
	sumIf(value, block_height > 0) AS confirmed,
	sumIf(value, block_height = 0) AS unconfirmed
FROM address_utxos FINAL
WHERE coin = ? AND network = ? AND scripthash = ? AND spent = 0`

// Balance sums the unspent outputs of scriptHash, split by confirmation.
func (r *Repository) Balance(ctx context.Context, scriptHash model.ScriptHash) (balance model.Balance, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("balance", r.coin, r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, balanceQuery, string(r.coin), string(r.network), scriptHash.String())
	if err != nil {
		return model.Balance{}, fmt.Errorf("query balance: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.Balance{}, fmt.Errorf("balance not found")
	}
	if err = rows.Scan(&balance.Confirmed, &balance.Unconfirmed); err != nil {
		return model.Balance{}, fmt.Errorf("scan balance: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Balance{}, fmt.Errorf("iterate balance: %w", err)
	}

	return balance, nil
}
