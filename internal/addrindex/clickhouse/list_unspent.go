package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

const (
	indexTipHeightQuery = `
SELECT coalesce(max(height), toUInt32(0)) AS tip_height
FROM address_index_tip FINAL
WHERE coin = ? AND network = ?`

	unspentQuery = `
SELECT
	txid,
	vout,
	value,
	block_height
FROM address_utxos FINAL
WHERE coin = ? AND network = ? AND scripthash = ? AND spent = 0
ORDER BY
	block_height = 0,
	block_height,
	txid,
	vout`
)

// ListUnspent returns unspent outputs of scriptHash with at least minConf confirmations,
// counted from the tip the index has processed.
func (r *Repository) ListUnspent(ctx context.Context, scriptHash model.ScriptHash, minConf uint32) (utxos []model.Utxo, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_unspent", r.coin, r.network, err, start)
	}()

	tip, err := r.tipHeight(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, unspentQuery, string(r.coin), string(r.network), scriptHash.String())
	if err != nil {
		return nil, fmt.Errorf("query unspent outputs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			txid string
			utxo model.Utxo
		)
		if err = rows.Scan(&txid, &utxo.Vout, &utxo.Value, &utxo.Height); err != nil {
			return nil, fmt.Errorf("scan unspent output: %w", err)
		}
		utxo.Confirmations = confirmations(utxo.Height, tip)
		if utxo.Confirmations < minConf {
			continue
		}
		hash, parseErr := chainhash.NewHashFromStr(txid)
		if parseErr != nil {
			err = fmt.Errorf("parse unspent txid %q: %w", txid, parseErr)
			return nil, err
		}
		utxo.TxID = *hash
		utxos = append(utxos, utxo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unspent outputs: %w", err)
	}

	return utxos, nil
}

func (r *Repository) tipHeight(ctx context.Context) (height uint32, err error) {
	rows, err := r.conn.Query(ctx, indexTipHeightQuery, string(r.coin), string(r.network))
	if err != nil {
		return 0, fmt.Errorf("query index tip height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("index tip height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan index tip height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate index tip height: %w", err)
	}

	return height, nil
}
