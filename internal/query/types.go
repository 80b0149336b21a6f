// Package query is the single read/write entry point over the chain node and the
// address index: it picks the backend, normalizes units and formats, and classifies
// collaborator failures.
package query

import (
	"context"
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainNode answers chain-state queries and accepts transaction broadcast.
	// Fee rates crossing this interface are in BTC/kB.
	ChainNode interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error)
		GetBlockHeader(ctx context.Context, hash *chainhash.Hash, verbose bool) (json.RawMessage, error)
		GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetRawTransaction(ctx context.Context, txid *chainhash.Hash, verbose bool) (json.RawMessage, error)
		EstimateSmartFee(ctx context.Context, confTarget int64) (*btcjson.EstimateSmartFeeResult, error)
		GetMempoolInfo(ctx context.Context) (json.RawMessage, error)
		GetRawMempool(ctx context.Context, verbose bool) (json.RawMessage, error)
		SendRawTransaction(ctx context.Context, txHex string) (*chainhash.Hash, error)
	}
	// AddressIndex answers script-hash scoped queries.
	AddressIndex interface {
		History(ctx context.Context, scriptHash model.ScriptHash) ([]model.HistoryEntry, error)
		ListUnspent(ctx context.Context, scriptHash model.ScriptHash, minConf uint32) ([]model.Utxo, error)
		Balance(ctx context.Context, scriptHash model.ScriptHash) (model.Balance, error)
	}
)
