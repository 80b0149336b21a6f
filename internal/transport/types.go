package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

type (
	// Facade is the query API served over HTTP; *query.Query implements it.
	Facade interface {
		GetTip(ctx context.Context) (model.Tip, error)
		GetTipHeight(ctx context.Context) (uint32, error)
		GetBlockHash(ctx context.Context, height uint32) (chainhash.Hash, error)
		GetHeader(ctx context.Context, height uint32) (string, error)
		GetHeaders(ctx context.Context, heights []uint32) ([]string, error)
		GetHeaderByHash(ctx context.Context, hash *chainhash.Hash) (string, error)
		GetBlockTxIDs(ctx context.Context, hash *chainhash.Hash) ([]chainhash.Hash, error)
		GetTransactionFromPos(ctx context.Context, height, pos uint32) (chainhash.Hash, error)
		GetTransactionMerkleProof(ctx context.Context, txid *chainhash.Hash, height uint32) (model.MerkleProof, error)
		EstimateFee(ctx context.Context, target uint16) (float32, bool, error)
		RelayFee(ctx context.Context) (float32, error)
		GetFeeHistogram(ctx context.Context) ([]model.FeeHistogramBin, error)
		GetHistory(ctx context.Context, scriptHash model.ScriptHash) ([]model.HistoryEntry, error)
		ListUnspent(ctx context.Context, scriptHash model.ScriptHash, minConf uint32) ([]model.Utxo, error)
		GetBalance(ctx context.Context, scriptHash model.ScriptHash) (model.Balance, error)
		GetTransactionHex(ctx context.Context, txid *chainhash.Hash) (string, error)
		GetTransactionDecoded(ctx context.Context, txid *chainhash.Hash) (json.RawMessage, error)
		Broadcast(ctx context.Context, txHex string) (chainhash.Hash, error)
		GetRawMempool(ctx context.Context) (json.RawMessage, error)
	}
	// AddressResolver maps an address to its script hash on the served network.
	AddressResolver interface {
		Address(address string) (model.ScriptHash, error)
	}
	Metrics interface {
		Observe(route, method string, code int, started time.Time)
	}
)
