// Package node adapts a bitcoind JSON-RPC client to the context-aware chain node
// contract used by the query facade.
package node

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
	"go.uber.org/ratelimit"
)

var _ query.ChainNode = (*RPCNode)(nil)

// RPCNode issues node RPCs under a rate limit and a per-call timeout, recording
// metrics for every call. The underlying client has no cancellation, so an abandoned
// call keeps running in the background until the client's own HTTP timeout.
type RPCNode struct {
	client     RPCClient
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
	timeout    time.Duration
}

// NewRPCNode constructs a node adapter. A zero timeout leaves calls bounded by ctx only.
func NewRPCNode(client RPCClient, limiter ratelimit.Limiter, rpcMetrics RPCMetrics, timeout time.Duration) *RPCNode {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCNode{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
		timeout:    timeout,
	}
}

func (n *RPCNode) GetBlockCount(ctx context.Context) (int64, error) {
	return call(ctx, n, "get_block_count", n.client.GetBlockCount)
}

func (n *RPCNode) GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error) {
	return call(ctx, n, "get_block_hash", func() (*chainhash.Hash, error) {
		return n.client.GetBlockHash(height)
	})
}

// GetBlockHeader returns the hex serialized header, or the decoded object when verbose.
func (n *RPCNode) GetBlockHeader(ctx context.Context, hash *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	return n.rawRequest(ctx, "get_block_header", "getblockheader", hash.String(), verbose)
}

func (n *RPCNode) GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	return call(ctx, n, "get_block_verbose", func() (*btcjson.GetBlockVerboseResult, error) {
		return n.client.GetBlockVerbose(hash)
	})
}

// GetRawTransaction returns the raw transaction hex, or the decoded object when verbose.
func (n *RPCNode) GetRawTransaction(ctx context.Context, txid *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	return n.rawRequest(ctx, "get_raw_transaction", "getrawtransaction", txid.String(), verbosity)
}

// EstimateSmartFee asks for an estimate in the node's default estimate mode.
func (n *RPCNode) EstimateSmartFee(ctx context.Context, confTarget int64) (*btcjson.EstimateSmartFeeResult, error) {
	return call(ctx, n, "estimate_smart_fee", func() (*btcjson.EstimateSmartFeeResult, error) {
		return n.client.EstimateSmartFee(confTarget, nil)
	})
}

func (n *RPCNode) GetMempoolInfo(ctx context.Context) (json.RawMessage, error) {
	return n.rawRequest(ctx, "get_mempool_info", "getmempoolinfo")
}

func (n *RPCNode) GetRawMempool(ctx context.Context, verbose bool) (json.RawMessage, error) {
	return n.rawRequest(ctx, "get_raw_mempool", "getrawmempool", verbose)
}

func (n *RPCNode) SendRawTransaction(ctx context.Context, txHex string) (*chainhash.Hash, error) {
	raw, err := n.rawRequest(ctx, "send_raw_transaction", "sendrawtransaction", txHex)
	if err != nil {
		return nil, err
	}
	var txid string
	if err := json.Unmarshal(raw, &txid); err != nil {
		return nil, fmt.Errorf("decode sendrawtransaction reply: %w", err)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("decode sendrawtransaction reply: %w", err)
	}
	return hash, nil
}

func (n *RPCNode) rawRequest(ctx context.Context, operation, method string, args ...any) (json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(args))
	for _, arg := range args {
		param, err := json.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("encode %s params: %w", method, err)
		}
		params = append(params, param)
	}
	return call(ctx, n, operation, func() (json.RawMessage, error) {
		return n.client.RawRequest(method, params)
	})
}

type result[T any] struct {
	value T
	err   error
}

// call runs fn under the limiter and returns early when ctx or the per-call timeout
// expires first. The limiter wait cannot be interrupted, so ctx is checked again after it.
func call[T any](ctx context.Context, n *RPCNode, operation string, fn func() (T, error)) (res T, err error) {
	started := time.Now()
	defer func() {
		n.rpcMetrics.Observe(operation, err, started)
	}()

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	if err = ctx.Err(); err != nil {
		return res, err
	}
	n.limiter.Take()
	if err = ctx.Err(); err != nil {
		return res, err
	}

	done := make(chan result[T], 1)
	go func() {
		value, err := fn()
		done <- result[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return res, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
