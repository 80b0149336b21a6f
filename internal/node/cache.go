package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
	"go.uber.org/zap"
)

var _ query.ChainNode = (*CachedNode)(nil)

// CachedNode keeps replies addressed by block or transaction hash in memory. Replies that
// depend on the current tip (heights, confirmations, mempool, fees) always reach the node.
type CachedNode struct {
	query.ChainNode
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// NewCachedNode wraps next with a cache bounded to maxSizeMB megabytes whose entries
// expire after ttl.
func NewCachedNode(ctx context.Context, next query.ChainNode, ttl time.Duration, maxSizeMB int, logger *zap.Logger) (*CachedNode, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.HardMaxCacheSize = maxSizeMB
	cfg.Verbose = false
	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init node cache: %w", err)
	}
	return &CachedNode{
		ChainNode: next,
		cache:     cache,
		logger:    logger.Named("node_cache"),
	}, nil
}

func (n *CachedNode) GetBlockHeader(ctx context.Context, hash *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	if verbose {
		return n.ChainNode.GetBlockHeader(ctx, hash, true)
	}
	return n.cached("header:"+hash.String(), func() (json.RawMessage, error) {
		return n.ChainNode.GetBlockHeader(ctx, hash, false)
	})
}

// GetRawTransaction caches only the raw hex; the decoded form carries confirmations.
func (n *CachedNode) GetRawTransaction(ctx context.Context, txid *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	if verbose {
		return n.ChainNode.GetRawTransaction(ctx, txid, true)
	}
	return n.cached("tx:"+txid.String(), func() (json.RawMessage, error) {
		return n.ChainNode.GetRawTransaction(ctx, txid, false)
	})
}

func (n *CachedNode) Close() error {
	return n.cache.Close()
}

func (n *CachedNode) cached(key string, fetch func() (json.RawMessage, error)) (json.RawMessage, error) {
	value, err := n.cache.Get(key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, bigcache.ErrEntryNotFound) {
		n.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	reply, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := n.cache.Set(key, reply); err != nil {
		n.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return reply, nil
}
