package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-query/pkg/safe"
)

// Query combines the chain node and the address index behind one API.
// It holds no mutable state and is safe for concurrent use.
type Query struct {
	node  ChainNode
	index AddressIndex
}

// New constructs a Query over the shared collaborators.
func New(node ChainNode, index AddressIndex) *Query {
	return &Query{
		node:  node,
		index: index,
	}
}

// GetTip returns the best height and the hash at that height. The two values are read
// with separate node calls, so the pair may straddle a tip change.
func (q *Query) GetTip(ctx context.Context) (model.Tip, error) {
	height, err := q.GetTipHeight(ctx)
	if err != nil {
		return model.Tip{}, err
	}
	hash, err := q.GetBlockHash(ctx, height)
	if err != nil {
		return model.Tip{}, fmt.Errorf("get tip hash at height %d: %w", height, err)
	}
	return model.Tip{Height: height, Hash: hash}, nil
}

// GetTipHeight returns the best block height reported by the node.
func (q *Query) GetTipHeight(ctx context.Context) (uint32, error) {
	const op = "get_tip_height"

	count, err := q.node.GetBlockCount(ctx)
	if err != nil {
		return 0, nodeError(op, err)
	}
	height, err := safe.Uint32(count)
	if err != nil {
		return 0, malformed(op, "block count: %w", err)
	}
	return height, nil
}

// GetBlockHash returns the hash of the block at height.
func (q *Query) GetBlockHash(ctx context.Context, height uint32) (chainhash.Hash, error) {
	const op = "get_block_hash"

	hash, err := q.node.GetBlockHash(ctx, int64(height))
	if err != nil {
		return chainhash.Hash{}, heightError(op, err)
	}
	if hash == nil {
		return chainhash.Hash{}, malformed(op, "empty block hash at height %d", height)
	}
	return *hash, nil
}

// GetHeader returns the hex serialized header at height.
func (q *Query) GetHeader(ctx context.Context, height uint32) (string, error) {
	hash, err := q.GetBlockHash(ctx, height)
	if err != nil {
		return "", fmt.Errorf("get header at height %d: %w", height, err)
	}
	header, err := q.GetHeaderByHash(ctx, &hash)
	if err != nil {
		return "", fmt.Errorf("get header at height %d: %w", height, err)
	}
	return header, nil
}

// GetHeaders returns headers in the order of heights, fetched one after another. The
// first failure aborts the batch and no partial result is returned.
func (q *Query) GetHeaders(ctx context.Context, heights []uint32) ([]string, error) {
	headers := make([]string, 0, len(heights))
	for _, height := range heights {
		header, err := q.GetHeader(ctx, height)
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}
	return headers, nil
}

// GetHeaderByHash returns the hex serialized header of a block.
func (q *Query) GetHeaderByHash(ctx context.Context, hash *chainhash.Hash) (string, error) {
	const op = "get_header_by_hash"

	raw, err := q.node.GetBlockHeader(ctx, hash, false)
	if err != nil {
		return "", nodeError(op, err)
	}
	header, err := decodeHexString(raw)
	if err != nil {
		return "", malformed(op, "header %s: %w", hash, err)
	}
	return header, nil
}

// GetBlockTxIDs returns the transaction ids of a block in block order.
func (q *Query) GetBlockTxIDs(ctx context.Context, hash *chainhash.Hash) ([]chainhash.Hash, error) {
	const op = "get_block_txids"

	block, err := q.node.GetBlockVerbose(ctx, hash)
	if err != nil {
		return nil, nodeError(op, err)
	}
	if block == nil {
		return nil, malformed(op, "empty block %s", hash)
	}
	txids := make([]chainhash.Hash, 0, len(block.Tx))
	for i, raw := range block.Tx {
		txid, err := chainhash.NewHashFromStr(raw)
		if err != nil || len(raw) != 2*chainhash.HashSize {
			return nil, malformed(op, "field tx[%d] of block %s: invalid txid %q", i, hash, raw)
		}
		txids = append(txids, *txid)
	}
	return txids, nil
}

// GetTransactionFromPos returns the id of the transaction at position pos of the block
// at height.
func (q *Query) GetTransactionFromPos(ctx context.Context, height, pos uint32) (chainhash.Hash, error) {
	const op = "get_transaction_from_pos"

	txids, err := q.blockTxIDsAt(ctx, height)
	if err != nil {
		return chainhash.Hash{}, err
	}
	if int(pos) >= len(txids) {
		return chainhash.Hash{}, notFound(op, "position %d in block %d with %d transactions", pos, height, len(txids))
	}
	return txids[pos], nil
}

// GetTransactionMerkleProof returns the merkle branch proving txid is in the block at height.
func (q *Query) GetTransactionMerkleProof(ctx context.Context, txid *chainhash.Hash, height uint32) (model.MerkleProof, error) {
	const op = "get_transaction_merkle_proof"

	txids, err := q.blockTxIDsAt(ctx, height)
	if err != nil {
		return model.MerkleProof{}, err
	}
	pos := -1
	for i := range txids {
		if txids[i] == *txid {
			pos = i
			break
		}
	}
	if pos < 0 {
		return model.MerkleProof{}, notFound(op, "tx %s in block %d", txid, height)
	}
	return model.MerkleProof{
		BlockHeight: height,
		Position:    uint32(pos),
		Branch:      MerkleBranch(txids, pos),
	}, nil
}

func (q *Query) blockTxIDsAt(ctx context.Context, height uint32) ([]chainhash.Hash, error) {
	hash, err := q.GetBlockHash(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("get block txids at height %d: %w", height, err)
	}
	txids, err := q.GetBlockTxIDs(ctx, &hash)
	if err != nil {
		return nil, fmt.Errorf("get block txids at height %d: %w", height, err)
	}
	return txids, nil
}

// GetTransactionHex returns the raw transaction as hex.
func (q *Query) GetTransactionHex(ctx context.Context, txid *chainhash.Hash) (string, error) {
	const op = "get_transaction_hex"

	raw, err := q.node.GetRawTransaction(ctx, txid, false)
	if err != nil {
		return "", nodeError(op, err)
	}
	tx, err := decodeHexString(raw)
	if err != nil {
		return "", malformed(op, "tx %s: %w", txid, err)
	}
	return tx, nil
}

// GetTransactionDecoded returns the node's decoded representation of a transaction as-is.
func (q *Query) GetTransactionDecoded(ctx context.Context, txid *chainhash.Hash) (json.RawMessage, error) {
	const op = "get_transaction_decoded"

	raw, err := q.node.GetRawTransaction(ctx, txid, true)
	if err != nil {
		return nil, nodeError(op, err)
	}
	if !json.Valid(raw) {
		return nil, malformed(op, "tx %s: invalid json", txid)
	}
	return raw, nil
}

// Broadcast relays a raw transaction. Validity is decided by the node alone.
func (q *Query) Broadcast(ctx context.Context, txHex string) (chainhash.Hash, error) {
	const op = "broadcast"

	txid, err := q.node.SendRawTransaction(ctx, txHex)
	if err != nil {
		return chainhash.Hash{}, broadcastError(op, err)
	}
	if txid == nil {
		return chainhash.Hash{}, malformed(op, "empty txid")
	}
	return *txid, nil
}

// GetRawMempool returns the node's verbose mempool snapshot as-is.
func (q *Query) GetRawMempool(ctx context.Context) (json.RawMessage, error) {
	const op = "get_raw_mempool"

	raw, err := q.node.GetRawMempool(ctx, true)
	if err != nil {
		return nil, nodeError(op, err)
	}
	if !json.Valid(raw) {
		return nil, malformed(op, "invalid json")
	}
	return raw, nil
}

func decodeHexString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected hex string: %w", err)
	}
	return s, nil
}
