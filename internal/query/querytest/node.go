// Package querytest provides in-memory collaborators for exercising the query facade.
package querytest

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
)

var _ query.ChainNode = (*Node)(nil)

const (
	rpcVerifyError          btcjson.RPCErrorCode = -25
	rpcVerifyRejected       btcjson.RPCErrorCode = -26
	rpcVerifyAlreadyInChain btcjson.RPCErrorCode = -27

	blockSubsidy = 50 * btcutil.SatoshiPerBitcoin
)

type block struct {
	hash   chainhash.Hash
	header wire.BlockHeader
	txs    []*wire.MsgTx
}

type mempoolTx struct {
	tx  *wire.MsgTx
	fee int64
}

// Node is an in-memory chain node. Blocks are mined explicitly; broadcast transactions
// wait in the mempool until the next MineBlock.
type Node struct {
	mu sync.RWMutex

	blocks   []block
	txs      map[chainhash.Hash]*wire.MsgTx
	mempool  map[chainhash.Hash]mempoolTx
	pending  []chainhash.Hash
	spentBy  map[wire.OutPoint]chainhash.Hash
	feeRates map[int64]float64

	relayFee    float64
	mempoolInfo json.RawMessage
	failures    map[string]error
	calls       map[string]int
}

// NewNode returns a node holding only a genesis block paying to pkScript.
func NewNode(pkScript []byte) *Node {
	n := &Node{
		txs:      make(map[chainhash.Hash]*wire.MsgTx),
		mempool:  make(map[chainhash.Hash]mempoolTx),
		spentBy:  make(map[wire.OutPoint]chainhash.Hash),
		feeRates: make(map[int64]float64),
		relayFee: 0.00001,
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
	n.MineBlock(pkScript)
	return n
}

// MineBlock appends a block with a coinbase paying to pkScript and every mempool
// transaction, and returns its hash.
func (n *Node) MineBlock(pkScript []byte) chainhash.Hash {
	n.mu.Lock()
	defer n.mu.Unlock()

	height := len(n.blocks)
	var fees int64
	for _, txid := range n.pending {
		fees += n.mempool[txid].fee
	}
	txs := []*wire.MsgTx{coinbase(height, pkScript, fees)}
	for _, txid := range n.pending {
		txs = append(txs, n.mempool[txid].tx)
	}

	hashes := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.TxHash())
		n.txs[tx.TxHash()] = tx
	}

	header := wire.BlockHeader{
		Version:    0x20000000,
		MerkleRoot: query.MerkleRoot(hashes),
		Timestamp:  time.Unix(1_700_000_000+int64(height)*600, 0),
		Bits:       0x207fffff,
		Nonce:      uint32(height),
	}
	if height > 0 {
		header.PrevBlock = n.blocks[height-1].hash
	}
	n.blocks = append(n.blocks, block{hash: header.BlockHash(), header: header, txs: txs})
	n.mempool = make(map[chainhash.Hash]mempoolTx)
	n.pending = nil
	return header.BlockHash()
}

// Coinbase returns the coinbase transaction of the block at height.
func (n *Node) Coinbase(height int) *wire.MsgTx {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.blocks[height].txs[0]
}

// SetFeeRate sets the smart fee estimate in BTC/kB for a confirmation target.
func (n *Node) SetFeeRate(confTarget int64, btcPerKB float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.feeRates[confTarget] = btcPerKB
}

// SetRelayFee sets the minimum relay fee in BTC/kB.
func (n *Node) SetRelayFee(btcPerKB float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.relayFee = btcPerKB
}

// SetMempoolInfo replaces the getmempoolinfo reply with raw.
func (n *Node) SetMempoolInfo(raw json.RawMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mempoolInfo = raw
}

// Fail makes every call of method return err until cleared with a nil err.
func (n *Node) Fail(method string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err == nil {
		delete(n.failures, method)
		return
	}
	n.failures[method] = err
}

// Calls returns how many times method was invoked.
func (n *Node) Calls(method string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.calls[method]
}

func (n *Node) enter(ctx context.Context, method string) error {
	n.calls[method]++
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.failures[method]
}

func (n *Node) GetBlockCount(ctx context.Context) (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetBlockCount"); err != nil {
		return 0, err
	}
	return int64(len(n.blocks) - 1), nil
}

func (n *Node) GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetBlockHash"); err != nil {
		return nil, err
	}
	if height < 0 || height >= int64(len(n.blocks)) {
		return nil, &btcjson.RPCError{Code: btcjson.ErrRPCInvalidParameter, Message: "Block height out of range"}
	}
	hash := n.blocks[height].hash
	return &hash, nil
}

func (n *Node) GetBlockHeader(ctx context.Context, hash *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetBlockHeader"); err != nil {
		return nil, err
	}
	height, b, err := n.lookupBlock(hash)
	if err != nil {
		return nil, err
	}
	if !verbose {
		var buf bytes.Buffer
		if err := b.header.Serialize(&buf); err != nil {
			return nil, err
		}
		return json.Marshal(hex.EncodeToString(buf.Bytes()))
	}
	return json.Marshal(btcjson.GetBlockHeaderVerboseResult{
		Hash:          b.hash.String(),
		Confirmations: int64(len(n.blocks) - height),
		Height:        int32(height),
		Version:       b.header.Version,
		MerkleRoot:    b.header.MerkleRoot.String(),
		Time:          b.header.Timestamp.Unix(),
		Nonce:         uint64(b.header.Nonce),
		PreviousHash:  b.header.PrevBlock.String(),
	})
}

func (n *Node) GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetBlockVerbose"); err != nil {
		return nil, err
	}
	height, b, err := n.lookupBlock(hash)
	if err != nil {
		return nil, err
	}
	txids := make([]string, 0, len(b.txs))
	for _, tx := range b.txs {
		txids = append(txids, tx.TxHash().String())
	}
	return &btcjson.GetBlockVerboseResult{
		Hash:          b.hash.String(),
		Confirmations: int64(len(n.blocks) - height),
		Height:        int64(height),
		Version:       b.header.Version,
		MerkleRoot:    b.header.MerkleRoot.String(),
		Tx:            txids,
		Time:          b.header.Timestamp.Unix(),
		Nonce:         b.header.Nonce,
		PreviousHash:  b.header.PrevBlock.String(),
	}, nil
}

func (n *Node) GetRawTransaction(ctx context.Context, txid *chainhash.Hash, verbose bool) (json.RawMessage, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetRawTransaction"); err != nil {
		return nil, err
	}
	tx, ok := n.txs[*txid]
	if !ok {
		return nil, &btcjson.RPCError{
			Code:    btcjson.ErrRPCInvalidAddressOrKey,
			Message: "No such mempool or blockchain transaction. Use gettransaction for wallet transactions.",
		}
	}
	raw, err := serializeTx(tx)
	if err != nil {
		return nil, err
	}
	if !verbose {
		return json.Marshal(raw)
	}
	return json.Marshal(map[string]any{
		"txid":     tx.TxHash().String(),
		"hash":     tx.WitnessHash().String(),
		"hex":      raw,
		"version":  tx.Version,
		"size":     tx.SerializeSize(),
		"vsize":    virtualSize(tx),
		"locktime": tx.LockTime,
	})
}

func (n *Node) EstimateSmartFee(ctx context.Context, confTarget int64) (*btcjson.EstimateSmartFeeResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "EstimateSmartFee"); err != nil {
		return nil, err
	}
	rate, ok := n.feeRates[confTarget]
	if !ok {
		return &btcjson.EstimateSmartFeeResult{
			Errors: []string{"Insufficient data or no feerate found"},
			Blocks: confTarget,
		}, nil
	}
	return &btcjson.EstimateSmartFeeResult{FeeRate: &rate, Blocks: confTarget}, nil
}

func (n *Node) GetMempoolInfo(ctx context.Context) (json.RawMessage, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetMempoolInfo"); err != nil {
		return nil, err
	}
	if n.mempoolInfo != nil {
		return n.mempoolInfo, nil
	}
	var total int
	for _, entry := range n.mempool {
		total += entry.tx.SerializeSize()
	}
	return json.Marshal(map[string]any{
		"loaded":        true,
		"size":          len(n.mempool),
		"bytes":         total,
		"mempoolminfee": n.relayFee,
		"minrelaytxfee": n.relayFee,
	})
}

func (n *Node) GetRawMempool(ctx context.Context, verbose bool) (json.RawMessage, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "GetRawMempool"); err != nil {
		return nil, err
	}
	if !verbose {
		txids := make([]string, 0, len(n.pending))
		for _, txid := range n.pending {
			txids = append(txids, txid.String())
		}
		return json.Marshal(txids)
	}
	entries := make(map[string]any, len(n.mempool))
	for txid, entry := range n.mempool {
		entries[txid.String()] = map[string]any{
			"vsize":  virtualSize(entry.tx),
			"weight": weight(entry.tx),
			"height": len(n.blocks) - 1,
			"fees": map[string]any{
				"base": btcutil.Amount(entry.fee).ToBTC(),
			},
		}
	}
	return json.Marshal(entries)
}

// SendRawTransaction accepts transactions whose inputs reference known, unspent outputs
// and pay no more than they spend.
func (n *Node) SendRawTransaction(ctx context.Context, txHex string) (*chainhash.Hash, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enter(ctx, "SendRawTransaction"); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, &btcjson.RPCError{Code: btcjson.ErrRPCDeserialization, Message: "TX decode failed"}
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, &btcjson.RPCError{Code: btcjson.ErrRPCDeserialization, Message: "TX decode failed"}
	}
	txid := tx.TxHash()
	if _, known := n.txs[txid]; known {
		return nil, &btcjson.RPCError{Code: rpcVerifyAlreadyInChain, Message: "Transaction already in block chain"}
	}

	var in int64
	for _, txIn := range tx.TxIn {
		prev := txIn.PreviousOutPoint
		if spender, spent := n.spentBy[prev]; spent {
			if _, pending := n.mempool[spender]; pending {
				return nil, &btcjson.RPCError{Code: rpcVerifyRejected, Message: "txn-mempool-conflict"}
			}
			return nil, &btcjson.RPCError{Code: rpcVerifyError, Message: "bad-txns-inputs-missingorspent"}
		}
		prevTx, ok := n.txs[prev.Hash]
		if !ok || int(prev.Index) >= len(prevTx.TxOut) {
			return nil, &btcjson.RPCError{Code: rpcVerifyError, Message: "bad-txns-inputs-missingorspent"}
		}
		in += prevTx.TxOut[prev.Index].Value
	}
	var out int64
	for _, txOut := range tx.TxOut {
		out += txOut.Value
	}
	if len(tx.TxIn) == 0 || out > in {
		return nil, &btcjson.RPCError{Code: rpcVerifyRejected, Message: "bad-txns-in-belowout"}
	}

	for _, txIn := range tx.TxIn {
		n.spentBy[txIn.PreviousOutPoint] = txid
	}
	n.txs[txid] = tx
	n.mempool[txid] = mempoolTx{tx: tx, fee: in - out}
	n.pending = append(n.pending, txid)
	return &txid, nil
}

func (n *Node) lookupBlock(hash *chainhash.Hash) (int, block, error) {
	for height, b := range n.blocks {
		if b.hash == *hash {
			return height, b, nil
		}
	}
	return 0, block{}, &btcjson.RPCError{Code: btcjson.ErrRPCInvalidAddressOrKey, Message: "Block not found"}
}

func coinbase(height int, pkScript []byte, fees int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	sigScript := make([]byte, 5)
	sigScript[0] = 4
	binary.LittleEndian.PutUint32(sigScript[1:], uint32(height))
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.MaxPrevOutIndex},
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(blockSubsidy+fees, pkScript))
	return tx
}

func serializeTx(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", fmt.Errorf("serialize tx %s: %w", tx.TxHash(), err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func weight(tx *wire.MsgTx) int {
	return tx.SerializeSizeStripped()*3 + tx.SerializeSize()
}

func virtualSize(tx *wire.MsgTx) int {
	return (weight(tx) + 3) / 4
}
