package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Tip is a snapshot of the best-known chain position.
type Tip struct {
	Height uint32
	Hash   chainhash.Hash
}

// MerkleProof links a transaction to the merkle root of the block at Height.
type MerkleProof struct {
	BlockHeight uint32
	Position    uint32
	Branch      []chainhash.Hash
}

// FeeHistogramBin aggregates mempool vsize paying at least FeeRate sat/vbyte.
type FeeHistogramBin struct {
	FeeRate float32
	VSize   uint64
}
