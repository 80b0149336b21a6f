package query

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MerkleBranch returns the sibling hashes linking leaves[pos] to the merkle root, leaf
// level first. Odd levels pair their last node with itself.
func MerkleBranch(leaves []chainhash.Hash, pos int) []chainhash.Hash {
	if pos < 0 || pos >= len(leaves) {
		return nil
	}
	level := append([]chainhash.Hash(nil), leaves...)
	branch := make([]chainhash.Hash, 0)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		branch = append(branch, level[pos^1])
		level = nextMerkleLevel(level)
		pos /= 2
	}
	return branch
}

// MerkleRoot returns the merkle root over leaves.
func MerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	level := append([]chainhash.Hash(nil), leaves...)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		level = nextMerkleLevel(level)
	}
	return level[0]
}

func nextMerkleLevel(level []chainhash.Hash) []chainhash.Hash {
	next := make([]chainhash.Hash, 0, len(level)/2)
	for i := 0; i < len(level); i += 2 {
		next = append(next, blockchain.HashMerkleBranches(&level[i], &level[i+1]))
	}
	return next
}
