package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ScriptHash is the single SHA-256 digest of an output script. Its string form is
// byte-reversed hex, as used by Electrum-style wallet protocols.
type ScriptHash [32]byte

// ParseScriptHash decodes a 64 character byte-reversed hex script hash.
func ParseScriptHash(s string) (ScriptHash, error) {
	if len(s) != 2*chainhash.HashSize {
		return ScriptHash{}, fmt.Errorf("script hash %q: want %d hex chars, got %d", s, 2*chainhash.HashSize, len(s))
	}
	var h chainhash.Hash
	if err := chainhash.Decode(&h, s); err != nil {
		return ScriptHash{}, fmt.Errorf("script hash %q: %w", s, err)
	}
	return ScriptHash(h), nil
}

func (s ScriptHash) String() string {
	return chainhash.Hash(s).String()
}

// HistoryEntry is one transaction touching a script hash. Height 0 marks an unconfirmed
// transaction; Delta is the net value change for the script in satoshis.
type HistoryEntry struct {
	TxID   chainhash.Hash
	Height uint32
	Delta  int64
}

// Confirmed reports whether the transaction is in a block.
func (e HistoryEntry) Confirmed() bool {
	return e.Height > 0
}

// Utxo is an unspent output paying to a script hash.
type Utxo struct {
	TxID          chainhash.Hash
	Vout          uint32
	Value         uint64
	Height        uint32
	Confirmations uint32
}

// Balance holds confirmed and unconfirmed satoshi totals of a script hash.
type Balance struct {
	Confirmed   uint64
	Unconfirmed uint64
}
