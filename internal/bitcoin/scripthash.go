package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

// ScriptHasher maps addresses to the script hashes used as address index keys.
type ScriptHasher struct {
	params *chaincfg.Params
}

// NewScriptHasher initializes a hasher decoding addresses of the provided network.
func NewScriptHasher(network model.Network) (*ScriptHasher, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &ScriptHasher{params: params}, nil
}

// Address returns the script hash of the output script paying to address.
func (h *ScriptHasher) Address(address string) (model.ScriptHash, error) {
	addr, err := btcutil.DecodeAddress(address, h.params)
	if err != nil {
		return model.ScriptHash{}, fmt.Errorf("decode address %q: %w", address, err)
	}
	if !addr.IsForNet(h.params) {
		return model.ScriptHash{}, fmt.Errorf("address %q is not for network %s", address, h.params.Name)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return model.ScriptHash{}, fmt.Errorf("build script for %q: %w", address, err)
	}
	return ScriptHashOf(script), nil
}

// ScriptHashOf returns the single SHA-256 digest of an output script.
func ScriptHashOf(script []byte) model.ScriptHash {
	return model.ScriptHash(chainhash.HashH(script))
}
