package transport

import (
	"net/http"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

type tipResponse struct {
	Height uint32 `json:"height"`
	Hash   string `json:"hash"`
}

type merkleProofResponse struct {
	BlockHeight uint32   `json:"block_height"`
	Pos         uint32   `json:"pos"`
	Merkle      []string `json:"merkle"`
}

func (h *Handler) tip(r *http.Request, _ map[string]string) (any, error) {
	tip, err := h.facade.GetTip(r.Context())
	if err != nil {
		return nil, err
	}
	return tipResponse{Height: tip.Height, Hash: tip.Hash.String()}, nil
}

func (h *Handler) tipHeight(r *http.Request, _ map[string]string) (any, error) {
	return h.facade.GetTipHeight(r.Context())
}

func (h *Handler) blockHash(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint32("height", params["height"])
	if err != nil {
		return nil, err
	}
	hash, err := h.facade.GetBlockHash(r.Context(), height)
	if err != nil {
		return nil, err
	}
	return hash.String(), nil
}

func (h *Handler) header(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint32("height", params["height"])
	if err != nil {
		return nil, err
	}
	return h.facade.GetHeader(r.Context(), height)
}

func (h *Handler) headers(r *http.Request, _ map[string]string) (any, error) {
	heights, err := parseHeights(r.URL.Query().Get("heights"))
	if err != nil {
		return nil, err
	}
	return h.facade.GetHeaders(r.Context(), heights)
}

func (h *Handler) headerByHash(r *http.Request, params map[string]string) (any, error) {
	hash, err := parseHash("block hash", params["hash"])
	if err != nil {
		return nil, err
	}
	return h.facade.GetHeaderByHash(r.Context(), hash)
}

func (h *Handler) blockTxIDs(r *http.Request, params map[string]string) (any, error) {
	hash, err := parseHash("block hash", params["hash"])
	if err != nil {
		return nil, err
	}
	txids, err := h.facade.GetBlockTxIDs(r.Context(), hash)
	if err != nil {
		return nil, err
	}
	return hashStrings(txids), nil
}

func (h *Handler) transactionFromPos(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint32("height", params["height"])
	if err != nil {
		return nil, err
	}
	pos, err := parseUint32("pos", params["pos"])
	if err != nil {
		return nil, err
	}
	txid, err := h.facade.GetTransactionFromPos(r.Context(), height, pos)
	if err != nil {
		return nil, err
	}
	return txid.String(), nil
}

func (h *Handler) merkleProof(r *http.Request, params map[string]string) (any, error) {
	txid, err := parseHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	height, err := parseUint32("height", r.URL.Query().Get("height"))
	if err != nil {
		return nil, err
	}
	proof, err := h.facade.GetTransactionMerkleProof(r.Context(), txid, height)
	if err != nil {
		return nil, err
	}
	return merkleProofResponse{
		BlockHeight: proof.BlockHeight,
		Pos:         proof.Position,
		Merkle:      hashStrings(proof.Branch),
	}, nil
}

func (h *Handler) transactionDecoded(r *http.Request, params map[string]string) (any, error) {
	txid, err := parseHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	return h.facade.GetTransactionDecoded(r.Context(), txid)
}

func (h *Handler) transactionHex(r *http.Request, params map[string]string) (any, error) {
	txid, err := parseHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	return h.facade.GetTransactionHex(r.Context(), txid)
}

func (h *Handler) broadcast(r *http.Request, _ map[string]string) (any, error) {
	txHex, err := readTxHex(r)
	if err != nil {
		return nil, err
	}
	txid, err := h.facade.Broadcast(r.Context(), txHex)
	if err != nil {
		return nil, err
	}
	h.logger.Info("transaction broadcast", zap.Stringer("txid", txid))
	return txid.String(), nil
}

func hashStrings(hashes []chainhash.Hash) []string {
	out := make([]string, 0, len(hashes))
	for i := range hashes {
		out = append(out, hashes[i].String())
	}
	return out
}
