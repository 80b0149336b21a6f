package transport

import (
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

type historyItem struct {
	TxHash string `json:"tx_hash"`
	Height uint32 `json:"height"`
	Delta  int64  `json:"delta"`
}

type utxoItem struct {
	TxHash        string `json:"tx_hash"`
	TxPos         uint32 `json:"tx_pos"`
	Value         uint64 `json:"value"`
	Height        uint32 `json:"height"`
	Confirmations uint32 `json:"confirmations"`
}

type balanceResponse struct {
	Confirmed   uint64 `json:"confirmed"`
	Unconfirmed uint64 `json:"unconfirmed"`
}

func (h *Handler) scriptHashHistory(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.scriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.history(r, sh)
}

func (h *Handler) scriptHashUnspent(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.scriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.unspent(r, sh)
}

func (h *Handler) scriptHashBalance(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.scriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.balance(r, sh)
}

func (h *Handler) addressHistory(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.addressScriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.history(r, sh)
}

func (h *Handler) addressUnspent(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.addressScriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.unspent(r, sh)
}

func (h *Handler) addressBalance(r *http.Request, params map[string]string) (any, error) {
	sh, err := h.addressScriptHash(params)
	if err != nil {
		return nil, err
	}
	return h.balance(r, sh)
}

func (h *Handler) history(r *http.Request, sh model.ScriptHash) (any, error) {
	history, err := h.facade.GetHistory(r.Context(), sh)
	if err != nil {
		return nil, err
	}
	out := make([]historyItem, 0, len(history))
	for _, entry := range history {
		out = append(out, historyItem{TxHash: entry.TxID.String(), Height: entry.Height, Delta: entry.Delta})
	}
	return out, nil
}

func (h *Handler) unspent(r *http.Request, sh model.ScriptHash) (any, error) {
	var minConf uint32
	if value := r.URL.Query().Get("min_conf"); value != "" {
		var err error
		if minConf, err = parseUint32("min_conf", value); err != nil {
			return nil, err
		}
	}
	utxos, err := h.facade.ListUnspent(r.Context(), sh, minConf)
	if err != nil {
		return nil, err
	}
	out := make([]utxoItem, 0, len(utxos))
	for _, utxo := range utxos {
		out = append(out, utxoItem{
			TxHash:        utxo.TxID.String(),
			TxPos:         utxo.Vout,
			Value:         utxo.Value,
			Height:        utxo.Height,
			Confirmations: utxo.Confirmations,
		})
	}
	return out, nil
}

func (h *Handler) balance(r *http.Request, sh model.ScriptHash) (any, error) {
	balance, err := h.facade.GetBalance(r.Context(), sh)
	if err != nil {
		return nil, err
	}
	return balanceResponse{Confirmed: balance.Confirmed, Unconfirmed: balance.Unconfirmed}, nil
}
