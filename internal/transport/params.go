package transport

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

const (
	// MaxHeadersPerRequest bounds one /headers batch; each height costs two node calls.
	MaxHeadersPerRequest = 2016
	// maxTxHexBytes bounds the broadcast body: hex of a 4 MB weight-limit transaction.
	maxTxHexBytes = 8 << 20
)

func parseUint32(name, value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, badRequest("%s %q: not an unsigned 32-bit integer", name, value)
	}
	return uint32(n), nil
}

func parseHash(name, value string) (*chainhash.Hash, error) {
	if len(value) != 2*chainhash.HashSize {
		return nil, badRequest("%s %q: want %d hex chars", name, value, 2*chainhash.HashSize)
	}
	hash, err := chainhash.NewHashFromStr(value)
	if err != nil {
		return nil, badRequest("%s %q: %v", name, value, err)
	}
	return hash, nil
}

func parseHeights(value string) ([]uint32, error) {
	if value == "" {
		return nil, badRequest("heights: missing")
	}
	parts := strings.Split(value, ",")
	if len(parts) > MaxHeadersPerRequest {
		return nil, badRequest("heights: at most %d per request, got %d", MaxHeadersPerRequest, len(parts))
	}
	heights := make([]uint32, 0, len(parts))
	for _, part := range parts {
		height, err := parseUint32("height", strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		heights = append(heights, height)
	}
	return heights, nil
}

func (h *Handler) scriptHash(params map[string]string) (model.ScriptHash, error) {
	sh, err := model.ParseScriptHash(params["scripthash"])
	if err != nil {
		return model.ScriptHash{}, badRequest("%v", err)
	}
	return sh, nil
}

func (h *Handler) addressScriptHash(params map[string]string) (model.ScriptHash, error) {
	sh, err := h.addresses.Address(params["address"])
	if err != nil {
		return model.ScriptHash{}, badRequest("%v", err)
	}
	return sh, nil
}

func readTxHex(r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxTxHexBytes))
	if err != nil {
		return "", badRequest("read transaction: %v", err)
	}
	txHex := strings.TrimSpace(string(body))
	if txHex == "" {
		return "", badRequest("transaction hex: empty body")
	}
	return txHex, nil
}
