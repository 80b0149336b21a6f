package transport

import (
	"net/http"
)

func (h *Handler) feeEstimate(r *http.Request, params map[string]string) (any, error) {
	target, err := parseUint32("target", params["target"])
	if err != nil {
		return nil, err
	}
	if target == 0 || target > 1<<16-1 {
		return nil, badRequest("target %d: want 1..65535 blocks", target)
	}
	rate, ok, err := h.facade.EstimateFee(r.Context(), uint16(target))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return rate, nil
}

func (h *Handler) relayFee(r *http.Request, _ map[string]string) (any, error) {
	return h.facade.RelayFee(r.Context())
}

func (h *Handler) rawMempool(r *http.Request, _ map[string]string) (any, error) {
	return h.facade.GetRawMempool(r.Context())
}

// feeHistogram renders bins as [fee_rate, vsize] pairs.
func (h *Handler) feeHistogram(r *http.Request, _ map[string]string) (any, error) {
	bins, err := h.facade.GetFeeHistogram(r.Context())
	if err != nil {
		return nil, err
	}
	out := make([][2]any, 0, len(bins))
	for _, bin := range bins {
		out = append(out, [2]any{bin.FeeRate, bin.VSize})
	}
	return out, nil
}
