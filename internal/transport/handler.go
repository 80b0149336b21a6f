// Package transport exposes the query API over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

type handleFunc func(r *http.Request, params map[string]string) (any, error)

type route struct {
	method  string
	pattern string
	handle  handleFunc
}

// Handler serves the REST routes over a Facade.
type Handler struct {
	facade    Facade
	addresses AddressResolver
	metrics   Metrics
	logger    *zap.Logger
}

func NewHandler(facade Facade, addresses AddressResolver, metrics Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		facade:    facade,
		addresses: addresses,
		metrics:   metrics,
		logger:    logger.Named("http"),
	}
}

// Register adds every route to mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	for _, rt := range h.routes() {
		if err := mux.HandlePath(rt.method, rt.pattern, h.serve(rt)); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/block/tip", h.tip},
		{http.MethodGet, "/block/tip/height", h.tipHeight},
		{http.MethodGet, "/block-height/{height}", h.blockHash},
		{http.MethodGet, "/block-height/{height}/header", h.header},
		{http.MethodGet, "/block-height/{height}/tx/{pos}", h.transactionFromPos},
		{http.MethodGet, "/headers", h.headers},
		{http.MethodGet, "/block/{hash}/header", h.headerByHash},
		{http.MethodGet, "/block/{hash}/txids", h.blockTxIDs},
		{http.MethodGet, "/fee-estimate/{target}", h.feeEstimate},
		{http.MethodGet, "/mempool/relay-fee", h.relayFee},
		{http.MethodGet, "/mempool/raw", h.rawMempool},
		{http.MethodGet, "/mempool/histogram", h.feeHistogram},
		{http.MethodGet, "/tx/{txid}", h.transactionDecoded},
		{http.MethodGet, "/tx/{txid}/hex", h.transactionHex},
		{http.MethodGet, "/tx/{txid}/merkle-proof", h.merkleProof},
		{http.MethodPost, "/tx", h.broadcast},
		{http.MethodGet, "/scripthash/{scripthash}/history", h.scriptHashHistory},
		{http.MethodGet, "/scripthash/{scripthash}/utxos", h.scriptHashUnspent},
		{http.MethodGet, "/scripthash/{scripthash}/balance", h.scriptHashBalance},
		{http.MethodGet, "/address/{address}/history", h.addressHistory},
		{http.MethodGet, "/address/{address}/utxos", h.addressUnspent},
		{http.MethodGet, "/address/{address}/balance", h.addressBalance},
	}
}

func (h *Handler) serve(rt route) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		started := time.Now()

		body, err := rt.handle(r, params)
		code := http.StatusOK
		if err != nil {
			code = statusCode(err)
			body = errorResponse{Error: err.Error()}
			if code >= http.StatusInternalServerError {
				h.logger.Warn("request failed",
					zap.String("route", rt.pattern),
					zap.String("path", r.URL.Path),
					zap.Int("code", code),
					zap.Error(err),
				)
			}
		}
		h.write(w, code, body)
		h.metrics.Observe(rt.pattern, rt.method, code, started)
	}
}

func (h *Handler) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// badRequestError marks a request the server could not interpret.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}

func (e badRequestError) Unwrap() error {
	return e.err
}

func badRequest(format string, args ...any) error {
	return badRequestError{err: fmt.Errorf(format, args...)}
}

func statusCode(err error) int {
	var bad badRequestError
	if errors.As(err, &bad) {
		return http.StatusBadRequest
	}
	switch query.Kind(err) {
	case query.ErrNotFound:
		return http.StatusNotFound
	case query.ErrRejected:
		return http.StatusUnprocessableEntity
	case query.ErrMalformedReply:
		return http.StatusBadGateway
	case query.ErrCanceled:
		return http.StatusGatewayTimeout
	default:
		return http.StatusServiceUnavailable
	}
}
