// Package metrics holds the Prometheus collectors of the query server.
package metrics

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/btcjson"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusRPCError = "rpc_error"
	statusCanceled = "canceled"
	unknownLabel   = "unknown"
)

// status labels an operation outcome; node-side RPC errors are labelled apart from
// transport failures.
func status(err error) string {
	var rpcErr *btcjson.RPCError
	switch {
	case err == nil:
		return statusSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusCanceled
	case errors.As(err, &rpcErr):
		return statusRPCError
	default:
		return statusError
	}
}

func orUnknown(label string) string {
	if label == "" {
		return unknownLabel
	}
	return label
}
