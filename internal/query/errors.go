package query

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcjson"
)

// Error kinds. Every error returned by Query wraps exactly one of them.
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNotFound           = errors.New("not found")
	ErrMalformedReply     = errors.New("malformed reply")
	ErrRejected           = errors.New("rejected")
	ErrCanceled           = errors.New("canceled")
)

// Error is a classified collaborator failure of a single facade operation.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the collaborator error to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Kind returns the error kind wrapped by err, or nil when err was not produced by Query.
func Kind(err error) error {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return nil
}

// bitcoind transaction verdict codes that btcjson does not name.
const (
	rpcVerifyError          btcjson.RPCErrorCode = -25
	rpcVerifyRejected       btcjson.RPCErrorCode = -26
	rpcVerifyAlreadyInChain btcjson.RPCErrorCode = -27
)

// txVerdicts are the sendrawtransaction codes that judge the transaction itself: bad hex
// or fee limit (-8), decode failure (-22) and policy or consensus rejection (-25..-27).
var txVerdicts = []btcjson.RPCErrorCode{
	btcjson.ErrRPCInvalidParameter,
	btcjson.ErrRPCDeserialization,
	rpcVerifyError,
	rpcVerifyRejected,
	rpcVerifyAlreadyInChain,
}

// nodeError classifies a node failure. Only an unknown block or transaction (-5) is
// NotFound; other RPC errors describe the node or the request, not a missing item.
func nodeError(op string, err error) error {
	return classifyNode(op, err, btcjson.ErrRPCInvalidAddressOrKey)
}

// heightError is nodeError for lookups by height, where the node reports a height past
// the tip as an invalid parameter (-8).
func heightError(op string, err error) error {
	return classifyNode(op, err, btcjson.ErrRPCInvalidAddressOrKey, btcjson.ErrRPCInvalidParameter)
}

func classifyNode(op string, err error, missing ...btcjson.RPCErrorCode) error {
	kind := ErrBackendUnavailable
	var rpcErr *btcjson.RPCError
	switch {
	case isCanceled(err):
		kind = ErrCanceled
	case errors.As(err, &rpcErr) && slices.Contains(missing, rpcErr.Code):
		kind = ErrNotFound
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// broadcastError reports a node verdict on the transaction as Rejected. Node state errors
// such as warm-up or initial block download stay BackendUnavailable.
func broadcastError(op string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) && slices.Contains(txVerdicts, rpcErr.Code) {
		return &Error{Op: op, Kind: ErrRejected, Err: err}
	}
	return nodeError(op, err)
}

func indexError(op string, err error) error {
	kind := ErrBackendUnavailable
	if isCanceled(err) {
		kind = ErrCanceled
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func malformed(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrMalformedReply, Err: fmt.Errorf(format, args...)}
}

func notFound(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrNotFound, Err: fmt.Errorf(format, args...)}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
