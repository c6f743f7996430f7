package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
)

// NetworkError classifies a failed upstream call.
type NetworkError int

const (
	NoConnectivity NetworkError = iota + 1
	ClientError
	ServerError
	DeserializationFailure
	UnknownFailure
)

func (e NetworkError) String() string {
	switch e {
	case NoConnectivity:
		return "no_connectivity"
	case ClientError:
		return "client_error"
	case ServerError:
		return "server_error"
	case DeserializationFailure:
		return "deserialization_failure"
	case UnknownFailure:
		return "unknown_failure"
	}
	return fmt.Sprintf("network_error(%d)", int(e))
}

// Result holds either a payload or a NetworkError, never both.
type Result[T any] struct {
	data T
	err  NetworkError
}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

func Failure[T any](err NetworkError) Result[T] {
	if err == 0 {
		panic("api: Failure called without a network error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.err == 0 }

// Data is the payload; the zero value on failure.
func (r Result[T]) Data() T { return r.data }

// Error is the failure kind; zero on success.
func (r Result[T]) Error() NetworkError { return r.err }

// SafeCall runs call and converts its failure into a NetworkError.
// Cancellation of ctx is the only error returned as-is.
func SafeCall[T any](ctx context.Context, name string, call func(ctx context.Context) (T, error)) (Result[T], error) {
	data, err := call(ctx)
	if err == nil {
		return Success(data), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result[T]{}, ctxErr
	}
	if errors.Is(err, context.Canceled) {
		return Result[T]{}, err
	}

	kind := Classify(err)
	log.Printf("[%s] call failed (%s): %v", name, kind, err)
	return Failure[T](kind), nil
}

// Classify maps an upstream error to its NetworkError kind.
func Classify(err error) NetworkError {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
			return ClientError
		case statusErr.StatusCode >= 500 && statusErr.StatusCode < 600:
			return ServerError
		default:
			return UnknownFailure
		}
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return DeserializationFailure
	}

	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return UnknownFailure
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NoConnectivity
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return NoConnectivity
	}

	return UnknownFailure
}
