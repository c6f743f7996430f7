package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want NetworkError
	}{
		{"4xx", &StatusError{StatusCode: 404, Status: "404 Not Found"}, ClientError},
		{"400", &StatusError{StatusCode: 400}, ClientError},
		{"5xx", &StatusError{StatusCode: 503}, ServerError},
		{"3xx", &StatusError{StatusCode: 304}, UnknownFailure},
		{"decode", &DecodeError{Err: errors.New("bad")}, DeserializationFailure},
		{"wrapped decode", fmt.Errorf("forecast: %w", &DecodeError{Err: errors.New("bad")}), DeserializationFailure},
		{"request build", &RequestError{Err: errors.New("bad url")}, UnknownFailure},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.met.no"}, NoConnectivity},
		{"truncated body", fmt.Errorf("read response body: %w", io.ErrUnexpectedEOF), NoConnectivity},
		{"other", errors.New("boom"), UnknownFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestSafeCall_Success(t *testing.T) {
	res, err := SafeCall(context.Background(), "Test", func(ctx context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 7, res.Data())
	assert.Equal(t, NetworkError(0), res.Error())
}

func TestSafeCall_ClassifiesFailure(t *testing.T) {
	res, err := SafeCall(context.Background(), "Test", func(ctx context.Context) (string, error) {
		return "", &StatusError{StatusCode: 500, Status: "500 Internal Server Error"}
	})

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, ServerError, res.Error())
	assert.Equal(t, "", res.Data())
}

func TestSafeCall_PropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SafeCall(ctx, "Test", func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("do request: %w", ctx.Err())
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeCall_CancelledDuringRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	client := NewHTTPClient(srv.URL, "", 5*time.Second)
	_, err := SafeCall(ctx, "Test", func(ctx context.Context) (int, error) {
		return client.Request(ctx, "GET", "/", nil, nil)
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeCall_TransportTimeoutIsNoConnectivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", 50*time.Millisecond)
	res, err := SafeCall(context.Background(), "Test", func(ctx context.Context) (int, error) {
		return client.Request(ctx, "GET", "/", nil, nil)
	})

	require.NoError(t, err)
	assert.Equal(t, NoConnectivity, res.Error())
}

func TestSafeCall_ConnectionRefusedIsNoConnectivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewHTTPClient(addr, "", time.Second)
	res, err := SafeCall(context.Background(), "Test", func(ctx context.Context) (int, error) {
		return client.Request(ctx, "GET", "/", nil, nil)
	})

	require.NoError(t, err)
	assert.Equal(t, NoConnectivity, res.Error())
}

func TestFailure_RequiresKind(t *testing.T) {
	assert.Panics(t, func() { Failure[int](0) })
}
