package auctionerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		detail  string
		wantMsg string
	}{
		{name: "detail_kept_verbatim", status: http.StatusBadRequest, detail: "bad amount", wantMsg: "bad amount"},
		{name: "empty_detail_falls_back", status: http.StatusInternalServerError, detail: "", wantMsg: "HTTP 500"},
		{name: "not_found_fallback", status: http.StatusNotFound, wantMsg: "HTTP 404"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewStatusError(tc.status, tc.detail)
			require.Equal(t, tc.wantMsg, err.Error())
			require.Equal(t, tc.status, err.Status)
			require.ErrorIs(t, err, ErrStatus)
			require.False(t, errors.Is(err, ErrNetwork))
		})
	}
}

func TestNetworkErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause)

	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "request failed: connection refused", err.Error())
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("api: place bid on item 3: %w", NewStatusError(http.StatusBadRequest, "bad amount"))
	require.Equal(t, "bad amount", Message(wrapped))

	plain := errors.New("something else")
	require.Equal(t, "something else", Message(plain))
}

func TestEncodeErrorIsNotNetwork(t *testing.T) {
	cause := errors.New("form file image: no content")
	err := NewEncodeError(cause)
	require.ErrorIs(t, err, ErrEncode)
	require.ErrorIs(t, err, cause)
	require.False(t, errors.Is(err, ErrNetwork))
	require.Equal(t, "invalid request body: form file image: no content", err.Error())
}
