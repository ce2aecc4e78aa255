package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Equal(t, "req-42", LoggerFromContext(ctx).Data["request_id"])
	assert.NotContains(t, LoggerFromContext(context.Background()).Data, "request_id")
}

func TestRespondErrorWithCodeLogsRequestID(t *testing.T) {
	hook := test.NewLocal(Logger)
	t.Cleanup(hook.Reset)

	r := httptest.NewRequest(http.MethodGet, "/api/properties/x", nil)
	r = r.WithContext(WithRequestID(r.Context(), "req-7"))
	w := httptest.NewRecorder()

	RespondErrorWithCode(w, r, http.StatusInternalServerError, ErrCodeInternal, "Delete failed", errors.New("mongo down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"internal_server_error","message":"Delete failed"}`, w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "req-7", entry.Data["request_id"])
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
	assert.Equal(t, "Delete failed", entry.Message)
}
