package scout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiscout/scoutctl/internal/model"
	"github.com/aiscout/scoutctl/internal/testutil"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithBaseURL(server.URL),
		WithLogger(testutil.NopLogger()),
	}, opts...)
	client, err := NewClient("stage", opts...)
	require.NoError(t, err)
	return client, server
}

func TestNewClientRejectsInvalidEnvironment(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	for _, env := range []string{"", "dev", "production", "Stage", "staging"} {
		_, err := NewClient(env, WithBaseURL(server.URL))
		assert.ErrorIs(t, err, model.ErrInvalidEnvironment, env)
	}

	// Validation happens before any request is issued
	assert.Equal(t, int64(0), requests.Load())
}

func TestNewClientSelectsBaseURLPerEnvironment(t *testing.T) {
	stage, err := NewClient("stage")
	require.NoError(t, err)
	assert.Equal(t, model.EnvStage, stage.Env())
	assert.Equal(t, "http://stage.aiscout.io", stage.baseURL)

	prod, err := NewClient("prod")
	require.NoError(t, err)
	assert.Equal(t, model.EnvProd, prod.Env())
	assert.Equal(t, "https://secure.aiscout.io", prod.baseURL)
}

func TestDoExtractsStructuredError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email is invalid","codes":[1201,1202]}`))
	}))

	err := client.do(context.Background(), "test_op", http.MethodPost, "/api/v3/test", "", nil, map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "email is invalid", apiErr.Message)
	assert.Equal(t, []int{1201, 1202}, apiErr.Codes)
	assert.Contains(t, apiErr.Error(), "email is invalid")
}

func TestDoUnparseableErrorBodyLeavesFieldsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	err := client.do(context.Background(), "test_op", http.MethodGet, "/api/v3/test", "", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.Empty(t, apiErr.Codes)
	assert.Equal(t, "HTTP 502", apiErr.Error())
}

func TestDoSetsBearerAndContentType(t *testing.T) {
	var gotAuth, gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))

	err := client.do(context.Background(), "test_op", http.MethodPost, "/api/v3/test", "tok-123", nil, map[string]string{"a": "b"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var sawAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))

	err := client.do(context.Background(), "test_op", http.MethodGet, "/api/v3/test", "", nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestDoDecodesSuccessResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"userId":12,"accessToken":"tok"}`))
	}))

	var session model.Session
	err := client.do(context.Background(), "test_op", http.MethodPost, "/api/v3/test", "", nil, nil, &session)
	require.NoError(t, err)
	assert.Equal(t, int64(12), session.UserID)
	assert.Equal(t, "tok", session.AccessToken)
}

// recordingMetrics captures metric observations for assertions
type recordingMetrics struct {
	ops      []string
	statuses []int
}

func (m *recordingMetrics) RecordRequest(op, method string, status int, elapsed time.Duration) {
	m.ops = append(m.ops, op)
	m.statuses = append(m.statuses, status)
}

func TestDoRecordsMetrics(t *testing.T) {
	rec := &recordingMetrics{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), WithMetrics(rec))

	_ = client.do(context.Background(), "weird_op", http.MethodGet, "/x", "", nil, nil, nil)

	require.Len(t, rec.ops, 1)
	assert.Equal(t, "weird_op", rec.ops[0])
	assert.Equal(t, http.StatusTeapot, rec.statuses[0])
}
