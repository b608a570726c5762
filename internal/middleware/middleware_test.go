package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordpairs/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "allowed origin",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "unknown origin",
			method:         http.MethodGet,
			origin:         "http://evil.example",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
		{
			name:           "preflight",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORS([]string{"http://localhost:3000"})(okHandler())

			req := httptest.NewRequest(tt.method, "/word-pairs", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PATCH, DELETE", rec.Header().Get("Access-Control-Allow-Methods"))
			if tt.expectedOrigin != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /word-pairs", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := Logging(zap.New(core), m)(mux)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/word-pairs", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "POST /word-pairs", fields["route"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])

	count, err := testutil.GatherAndCount(m.Registry(), "wordpairs_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLogging_NilMetrics(t *testing.T) {
	h := Logging(zap.NewNop(), nil)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := Recover(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/word-pairs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"status":"fail"`))
	assert.Equal(t, 1, logs.Len())
}

func panicHandler() http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func TestLogging_RecoveredPanic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	h := Chain(panicHandler(), Logging(zap.New(core), m), Recover(zap.NewNop()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/word-pairs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(http.StatusInternalServerError), logs.All()[0].ContextMap()["status"])

	count, err := testutil.GatherAndCount(m.Registry(), "wordpairs_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLogging_UnrecoveredPanic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	h := Logging(zap.New(core), m)(panicHandler())

	assert.PanicsWithValue(t, "boom", func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/word-pairs", nil))
	})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(http.StatusInternalServerError), logs.All()[0].ContextMap()["status"])

	count, err := testutil.GatherAndCount(m.Registry(), "wordpairs_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
