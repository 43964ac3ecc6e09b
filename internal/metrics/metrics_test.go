package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/items/{id}", "GET", "418"))
	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}
	require.Equal(t, before+2, testutil.ToFloat64(HTTPRequests.WithLabelValues("/items/{id}", "GET", "418")))

	before = testutil.ToFloat64(HTTPRequests.WithLabelValues("/plain", "GET", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))
	require.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("/plain", "GET", "200")))
}
