package wynncraft

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// stubAPI serves body with status for every request and records the requests it saw.
type stubAPI struct {
	requests []*http.Request
}

func newStubClient(t *testing.T, status int, body string) (*Client, *stubAPI) {
	t.Helper()
	stub := &stubAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests = append(stub.requests, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()}), stub
}

func (s *stubAPI) last(t *testing.T) *http.Request {
	t.Helper()
	require.NotEmpty(t, s.requests, "no request reached the stub")
	return s.requests[len(s.requests)-1]
}

func mustObject(t *testing.T, body string) object {
	t.Helper()
	doc, err := decodeDocument("test", []byte(body))
	require.NoError(t, err)
	obj, err := asObject(doc, "")
	require.NoError(t, err)
	return obj
}

func mustArray(t *testing.T, body string) array {
	t.Helper()
	doc, err := decodeDocument("test", []byte(body))
	require.NoError(t, err)
	arr, err := asArray(doc, "")
	require.NoError(t, err)
	return arr
}

func requireSchemaError(t *testing.T, err error, field string, kind Kind) *SchemaError {
	t.Helper()
	sErr, ok := AsSchemaError(err)
	require.True(t, ok, "expected SchemaError, got %v", err)
	require.Equal(t, field, sErr.Field)
	require.Equal(t, kind, sErr.Expected)
	return sErr
}
