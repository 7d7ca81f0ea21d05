package checks

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/DerInti/check-netscaler/internal/nitro"
)

// newTestClient starts a mock NITRO server and returns a client pointed at
// it. The server is shut down when the test finishes.
func newTestClient(t *testing.T, handler http.HandlerFunc) *nitro.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	return nitro.New(nitro.Config{
		Host:     host,
		Port:     port,
		Username: "nsroot",
		Password: "nsroot",
	}, nil)
}

// respond returns a handler serving a fixed body for every request.
func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

// respondByPath returns a handler choosing the body by URL path suffix, for
// checks that issue more than one query.
func respondByPath(t *testing.T, bodies map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for suffix, body := range bodies {
			if strings.HasSuffix(r.URL.Path, suffix) {
				w.Write([]byte(body))
				return
			}
		}
		t.Errorf("unexpected request path %q", r.URL.Path)
		http.NotFound(w, r)
	}
}
