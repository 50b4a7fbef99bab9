package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnet "sarifview/internal/platform/net"
	"sarifview/internal/platform/net/middleware"
)

func chain(h http.Handler, mws []func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestCORS_DefaultsFillMissing(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://example.com"}})
	h := cors(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != 200 && rr.Code != 204 {
		t.Fatalf("expected 200 or 204 got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Fatalf("allow origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" || rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatal("expected allow methods and headers")
	}
}

func TestStack_ScopesRequestAndRecovers(t *testing.T) {
	mws := middleware.Stack(middleware.StackOptions{SessionID: "sess-1", Slow: time.Second})

	var rid string
	ok := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = pnet.RequestID(r.Context())
		// the compressor only encodes the content types it knows
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	}), mws)

	req := httptest.NewRequest(http.MethodGet, "/v1/view/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	ok.ServeHTTP(rr, req)

	if rr.Code != 200 || rid == "" {
		t.Fatalf("code=%d rid=%q", rr.Code, rid)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("expected Cache-Control from NoCache")
	}
	if rr.Header().Get("Content-Encoding") == "" {
		t.Fatal("expected compressed body")
	}

	boom := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("x") }), mws)
	rr = httptest.NewRecorder()
	boom.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	ok.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != 200 || rr.Body.String() != "." {
		t.Fatalf("heartbeat = %d %q", rr.Code, rr.Body.String())
	}
}
