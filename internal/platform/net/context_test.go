package net

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if RequestID(ctx) != "" {
		t.Fatalf("expected empty id on bare context")
	}
	if got := WithRequestID(ctx, ""); got != ctx {
		t.Fatalf("empty id should leave ctx untouched")
	}
	if got := RequestID(WithRequestID(ctx, "rid-1")); got != "rid-1" {
		t.Fatalf("RequestID = %q", got)
	}
}

func TestRequestID_FromChiMiddleware(t *testing.T) {
	var seen string
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "upstream-7")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "upstream-7" {
		t.Fatalf("seen = %q", seen)
	}
}
