package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "sarifview/internal/platform/errors"
	pnet "sarifview/internal/platform/net"
	phttp "sarifview/internal/platform/net/http"
)

func reqWithReqID(method, path, id string) *http.Request {
	r := httptest.NewRequest(method, path, nil)
	return r.WithContext(pnet.WithRequestID(r.Context(), id))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestHandle_Envelopes(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
		code   perr.ErrorCode
		field  string
	}{
		{"ok", phttp.OK(map[string]int{"n": 1}), http.StatusOK, 0, ""},
		{"created", phttp.Created("x"), http.StatusCreated, 0, ""},
		{"zero status", phttp.Response{Body: "x"}, http.StatusOK, 0, ""},
		{"not found", phttp.Error(perr.NotFoundf("thread %q", "a")), http.StatusNotFound, perr.ErrorCodeNotFound, ""},
		{"duplicate", phttp.Error(perr.DuplicateKeyf("exists")), http.StatusConflict, perr.ErrorCodeDuplicateKey, ""},
		{"validation with field", phttp.Error(perr.WithField(perr.Validationf("blank"), "text")), http.StatusBadRequest, perr.ErrorCodeValidation, "text"},
		{"foreign error", phttp.Error(errors.New("boom")), http.StatusInternalServerError, perr.ErrorCodeUnknown, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })(rec, reqWithReqID(http.MethodGet, "/", "rid-9"))

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			env := decode(t, rec)
			if env.StatusCode != tc.status || env.RequestID != "rid-9" || env.Code != tc.code || env.Field != tc.field {
				t.Fatalf("envelope = %+v", env)
			}
			if tc.status >= 400 && env.Error == "" {
				t.Fatalf("error envelope without message")
			}
		})
	}
}

func TestHandle_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRespondError_ContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, httptest.NewRequest(http.MethodGet, "/", nil), perr.InvalidArgf("bad status"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}
