package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	apiinternal "github.com/faang-dcc/validator-api/internal/api"
)

type testEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Meta  apiinternal.Meta       `json:"meta"`
	Error *apiinternal.ErrorBody `json:"error"`
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v\nbody: %s", err, resp.Body.String())
	}
	return env
}

func TestNotFoundHandlerReturnsEnvelope(t *testing.T) {
	router := chi.NewRouter()
	router.NotFound(NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	env := decodeEnvelope(t, resp)
	if env.Error == nil {
		t.Fatal("expected an error body")
	}
	if env.Error.Code != "NOT_FOUND" {
		t.Errorf("code = %q", env.Error.Code)
	}
	if env.Error.Message != "resource not found" {
		t.Errorf("message = %q", env.Error.Message)
	}
	if string(env.Data) != "null" {
		t.Errorf("data = %s, want null", env.Data)
	}
}

func TestMethodNotAllowedHandlerReturnsEnvelope(t *testing.T) {
	router := chi.NewRouter()
	router.MethodNotAllowed(MethodNotAllowedHandler())
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	if allow := resp.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Fatalf("expected Allow header to list GET, got %q", allow)
	}

	env := decodeEnvelope(t, resp)
	if env.Error == nil || env.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Fatalf("unexpected error body %+v", env.Error)
	}
}

func TestRecovererReturnsEnvelope(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Recoverer())
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Error == nil || env.Error.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("unexpected error body %+v", env.Error)
	}
	if env.Error.Message != "internal server error" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestInstallOverridesHumaErrors(t *testing.T) {
	Install()

	se := huma.NewError(http.StatusUnprocessableEntity, "no records provided",
		errors.New("expected at least one record type"))

	if se.GetStatus() != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", se.GetStatus())
	}
	env, ok := se.(*statusEnvelopeError)
	if !ok {
		t.Fatalf("unexpected error type %T", se)
	}
	if env.Envelope.Error.Code != "UNPROCESSABLE_ENTITY" {
		t.Errorf("code = %q", env.Envelope.Error.Code)
	}
	if env.Envelope.Error.Message != "no records provided" {
		t.Errorf("message = %q", env.Envelope.Error.Message)
	}
	if len(env.Envelope.Error.Details) != 1 || env.Envelope.Error.Details[0].Issue != "expected at least one record type" {
		t.Errorf("details = %+v", env.Envelope.Error.Details)
	}
}

func TestErrorFillsDefaults(t *testing.T) {
	se := Error(context.Background(), http.StatusBadGateway, "", "", nil)
	env, ok := se.(*statusEnvelopeError)
	if !ok {
		t.Fatalf("unexpected error type %T", se)
	}
	if env.Envelope.Error.Code != "BAD_GATEWAY" {
		t.Errorf("code = %q", env.Envelope.Error.Code)
	}
	if env.Envelope.Error.Message != "Bad Gateway" {
		t.Errorf("message = %q", env.Envelope.Error.Message)
	}
	if se.Error() != "Bad Gateway" {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestStatusCodeName(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{499, "HTTP_499"},
	}

	for _, tc := range tests {
		if got := statusCodeName(tc.status); got != tc.want {
			t.Errorf("statusCodeName(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestSuccessWrapsPayload(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	body := Success(context.Background(), payload{Name: "organism"})
	if body.Body.Data == nil || body.Body.Data.Name != "organism" {
		t.Fatalf("unexpected envelope %+v", body.Body)
	}
	if body.Body.Error != nil {
		t.Errorf("expected no error body, got %+v", body.Body.Error)
	}
}

func TestWriteSerializesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	env := apiinternal.NewSuccessEnvelope[string](nil, "ok")
	if err := Write(rec, http.StatusOK, env); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
