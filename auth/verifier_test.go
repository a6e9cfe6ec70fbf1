package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerifySuccess(t *testing.T) {
	var captured signInRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if r.URL.Query().Get("key") != "api-key" {
			t.Errorf("expected api key in query, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]string{"idToken": "upstream-token"})
	}))
	defer srv.Close()

	v := &Verifier{APIKey: "api-key", Endpoint: srv.URL, Client: srv.Client()}
	if err := v.Verify(context.Background(), "ana@example.com", "hunter2"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if captured.Email != "ana@example.com" || captured.Password != "hunter2" || !captured.ReturnSecureToken {
		t.Fatalf("unexpected payload sent upstream: %+v", captured)
	}
}

func TestVerifyRejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	defer srv.Close()

	v := &Verifier{APIKey: "api-key", Endpoint: srv.URL, Client: srv.Client()}
	err := v.Verify(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := &Verifier{APIKey: "api-key", Endpoint: srv.URL, Client: http.DefaultClient}
	err := v.Verify(context.Background(), "ana@example.com", "hunter2")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerifyUnreadableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	v := &Verifier{APIKey: "api-key", Endpoint: srv.URL, Client: srv.Client()}
	err := v.Verify(context.Background(), "ana@example.com", "hunter2")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
