package optimizer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOptimizeInlineResponse(t *testing.T) {
	input := []byte("fake png bytes")
	var gotBody []byte
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotUser, gotPass, _ = r.BasicAuth()
		w.Write([]byte("optimized"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	out, err := client.Optimize(context.Background(), input)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if string(out) != "optimized" {
		t.Fatalf("unexpected output: %q", out)
	}
	if !bytes.Equal(gotBody, input) {
		t.Fatalf("request body mismatch")
	}
	if gotUser != "api" || gotPass != "secret" {
		t.Fatalf("unexpected basic auth: %s/%s", gotUser, gotPass)
	}
}

func TestOptimizeFollowsLocation(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/shrink", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", server.URL+"/output/abc")
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/output/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stored result"))
	})

	client := NewClient(server.URL+"/shrink", "secret", time.Second)
	out, err := client.Optimize(context.Background(), []byte("input"))
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if string(out) != "stored result" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestOptimizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "wrong", time.Second)
	if _, err := client.Optimize(context.Background(), []byte("input")); err == nil {
		t.Fatalf("expected error for 401 response")
	}
}
