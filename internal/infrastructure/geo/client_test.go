package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return &Client{
		baseURL: url,
		http:    &http.Client{Timeout: time.Second},
	}
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("postcode") != "6811 AB" || r.URL.Query().Get("huisnummer") != "12" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"numFound":1,"docs":[{"straatnaam":"Spoorstraat","woonplaatsnaam":"Arnhem","gemeentenaam":"Arnhem","provincienaam":"Gelderland"}]}}`))
	}))
	defer srv.Close()

	addr, err := testClient(srv.URL).Resolve(context.Background(), "6811 AB", "12")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if addr.Street != "Spoorstraat" || addr.Municipality != "Arnhem" || addr.Province != "Gelderland" {
		t.Fatalf("unexpected address: %+v", addr)
	}
	if addr.Postcode != "6811 AB" || addr.HouseNumber != "12" {
		t.Fatalf("input echo missing: %+v", addr)
	}
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"numFound":0,"docs":[]}}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Resolve(context.Background(), "9999 ZZ", "1"); err == nil {
		t.Fatal("expected an error for an empty result")
	}
}

func TestResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Resolve(context.Background(), "6811 AB", "12"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
