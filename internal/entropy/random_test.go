package entropy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fractionServer answers each call with the next batch; calls past the last
// batch get a 500.
func fractionServer(t *testing.T, batches ...[]float64) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Method != "generateDecimalFractions" || req.Params.APIKey != "k" || req.Params.N != batchSize {
			t.Errorf("unexpected request %+v", req)
		}
		n := int(calls.Add(1))
		if n > len(batches) {
			http.Error(w, "quota exhausted", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"result":  map[string]any{"random": map[string]any{"data": batches[n-1]}},
			"id":      1,
		})
	}))
	t.Cleanup(srv.Close)

	c := NewClient("k")
	c.endpoint = srv.URL
	c.http = srv.Client()
	return c, &calls
}

func TestClientClampsAndPools(t *testing.T) {
	batch := []float64{1, 0.25, -0.1, 0.5, 0.6, 0.7, 0.8, 0.1, 0.2, 0.3, 0.4, 0.9}
	c, calls := fractionServer(t, batch)

	got := []float64{c.Float(), c.Float(), c.Float()}
	if diff := cmp.Diff([]float64{belowOne, 0.25, 0}, got); diff != "" {
		t.Fatalf("draws mismatch (-want +got):\n%s", diff)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected one refill while the pool is above low water, got %d", n)
	}
	if n := c.Pooled(); n != len(batch)-3 {
		t.Fatalf("expected %d pooled, got %d", len(batch)-3, n)
	}
}

func TestClientKeepsPoolWhenRefillFails(t *testing.T) {
	c, calls := fractionServer(t, []float64{0.11, 0.22, 0.33})

	got := []float64{c.Float(), c.Float(), c.Float()}
	if diff := cmp.Diff([]float64{0.11, 0.22, 0.33}, got); diff != "" {
		t.Fatalf("draws mismatch (-want +got):\n%s", diff)
	}
	// Each short-pool draw retries; the failures must not drop pooled values.
	if n := calls.Load(); n != 3 {
		t.Fatalf("expected 3 refill attempts, got %d", n)
	}

	for i := 0; i < 20; i++ {
		if v := c.Float(); v < 0 || v >= 1 {
			t.Fatalf("expected fallback float in [0,1), got %v", v)
		}
	}
	if c.Pooled() != 0 {
		t.Fatalf("expected empty pool after failed refills, got %d", c.Pooled())
	}
}

func TestClientAPIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":401,"message":"invalid key"},"id":1}`))
	}))
	defer srv.Close()

	c := NewClient("bad")
	c.endpoint = srv.URL
	c.http = srv.Client()
	if _, err := c.fetch(); err == nil {
		t.Fatal("expected api error")
	}
	if v := c.Float(); v < 0 || v >= 1 {
		t.Fatalf("expected fallback float in [0,1), got %v", v)
	}
}
