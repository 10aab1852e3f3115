// Package entropy isolates every random draw the encounter engine makes behind
// one injectable Source, so campaign stops can be seeded and replayed.
package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Source yields uniform floats in [0, 1). Integer draws, picks and shuffles are
// derived from Float so a scripted Sequence controls every decision.
type Source interface {
	Float() float64
}

const (
	randomOrgEndpoint = "https://api.random.org/json-rpc/4/invoke"

	// batchSize fractions are requested per call; the pool is topped up once
	// it drops below lowWater.
	batchSize     = 200
	lowWater      = 10
	decimalPlaces = 8

	// belowOne replaces a returned 1.0 so draws stay in [0, 1).
	belowOne = 0.99999999
)

// Client draws from random.org's generateDecimalFractions and keeps a local
// pool. Failed refills fall back to crypto/rand for that draw.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewClient creates a random.org client. Returns nil if apiKey is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: randomOrgEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Float implements Source. A nil client draws from crypto/rand.
func (c *Client) Float() float64 {
	if c == nil {
		return cryptoRandFloat()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < lowWater {
		fresh, err := c.fetch()
		if err != nil {
			slog.Debug("random.org refill failed", "error", err, "pooled", len(c.pool))
		}
		c.pool = append(c.pool, fresh...)
	}
	if len(c.pool) == 0 {
		return cryptoRandFloat()
	}

	v := c.pool[0]
	c.pool = c.pool[1:]
	return v
}

// Pooled reports how many fractions are waiting in the pool.
func (c *Client) Pooled() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pool)
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	APIKey        string `json:"apiKey"`
	N             int    `json:"n"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

type rpcResponse struct {
	Result struct {
		Random struct {
			Data []float64 `json:"data"`
		} `json:"random"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fetch asks for one batch and clamps it into [0, 1).
func (c *Client) fetch() ([]float64, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateDecimalFractions",
		Params:  rpcParams{APIKey: c.apiKey, N: batchSize, DecimalPlaces: decimalPlaces},
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.http.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var out rpcResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("api error %d: %s", out.Error.Code, out.Error.Message)
	}

	data := out.Result.Random.Data
	for i, v := range data {
		switch {
		case v >= 1:
			data[i] = belowOne
		case v < 0:
			data[i] = 0
		}
	}
	return data, nil
}

// Crypto draws from crypto/rand. It is not reproducible and exists for hosts
// that want unpredictable stops without a random.org key.
type Crypto struct{}

// Float implements Source.
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

// cryptoRandFloat generates a random float64 using crypto/rand as fallback.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
