package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxFetchSize is the maximum allowed response body size for gateway
// fetches (64 MB). This prevents memory exhaustion from malicious
// endpoints.
const MaxFetchSize = 1 << 26

// Fetcher retrieves sealed envelopes by CID from multiple sources in
// priority order: local store -> HTTP gateways.
// It returns the envelope bytes only; the caller is responsible for
// opening them.
type Fetcher struct {
	Store    Store        // local content-addressed storage; may be nil
	Gateways []string     // gateway base URLs (e.g. "https://gw.example.org")
	Client   *http.Client // HTTP client for remote fetches; nil uses default
}

// NewFetcher creates a Fetcher with the given local store.
// Gateways and Client can be set after creation.
func NewFetcher(store Store, gateways ...string) *Fetcher {
	return &Fetcher{
		Store:    store,
		Gateways: gateways,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the envelope for cid, trying sources in order:
//  1. Local store
//  2. HTTP gateways (GET {base}/will/{cid hex})
//
// Remote bytes are accepted only when their Keccak-256 digest equals cid;
// accepted bytes are cached in the local store best-effort.
func (f *Fetcher) Fetch(cid CID) ([]byte, error) {
	// 1. Try local storage first.
	if f.Store != nil {
		data, err := f.Store.Get(cid)
		if err == nil {
			return data, nil
		}
		// Only continue if not found; other errors are real failures.
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("fetcher: local store: %w", err)
		}
	}

	// 2. Try HTTP gateways.
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	for _, gw := range f.Gateways {
		data, err := f.fetchFromGateway(client, gw, cid)
		if err != nil {
			continue // try the next gateway
		}
		// Verify the content binding before trusting remote data.
		if ComputeCID(data) != cid {
			continue
		}
		if f.Store != nil {
			_ = f.Store.Put(cid, data) // best-effort cache
		}
		return data, nil
	}

	return nil, fmt.Errorf("fetcher: %w: %s", ErrNotFound, cid)
}

// fetchFromGateway fetches envelope bytes from a single gateway.
// Endpoint: GET {baseURL}/will/{cid hex}
func (f *Fetcher) fetchFromGateway(client *http.Client, baseURL string, cid CID) ([]byte, error) {
	url := baseURL + "/will/" + cid.String()

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetcher: gateway %s: %w", baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetcher: gateway %s: HTTP %d", baseURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize))
	if err != nil {
		return nil, fmt.Errorf("fetcher: gateway %s: read body: %w", baseURL, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetcher: gateway %s: empty response", baseURL)
	}

	return data, nil
}
