// Package auth resolves RSA signing keys from a JWKS endpoint for verifying
// bearer tokens issued by the identity provider.
package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

type jwksDocument struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Provider caches JWKS keys by kid and refetches on miss, at most once a
// minute. Safe for concurrent use.
type Provider struct {
	mu        sync.RWMutex
	keys      map[string]*JSONWebKey
	url       string
	refreshed time.Time
}

func NewProvider(jwksURL string) *Provider {
	return &Provider{
		url:  jwksURL,
		keys: make(map[string]*JSONWebKey),
	}
}

// PublicKey returns the RSA public key for the given key id.
func (p *Provider) PublicKey(kid string) (*rsa.PublicKey, error) {
	key, err := p.lookup(kid)
	if err != nil {
		return nil, err
	}
	return key.rsaKey()
}

func (p *Provider) lookup(kid string) (*JSONWebKey, error) {
	p.mu.RLock()
	key, exists := p.keys[kid]
	p.mu.RUnlock()

	if exists {
		return key, nil
	}

	if err := p.refresh(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, exists = p.keys[kid]
	p.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("jwks: no key with kid %q", kid)
	}
	return key, nil
}

func (p *Provider) refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Throttle refetches so a flood of unknown kids can't hammer the endpoint
	if time.Since(p.refreshed) < time.Minute && len(p.keys) > 0 {
		return nil
	}

	resp, err := http.Get(p.url)
	if err != nil {
		return fmt.Errorf("jwks: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("jwks: decode failed: %w", err)
	}

	p.keys = make(map[string]*JSONWebKey, len(doc.Keys))
	for i := range doc.Keys {
		p.keys[doc.Keys[i].Kid] = &doc.Keys[i]
	}
	p.refreshed = time.Now()
	return nil
}

func (k *JSONWebKey) rsaKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
