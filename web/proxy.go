// Package web serves the static app shell offline-first: cached assets are
// preferred, the origin is the fallback, and successful origin responses are
// cached on the way through.
package web

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/mhclabs/timetabler/internal/apperr"
	"github.com/mhclabs/timetabler/store"
)

// CacheName identifies the current asset cache version. Bump it to cut over
// to a fresh cache on the next activation.
const CacheName = "assets-v1"

// ShellAssets is the minimal set of files required for offline operation.
var ShellAssets = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/app.js",
	"/manifest.json",
	"/icons/icon-192.svg",
	"/icons/icon-512.svg",
}

var errBadOrigin = &apperr.Error{
	Message: "invalid origin URL: %q",
}

// Proxy intercepts asset requests and serves them cache-first with origin
// fallback.
type Proxy struct {
	origin *url.URL
	cache  *store.AssetCache
	client *http.Client
}

// NewProxy returns a proxy in front of the given origin.
func NewProxy(origin string, cache *store.AssetCache) (*Proxy, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errBadOrigin.Fmt(origin)
	}

	return &Proxy{
		origin: u,
		cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Install pre-populates the cache with the app shell. Individual fetch
// failures are logged and skipped so that a partially reachable origin
// still yields a usable cache.
func (p *Proxy) Install(ctx context.Context) error {
	for _, path := range ShellAssets {
		asset, status, err := p.fetch(ctx, path)
		if err != nil {
			pterm.Warning.Printfln("could not precache %s: %v", path, err)
			continue
		}

		if !successful(status) {
			pterm.Warning.Printfln("could not precache %s: origin returned %d", path, status)
			continue
		}

		if err := p.cache.Put(asset); err != nil {
			return err
		}
	}

	return nil
}

// Activate performs the version cutover by deleting every cache that does
// not match the current cache name.
func (p *Proxy) Activate() error {
	return p.cache.DropStale()
}

// successful reports whether an origin status code marks a response worth
// caching.
func successful(status int) bool {
	return status >= 200 && status <= 299
}

// fetch retrieves an asset from the origin along with the origin's status
// code. An error is returned only for transport failures; an unsuccessful
// origin response is still a response.
func (p *Proxy) fetch(ctx context.Context, path string) (*store.Asset, int, error) {
	target := p.origin.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return &store.Asset{
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, resp.StatusCode, nil
}

// isNavigation reports whether the request is a page navigation rather than
// a subresource fetch.
func isNavigation(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Path

	cached, err := p.cache.Get(path)
	if err == nil && cached != nil {
		writeAsset(w, cached)
		return
	}

	asset, status, err := p.fetch(r.Context(), path)
	if err == nil {
		// The origin answered: relay its response whatever the status,
		// storing a copy of successful ones on the way through.
		if successful(status) {
			if cacheErr := p.cache.Put(asset); cacheErr != nil {
				pterm.Warning.Printfln("could not cache %s: %v", path, cacheErr)
			}
		}

		if asset.ContentType != "" {
			w.Header().Set("Content-Type", asset.ContentType)
		}

		w.WriteHeader(status)
		_, _ = w.Write(asset.Body)

		return
	}

	// Total network failure: navigations degrade to the cached shell,
	// everything else to a synthetic unavailable response.
	if isNavigation(r) {
		shell, shellErr := p.cache.Get("/index.html")
		if shellErr == nil && shell != nil {
			writeAsset(w, shell)
			return
		}
	}

	http.Error(w, "cached fetch failed", http.StatusGatewayTimeout)
}

func writeAsset(w http.ResponseWriter, a *store.Asset) {
	if a.ContentType != "" {
		w.Header().Set("Content-Type", a.ContentType)
	}

	_, _ = w.Write(a.Body)
}
