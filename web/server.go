package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pterm/pterm"

	"github.com/mhclabs/timetabler/store"
)

// Server runs the offline-first asset proxy on the given port. The cache is
// installed and activated before the first request is served.
func Server(port uint, origin, cachePath string) error {
	cache, err := store.OpenAssetCache(cachePath, CacheName)
	if err != nil {
		return err
	}

	defer func() {
		_ = cache.Close()
	}()

	proxy, err := NewProxy(origin, cache)
	if err != nil {
		return err
	}

	if err := proxy.Install(context.Background()); err != nil {
		return err
	}

	if err := proxy.Activate(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/install", NewInstallHook())
	mux.Handle("/", proxy)

	pterm.Info.Printfln("serving %s offline-first on port: %d", origin, port)

	//nolint:gosec // no timeout is ok
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
