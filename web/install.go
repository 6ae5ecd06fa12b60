package web

import (
	"encoding/json"
	"net/http"
	"sync"
)

// InstallHook tracks the deferred install affordance: whether an install
// prompt is on offer and whether the user accepted it. Once accepted the
// offer is consumed and never re-shown.
type InstallHook struct {
	mu       sync.Mutex
	deferred bool
	accepted bool
}

// NewInstallHook returns a hook with the install prompt on offer.
func NewInstallHook() *InstallHook {
	return &InstallHook{deferred: true}
}

// Accept consumes the deferred prompt. It reports whether there was an
// outstanding offer to accept.
func (h *InstallHook) Accept() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.deferred {
		return false
	}

	h.deferred = false
	h.accepted = true

	return true
}

type installState struct {
	Deferred bool `json:"deferred"`
	Accepted bool `json:"accepted"`
}

// ServeHTTP reports the current install state on GET and records acceptance
// on POST.
func (h *InstallHook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.mu.Lock()
		state := installState{Deferred: h.deferred, Accepted: h.accepted}
		h.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(state)

	case http.MethodPost:
		if !h.Accept() {
			http.Error(w, "no install prompt on offer", http.StatusConflict)
			return
		}

		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
