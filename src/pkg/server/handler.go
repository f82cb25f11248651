package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sample-gallery/urigen/src/pkg/provider"
)

const maxGalleryPage = 100

type Handler struct {
	provider *provider.Provider
}

type uriResponse struct {
	URI string `json:"uri"`
}

type urisResponse struct {
	URIs []string `json:"uris"`
}

type overrideRequest struct {
	URI string `json:"uri"`
}

type cacheBreakingBody struct {
	Enabled bool `json:"enabled"`
}

func CreateHandler(p *provider.Provider) (*Handler, error) {
	if p == nil {
		return nil, fmt.Errorf("provider must not be nil")
	}
	return &Handler{
		provider: p,
	}, nil
}

// Routes returns the daemon's HTTP surface.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/uri", h.GetURI)
	mux.HandleFunc("/api/v1/uris", h.GetURIs)
	mux.HandleFunc("/api/v1/override", h.Override)
	mux.HandleFunc("/api/v1/settings/cache-breaking", h.CacheBreaking)
	mux.HandleFunc("/api/v1/feed", h.Feed)
	return mux
}

func sampleParams(query url.Values) (provider.ImageSize, provider.Orientation, provider.Modification, error) {
	rawSize := query.Get("size")
	if rawSize == "" {
		return 0, 0, 0, fmt.Errorf("missing size parameter")
	}
	size, sizeErr := provider.ParseImageSize(rawSize)
	if sizeErr != nil {
		return 0, 0, 0, sizeErr
	}

	orientation, orientationErr := provider.ParseOrientation(query.Get("orientation"))
	if orientationErr != nil {
		return 0, 0, 0, orientationErr
	}

	modification := provider.ModNone
	if query.Get("cache_breaker") == "true" {
		modification = provider.ModCacheBreaker
	}
	return size, orientation, modification, nil
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) GetURI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size, orientation, modification, paramErr := sampleParams(r.URL.Query())
	if paramErr != nil {
		http.Error(w, paramErr.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("non_existing") == "true" {
		writeJSON(w, uriResponse{URI: h.provider.NonExistingURI()})
		return
	}

	uri, uriErr := h.provider.SampleURI(size, orientation, modification)
	if uriErr != nil {
		http.Error(w, "Failed to create sample URI: "+uriErr.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, uriResponse{URI: uri})
}

func (h *Handler) GetURIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size, orientation, modification, paramErr := sampleParams(r.URL.Query())
	if paramErr != nil {
		http.Error(w, paramErr.Error(), http.StatusBadRequest)
		return
	}

	count := 12
	if rawCount := r.URL.Query().Get("count"); rawCount != "" {
		if _, scanErr := fmt.Sscanf(rawCount, "%d", &count); scanErr != nil || count < 1 {
			http.Error(w, "Invalid count parameter", http.StatusBadRequest)
			return
		}
	}
	if count > maxGalleryPage {
		count = maxGalleryPage
	}

	uris := make([]string, 0, count)
	for i := 0; i < count; i++ {
		uri, uriErr := h.provider.SampleURI(size, orientation, modification)
		if uriErr != nil {
			http.Error(w, "Failed to create sample URI: "+uriErr.Error(), http.StatusInternalServerError)
			return
		}
		uris = append(uris, uri)
	}

	writeJSON(w, urisResponse{URIs: uris})
}

func (h *Handler) Override(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		override, overrideErr := h.provider.Override()
		if overrideErr != nil {
			http.Error(w, "Failed to read override: "+overrideErr.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, uriResponse{URI: override})
	case http.MethodPut:
		request := overrideRequest{}
		if decodeErr := json.NewDecoder(r.Body).Decode(&request); decodeErr != nil {
			http.Error(w, "Invalid request body: "+decodeErr.Error(), http.StatusBadRequest)
			return
		}
		if setErr := h.provider.SetOverride(request.URI); setErr != nil {
			if errors.Is(setErr, provider.ErrNotAbsolute) {
				http.Error(w, setErr.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to set override: "+setErr.Error(), http.StatusInternalServerError)
			return
		}
	case http.MethodDelete:
		if clearErr := h.provider.SetOverride(""); clearErr != nil {
			http.Error(w, "Failed to clear override: "+clearErr.Error(), http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) CacheBreaking(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		enabled, flagErr := h.provider.BreakCacheByDefault()
		if flagErr != nil {
			http.Error(w, "Failed to read setting: "+flagErr.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, cacheBreakingBody{Enabled: enabled})
	case http.MethodPut:
		request := cacheBreakingBody{}
		if decodeErr := json.NewDecoder(r.Body).Decode(&request); decodeErr != nil {
			http.Error(w, "Invalid request body: "+decodeErr.Error(), http.StatusBadRequest)
			return
		}
		if setErr := h.provider.SetBreakCacheByDefault(request.Enabled); setErr != nil {
			http.Error(w, "Failed to update setting: "+setErr.Error(), http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
