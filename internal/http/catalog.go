package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fitvibe/internal/cache"
	"fitvibe/internal/metrics"
	"fitvibe/internal/repo"
)

// CatalogHandler serves the read-only product endpoints with an
// optional read-through cache in front of the repository.
type CatalogHandler struct {
	Products repo.Products
	Cache    *cache.Client
	CacheTTL time.Duration
	Log      zerolog.Logger
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	f := parseProductFilter(r)

	key := "products:" + r.URL.RawQuery
	if body, ok := h.fromCache(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	products, err := h.Products.List(r.Context(), f)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	h.respondCached(w, r, key, products)
}

func (h *CatalogHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	key := "product:" + id
	if body, ok := h.fromCache(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	p, err := h.Products.ByID(r.Context(), id)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	h.respondCached(w, r, key, p)
}

func (h *CatalogHandler) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if h.Cache == nil {
		return nil, false
	}
	body, err := h.Cache.Get(ctx, key)
	if err != nil {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return body, true
}

func (h *CatalogHandler) respondCached(w http.ResponseWriter, r *http.Request, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeErr(w, h.Log, r, err)
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, body, h.CacheTTL); err != nil {
			h.Log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func parseProductFilter(r *http.Request) repo.ProductFilter {
	q := r.URL.Query()
	f := repo.ProductFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	return f
}
