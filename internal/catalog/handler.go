package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courses-backend/internal/cache"
	"courses-backend/internal/httpx"
	"courses-backend/internal/metrics"
	"courses-backend/internal/middleware"
	"courses-backend/internal/transport"
	"courses-backend/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	categoriesCacheKey = "catalog:categories"
	staffCacheKey      = "catalog:staff"
	categoryCacheKey   = "catalog:category:"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	cache   cache.Cache
	ttl     time.Duration
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, c cache.Cache, ttl time.Duration, log *slog.Logger) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service: service,
		val:     val,
		cache:   c,
		ttl:     ttl,
		log:     log,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.writeCached(w, r, categoriesCacheKey) {
		log.Info("categories list: cache hit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListCategories(ctx)
	if err != nil {
		log.Error("categories list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, httpx.TruncateError(err), nil)
		return
	}

	response := map[string]interface{}{"items": items}
	h.storeList(r.Context(), log, categoriesCacheKey, len(items), len(categorySeed), response)

	log.Info("categories list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if err := h.val.Var(slug, "required,slug"); err != nil {
		log.Warn("category detail: invalid slug", slog.String("slug", slug))
		transport.WriteError(w, http.StatusNotFound, "Category not found", nil)
		return
	}

	key := categoryCacheKey + slug
	if h.writeCached(w, r, key) {
		log.Info("category detail: cache hit", slog.String("slug", slug))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.GetCategory(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("category detail: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "Category not found", nil)
			return
		}
		log.Error("category detail: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, httpx.TruncateError(err), nil)
		return
	}

	h.store(r.Context(), log, key, item)
	log.Info("category detail: ok", slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.writeCached(w, r, staffCacheKey) {
		log.Info("staff list: cache hit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListStaff(ctx)
	if err != nil {
		log.Error("staff list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, httpx.TruncateError(err), nil)
		return
	}

	response := map[string]interface{}{"items": items}
	h.storeList(r.Context(), log, staffCacheKey, len(items), len(staffSeed), response)

	log.Info("staff list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

// writeCached serves key from the cache and reports whether it did. Cache
// failures fall through to the store.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string) bool {
	cached, ok, err := h.cache.Get(r.Context(), key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	transport.WriteRaw(w, http.StatusOK, cached)
	return true
}

// storeList caches a list response only once it holds at least the seeded
// record count. A shorter list can come from a read that raced a seeding pass
// still writing, and must not outlive it in the cache.
func (h *Handler) storeList(ctx context.Context, log *slog.Logger, key string, count, complete int, payload interface{}) {
	if count < complete {
		return
	}
	h.store(ctx, log, key, payload)
}

func (h *Handler) store(ctx context.Context, log *slog.Logger, key string, payload interface{}) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, encoded, h.ttl); err != nil {
		log.Warn("catalog cache: set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
