package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"courses-backend/internal/db"
	"courses-backend/internal/httpx"
	"courses-backend/internal/metrics"
	"courses-backend/internal/middleware"
	"courses-backend/internal/transport"
	"courses-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		metrics.Submissions.WithLabelValues("contact", "invalid").Inc()
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		metrics.Submissions.WithLabelValues("contact", "invalid").Inc()
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.Submit(ctx, req)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			log.Error("contact create: database not available")
			metrics.Submissions.WithLabelValues("contact", "unavailable").Inc()
			transport.WriteError(w, http.StatusInternalServerError, "Database not available", nil)
			return
		}
		log.Error("contact create: database error", slog.String("error", err.Error()))
		metrics.Submissions.WithLabelValues("contact", "error").Inc()
		transport.WriteError(w, http.StatusInternalServerError, httpx.TruncateError(err), nil)
		return
	}

	log.Info("contact create: stored", slog.String("contact_id", msg.ID))
	metrics.Submissions.WithLabelValues("contact", "ok").Inc()
	transport.WriteOK(w, "Message received. We'll be in touch!")
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, limit, offset)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			log.Warn("admin contacts list: database not available")
			transport.WriteError(w, http.StatusServiceUnavailable, "Database not available", nil)
			return
		}
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
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
