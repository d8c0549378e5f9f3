package document

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ruimartins/billow/internal/document"
)

type Handler struct {
	svc *document.Service
}

func NewHandler(svc *document.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/archive", h.archive)
	r.Post("/{id}/restore", h.restore)
}

// urlType resolves the {type} URL segment into a document type. Writes
// the error response itself; callers bail out on !ok.
func urlType(w http.ResponseWriter, r *http.Request) (document.Type, bool) {
	typ, err := document.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	return typ, true
}

func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	typ, ok := urlType(w, r)
	if !ok {
		return
	}

	filter := document.ListFilter{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
		IncludeDeleted:  r.URL.Query().Get("include_deleted") == "true",
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	docs, err := h.svc.List(r.Context(), typ, filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(docs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	typ, ok := urlType(w, r)
	if !ok {
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	doc, err := h.svc.Find(r.Context(), typ, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(doc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if ok := h.lifecycle(w, r, h.svc.Delete); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	if ok := h.lifecycle(w, r, h.svc.Archive); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	if ok := h.lifecycle(w, r, h.svc.Restore); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

// lifecycle runs one of the archive/delete/restore service actions
// against the document named in the URL.
func (h *Handler) lifecycle(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, doc document.Document) error) bool {
	typ, ok := urlType(w, r)
	if !ok {
		return false
	}

	id, ok := urlID(w, r)
	if !ok {
		return false
	}

	doc, err := h.svc.Find(r.Context(), typ, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return false
	}

	if err := action(r.Context(), doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}

	return true
}
