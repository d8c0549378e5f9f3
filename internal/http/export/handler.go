package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{type}", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	typ, err := document.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := document.ListFilter{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
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

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%ss_%s.csv\"", typ, time.Now().Format("20060102")))

	if _, err := h.svc.WriteCSV(r.Context(), w, typ, filter); err != nil {
		// Headers are out; all we can do is log.
		slog.Error("failed to write export", "type", typ, "error", err)
	}
}
