package status

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/i18n"
	"github.com/ruimartins/billow/internal/status"
)

type Handler struct {
	svc *document.Service
}

func NewHandler(svc *document.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/statuses", h.statuses)
	r.Put("/{id}/status", h.apply)
}

// engineFor builds an engine rendering messages in the caller's
// language.
func (h *Handler) engineFor(r *http.Request) *status.Engine {
	return status.NewEngine(h.svc, i18n.New(r.Header.Get("Accept-Language")))
}

func (h *Handler) loadDocument(w http.ResponseWriter, r *http.Request) (document.Type, document.Document, bool) {
	typ, err := document.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return "", nil, false
	}

	doc, err := h.svc.Find(r.Context(), typ, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return "", nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return "", nil, false
	}

	return typ, doc, true
}

type statusResponse struct {
	Key      status.Key `json:"key"`
	Name     string     `json:"name,omitempty"`
	Priority int        `json:"priority"`
	Visible  bool       `json:"visible"`
	Generic  bool       `json:"generic"`
	Met      bool       `json:"met"`
	CanApply bool       `json:"can_apply"`
}

type statusesResponse struct {
	Primary  *statusResponse  `json:"primary"`
	Statuses []statusResponse `json:"statuses"`
}

func toStatusResponse(engine *status.Engine, d *status.Descriptor, doc document.Document, generic bool) statusResponse {
	return statusResponse{
		Key:      d.Key,
		Name:     engine.Name(d),
		Priority: d.Priority,
		Visible:  d.Visible,
		Generic:  generic,
		Met:      d.MeetsCondition(doc),
		CanApply: d.CanBeApplied(doc),
	}
}

func (h *Handler) statuses(w http.ResponseWriter, r *http.Request) {
	typ, doc, ok := h.loadDocument(w, r)
	if !ok {
		return
	}

	engine := h.engineFor(r)

	resp := statusesResponse{}

	for _, d := range status.All(typ) {
		resp.Statuses = append(resp.Statuses, toStatusResponse(engine, d, doc, false))
	}

	for _, d := range status.All(status.Generic) {
		resp.Statuses = append(resp.Statuses, toStatusResponse(engine, d, doc, true))
	}

	if d, found := status.Primary(typ, doc); found {
		resp.Primary = new(toStatusResponse(engine, d, doc, d.Generic))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type applyRequest struct {
	Status status.Key `json:"status"`
}

type solutionResponse struct {
	Message string                `json:"message"`
	Form    *document.FormCommand `json:"form,omitempty"`
}

type conflictResponse struct {
	Message  string            `json:"message"`
	Solution *solutionResponse `json:"solution,omitempty"`
}

type applyResponse struct {
	Status    status.Key         `json:"status"`
	Applied   bool               `json:"applied"`
	Conflicts []conflictResponse `json:"conflicts,omitempty"`
	Solution  *solutionResponse  `json:"solution,omitempty"`
}

// apply evaluates a status transition. Conflicts come back as 409 with
// their suggested workarounds; an accepted transition executes
// immediately, and any remedial suggestion it yields is returned with
// the form the client should open.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	typ, doc, ok := h.loadDocument(w, r)
	if !ok {
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Archive, delete, and restore-to-active live in the generic
	// overlay family rather than the document's own.
	family := typ
	if !status.Known(family, req.Status) {
		if !status.Known(status.Generic, req.Status) {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		family = status.Generic
	}

	d := status.Describe(family, req.Status)
	if !d.Applicable() {
		http.Error(w, "status is derived and cannot be applied directly", http.StatusBadRequest)
		return
	}

	if !d.CanBeApplied(doc) {
		http.Error(w, "status cannot be applied to this document", http.StatusBadRequest)
		return
	}

	engine := h.engineFor(r)

	res := engine.Apply(family, doc, req.Status)

	if len(res.Conflicts) > 0 {
		writeConflicts(w, req.Status, res)
		return
	}

	// The sink captures any form-open command a solution triggers.
	var form document.FormCommand

	ctx := document.WithFormSink(r.Context(), &form)

	solution, err := res.Solve(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := applyResponse{Status: req.Status, Applied: solution == nil}

	if solution != nil {
		if err := solution.Solve(ctx); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Solution = &solutionResponse{Message: solution.Message}
		if form.Action != "" {
			resp.Solution.Form = &form
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeConflicts reports a blocked transition. Conflict solutions are
// described, never executed here; some of them persist changes (the
// restore-from-archive patch) and running those belongs to an explicit
// follow-up request.
func writeConflicts(w http.ResponseWriter, target status.Key, res status.Result) {
	resp := applyResponse{Status: target}

	for _, c := range res.Conflicts {
		cr := conflictResponse{Message: c.Message}

		if c.Solution != nil {
			cr.Solution = &solutionResponse{Message: c.Solution.Message}
		}

		resp.Conflicts = append(resp.Conflicts, cr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
