package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ruimartins/billow/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/expenses", h.importExpenses)
}

type expenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expense_date"`
}

type duplicateResponse struct {
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type importResponse struct {
	Imported   int                 `json:"imported"`
	Skipped    int                 `json:"skipped"`
	Expenses   []expenseResponse   `json:"expenses"`
	Duplicates []duplicateResponse `json:"duplicates,omitempty"`
}

func (h *Handler) importExpenses(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.importSvc.Import(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{
		Imported: len(result.Created),
		Skipped:  len(result.Duplicates),
		Expenses: make([]expenseResponse, 0, len(result.Created)),
	}

	for _, exp := range result.Created {
		resp.Expenses = append(resp.Expenses, expenseResponse{
			ID:          exp.ID,
			Amount:      exp.Amount.Get(),
			Currency:    exp.Currency,
			Category:    exp.Category,
			Description: exp.Description,
			ExpenseDate: exp.ExpenseDate,
		})
	}

	for _, dup := range result.Duplicates {
		resp.Duplicates = append(resp.Duplicates, duplicateResponse{
			Amount:      dup.Amount,
			Description: dup.Description,
			Date:        dup.Date,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
