package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/ruimartins/billow/internal/document"
)

// lifecycleResponse is the metadata slice shared by every document
// payload. Amounts are cents.
type lifecycleResponse struct {
	ID         uuid.UUID  `json:"id"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toLifecycle(m document.Meta) lifecycleResponse {
	return lifecycleResponse{
		ID:         m.ID,
		ArchivedAt: m.ArchivedAt,
		DeletedAt:  m.DeletedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type invoiceResponse struct {
	lifecycleResponse
	Type     document.Type   `json:"type"`
	ClientID uuid.UUID       `json:"client_id"`
	Client   *clientResponse `json:"client,omitempty"`

	Number   string `json:"number"`
	Status   string `json:"status"`
	Currency string `json:"currency"`

	Amount int64 `json:"amount"`
	PaidIn int64 `json:"paid_in"`

	IssueDate time.Time  `json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	MailedAt  *time.Time `json:"mailed_at,omitempty"`
}

func toInvoiceResponse(inv *document.Invoice) *invoiceResponse {
	resp := &invoiceResponse{
		lifecycleResponse: toLifecycle(inv.Meta),
		Type:              document.TypeInvoice,
		ClientID:          inv.ClientID,
		Number:            inv.Number,
		Status:            inv.Status,
		Currency:          inv.Currency,
		Amount:            inv.Amount.Get(),
		PaidIn:            inv.PaidIn.Get(),
		IssueDate:         inv.IssueDate,
		DueDate:           inv.DueDate,
		MailedAt:          inv.MailedAt,
	}

	if inv.Client != nil {
		resp.Client = toClientResponse(inv.Client)
	}

	return resp
}

type quoteResponse struct {
	lifecycleResponse
	Type     document.Type   `json:"type"`
	ClientID uuid.UUID       `json:"client_id"`
	Client   *clientResponse `json:"client,omitempty"`

	Number   string `json:"number"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`

	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	MailedAt   *time.Time `json:"mailed_at,omitempty"`
}

func toQuoteResponse(q *document.Quote) *quoteResponse {
	resp := &quoteResponse{
		lifecycleResponse: toLifecycle(q.Meta),
		Type:              document.TypeQuote,
		ClientID:          q.ClientID,
		Number:            q.Number,
		Status:            q.Status,
		Currency:          q.Currency,
		Amount:            q.Amount.Get(),
		IssueDate:         q.IssueDate,
		ExpiryDate:        q.ExpiryDate,
		MailedAt:          q.MailedAt,
	}

	if q.Client != nil {
		resp.Client = toClientResponse(q.Client)
	}

	return resp
}

type paymentResponse struct {
	lifecycleResponse
	Type      document.Type `json:"type"`
	ClientID  uuid.UUID     `json:"client_id"`
	InvoiceID *uuid.UUID    `json:"invoice_id,omitempty"`

	Amount   int64  `json:"amount"`
	Refunded int64  `json:"refunded"`
	Currency string `json:"currency"`

	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method,omitempty"`
	Reference   string    `json:"reference,omitempty"`
}

func toPaymentResponse(p *document.Payment) *paymentResponse {
	return &paymentResponse{
		lifecycleResponse: toLifecycle(p.Meta),
		Type:              document.TypePayment,
		ClientID:          p.ClientID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount.Get(),
		Refunded:          p.Refunded.Get(),
		Currency:          p.Currency,
		PaymentDate:       p.PaymentDate,
		Method:            p.Method,
		Reference:         p.Reference,
	}
}

type recurringInvoiceResponse struct {
	lifecycleResponse
	Type     document.Type `json:"type"`
	ClientID uuid.UUID     `json:"client_id"`

	Status   string `json:"status"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`

	StartDate time.Time `json:"start_date"`
	Frequency string    `json:"frequency"`

	LastInvoice *invoiceResponse `json:"last_invoice,omitempty"`
}

func toRecurringInvoiceResponse(ri *document.RecurringInvoice) *recurringInvoiceResponse {
	resp := &recurringInvoiceResponse{
		lifecycleResponse: toLifecycle(ri.Meta),
		Type:              document.TypeRecurringInvoice,
		ClientID:          ri.ClientID,
		Status:            ri.Status,
		Currency:          ri.Currency,
		Amount:            ri.Amount.Get(),
		StartDate:         ri.StartDate,
		Frequency:         ri.Frequency,
	}

	if ri.LastInvoice != nil {
		resp.LastInvoice = toInvoiceResponse(ri.LastInvoice)
	}

	return resp
}

type expenseResponse struct {
	lifecycleResponse
	Type     document.Type `json:"type"`
	ClientID *uuid.UUID    `json:"client_id,omitempty"`
	VendorID *uuid.UUID    `json:"vendor_id,omitempty"`

	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`

	Category    string    `json:"category,omitempty"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expense_date"`

	Invoice *invoiceResponse `json:"invoice,omitempty"`
}

func toExpenseResponse(exp *document.Expense) *expenseResponse {
	resp := &expenseResponse{
		lifecycleResponse: toLifecycle(exp.Meta),
		Type:              document.TypeExpense,
		ClientID:          exp.ClientID,
		VendorID:          exp.VendorID,
		Amount:            exp.Amount.Get(),
		Currency:          exp.Currency,
		Category:          exp.Category,
		Description:       exp.Description,
		ExpenseDate:       exp.ExpenseDate,
	}

	if exp.Invoice != nil {
		resp.Invoice = toInvoiceResponse(exp.Invoice)
	}

	return resp
}

type clientResponse struct {
	lifecycleResponse
	Type document.Type `json:"type"`

	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Currency string `json:"currency"`

	VATNumber string  `json:"vat_number,omitempty"`
	VATStatus *string `json:"vat_status,omitempty"`
}

func toClientResponse(c *document.Client) *clientResponse {
	return &clientResponse{
		lifecycleResponse: toLifecycle(c.Meta),
		Type:              document.TypeClient,
		Name:              c.Name,
		Email:             c.Email,
		Currency:          c.Currency,
		VATNumber:         c.VATNumber,
		VATStatus:         c.VATStatus,
	}
}

type productResponse struct {
	lifecycleResponse
	Type document.Type `json:"type"`

	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	Qty      *int64 `json:"qty,omitempty"`
}

func toProductResponse(p *document.Product) *productResponse {
	return &productResponse{
		lifecycleResponse: toLifecycle(p.Meta),
		Type:              document.TypeProduct,
		Name:              p.Name,
		Price:             p.Price.Get(),
		Currency:          p.Currency,
		Qty:               p.Qty,
	}
}

// toResponse picks the payload shape for the concrete document type.
func toResponse(doc document.Document) any {
	switch d := doc.(type) {
	case *document.Invoice:
		return toInvoiceResponse(d)
	case *document.Quote:
		return toQuoteResponse(d)
	case *document.Payment:
		return toPaymentResponse(d)
	case *document.RecurringInvoice:
		return toRecurringInvoiceResponse(d)
	case *document.Expense:
		return toExpenseResponse(d)
	case *document.Client:
		return toClientResponse(d)
	case *document.Product:
		return toProductResponse(d)
	default:
		return toLifecycle(*doc.Lifecycle())
	}
}

func toResponseList(docs []document.Document) []any {
	resp := make([]any, len(docs))
	for i, doc := range docs {
		resp[i] = toResponse(doc)
	}

	return resp
}
