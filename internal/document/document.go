package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type identifies a category of business record.
type Type string

const (
	TypeInvoice          Type = "invoice"
	TypeQuote            Type = "quote"
	TypePayment          Type = "payment"
	TypeRecurringInvoice Type = "recurring_invoice"
	TypeExpense          Type = "expense"
	TypeClient           Type = "client"
	TypeProduct          Type = "product"
	TypeCredit           Type = "credit"
	TypeVendor           Type = "vendor"
)

// ParseType validates an incoming document type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeInvoice, TypeQuote, TypePayment, TypeRecurringInvoice,
		TypeExpense, TypeClient, TypeProduct, TypeCredit, TypeVendor:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown document type: %s", s)
	}
}

// Meta carries the lifecycle fields shared by every document type.
// A document is soft-deleted via DeletedAt and shelved via ArchivedAt;
// both nil means the document is active.
type Meta struct {
	ID         uuid.UUID
	ArchivedAt *time.Time
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Lifecycle returns the shared metadata. Embedding Meta is enough to
// satisfy the Document interface's metadata side.
func (m *Meta) Lifecycle() *Meta { return m }

// Document is the read-only view the status engine takes of any record.
// The engine never owns a document; it reads the snapshot it is handed.
type Document interface {
	DocumentType() Type
	Lifecycle() *Meta
}

// Invoice is a billable document issued to a client.
type Invoice struct {
	Meta
	ClientID uuid.UUID
	Client   *Client

	Number   string
	Status   string
	Currency string

	Amount Money
	PaidIn Money

	IssueDate time.Time
	DueDate   *time.Time

	// MailedAt records when the invoice was e-mailed to the client,
	// nil if it never left the system.
	MailedAt *time.Time
}

func (i *Invoice) DocumentType() Type { return TypeInvoice }

// Quote is a price proposal that may later convert into an invoice.
type Quote struct {
	Meta
	ClientID uuid.UUID
	Client   *Client

	Number   string
	Status   string
	Currency string

	Amount Money

	IssueDate  time.Time
	ExpiryDate *time.Time
	MailedAt   *time.Time
}

func (q *Quote) DocumentType() Type { return TypeQuote }

// Payment records money received against an invoice.
type Payment struct {
	Meta
	ClientID  uuid.UUID
	InvoiceID *uuid.UUID

	Amount   Money
	Refunded Money
	Currency string

	PaymentDate time.Time
	Method      string
	Reference   string
}

func (p *Payment) DocumentType() Type { return TypePayment }

// RecurringInvoice periodically generates invoices. Its payment-related
// statuses are derived from the most recently generated invoice.
type RecurringInvoice struct {
	Meta
	ClientID uuid.UUID
	Client   *Client

	Status   string
	Currency string
	Amount   Money

	StartDate time.Time
	Frequency string // e.g. "monthly"

	LastInvoice *Invoice
}

func (r *RecurringInvoice) DocumentType() Type { return TypeRecurringInvoice }

// Expense is a cost entry, optionally billed to a client through an
// invoice. When Invoice is nil the expense has only been logged.
type Expense struct {
	Meta
	ClientID *uuid.UUID
	VendorID *uuid.UUID

	Amount   Money
	Currency string

	Category    string
	Description string
	ExpenseDate time.Time

	Invoice *Invoice
}

func (e *Expense) DocumentType() Type { return TypeExpense }

// Client VAT verification outcomes, as reported by the registry lookup.
const (
	VATVerified = "verified"
	VATInvalid  = "invalid"
)

type Client struct {
	Meta
	Name     string
	Email    string
	Currency string

	VATNumber string
	// VATStatus is nil while verification is still pending.
	VATStatus *string
}

func (c *Client) DocumentType() Type { return TypeClient }

type Product struct {
	Meta
	Name     string
	Price    Money
	Currency string

	// Qty is nil for services, which have no stock to track.
	Qty *int64
}

func (p *Product) DocumentType() Type { return TypeProduct }

// Credit is a prepaid balance a client can apply against invoices.
type Credit struct {
	Meta
	ClientID uuid.UUID

	Amount   Money
	Currency string

	CreditDate   time.Time
	CreditNumber string
}

func (c *Credit) DocumentType() Type { return TypeCredit }

type Vendor struct {
	Meta
	Name  string
	Email string
}

func (v *Vendor) DocumentType() Type { return TypeVendor }
