package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a document does not exist or is outside
// the requested visibility (e.g. soft-deleted).
var ErrNotFound = errors.New("document not found")

// ListFilter narrows a document listing.
type ListFilter struct {
	IncludeArchived bool
	IncludeDeleted  bool
	StartDate       *time.Time
	EndDate         *time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=document
type Repository interface {
	ArchiveDocument(ctx context.Context, typ Type, id uuid.UUID) error
	DeleteDocument(ctx context.Context, typ Type, id uuid.UUID) error
	RestoreDocument(ctx context.Context, typ Type, id uuid.UUID) error
	PatchDocument(ctx context.Context, typ Type, id uuid.UUID, patch Patch) error

	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListQuotes(ctx context.Context, filter ListFilter) ([]*Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*Quote, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListRecurringInvoices(ctx context.Context, filter ListFilter) ([]*RecurringInvoice, error)
	GetRecurringInvoice(ctx context.Context, id uuid.UUID) (*RecurringInvoice, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	CreateExpense(ctx context.Context, exp *Expense) error
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	ListProducts(ctx context.Context, filter ListFilter) ([]*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
}

// Service is the document-action layer. It implements Actions for the
// status engine and exposes typed reads for the API and TUI.
//
// Archive and Delete stamp the in-memory document before asking the
// repository to persist the change. The local write is deliberately not
// rolled back when persistence fails; callers own that policy.
type Service struct {
	repo Repository
	nav  Navigator
}

func NewService(repo Repository, nav Navigator) *Service {
	return &Service{repo: repo, nav: nav}
}

func (s *Service) Archive(ctx context.Context, doc Document) error {
	now := time.Now()
	doc.Lifecycle().ArchivedAt = &now

	return s.repo.ArchiveDocument(ctx, doc.DocumentType(), doc.Lifecycle().ID)
}

func (s *Service) Delete(ctx context.Context, doc Document) error {
	now := time.Now()
	doc.Lifecycle().DeletedAt = &now

	return s.repo.DeleteDocument(ctx, doc.DocumentType(), doc.Lifecycle().ID)
}

func (s *Service) Restore(ctx context.Context, doc Document) error {
	doc.Lifecycle().ArchivedAt = nil
	doc.Lifecycle().DeletedAt = nil

	return s.repo.RestoreDocument(ctx, doc.DocumentType(), doc.Lifecycle().ID)
}

func (s *Service) Patch(ctx context.Context, doc Document, patch Patch) error {
	return s.repo.PatchDocument(ctx, doc.DocumentType(), doc.Lifecycle().ID, patch)
}

func (s *Service) Create(ctx context.Context, typ Type, prefill Prefill, opts FormOptions) error {
	return s.nav.OpenCreateForm(ctx, typ, prefill, opts)
}

func (s *Service) Edit(ctx context.Context, doc Document, opts FormOptions) error {
	return s.nav.OpenEditForm(ctx, doc, opts)
}

// Find fetches a single document of any type.
func (s *Service) Find(ctx context.Context, typ Type, id uuid.UUID) (Document, error) {
	switch typ {
	case TypeInvoice:
		return s.repo.GetInvoice(ctx, id)
	case TypeQuote:
		return s.repo.GetQuote(ctx, id)
	case TypePayment:
		return s.repo.GetPayment(ctx, id)
	case TypeRecurringInvoice:
		return s.repo.GetRecurringInvoice(ctx, id)
	case TypeExpense:
		return s.repo.GetExpense(ctx, id)
	case TypeClient:
		return s.repo.GetClient(ctx, id)
	case TypeProduct:
		return s.repo.GetProduct(ctx, id)
	default:
		return nil, fmt.Errorf("find: unsupported document type %q", typ)
	}
}

// List fetches all documents of a type as the generic interface. Typed
// accessors below are preferred where the caller knows the type.
func (s *Service) List(ctx context.Context, typ Type, filter ListFilter) ([]Document, error) {
	switch typ {
	case TypeInvoice:
		return asDocuments(s.repo.ListInvoices(ctx, filter))
	case TypeQuote:
		return asDocuments(s.repo.ListQuotes(ctx, filter))
	case TypePayment:
		return asDocuments(s.repo.ListPayments(ctx, filter))
	case TypeRecurringInvoice:
		return asDocuments(s.repo.ListRecurringInvoices(ctx, filter))
	case TypeExpense:
		return asDocuments(s.repo.ListExpenses(ctx, filter))
	case TypeClient:
		return asDocuments(s.repo.ListClients(ctx, filter))
	case TypeProduct:
		return asDocuments(s.repo.ListProducts(ctx, filter))
	default:
		return nil, fmt.Errorf("list: unsupported document type %q", typ)
	}
}

func asDocuments[T Document](docs []T, err error) ([]Document, error) {
	if err != nil {
		return nil, err
	}

	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d)
	}

	return out, nil
}

func (s *Service) Invoices(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Expenses(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

func (s *Service) CreateExpense(ctx context.Context, exp *Expense) error {
	return s.repo.CreateExpense(ctx, exp)
}
