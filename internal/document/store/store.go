package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ruimartins/billow/internal/document"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

var tables = map[document.Type]string{
	document.TypeInvoice:          "invoices",
	document.TypeQuote:            "quotes",
	document.TypePayment:          "payments",
	document.TypeRecurringInvoice: "recurring_invoices",
	document.TypeExpense:          "expenses",
	document.TypeClient:           "clients",
	document.TypeProduct:          "products",
}

func tableFor(typ document.Type) (string, error) {
	table, ok := tables[typ]
	if !ok {
		return "", fmt.Errorf("no table for document type %q", typ)
	}

	return table, nil
}

// patchColumns is the set of columns a generic patch may touch. Anything
// else in the patch map is rejected before it reaches the query.
var patchColumns = map[string]struct{}{
	"status":      {},
	"due_date":    {},
	"mailed_at":   {},
	"archived_at": {},
	"vat_status":  {},
}

func (s *Store) ArchiveDocument(ctx context.Context, typ document.Type, id uuid.UUID) error {
	table, err := tableFor(typ)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET archived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, table)

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("archiving %s: %w", typ, err)
	}

	return nil
}

func (s *Store) DeleteDocument(ctx context.Context, typ document.Type, id uuid.UUID) error {
	table, err := tableFor(typ)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, table)

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting %s: %w", typ, err)
	}

	return nil
}

func (s *Store) RestoreDocument(ctx context.Context, typ document.Type, id uuid.UUID) error {
	table, err := tableFor(typ)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET archived_at = NULL, deleted_at = NULL, updated_at = NOW()
		WHERE id = $1
	`, table)

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("restoring %s: %w", typ, err)
	}

	return nil
}

func (s *Store) PatchDocument(ctx context.Context, typ document.Type, id uuid.UUID, patch document.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	table, err := tableFor(typ)
	if err != nil {
		return err
	}

	// Deterministic column order keeps the query stable for a given patch.
	cols := make([]string, 0, len(patch))
	for col := range patch {
		if _, ok := patchColumns[col]; !ok {
			return fmt.Errorf("patching %s: column %q is not patchable", typ, col)
		}

		cols = append(cols, col)
	}
	sort.Strings(cols)

	query := fmt.Sprintf("UPDATE %s SET updated_at = NOW()", table)

	var args []any

	for i, col := range cols {
		query += fmt.Sprintf(", %s = $%d", col, i+1)
		args = append(args, patch[col])
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", len(cols)+1)
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("patching %s: %w", typ, err)
	}

	return nil
}

// filterClause renders a ListFilter into SQL conditions on the aliased
// table. dateColumn is the business date the range filter applies to.
func filterClause(alias, dateColumn string, filter document.ListFilter, args *[]any) string {
	clause := ""

	if !filter.IncludeDeleted {
		clause += fmt.Sprintf(" AND %s.deleted_at IS NULL", alias)
	}

	if !filter.IncludeArchived {
		clause += fmt.Sprintf(" AND %s.archived_at IS NULL", alias)
	}

	if filter.StartDate != nil {
		*args = append(*args, *filter.StartDate)
		clause += fmt.Sprintf(" AND %s.%s >= $%d", alias, dateColumn, len(*args))
	}

	if filter.EndDate != nil {
		*args = append(*args, *filter.EndDate)
		clause += fmt.Sprintf(" AND %s.%s <= $%d", alias, dateColumn, len(*args))
	}

	return clause
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func strPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

// paidInExpr computes how much of an invoice is covered by payments,
// net of refunds. The status engine derives paid/partial from this.
func paidInExpr(alias string) string {
	return fmt.Sprintf(`COALESCE((
		SELECT SUM(p.amount - p.refunded)
		FROM payments p
		WHERE p.invoice_id = %s.id AND p.deleted_at IS NULL
	), 0)`, alias)
}

func invoiceColumns(alias string) string {
	return fmt.Sprintf(`
		%[1]s.id, %[1]s.client_id, %[1]s.number, %[1]s.status, %[1]s.currency, %[1]s.amount,
		`+paidInExpr(alias)+` AS paid_in,
		%[1]s.issue_date, %[1]s.due_date, %[1]s.mailed_at,
		%[1]s.archived_at, %[1]s.deleted_at, %[1]s.created_at, %[1]s.updated_at
	`, alias)
}

const clientJoinColumns = `c.name, c.email, c.currency, c.vat_number, c.vat_status`

// scanInvoice reads an invoice row followed by its joined client columns.
func scanInvoice(s scanner) (*document.Invoice, error) {
	var inv document.Invoice

	var dueDate, mailedAt, archivedAt, deletedAt, updatedAt sql.NullTime

	var cName, cEmail, cCurrency, cVATNumber, cVATStatus sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.ClientID, &inv.Number, &inv.Status, &inv.Currency, &inv.Amount,
		&inv.PaidIn,
		&inv.IssueDate, &dueDate, &mailedAt,
		&archivedAt, &deletedAt, &inv.CreatedAt, &updatedAt,
		&cName, &cEmail, &cCurrency, &cVATNumber, &cVATStatus,
	); err != nil {
		return nil, err
	}

	inv.DueDate = timePtr(dueDate)
	inv.MailedAt = timePtr(mailedAt)
	inv.ArchivedAt = timePtr(archivedAt)
	inv.DeletedAt = timePtr(deletedAt)
	inv.UpdatedAt = timePtr(updatedAt)

	if cName.Valid {
		inv.Client = &document.Client{
			Meta:      document.Meta{ID: inv.ClientID},
			Name:      cName.String,
			Email:     cEmail.String,
			Currency:  cCurrency.String,
			VATNumber: cVATNumber.String,
			VATStatus: strPtr(cVATStatus),
		}
	}

	return &inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter document.ListFilter) ([]*document.Invoice, error) {
	var args []any

	query := `SELECT ` + invoiceColumns("i") + `, ` + clientJoinColumns + `
		FROM invoices i
		LEFT JOIN clients c ON i.client_id = c.id
		WHERE TRUE` + filterClause("i", "issue_date", filter, &args) + `
		ORDER BY i.issue_date DESC, i.number DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*document.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// GetInvoice loads an invoice regardless of archive or delete state, so
// callers can still inspect and report on shelved documents.
func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*document.Invoice, error) {
	query := `SELECT ` + invoiceColumns("i") + `, ` + clientJoinColumns + `
		FROM invoices i
		LEFT JOIN clients c ON i.client_id = c.id
		WHERE i.id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func quoteColumns(alias string) string {
	return fmt.Sprintf(`
		%[1]s.id, %[1]s.client_id, %[1]s.number, %[1]s.status, %[1]s.currency, %[1]s.amount,
		%[1]s.issue_date, %[1]s.expiry_date, %[1]s.mailed_at,
		%[1]s.archived_at, %[1]s.deleted_at, %[1]s.created_at, %[1]s.updated_at
	`, alias)
}

func scanQuote(s scanner) (*document.Quote, error) {
	var q document.Quote

	var expiryDate, mailedAt, archivedAt, deletedAt, updatedAt sql.NullTime

	var cName, cEmail, cCurrency, cVATNumber, cVATStatus sql.NullString

	if err := s.Scan(
		&q.ID, &q.ClientID, &q.Number, &q.Status, &q.Currency, &q.Amount,
		&q.IssueDate, &expiryDate, &mailedAt,
		&archivedAt, &deletedAt, &q.CreatedAt, &updatedAt,
		&cName, &cEmail, &cCurrency, &cVATNumber, &cVATStatus,
	); err != nil {
		return nil, err
	}

	q.ExpiryDate = timePtr(expiryDate)
	q.MailedAt = timePtr(mailedAt)
	q.ArchivedAt = timePtr(archivedAt)
	q.DeletedAt = timePtr(deletedAt)
	q.UpdatedAt = timePtr(updatedAt)

	if cName.Valid {
		q.Client = &document.Client{
			Meta:      document.Meta{ID: q.ClientID},
			Name:      cName.String,
			Email:     cEmail.String,
			Currency:  cCurrency.String,
			VATNumber: cVATNumber.String,
			VATStatus: strPtr(cVATStatus),
		}
	}

	return &q, nil
}

func (s *Store) ListQuotes(ctx context.Context, filter document.ListFilter) ([]*document.Quote, error) {
	var args []any

	query := `SELECT ` + quoteColumns("q") + `, ` + clientJoinColumns + `
		FROM quotes q
		LEFT JOIN clients c ON q.client_id = c.id
		WHERE TRUE` + filterClause("q", "issue_date", filter, &args) + `
		ORDER BY q.issue_date DESC, q.number DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*document.Quote

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

func (s *Store) GetQuote(ctx context.Context, id uuid.UUID) (*document.Quote, error) {
	query := `SELECT ` + quoteColumns("q") + `, ` + clientJoinColumns + `
		FROM quotes q
		LEFT JOIN clients c ON q.client_id = c.id
		WHERE q.id = $1`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

const selectPaymentColumns = `
	p.id, p.client_id, p.invoice_id, p.amount, p.refunded, p.currency,
	p.payment_date, p.method, p.reference,
	p.archived_at, p.deleted_at, p.created_at, p.updated_at
`

func scanPayment(s scanner) (*document.Payment, error) {
	var p document.Payment

	var archivedAt, deletedAt, updatedAt sql.NullTime

	var method, reference sql.NullString

	if err := s.Scan(
		&p.ID, &p.ClientID, &p.InvoiceID, &p.Amount, &p.Refunded, &p.Currency,
		&p.PaymentDate, &method, &reference,
		&archivedAt, &deletedAt, &p.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	p.Method = method.String
	p.Reference = reference.String
	p.ArchivedAt = timePtr(archivedAt)
	p.DeletedAt = timePtr(deletedAt)
	p.UpdatedAt = timePtr(updatedAt)

	return &p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter document.ListFilter) ([]*document.Payment, error) {
	var args []any

	query := `SELECT ` + selectPaymentColumns + `
		FROM payments p
		WHERE TRUE` + filterClause("p", "payment_date", filter, &args) + `
		ORDER BY p.payment_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*document.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*document.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM payments p
		WHERE p.id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

// linkedInvoice collects the nullable columns of a LEFT JOINed invoice,
// as hung off recurring invoices and expenses.
type linkedInvoice struct {
	id        *uuid.UUID
	clientID  *uuid.UUID
	number    sql.NullString
	status    sql.NullString
	currency  sql.NullString
	amount    sql.NullInt64
	paidIn    sql.NullInt64
	issueDate sql.NullTime
	dueDate   sql.NullTime
	mailedAt  sql.NullTime

	archivedAt sql.NullTime
	deletedAt  sql.NullTime
	createdAt  sql.NullTime
	updatedAt  sql.NullTime
}

func linkedInvoiceColumns(alias string) string {
	return fmt.Sprintf(`
		%[1]s.id, %[1]s.client_id, %[1]s.number, %[1]s.status, %[1]s.currency, %[1]s.amount,
		`+paidInExpr(alias)+` AS linked_paid_in,
		%[1]s.issue_date, %[1]s.due_date, %[1]s.mailed_at,
		%[1]s.archived_at, %[1]s.deleted_at, %[1]s.created_at, %[1]s.updated_at
	`, alias)
}

func (li *linkedInvoice) dest() []any {
	return []any{
		&li.id, &li.clientID, &li.number, &li.status, &li.currency, &li.amount,
		&li.paidIn,
		&li.issueDate, &li.dueDate, &li.mailedAt,
		&li.archivedAt, &li.deletedAt, &li.createdAt, &li.updatedAt,
	}
}

func (li *linkedInvoice) invoice() *document.Invoice {
	if li.id == nil {
		return nil
	}

	inv := &document.Invoice{
		Meta: document.Meta{
			ID:         *li.id,
			ArchivedAt: timePtr(li.archivedAt),
			DeletedAt:  timePtr(li.deletedAt),
			CreatedAt:  li.createdAt.Time,
			UpdatedAt:  timePtr(li.updatedAt),
		},
		Number:    li.number.String,
		Status:    li.status.String,
		Currency:  li.currency.String,
		Amount:    document.Cents(li.amount.Int64),
		PaidIn:    document.Cents(li.paidIn.Int64),
		IssueDate: li.issueDate.Time,
		DueDate:   timePtr(li.dueDate),
		MailedAt:  timePtr(li.mailedAt),
	}

	if li.clientID != nil {
		inv.ClientID = *li.clientID
	}

	return inv
}

func recurringInvoiceColumns(alias string) string {
	return fmt.Sprintf(`
		%[1]s.id, %[1]s.client_id, %[1]s.status, %[1]s.currency, %[1]s.amount,
		%[1]s.start_date, %[1]s.frequency,
		%[1]s.archived_at, %[1]s.deleted_at, %[1]s.created_at, %[1]s.updated_at
	`, alias)
}

func scanRecurringInvoice(s scanner) (*document.RecurringInvoice, error) {
	var ri document.RecurringInvoice

	var archivedAt, deletedAt, updatedAt sql.NullTime

	var li linkedInvoice

	dest := []any{
		&ri.ID, &ri.ClientID, &ri.Status, &ri.Currency, &ri.Amount,
		&ri.StartDate, &ri.Frequency,
		&archivedAt, &deletedAt, &ri.CreatedAt, &updatedAt,
	}
	dest = append(dest, li.dest()...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	ri.ArchivedAt = timePtr(archivedAt)
	ri.DeletedAt = timePtr(deletedAt)
	ri.UpdatedAt = timePtr(updatedAt)
	ri.LastInvoice = li.invoice()

	return &ri, nil
}

func (s *Store) ListRecurringInvoices(ctx context.Context, filter document.ListFilter) ([]*document.RecurringInvoice, error) {
	var args []any

	query := `SELECT ` + recurringInvoiceColumns("r") + `, ` + linkedInvoiceColumns("li") + `
		FROM recurring_invoices r
		LEFT JOIN invoices li ON r.last_invoice_id = li.id
		WHERE TRUE` + filterClause("r", "start_date", filter, &args) + `
		ORDER BY r.start_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring invoices: %w", err)
	}
	defer rows.Close()

	var ris []*document.RecurringInvoice

	for rows.Next() {
		ri, err := scanRecurringInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring invoice: %w", err)
		}

		ris = append(ris, ri)
	}

	return ris, rows.Err()
}

func (s *Store) GetRecurringInvoice(ctx context.Context, id uuid.UUID) (*document.RecurringInvoice, error) {
	query := `SELECT ` + recurringInvoiceColumns("r") + `, ` + linkedInvoiceColumns("li") + `
		FROM recurring_invoices r
		LEFT JOIN invoices li ON r.last_invoice_id = li.id
		WHERE r.id = $1`

	ri, err := scanRecurringInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring invoice: %w", err)
	}

	return ri, nil
}

func expenseColumns(alias string) string {
	return fmt.Sprintf(`
		%[1]s.id, %[1]s.client_id, %[1]s.vendor_id, %[1]s.amount, %[1]s.currency,
		%[1]s.category, %[1]s.description, %[1]s.expense_date,
		%[1]s.archived_at, %[1]s.deleted_at, %[1]s.created_at, %[1]s.updated_at
	`, alias)
}

func scanExpense(s scanner) (*document.Expense, error) {
	var exp document.Expense

	var archivedAt, deletedAt, updatedAt sql.NullTime

	var category, description sql.NullString

	var li linkedInvoice

	dest := []any{
		&exp.ID, &exp.ClientID, &exp.VendorID, &exp.Amount, &exp.Currency,
		&category, &description, &exp.ExpenseDate,
		&archivedAt, &deletedAt, &exp.CreatedAt, &updatedAt,
	}
	dest = append(dest, li.dest()...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	exp.Category = category.String
	exp.Description = description.String
	exp.ArchivedAt = timePtr(archivedAt)
	exp.DeletedAt = timePtr(deletedAt)
	exp.UpdatedAt = timePtr(updatedAt)
	exp.Invoice = li.invoice()

	return &exp, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter document.ListFilter) ([]*document.Expense, error) {
	var args []any

	query := `SELECT ` + expenseColumns("e") + `, ` + linkedInvoiceColumns("li") + `
		FROM expenses e
		LEFT JOIN invoices li ON e.invoice_id = li.id
		WHERE TRUE` + filterClause("e", "expense_date", filter, &args) + `
		ORDER BY e.expense_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*document.Expense

	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*document.Expense, error) {
	query := `SELECT ` + expenseColumns("e") + `, ` + linkedInvoiceColumns("li") + `
		FROM expenses e
		LEFT JOIN invoices li ON e.invoice_id = li.id
		WHERE e.id = $1`

	exp, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return exp, nil
}

func (s *Store) CreateExpense(ctx context.Context, exp *document.Expense) error {
	query := `
		INSERT INTO expenses (client_id, vendor_id, amount, currency, category, description, expense_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		exp.ClientID,
		exp.VendorID,
		exp.Amount,
		exp.Currency,
		exp.Category,
		exp.Description,
		exp.ExpenseDate,
	).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

const selectClientColumns = `
	c.id, c.name, c.email, c.currency, c.vat_number, c.vat_status,
	c.archived_at, c.deleted_at, c.created_at, c.updated_at
`

func scanClient(s scanner) (*document.Client, error) {
	var c document.Client

	var archivedAt, deletedAt, updatedAt sql.NullTime

	var email, vatNumber, vatStatus sql.NullString

	if err := s.Scan(
		&c.ID, &c.Name, &email, &c.Currency, &vatNumber, &vatStatus,
		&archivedAt, &deletedAt, &c.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	c.Email = email.String
	c.VATNumber = vatNumber.String
	c.VATStatus = strPtr(vatStatus)
	c.ArchivedAt = timePtr(archivedAt)
	c.DeletedAt = timePtr(deletedAt)
	c.UpdatedAt = timePtr(updatedAt)

	return &c, nil
}

func (s *Store) ListClients(ctx context.Context, filter document.ListFilter) ([]*document.Client, error) {
	var args []any

	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE TRUE` + filterClause("c", "created_at", filter, &args) + `
		ORDER BY c.name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*document.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*document.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE c.id = $1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

const selectProductColumns = `
	pr.id, pr.name, pr.price, pr.currency, pr.qty,
	pr.archived_at, pr.deleted_at, pr.created_at, pr.updated_at
`

func scanProduct(s scanner) (*document.Product, error) {
	var p document.Product

	var archivedAt, deletedAt, updatedAt sql.NullTime

	var qty sql.NullInt64

	if err := s.Scan(
		&p.ID, &p.Name, &p.Price, &p.Currency, &qty,
		&archivedAt, &deletedAt, &p.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	if qty.Valid {
		p.Qty = &qty.Int64
	}

	p.ArchivedAt = timePtr(archivedAt)
	p.DeletedAt = timePtr(deletedAt)
	p.UpdatedAt = timePtr(updatedAt)

	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context, filter document.ListFilter) ([]*document.Product, error) {
	var args []any

	query := `SELECT ` + selectProductColumns + `
		FROM products pr
		WHERE TRUE` + filterClause("pr", "created_at", filter, &args) + `
		ORDER BY pr.name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*document.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*document.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products pr
		WHERE pr.id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}
