package status

import (
	"context"
	"time"

	"github.com/ruimartins/billow/internal/document"
)

func invoiceStatuses() map[Key]*Descriptor {
	return map[Key]*Descriptor{
		// Draft: active, but not sent yet.
		Draft: {
			Key:      Draft,
			NameKey:  "status.draft",
			Priority: 10,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return meets(Generic, Active, inv) && inv.Status == string(Draft)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				// Draft invoices shouldn't have any payments.
				conflicts = append(conflicts, e.checkExistingPaymentsConflict(inv, target)...)

				return conflicts
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				inv.Status = string(Draft)
				return nil, e.actions.Patch(ctx, inv, document.Patch{"status": string(Draft)})
			},
		},

		// Pending: queued to be sent.
		Pending: {
			Key:      Pending,
			NameKey:  "status.pending",
			Priority: 1,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return meets(Generic, Active, inv) && inv.Status == string(Pending)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				conflicts = append(conflicts, e.checkInvoiceMailingConflicts(inv, target)...)
				conflicts = append(conflicts, e.checkExistingPaymentsConflict(inv, target)...)
				conflicts = append(conflicts, e.checkPaidInvoiceConflicts(inv, target)...)
				conflicts = append(conflicts, e.checkOverdueConflict(inv, target)...)

				return conflicts
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				inv.Status = string(Pending)
				return nil, e.actions.Patch(ctx, inv, document.Patch{"status": string(Pending)})
			},
		},

		// Sent: marked as sent, without actually mailing anything.
		Sent: {
			Key:      Sent,
			NameKey:  "status.sent",
			Priority: 2,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return meets(Generic, Active, inv) && inv.Status == string(Sent)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				conflicts = append(conflicts, e.checkExistingPaymentsConflict(inv, target)...)
				conflicts = append(conflicts, e.checkOverdueConflict(inv, target)...)

				return conflicts
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				inv.Status = string(Sent)
				return nil, e.actions.Patch(ctx, inv, document.Patch{"status": string(Sent)})
			},
		},

		// Viewed: the client opened the invoice.
		Viewed: {
			Key:      Viewed,
			NameKey:  "status.viewed",
			Priority: 3,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return meets(Generic, Active, inv) && inv.Status == string(Viewed)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				conflicts = append(conflicts, e.checkExistingPaymentsConflict(inv, target)...)
				conflicts = append(conflicts, e.checkOverdueConflict(inv, target)...)

				return conflicts
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				inv.Status = string(Viewed)
				return nil, e.actions.Patch(ctx, inv, document.Patch{"status": string(Viewed)})
			},
		},

		// Partial: has payments, but not fully paid. Derived from money
		// flow, never from the stored status string.
		Partial: {
			Key:      Partial,
			NameKey:  "status.partial",
			Priority: 4,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return inv.PaidIn.Get() > 0 &&
					inv.PaidIn.Get() < inv.Amount.Get() &&
					!meets(document.TypeInvoice, Draft, inv)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				conflicts = append(conflicts, e.checkPaidInvoiceConflicts(inv, target)...)
				conflicts = append(conflicts, e.checkOverdueConflict(inv, target)...)

				return conflicts
			},

			// Partial cannot be forced; the remedial action is to record
			// a payment smaller than the outstanding amount.
			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				remaining := document.Cents(inv.Amount.Get() - inv.PaidIn.Get())

				return &Solution{
					Message: e.tr.T("text.create_a_payment_with_amount_less_than_x", remaining),
					Solve: func(ctx context.Context) error {
						return e.actions.Create(ctx, document.TypePayment, document.Prefill{
							"client_uuid":  inv.ClientID,
							"invoice_uuid": inv.ID,
						}, document.FormOptions{TabIndex: 2})
					},
				}, nil
			},
		},

		// Overdue: the due date is strictly in the past. Payment state
		// is deliberately not part of the predicate; the paid conflict
		// is enforced on apply instead.
		Overdue: {
			Key:      Overdue,
			NameKey:  "status.overdue",
			Priority: 5,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return inv.DueDate != nil && time.Now().After(*inv.DueDate)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				inv := doc.(*document.Invoice)

				conflicts := e.checkGenericConflicts(inv, target)
				conflicts = append(conflicts, e.checkDraftInvoiceConflict(inv, target)...)
				conflicts = append(conflicts, e.checkPaidInvoiceConflicts(inv, target)...)

				return conflicts
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)

				return &Solution{
					Message: e.tr.T("text.set_due_date_to_date_in_the_past"),
					Solve: func(ctx context.Context) error {
						return e.actions.Edit(ctx, inv, document.FormOptions{TabIndex: 1})
					},
				}, nil
			},
		},

		// Paid: fully paid, derived from money flow.
		Paid: {
			Key:      Paid,
			NameKey:  "status.paid",
			Priority: 6,
			Visible:  true,

			meets: func(doc document.Document) bool {
				inv := doc.(*document.Invoice)
				return inv.PaidIn.Get() >= inv.Amount.Get()
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				return e.checkGenericConflicts(doc, target)
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				inv := doc.(*document.Invoice)
				remaining := document.Cents(inv.Amount.Get() - inv.PaidIn.Get())

				return &Solution{
					Message: e.tr.T("text.create_a_payment_of_x_or_more", remaining),
					Solve: func(ctx context.Context) error {
						return e.actions.Create(ctx, document.TypePayment, document.Prefill{
							"client_uuid":   inv.ClientID,
							"invoice_uuid":  inv.ID,
							"amount":        remaining.Get(),
							"currency_code": inv.Currency,
						}, document.FormOptions{TabIndex: 2})
					},
				}, nil
			},
		},

		// Unpaid is internal only; it exists so dependent documents can
		// delegate to it.
		Unpaid: {
			Key: Unpaid,

			meets: func(doc document.Document) bool {
				return !meets(document.TypeInvoice, Paid, doc)
			},
		},
	}
}
