package status

import (
	"context"

	"github.com/ruimartins/billow/internal/document"
)

// Recurring invoices derive their payment-related statuses from the
// most recently generated invoice; without one those statuses simply
// never hold.
func recurringInvoiceStatuses() map[Key]*Descriptor {
	patch := func(target Key) func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
		return func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
			ri := doc.(*document.RecurringInvoice)
			ri.Status = string(target)
			return nil, e.actions.Patch(ctx, ri, document.Patch{"status": string(target)})
		}
	}

	return map[Key]*Descriptor{
		Draft: {
			Key:      Draft,
			NameKey:  "status.draft",
			Priority: 10,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.RecurringInvoice).Status == string(Draft)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				return e.checkGenericConflicts(doc, target)
			},

			effect: patch(Draft),
		},

		Active: {
			Key:      Active,
			NameKey:  "status.active",
			Priority: 1,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.RecurringInvoice).Status == string(Active)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				ri := doc.(*document.RecurringInvoice)

				conflicts := e.checkGenericConflicts(ri, target)
				if ri.LastInvoice != nil {
					conflicts = append(conflicts, e.checkOverdueConflict(ri.LastInvoice, target)...)
				}

				return conflicts
			},

			effect: patch(Active),
		},

		Pending: {
			Key:      Pending,
			NameKey:  "status.pending",
			Priority: 2,
			Visible:  true,

			meets: func(doc document.Document) bool {
				ri := doc.(*document.RecurringInvoice)
				return ri.LastInvoice != nil && meets(document.TypeInvoice, Pending, ri.LastInvoice)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				ri := doc.(*document.RecurringInvoice)

				conflicts := e.checkGenericConflicts(ri, target)
				if ri.LastInvoice != nil {
					conflicts = append(conflicts, e.checkOverdueConflict(ri.LastInvoice, target)...)
				}

				return conflicts
			},

			effect: patch(Pending),
		},

		Overdue: {
			Key:      Overdue,
			NameKey:  "status.overdue",
			Priority: 3,
			Visible:  true,

			meets: func(doc document.Document) bool {
				ri := doc.(*document.RecurringInvoice)
				return ri.LastInvoice != nil && meets(document.TypeInvoice, Overdue, ri.LastInvoice)
			},

			canApply: func(doc document.Document) bool {
				return doc.(*document.RecurringInvoice).LastInvoice != nil
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				return e.checkGenericConflicts(doc, target)
			},

			// Overdue cannot be forced onto the schedule itself; the
			// last generated invoice's due date is what has to move.
			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				ri := doc.(*document.RecurringInvoice)
				if ri.LastInvoice == nil {
					return nil, nil
				}

				return &Solution{
					Message: e.tr.T("text.invoice_due_date_needs_to_be_delayed"),
					Solve: func(ctx context.Context) error {
						return e.actions.Edit(ctx, ri.LastInvoice, document.FormOptions{TabIndex: 1})
					},
				}, nil
			},
		},
	}
}
