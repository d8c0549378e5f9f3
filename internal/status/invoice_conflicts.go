package status

import (
	"context"

	"github.com/ruimartins/billow/internal/document"
)

// checkExistingPaymentsConflict blocks pre-payment targets on invoices
// that already have money recorded against them.
func (e *Engine) checkExistingPaymentsConflict(inv *document.Invoice, target Key) []Conflict {
	if inv.PaidIn.Get() <= 0 {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.invoice_has_payments_cannot_be_x", e.label(target)),
	}}
}

// checkInvoiceMailingConflicts rejects queueing an invoice that already
// left the system by e-mail.
func (e *Engine) checkInvoiceMailingConflicts(inv *document.Invoice, target Key) []Conflict {
	if inv.MailedAt == nil || target != Pending {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.invoice_already_mailed_cannot_be_x", e.label(target)),
	}}
}

// checkOverdueConflict blocks non-overdue targets while the invoice is
// past its due date and still unpaid. The suggested way out is moving
// the due date forward.
func (e *Engine) checkOverdueConflict(inv *document.Invoice, target Key) []Conflict {
	if !meets(document.TypeInvoice, Overdue, inv) || meets(document.TypeInvoice, Paid, inv) {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.overdue_invoice_cannot_be_x", e.label(target)),
		Solution: &Solution{
			Message: e.tr.T("text.set_due_date_to_date_in_the_future"),
			Solve: func(ctx context.Context) error {
				return e.actions.Edit(ctx, inv, document.FormOptions{TabIndex: 1})
			},
		},
	}}
}

// checkDraftInvoiceConflict blocks targets that make no sense for a
// draft, such as overdue.
func (e *Engine) checkDraftInvoiceConflict(inv *document.Invoice, target Key) []Conflict {
	if !meets(document.TypeInvoice, Draft, inv) {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.draft_invoice_cannot_be_x", e.label(target)),
	}}
}

// checkPaidInvoiceConflicts blocks moving a fully paid invoice back to
// a pre-payment status.
func (e *Engine) checkPaidInvoiceConflicts(inv *document.Invoice, target Key) []Conflict {
	if !meets(document.TypeInvoice, Paid, inv) {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.paid_invoice_cannot_be_x", e.label(target)),
	}}
}
