package status

import (
	"context"

	"github.com/ruimartins/billow/internal/document"
)

// Payment statuses are mutually exclusive by construction: completed is
// defined as the absence of a refund.
func paymentStatuses() map[Key]*Descriptor {
	return map[Key]*Descriptor{
		Completed: {
			Key:     Completed,
			NameKey: "status.completed",
			Visible: true,

			meets: func(doc document.Document) bool {
				return !meets(document.TypePayment, Refunded, doc)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				p := doc.(*document.Payment)

				conflicts := e.checkGenericConflicts(p, target)
				conflicts = append(conflicts, e.checkRefundedPaymentConflict(p, target)...)

				return conflicts
			},

			// Nothing to execute: a payment with no refund already is
			// completed.
		},

		Refunded: {
			Key:     Refunded,
			NameKey: "status.refunded",
			Visible: true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Payment).Refunded.Get() > 0
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				p := doc.(*document.Payment)

				conflicts := e.checkGenericConflicts(p, target)
				conflicts = append(conflicts, e.checkCompletedPaymentConflict(p, target)...)

				return conflicts
			},
		},
	}
}

// checkRefundedPaymentConflict blocks marking a refunded payment as
// completed.
func (e *Engine) checkRefundedPaymentConflict(p *document.Payment, _ Key) []Conflict {
	if !meets(document.TypePayment, Refunded, p) {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.refunded_payment_cannot_be_completed"),
	}}
}

// checkCompletedPaymentConflict blocks marking a completed payment as
// refunded; the way to get there is recording an actual refund.
func (e *Engine) checkCompletedPaymentConflict(p *document.Payment, _ Key) []Conflict {
	if !meets(document.TypePayment, Completed, p) {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.completed_payment_cannot_be_refunded"),
		Solution: &Solution{
			Message: e.tr.T("text.record_a_refund_for_this_payment"),
			Solve: func(ctx context.Context) error {
				return e.actions.Edit(ctx, p, document.FormOptions{TabIndex: 1})
			},
		},
	}}
}
