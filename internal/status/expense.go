package status

import (
	"github.com/ruimartins/billow/internal/document"
)

// Expense statuses are almost entirely transitive: once an expense is
// billed through an invoice, its payment lifecycle is that invoice's.
// With no invoice attached only logged holds.
func expenseStatuses() map[Key]*Descriptor {
	viaInvoice := func(k Key) func(doc document.Document) bool {
		return func(doc document.Document) bool {
			exp := doc.(*document.Expense)
			return exp.Invoice != nil && meets(document.TypeInvoice, k, exp.Invoice)
		}
	}

	return map[Key]*Descriptor{
		Logged: {
			Key:      Logged,
			NameKey:  "status.logged",
			Priority: 1,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Expense).Invoice == nil
			},
		},

		Invoiced: {
			Key:      Invoiced,
			NameKey:  "status.invoiced",
			Priority: 2,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Expense).Invoice != nil
			},
		},

		Pending: {
			Key:      Pending,
			NameKey:  "status.pending",
			Priority: 3,
			Visible:  true,
			meets:    viaInvoice(Pending),
		},

		Sent: {
			Key:      Sent,
			NameKey:  "status.sent",
			Priority: 4,
			Visible:  true,
			meets:    viaInvoice(Sent),
		},

		Viewed: {
			Key:      Viewed,
			NameKey:  "status.viewed",
			Priority: 5,
			Visible:  true,
			meets:    viaInvoice(Viewed),
		},

		Partial: {
			Key:      Partial,
			NameKey:  "status.partial",
			Priority: 6,
			Visible:  true,
			meets:    viaInvoice(Partial),
		},

		Paid: {
			Key:      Paid,
			NameKey:  "status.paid",
			Priority: 7,
			Visible:  true,
			meets:    viaInvoice(Paid),
		},

		Unpaid: {
			Key:   Unpaid,
			meets: viaInvoice(Unpaid),
		},

		Overdue: {
			Key:      Overdue,
			NameKey:  "status.overdue",
			Priority: 8,
			Visible:  true,
			meets:    viaInvoice(Overdue),
		},
	}
}
