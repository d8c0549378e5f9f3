package status

import (
	"context"

	"github.com/ruimartins/billow/internal/document"
)

func quoteStatuses() map[Key]*Descriptor {
	patch := func(target Key) func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
		return func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
			q := doc.(*document.Quote)
			q.Status = string(target)
			return nil, e.actions.Patch(ctx, q, document.Patch{"status": string(target)})
		}
	}

	genericOnly := func(e *Engine, doc document.Document, target Key) []Conflict {
		return e.checkGenericConflicts(doc, target)
	}

	return map[Key]*Descriptor{
		Draft: {
			Key:      Draft,
			NameKey:  "status.draft",
			Priority: 10,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Quote).Status == string(Draft)
			},

			conflicts: genericOnly,
			effect:    patch(Draft),
		},

		// Pending: queued to be sent. Conflicts with a quote that has
		// already been mailed.
		Pending: {
			Key:      Pending,
			NameKey:  "status.pending",
			Priority: 1,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Quote).Status == string(Pending)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				q := doc.(*document.Quote)

				conflicts := e.checkGenericConflicts(q, target)
				conflicts = append(conflicts, e.checkQuoteMailingConflicts(q, target)...)

				return conflicts
			},

			effect: patch(Pending),
		},

		Sent: {
			Key:      Sent,
			NameKey:  "status.sent",
			Priority: 2,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Quote).Status == string(Sent)
			},

			conflicts: genericOnly,
			effect:    patch(Sent),
		},

		Viewed: {
			Key:      Viewed,
			NameKey:  "status.viewed",
			Priority: 3,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Quote).Status == string(Viewed)
			},

			conflicts: genericOnly,
			effect:    patch(Viewed),
		},

		Approved: {
			Key:      Approved,
			NameKey:  "status.approved",
			Priority: 3,
			Visible:  true,

			meets: func(doc document.Document) bool {
				return doc.(*document.Quote).Status == string(Approved)
			},

			conflicts: genericOnly,
			effect:    patch(Approved),
		},
	}
}

// checkQuoteMailingConflicts mirrors the invoice mailing rule, without
// the payment concerns.
func (e *Engine) checkQuoteMailingConflicts(q *document.Quote, target Key) []Conflict {
	if q.MailedAt == nil || target != Pending {
		return nil
	}

	return []Conflict{{
		Message: e.tr.T("text.quote_already_mailed_cannot_be_x", e.label(target)),
	}}
}
