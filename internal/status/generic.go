package status

import (
	"context"

	"github.com/ruimartins/billow/internal/document"
)

// Generic statuses overlay every document family: active means neither
// archived nor deleted; archived and deleted track the lifecycle
// timestamps. Deleted wins over archived when both are set.
func genericStatuses() map[Key]*Descriptor {
	return map[Key]*Descriptor{
		Active: {
			Key:     Active,
			Generic: true,

			meets: func(doc document.Document) bool {
				return !meets(Generic, Archived, doc) && !meets(Generic, Deleted, doc)
			},
		},

		Archived: {
			Key:      Archived,
			NameKey:  "status.archived",
			Priority: 98,
			Visible:  true,
			Generic:  true,

			meets: func(doc document.Document) bool {
				return doc.Lifecycle().ArchivedAt != nil && !meets(Generic, Deleted, doc)
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				return e.checkGenericConflicts(doc, target)
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				return nil, e.actions.Archive(ctx, doc)
			},
		},

		// Deleted documents keep their related records and can be
		// restored to active again.
		Deleted: {
			Key:      Deleted,
			NameKey:  "status.deleted",
			Priority: 99,
			Visible:  true,
			Generic:  true,

			meets: func(doc document.Document) bool {
				return doc.Lifecycle().DeletedAt != nil
			},

			conflicts: func(e *Engine, doc document.Document, target Key) []Conflict {
				return e.checkGenericConflicts(doc, target)
			},

			effect: func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error) {
				return nil, e.actions.Delete(ctx, doc)
			},
		},
	}
}

// checkGenericConflicts applies the rules shared by every document
// family: a deleted document accepts no status but deleted itself, and
// an archived one conflicts with any non-overlay target until it is
// restored.
func (e *Engine) checkGenericConflicts(doc document.Document, target Key) []Conflict {
	var conflicts []Conflict

	meta := doc.Lifecycle()

	if meta.DeletedAt != nil && target != Deleted {
		conflicts = append(conflicts, Conflict{
			Message: e.tr.T("text.document_is_deleted"),
		})
	}

	if meta.ArchivedAt != nil && meta.DeletedAt == nil && target != Archived && target != Deleted {
		conflicts = append(conflicts, Conflict{
			Message: e.tr.T("text.document_is_archived"),
			Solution: &Solution{
				Message: e.tr.T("text.restore_document_to_active"),
				Solve: func(ctx context.Context) error {
					meta.ArchivedAt = nil
					return e.actions.Patch(ctx, doc, document.Patch{"archived_at": nil})
				},
			},
		})
	}

	return conflicts
}
