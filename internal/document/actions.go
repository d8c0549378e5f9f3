package document

import "context"

// Patch is a set of column-level changes sent to the persistence layer.
type Patch map[string]any

// Prefill seeds a creation form with initial field values.
type Prefill map[string]any

// FormOptions controls how a creation or edit form is opened.
type FormOptions struct {
	// TabIndex selects the form tab to focus initially.
	TabIndex int
}

//go:generate mockgen -source=actions.go -destination=actions_mock.go -package=document

// Actions is the document-action layer the status engine delegates its
// side effects to. Archive, Delete and Patch persist a change; Create
// and Edit request that a form is opened for the user, they do not
// write anything themselves.
type Actions interface {
	Archive(ctx context.Context, doc Document) error
	Delete(ctx context.Context, doc Document) error
	Patch(ctx context.Context, doc Document, patch Patch) error
	Create(ctx context.Context, typ Type, prefill Prefill, opts FormOptions) error
	Edit(ctx context.Context, doc Document, opts FormOptions) error
}

// Navigator opens creation and edit forms. The API serves it with a
// request-scoped recorder, the TUI with real forms.
type Navigator interface {
	OpenCreateForm(ctx context.Context, typ Type, prefill Prefill, opts FormOptions) error
	OpenEditForm(ctx context.Context, doc Document, opts FormOptions) error
}
