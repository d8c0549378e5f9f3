package document

import (
	"context"

	"github.com/google/uuid"
)

// FormCommand describes a form the caller should open. It is how the
// engine's remedial actions surface through a stateless API: instead of
// navigating anywhere, the server records the command and returns it in
// the response body.
type FormCommand struct {
	Action     string    `json:"action"` // "create" or "edit"
	Type       Type      `json:"type"`
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	Prefill    Prefill   `json:"prefill,omitempty"`
	TabIndex   int       `json:"tab_index"`
}

type formSinkKey struct{}

// WithFormSink attaches a slot for a recorded form command to the context.
func WithFormSink(ctx context.Context, sink *FormCommand) context.Context {
	return context.WithValue(ctx, formSinkKey{}, sink)
}

func formSinkFrom(ctx context.Context) *FormCommand {
	sink, _ := ctx.Value(formSinkKey{}).(*FormCommand)
	return sink
}

// ContextNavigator records form-open requests into the sink carried by
// the request context. Requests without a sink are silently dropped;
// there is nowhere to show a form.
type ContextNavigator struct{}

func (ContextNavigator) OpenCreateForm(ctx context.Context, typ Type, prefill Prefill, opts FormOptions) error {
	if sink := formSinkFrom(ctx); sink != nil {
		*sink = FormCommand{Action: "create", Type: typ, Prefill: prefill, TabIndex: opts.TabIndex}
	}
	return nil
}

func (ContextNavigator) OpenEditForm(ctx context.Context, doc Document, opts FormOptions) error {
	if sink := formSinkFrom(ctx); sink != nil {
		*sink = FormCommand{
			Action:     "edit",
			Type:       doc.DocumentType(),
			DocumentID: doc.Lifecycle().ID,
			TabIndex:   opts.TabIndex,
		}
	}
	return nil
}
