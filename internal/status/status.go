// Package status derives document statuses from document data and
// mediates status transitions. Statuses are not stored truths: each one
// is a predicate over the current snapshot, and applying a status first
// checks the transition against generic and per-family conflict rules.
package status

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/i18n"
)

// Key names a status within a document family.
type Key string

const (
	Active   Key = "active"
	Archived Key = "archived"
	Deleted  Key = "deleted"

	Draft   Key = "draft"
	Pending Key = "pending"
	Sent    Key = "sent"
	Viewed  Key = "viewed"
	Partial Key = "partial"
	Overdue Key = "overdue"
	Paid    Key = "paid"
	Unpaid  Key = "unpaid"

	Completed Key = "completed"
	Refunded  Key = "refunded"

	Approved Key = "approved"

	Logged   Key = "logged"
	Invoiced Key = "invoiced"

	VATVerified Key = "vat_verified"
	VATPending  Key = "vat_pending"
	VATInvalid  Key = "vat_invalid"

	InStock    Key = "in_stock"
	OutOfStock Key = "out_of_stock"
	IsAService Key = "is_a_service"
)

// Generic is the pseudo document type owning the overlay statuses
// (active, archived, deleted) that apply to every document family.
const Generic document.Type = "generic"

// Descriptor is an immutable registry entry for one status of one
// document family.
type Descriptor struct {
	Key     Key
	NameKey string // i18n key for the display name; empty for internal-only statuses
	// Priority ranks visible statuses for primary-status selection;
	// lower wins.
	Priority int
	Visible  bool
	Generic  bool

	meets     func(doc document.Document) bool
	canApply  func(doc document.Document) bool
	conflicts func(e *Engine, doc document.Document, target Key) []Conflict
	effect    func(ctx context.Context, e *Engine, doc document.Document) (*Solution, error)
}

// MeetsCondition reports whether the status currently holds for the
// document. Pure and total; never mutates the document.
func (d *Descriptor) MeetsCondition(doc document.Document) bool {
	return d.meets(doc)
}

// Applicable reports whether the status is reachable as a transition
// target at all.
func (d *Descriptor) Applicable() bool {
	return d.conflicts != nil || d.effect != nil
}

// CanBeApplied reports whether the transition makes sense for this
// particular document; it defaults to Applicable when the descriptor
// defines no extra gate.
func (d *Descriptor) CanBeApplied(doc document.Document) bool {
	if d.canApply != nil {
		return d.canApply(doc)
	}
	return d.Applicable()
}

// registry maps (document type, status key) to its descriptor. It is
// assembled once here and never mutated afterwards. Predicates that
// reference sibling statuses resolve them through the registry at call
// time, so declaration order is unconstrained.
var registry map[document.Type]map[Key]*Descriptor

func init() {
	registry = map[document.Type]map[Key]*Descriptor{
		Generic:                       genericStatuses(),
		document.TypeInvoice:          invoiceStatuses(),
		document.TypeQuote:            quoteStatuses(),
		document.TypePayment:          paymentStatuses(),
		document.TypeRecurringInvoice: recurringInvoiceStatuses(),
		document.TypeExpense:          expenseStatuses(),
		document.TypeClient:           clientStatuses(),
		document.TypeProduct:          productStatuses(),
		document.TypeCredit:           {},
		document.TypeVendor:           {},
	}
}

// lookup resolves a descriptor. An unknown type or key is caller
// misuse, not a runtime condition; it panics.
func lookup(t document.Type, k Key) *Descriptor {
	family, ok := registry[t]
	if !ok {
		panic(fmt.Sprintf("status: unknown document type %q", t))
	}

	d, ok := family[k]
	if !ok {
		panic(fmt.Sprintf("status: unknown status %q for document type %q", k, t))
	}

	return d
}

func meets(t document.Type, k Key, doc document.Document) bool {
	return lookup(t, k).meets(doc)
}

// Is reports whether any of the given statuses holds for the document.
func Is(t document.Type, doc document.Document, keys ...Key) bool {
	for _, k := range keys {
		if meets(t, k, doc) {
			return true
		}
	}
	return false
}

// IsNot reports whether none of the given statuses holds. It is the
// exact complement of Is for the same arguments.
func IsNot(t document.Type, doc document.Document, keys ...Key) bool {
	return !Is(t, doc, keys...)
}

// Known reports whether the family defines the status. Callers
// validating external input check this before Describe or Apply, which
// treat unknown lookups as programmer error.
func Known(t document.Type, k Key) bool {
	family, ok := registry[t]
	if !ok {
		return false
	}

	_, ok = family[k]

	return ok
}

// Describe returns the descriptor for introspection (name, priority,
// visibility). Panics on unknown type or key.
func Describe(t document.Type, k Key) *Descriptor {
	return lookup(t, k)
}

// All returns the family's descriptors ordered by priority, then key.
func All(t document.Type) []*Descriptor {
	family, ok := registry[t]
	if !ok {
		panic(fmt.Sprintf("status: unknown document type %q", t))
	}

	out := make([]*Descriptor, 0, len(family))
	for _, d := range family {
		out = append(out, d)
	}

	slices.SortFunc(out, func(a, b *Descriptor) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		return strings.Compare(string(a.Key), string(b.Key))
	})

	return out
}

// Primary selects the status to display for the document: the deleted
// or archived overlay when one is active, otherwise the visible family
// status with the lowest priority whose condition holds.
func Primary(t document.Type, doc document.Document) (*Descriptor, bool) {
	for _, k := range []Key{Deleted, Archived} {
		if d := lookup(Generic, k); d.meets(doc) {
			return d, true
		}
	}

	for _, d := range All(t) {
		if d.Visible && d.meets(doc) {
			return d, true
		}
	}

	return nil, false
}

// Engine evaluates transitions. It holds the document-action
// collaborator used by solve closures and the translator that renders
// status names and conflict messages.
type Engine struct {
	actions document.Actions
	tr      *i18n.Translator
}

func NewEngine(actions document.Actions, tr *i18n.Translator) *Engine {
	if tr == nil {
		tr = i18n.New("")
	}

	return &Engine{actions: actions, tr: tr}
}

// Is and IsNot are re-exposed on the engine so callers holding one do
// not need the package functions as well.
func (e *Engine) Is(t document.Type, doc document.Document, keys ...Key) bool {
	return Is(t, doc, keys...)
}

func (e *Engine) IsNot(t document.Type, doc document.Document, keys ...Key) bool {
	return IsNot(t, doc, keys...)
}

// Name resolves a descriptor's display name; internal-only statuses
// have none.
func (e *Engine) Name(d *Descriptor) string {
	if d.NameKey == "" {
		return ""
	}
	return e.tr.T(d.NameKey)
}

// label renders a status key for use inside conflict messages.
func (e *Engine) label(k Key) string {
	return e.tr.T("status." + string(k))
}

// Apply evaluates the transition of doc to the target status. All
// conflict detection happens here, synchronously; the returned result
// carries either the pending side effect or the conflicts that block
// it. Nothing is mutated or persisted until Solve is called.
func (e *Engine) Apply(t document.Type, doc document.Document, target Key) Result {
	return e.ApplyAs(t, doc, target, target)
}

// ApplyAs is Apply with a distinct intended status: detectors word
// their conflicts against intent, while target is what actually gets
// applied. Apply passes the same key for both.
func (e *Engine) ApplyAs(t document.Type, doc document.Document, target, intent Key) Result {
	d := lookup(t, target)
	if !d.Applicable() {
		panic(fmt.Sprintf("status: %s.%s cannot be applied", t, target))
	}

	var conflicts []Conflict
	if d.conflicts != nil {
		conflicts = d.conflicts(e, doc, intent)
	}

	if len(conflicts) > 0 {
		return Result{Conflicts: conflicts}
	}

	return Result{
		solve: func(ctx context.Context) (*Solution, error) {
			// Re-applying a status that already holds is a no-op:
			// no mutation, no persistence, no suggestion.
			if d.meets(doc) {
				return nil, nil
			}
			if d.effect == nil {
				return nil, nil
			}
			return d.effect(ctx, e, doc)
		},
	}
}
