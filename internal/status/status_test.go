package status_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func past(t *testing.T) *time.Time {
	t.Helper()
	d := time.Now().Add(-48 * time.Hour)
	return &d
}

func future(t *testing.T) *time.Time {
	t.Helper()
	d := time.Now().Add(48 * time.Hour)
	return &d
}

func newInvoice(amount, paidIn int64, stat string) *document.Invoice {
	return &document.Invoice{
		Meta:     document.Meta{ID: uuid.New()},
		ClientID: uuid.New(),
		Status:   stat,
		Currency: "EUR",
		Amount:   document.Cents(amount),
		PaidIn:   document.Cents(paidIn),
	}
}

func TestIsNotIsComplementOfIs(t *testing.T) {
	now := time.Now()

	docs := []document.Document{
		newInvoice(10000, 0, "draft"),
		newInvoice(10000, 5000, "sent"),
		newInvoice(10000, 10000, "viewed"),
		&document.Invoice{Meta: document.Meta{DeletedAt: &now}, Amount: document.Cents(100)},
		&document.Invoice{Meta: document.Meta{ArchivedAt: &now}, Amount: document.Cents(100)},
	}

	lists := [][]status.Key{
		{status.Draft},
		{status.Paid},
		{status.Draft, status.Pending, status.Sent},
		{status.Partial, status.Overdue},
		{status.Unpaid},
	}

	for _, doc := range docs {
		for _, keys := range lists {
			is := status.Is(document.TypeInvoice, doc, keys...)
			isNot := status.IsNot(document.TypeInvoice, doc, keys...)

			assert.Equal(t, !is, isNot, "keys=%v", keys)
		}
	}
}

func TestGenericActiveIsAbsenceOfArchivedAndDeleted(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		archivedAt *time.Time
		deletedAt  *time.Time
	}{
		{name: "Active"},
		{name: "Archived", archivedAt: &now},
		{name: "Deleted", deletedAt: &now},
		{name: "ArchivedAndDeleted", archivedAt: &now, deletedAt: &now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &document.Client{Meta: document.Meta{
				ArchivedAt: tt.archivedAt,
				DeletedAt:  tt.deletedAt,
			}}

			active := status.Is(status.Generic, doc, status.Active)
			archived := status.Is(status.Generic, doc, status.Archived)
			deleted := status.Is(status.Generic, doc, status.Deleted)

			assert.Equal(t, !archived && !deleted, active)

			// Deleted shadows archived.
			if tt.deletedAt != nil {
				assert.True(t, deleted)
				assert.False(t, archived)
			}
		})
	}
}

func TestPrimary(t *testing.T) {
	now := time.Now()

	t.Run("LowestPriorityVisibleStatusWins", func(t *testing.T) {
		// Pending (priority 1) and overdue (priority 5) both hold.
		inv := newInvoice(10000, 0, "pending")
		inv.DueDate = past(t)

		d, ok := status.Primary(document.TypeInvoice, inv)
		require.True(t, ok)
		assert.Equal(t, status.Pending, d.Key)
	})

	t.Run("ArchivedOverlayTakesPrecedence", func(t *testing.T) {
		inv := newInvoice(10000, 0, "pending")
		inv.ArchivedAt = &now

		d, ok := status.Primary(document.TypeInvoice, inv)
		require.True(t, ok)
		assert.Equal(t, status.Archived, d.Key)
	})

	t.Run("DeletedOverlayShadowsArchived", func(t *testing.T) {
		inv := newInvoice(10000, 0, "pending")
		inv.ArchivedAt = &now
		inv.DeletedAt = &now

		d, ok := status.Primary(document.TypeInvoice, inv)
		require.True(t, ok)
		assert.Equal(t, status.Deleted, d.Key)
	})

	t.Run("NoVisibleStatus", func(t *testing.T) {
		// A vendor has no statuses at all.
		_, ok := status.Primary(document.TypeVendor, &document.Vendor{})
		assert.False(t, ok)
	})
}

func TestLookupFailsFast(t *testing.T) {
	inv := newInvoice(10000, 0, "draft")

	assert.Panics(t, func() {
		status.Is("spreadsheet", inv, status.Draft)
	})

	assert.Panics(t, func() {
		status.Is(document.TypeInvoice, inv, status.Key("levitating"))
	})

	assert.Panics(t, func() {
		status.NewEngine(nil, nil).Apply(document.TypeInvoice, inv, status.Unpaid)
	})
}

func TestDescriptorMetadata(t *testing.T) {
	d := status.Describe(document.TypeInvoice, status.Pending)

	assert.Equal(t, status.Pending, d.Key)
	assert.Equal(t, 1, d.Priority)
	assert.True(t, d.Visible)
	assert.False(t, d.Generic)

	all := status.All(document.TypeInvoice)
	require.NotEmpty(t, all)

	// Sorted by ascending priority.
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Priority, all[i].Priority)
	}
}
