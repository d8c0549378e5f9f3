package status

import (
	"github.com/ruimartins/billow/internal/document"
)

// Client statuses track the VAT number verification outcome. None are
// visible; they only back form hints.
func clientStatuses() map[Key]*Descriptor {
	return map[Key]*Descriptor{
		VATVerified: {
			Key: VATVerified,
			meets: func(doc document.Document) bool {
				c := doc.(*document.Client)
				return c.VATStatus != nil && *c.VATStatus == document.VATVerified
			},
		},

		VATPending: {
			Key: VATPending,
			meets: func(doc document.Document) bool {
				return doc.(*document.Client).VATStatus == nil
			},
		},

		VATInvalid: {
			Key: VATInvalid,
			meets: func(doc document.Document) bool {
				c := doc.(*document.Client)
				return c.VATStatus != nil && *c.VATStatus == document.VATInvalid
			},
		},
	}
}

// Product stock statuses. A nil quantity marks a service, which has no
// stock at all.
func productStatuses() map[Key]*Descriptor {
	return map[Key]*Descriptor{
		InStock: {
			Key: InStock,
			meets: func(doc document.Document) bool {
				p := doc.(*document.Product)
				return p.Qty != nil && *p.Qty > 0
			},
		},

		OutOfStock: {
			Key: OutOfStock,
			meets: func(doc document.Document) bool {
				p := doc.(*document.Product)
				return p.Qty != nil && *p.Qty <= 0
			},
		},

		IsAService: {
			Key: IsAService,
			meets: func(doc document.Document) bool {
				return doc.(*document.Product).Qty == nil
			},
		},
	}
}
