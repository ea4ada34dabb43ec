// Package collab holds the helpers spec.md calls out as deliberately out
// of core's scope: they consume core/tfsearch only through small
// interfaces, never the other way around.
package collab

import "github.com/huichen/tfsearch/types"

// Paginator chunks an ordered result slice into fixed-size pages, the Go
// rendering of the original's page-iterator helper.
type Paginator struct {
	docs     []types.Document
	pageSize int
	offset   int
}

// NewPaginator returns a Paginator over docs with pageSize documents per
// page. A pageSize below 1 is treated as 1.
func NewPaginator(docs []types.Document, pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{docs: docs, pageSize: pageSize}
}

// NextPage returns the next page and true, or nil and false once every
// document has been paged out.
func (p *Paginator) NextPage() ([]types.Document, bool) {
	if p.offset >= len(p.docs) {
		return nil, false
	}
	end := p.offset + p.pageSize
	if end > len(p.docs) {
		end = len(p.docs)
	}
	page := p.docs[p.offset:end]
	p.offset = end
	return page, true
}
