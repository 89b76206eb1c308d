package pagination

import (
	"errors"
	"log/slog"
)

// ErrInvalidPageToken is returned by ApplyPagination for an undecodable token.
var ErrInvalidPageToken = errors.New("invalid page token")

// Query describes one page request.
type Query struct {
	Limit int

	Paginator *Paginator
}

// NewQuery creates a query with the default limit.
func NewQuery() *Query {
	return &Query{Limit: DefaultPaginationLimit}
}

// ApplyPagination sets the limit (clamped to the maximum) and decodes the page token.
func (q *Query) ApplyPagination(limit int32, token string) error {
	queryLimit := DefaultPaginationLimit
	if limit > 0 {
		queryLimit = min(maxPaginationLimit, int(limit))
	}
	q.Limit = queryLimit

	if token == "" {
		return nil
	}

	paginator, err := DecodePageToken(token)
	if err != nil {
		slog.Error("failed to decode page token", slog.Any("err", err), slog.String("token", token))
		return ErrInvalidPageToken
	}
	q.Paginator = paginator
	return nil
}

// Page cuts one page out of items, which must already be in display order.
// The cursor continues after the item whose id matches the paginator; a
// cursor whose item has disappeared starts again from the first item. The
// returned token is empty on the last page.
func Page[T any](items []T, q Query, id func(T) int64) ([]T, string) {
	start := 0
	if q.Paginator != nil {
		for i, item := range items {
			if id(item) == q.Paginator.LastID {
				start = i + 1
				break
			}
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPaginationLimit
	}
	end := min(start+limit, len(items))
	if start >= end {
		return []T{}, ""
	}

	page := items[start:end]
	var next string
	if end < len(items) {
		next = Paginator{LastID: id(page[len(page)-1])}.Encode()
	}
	return page, next
}
