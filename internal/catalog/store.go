package catalog

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
)

// Store owns the authoritative product list, the pending draft and the
// editing index. Every method runs atomically with respect to the others.
type Store struct {
	mu           sync.Mutex
	products     []model.Product
	draft        model.DraftForm
	editingIndex *int
	ids          *IDGenerator
	notifier     Notifier
}

// Option configures a Store.
type Option func(*Store)

// WithClock makes id generation read time from now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.ids = NewIDGenerator(now)
	}
}

// WithNotifier sets the sink for "deleted" notifications.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// NewStore creates a store holding a copy of seed in its given order.
func NewStore(seed []model.Product, opts ...Option) *Store {
	s := &Store{
		products: append([]model.Product(nil), seed...),
		ids:      NewIDGenerator(time.Now),
		notifier: LogNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, p := range s.products {
		s.ids.Observe(p.ID)
	}
	return s
}

// Products returns a copy of the product list in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.products...)
}

// Len returns the number of products.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// Draft returns the current draft.
func (s *Store) Draft() model.DraftForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDraft(s.draft)
}

// EditingIndex returns the index being edited and whether an edit is in progress.
func (s *Store) EditingIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingIndex == nil {
		return 0, false
	}
	return *s.editingIndex, true
}

// IndexOf returns the list index of the product with the given id.
func (s *Store) IndexOf(id int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id)
}

// Visible returns the filtered and sorted view of the current products.
func (s *Store) Visible(searchTerm string, mode SortMode) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VisibleProducts(s.products, searchTerm, mode)
}

// UpdateDraft replaces the draft with user edits. The editing index is kept.
func (s *Store) UpdateDraft(d model.DraftForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = copyDraft(d)
}

// Submission is the outcome of a successful submit.
type Submission struct {
	Product model.Product
	// Updated is true when an existing product was overwritten rather than appended.
	Updated bool
}

// Submit validates the current draft and either overwrites the product being
// edited or appends a new one. On any error the store is left unchanged.
func (s *Store) Submit(_ context.Context) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit()
}

// SubmitDraft replaces the draft with d and submits it in one step.
func (s *Store) SubmitDraft(_ context.Context, d model.DraftForm) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.draft
	s.draft = copyDraft(d)
	sub, err := s.submit()
	if err != nil {
		s.draft = prev
	}
	return sub, err
}

func (s *Store) submit() (Submission, error) {
	candidate, err := validateDraft(s.draft)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(err.Error()).Inc()
		return Submission{}, err
	}

	normalized := normalizeName(candidate.Name)
	for i, p := range s.products {
		if s.editingIndex != nil && i == *s.editingIndex {
			continue
		}
		if normalizeName(p.Name) == normalized {
			metrics.ValidationFailures.WithLabelValues(ErrDuplicateName.Error()).Inc()
			return Submission{}, ErrDuplicateName
		}
	}

	updated := s.editingIndex != nil
	if updated {
		idx := *s.editingIndex
		candidate.ID = s.products[idx].ID
		s.products[idx] = candidate
		s.editingIndex = nil
		metrics.ProductsUpdated.Inc()
	} else {
		candidate.ID = s.ids.Next()
		s.products = append(s.products, candidate)
		metrics.ProductsCreated.Inc()
	}
	s.draft = model.DraftForm{}

	return Submission{Product: candidate, Updated: updated}, nil
}

// StartEdit copies the product at index into the draft and marks it as the
// submission target.
func (s *Store) StartEdit(index int) (model.DraftForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.products) {
		return model.DraftForm{}, ErrIndexOutOfRange
	}
	s.draft = s.products[index].ToDraft()
	s.editingIndex = &index
	return copyDraft(s.draft), nil
}

// CancelEdit clears the draft and the editing index.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelEdit()
}

func (s *Store) cancelEdit() {
	s.draft = model.DraftForm{}
	s.editingIndex = nil
}

// DeleteOne removes the product with the given id and reports whether one
// was removed. A missing id is a no-op.
func (s *Store) DeleteOne(ctx context.Context, id int64) bool {
	s.mu.Lock()
	idx, ok := s.indexOf(id)
	if !ok {
		s.mu.Unlock()
		return false
	}
	removed := s.products[idx]
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	if s.editingIndex != nil {
		switch {
		case *s.editingIndex == idx:
			s.cancelEdit()
		case *s.editingIndex > idx:
			shifted := *s.editingIndex - 1
			s.editingIndex = &shifted
		}
	}
	notifier := s.notifier
	s.mu.Unlock()

	metrics.ProductsDeleted.Inc()

	if notifier != nil {
		event := model.NewProductEvent(model.EventActionDeleted, removed)
		if err := notifier.Notify(ctx, event); err != nil {
			// Log error but don't fail the delete
			slog.Error("Failed to send delete notification", slog.Any("err", err), slog.Int64("product_id", removed.ID))
		}
	}
	return true
}

// DeleteAll empties the product list. Any edit in progress is cancelled.
func (s *Store) DeleteAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.cancelEdit()
	metrics.CatalogCleared.Inc()
}

func (s *Store) indexOf(id int64) (int, bool) {
	for i, p := range s.products {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func validateDraft(d model.DraftForm) (model.Product, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return model.Product{}, ErrMissingName
	}
	price, ok := parseNumber(d.Price)
	if !ok || price <= 0 {
		return model.Product{}, ErrInvalidPrice
	}
	stock, ok := parseNumber(d.Stock)
	if !ok || stock < 0 {
		return model.Product{}, ErrInvalidStock
	}
	return model.Product{Name: name, Price: price, Stock: stock}, nil
}

// parseNumber reads free-form form text. Blank text reads as zero, the way an
// empty numeric input does.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func copyDraft(d model.DraftForm) model.DraftForm {
	if d.ID != nil {
		id := *d.ID
		d.ID = &id
	}
	return d
}
