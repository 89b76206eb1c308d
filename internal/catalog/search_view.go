package catalog

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiet period before a search term takes effect.
const DefaultDebounceWindow = 500 * time.Millisecond

// ViewState is a snapshot of the view filters.
type ViewState struct {
	SearchTerm          string
	DebouncedSearchTerm string
	SortMode            SortMode
}

// SearchView holds the view filters the derived product list is computed from.
// The search term reaches DebouncedSearchTerm only after it stops changing.
type SearchView struct {
	mu        sync.RWMutex
	state     ViewState
	debouncer *Debouncer
}

// NewSearchView creates empty view filters with the given debounce window.
func NewSearchView(window time.Duration) *SearchView {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &SearchView{debouncer: NewDebouncer(window)}
}

// SetSearchTerm records the raw search term and restarts the quiet window.
func (v *SearchView) SetSearchTerm(term string) {
	v.mu.Lock()
	v.state.SearchTerm = term
	v.mu.Unlock()

	v.debouncer.Trigger(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.state.DebouncedSearchTerm = term
	})
}

// SetSortMode changes the sort mode immediately.
func (v *SearchView) SetSortMode(mode SortMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SortMode = mode
}

// SearchTerm returns the raw search term.
func (v *SearchView) SearchTerm() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state.SearchTerm
}

// DebouncedSearchTerm returns the settled search term.
func (v *SearchView) DebouncedSearchTerm() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state.DebouncedSearchTerm
}

// SortMode returns the current sort mode.
func (v *SearchView) SortMode() SortMode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state.SortMode
}

// Snapshot returns all view filters at once.
func (v *SearchView) Snapshot() ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Close discards any pending debounce timer.
func (v *SearchView) Close() {
	v.debouncer.Stop()
}
