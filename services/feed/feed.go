package feed

import (
	"context"
	"errors"
	"sync"

	"medibook/api"
	"medibook/models"

	"go.uber.org/zap"
)

// DefaultPageSize is the page size requested from the list endpoint when
// none is configured.
const DefaultPageSize = 10

// Snapshot is an immutable view of the feed for rendering. A first-page
// failure with no doctors loaded is a full-screen error; a later failure
// with doctors already loaded is shown inline without discarding them.
type Snapshot struct {
	Doctors          []models.DoctorSummary
	Page             int
	EndReached       bool
	LoadingFirstPage bool
	LoadingMore      bool
	LastError        string
}

// DoctorFeed accumulates the doctor directory page by page. It never
// replaces already-loaded doctors, de-duplicates by id, suppresses
// overlapping fetches and stops once the backend reports the last page.
// One feed serves one list screen; feeds are not shared across screens.
type DoctorFeed struct {
	api      DoctorLister
	pageSize int
	logger   *zap.Logger

	mu           sync.Mutex
	doctors      []models.DoctorSummary
	seen         map[string]struct{}
	page         int
	endReached   bool
	loadingFirst bool
	loadingMore  bool
	lastError    string
	closed       bool
}

// FeedOption configures a DoctorFeed.
type FeedOption func(*DoctorFeed)

// WithPageSize overrides the requested page size.
func WithPageSize(size int) FeedOption {
	return func(f *DoctorFeed) {
		if size > 0 {
			f.pageSize = size
		}
	}
}

// WithLogger sets the feed logger.
func WithLogger(l *zap.Logger) FeedOption {
	return func(f *DoctorFeed) { f.logger = l }
}

// NewDoctorFeed creates an empty feed over the given backend surface.
func NewDoctorFeed(lister DoctorLister, opts ...FeedOption) *DoctorFeed {
	f := &DoctorFeed{
		api:      lister,
		pageSize: DefaultPageSize,
		logger:   zap.NewNop(),
		seen:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Snapshot returns the current feed state for rendering. The doctor slice
// is a copy; callers may hold it across further loads.
func (f *DoctorFeed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	doctors := make([]models.DoctorSummary, len(f.doctors))
	copy(doctors, f.doctors)
	return Snapshot{
		Doctors:          doctors,
		Page:             f.page,
		EndReached:       f.endReached,
		LoadingFirstPage: f.loadingFirst,
		LoadingMore:      f.loadingMore,
		LastError:        f.lastError,
	}
}

// ShouldLoadMore reports whether scrolling to visibleIndex warrants another
// page: the position has reached the last loaded doctor, the end is not
// reached and no fetch is in flight.
func (f *DoctorFeed) ShouldLoadMore(visibleIndex int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return visibleIndex >= len(f.doctors)-1 &&
		!f.endReached && !f.loadingFirst && !f.loadingMore && !f.closed
}

// LoadNext fetches the next page of doctors and appends it to the feed.
// It is a no-op while a fetch is in flight or once the end is reached,
// reporting false. A failed page leaves the cursor and loaded doctors
// untouched so a later call retries the same page.
func (f *DoctorFeed) LoadNext(ctx context.Context) bool {
	f.mu.Lock()
	if f.closed || f.loadingFirst || f.loadingMore || f.endReached {
		f.mu.Unlock()
		return false
	}
	if f.page == 0 {
		f.loadingFirst = true
	} else {
		f.loadingMore = true
	}
	page, size := f.page, f.pageSize
	f.mu.Unlock()

	result, err := f.api.ListDoctors(ctx, page, size)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		// list screen is gone; drop the result
		return true
	}
	f.loadingFirst = false
	f.loadingMore = false

	if err != nil {
		f.lastError = listFailureMessage(err)
		f.logger.Warn("failed to load doctor page", zap.Int("page", page), zap.Error(err))
		return true
	}

	for _, doctor := range result.Content {
		if _, dup := f.seen[doctor.ID]; dup {
			continue
		}
		f.seen[doctor.ID] = struct{}{}
		f.doctors = append(f.doctors, doctor)
	}
	f.page++
	f.endReached = result.Last
	f.lastError = ""
	f.logger.Debug("doctor page loaded",
		zap.Int("page", page),
		zap.Int("count", len(result.Content)),
		zap.Bool("last", result.Last))
	return true
}

// Close marks the feed as torn down. Any in-flight page arriving afterwards
// is discarded.
func (f *DoctorFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func listFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return api.FallbackListDoctors
}
