package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"medibook/api"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister serves scripted pages. When block is non-nil, ListDoctors
// waits until it is closed.
type fakeLister struct {
	mu    sync.Mutex
	calls []int
	pages map[int]*models.DoctorPage
	errs  map[int]error
	block chan struct{}
}

func (f *fakeLister) ListDoctors(_ context.Context, page, _ int) (*models.DoctorPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, page)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err, ok := f.errs[page]; ok {
		return nil, err
	}
	if result, ok := f.pages[page]; ok {
		return result, nil
	}
	return &models.DoctorPage{Page: page, Last: true}, nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func doctors(prefix string, n int) []models.DoctorSummary {
	out := make([]models.DoctorSummary, n)
	for i := range out {
		out[i] = models.DoctorSummary{ID: fmt.Sprintf("%s-%d", prefix, i), Name: prefix}
	}
	return out
}

func TestFeedAppendsPagesInOrder(t *testing.T) {
	lister := &fakeLister{pages: map[int]*models.DoctorPage{
		0: {Content: doctors("a", 10), Page: 0, Last: false},
		1: {Content: doctors("b", 5), Page: 1, Last: true},
	}}
	f := NewDoctorFeed(lister)

	require.True(t, f.LoadNext(context.Background()))
	snap := f.Snapshot()
	assert.Len(t, snap.Doctors, 10)
	assert.Equal(t, 1, snap.Page)
	assert.False(t, snap.EndReached)

	require.True(t, f.LoadNext(context.Background()))
	snap = f.Snapshot()
	assert.Len(t, snap.Doctors, 15)
	assert.Equal(t, 2, snap.Page)
	assert.True(t, snap.EndReached)

	// first-page-then-second-page order preserved
	assert.Equal(t, "a-0", snap.Doctors[0].ID)
	assert.Equal(t, "a-9", snap.Doctors[9].ID)
	assert.Equal(t, "b-0", snap.Doctors[10].ID)
}

func TestFeedGuardWhileLoading(t *testing.T) {
	lister := &fakeLister{
		pages: map[int]*models.DoctorPage{0: {Content: doctors("a", 3), Last: true}},
		block: make(chan struct{}),
	}
	f := NewDoctorFeed(lister)

	done := make(chan struct{})
	go func() {
		f.LoadNext(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool {
		return f.Snapshot().LoadingFirstPage
	}, time.Second, time.Millisecond)

	// re-entrant call while a fetch is in flight is a no-op
	assert.False(t, f.LoadNext(context.Background()))
	assert.Equal(t, 1, lister.callCount())
	assert.Equal(t, 0, f.Snapshot().Page)

	close(lister.block)
	<-done
	assert.Equal(t, 1, f.Snapshot().Page)
}

func TestFeedGuardWhileLoadingMore(t *testing.T) {
	lister := &fakeLister{pages: map[int]*models.DoctorPage{
		0: {Content: doctors("a", 4), Page: 0, Last: false},
		1: {Content: doctors("b", 2), Page: 1, Last: true},
	}}
	f := NewDoctorFeed(lister)
	require.True(t, f.LoadNext(context.Background()))

	block := make(chan struct{})
	lister.mu.Lock()
	lister.block = block
	lister.mu.Unlock()

	done := make(chan struct{})
	go func() {
		f.LoadNext(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool {
		return f.Snapshot().LoadingMore
	}, time.Second, time.Millisecond)

	assert.False(t, f.LoadNext(context.Background()))
	assert.Equal(t, 1, f.Snapshot().Page)
	assert.Equal(t, 2, lister.callCount())

	close(block)
	<-done
	snap := f.Snapshot()
	assert.Equal(t, 2, snap.Page)
	assert.Len(t, snap.Doctors, 6)
	assert.True(t, snap.EndReached)
}

func TestFeedStopsAtEnd(t *testing.T) {
	lister := &fakeLister{pages: map[int]*models.DoctorPage{
		0: {Content: doctors("a", 2), Last: true},
	}}
	f := NewDoctorFeed(lister)

	require.True(t, f.LoadNext(context.Background()))
	assert.True(t, f.Snapshot().EndReached)

	assert.False(t, f.LoadNext(context.Background()))
	assert.Equal(t, 1, lister.callCount())
}

func TestFeedFailureIsRecoverable(t *testing.T) {
	lister := &fakeLister{
		pages: map[int]*models.DoctorPage{
			0: {Content: doctors("a", 10), Last: false},
		},
		errs: map[int]error{1: &api.Error{StatusCode: 503, Message: "Service unavailable"}},
	}
	f := NewDoctorFeed(lister)

	require.True(t, f.LoadNext(context.Background()))
	require.True(t, f.LoadNext(context.Background()))

	snap := f.Snapshot()
	assert.Equal(t, "Service unavailable", snap.LastError)
	assert.Equal(t, 1, snap.Page, "cursor unchanged on failure")
	assert.Len(t, snap.Doctors, 10, "loaded doctors kept on failure")
	assert.False(t, snap.EndReached)

	// the retry targets the same page and clears the error
	delete(lister.errs, 1)
	lister.pages[1] = &models.DoctorPage{Content: doctors("b", 4), Last: true}
	require.True(t, f.LoadNext(context.Background()))

	snap = f.Snapshot()
	assert.Empty(t, snap.LastError)
	assert.Equal(t, 2, snap.Page)
	assert.Len(t, snap.Doctors, 14)
	assert.Equal(t, []int{0, 1, 1}, lister.calls)
}

func TestFeedTransportFailureFallbackMessage(t *testing.T) {
	lister := &fakeLister{errs: map[int]error{0: errors.New("dial tcp: timeout")}}
	f := NewDoctorFeed(lister)

	require.True(t, f.LoadNext(context.Background()))
	snap := f.Snapshot()
	assert.Equal(t, api.FallbackListDoctors, snap.LastError)
	assert.Empty(t, snap.Doctors, "first-page failure leaves the list empty")
}

func TestFeedDeduplicatesByID(t *testing.T) {
	lister := &fakeLister{pages: map[int]*models.DoctorPage{
		0: {Content: doctors("a", 3), Last: false},
		1: {Content: append(doctors("a", 2), doctors("b", 2)...), Last: true},
	}}
	f := NewDoctorFeed(lister)

	require.True(t, f.LoadNext(context.Background()))
	require.True(t, f.LoadNext(context.Background()))
	assert.Len(t, f.Snapshot().Doctors, 5)
}

func TestFeedShouldLoadMore(t *testing.T) {
	lister := &fakeLister{pages: map[int]*models.DoctorPage{
		0: {Content: doctors("a", 10), Last: false},
	}}
	f := NewDoctorFeed(lister)
	require.True(t, f.LoadNext(context.Background()))

	assert.False(t, f.ShouldLoadMore(3), "mid-list position")
	assert.True(t, f.ShouldLoadMore(9), "last loaded doctor visible")
}

func TestFeedCloseDiscardsInFlightPage(t *testing.T) {
	lister := &fakeLister{
		pages: map[int]*models.DoctorPage{0: {Content: doctors("a", 5), Last: false}},
		block: make(chan struct{}),
	}
	f := NewDoctorFeed(lister)

	done := make(chan struct{})
	go func() {
		f.LoadNext(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool {
		return f.Snapshot().LoadingFirstPage
	}, time.Second, time.Millisecond)

	f.Close()
	close(lister.block)
	<-done

	snap := f.Snapshot()
	assert.Empty(t, snap.Doctors)
	assert.Equal(t, 0, snap.Page)
	assert.False(t, f.ShouldLoadMore(0))
}
