package review

import (
	"context"
	"slices"
	"sync"
)

// Repository is the live review list. Reviews are only ever prepended, so List
// is newest-first for everything submitted during the process lifetime.
type Repository interface {
	Prepend(ctx context.Context, review *Review) error
	List(ctx context.Context) ([]Review, error)
	GetByTarget(ctx context.Context, targetID string) ([]Review, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
}

// NewMemoryRepository returns a repository seeded with the mock reviews.
func NewMemoryRepository() Repository {
	return &memoryRepository{reviews: seedReviews()}
}

// NewEmptyRepository returns a repository with no reviews.
func NewEmptyRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Prepend(_ context.Context, review *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Review, 0, len(r.reviews)+1)
	next = append(next, *review)
	r.reviews = append(next, r.reviews...)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reviews), nil
}

func (r *memoryRepository) GetByTarget(_ context.Context, targetID string) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ForTarget(r.reviews, targetID), nil
}
