package app

import (
	"sync"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// ApprovalStore records manager approve/publish decisions keyed by review id.
// State is process-lifetime only and shared across requests; writes are
// last-writer-wins. Construct one per process (or per test) and inject it.
type ApprovalStore struct {
	mu      sync.RWMutex
	records map[string]domain.ApprovalRecord
}

func NewApprovalStore() *ApprovalStore {
	return &ApprovalStore{records: map[string]domain.ApprovalRecord{}}
}

// Set creates or updates the record for reviewID. Nil fields default to
// approved=true / public=false on first creation and retain the stored value
// on update. An empty reviewID mutates nothing.
func (s *ApprovalStore) Set(reviewID string, isApproved, isPublic *bool) error {
	if reviewID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[reviewID]
	if !ok {
		rec = domain.ApprovalRecord{IsApproved: true, IsPublic: false}
	}
	if isApproved != nil {
		rec.IsApproved = *isApproved
	}
	if isPublic != nil {
		rec.IsPublic = *isPublic
	}
	s.records[reviewID] = rec
	return nil
}

// BulkSet applies each update in input order and returns how many were
// applied. Entries without a review id are skipped; they do not abort the
// rest of the batch. Shape validation of the payload itself happens at the
// transport layer before any mutation.
func (s *ApprovalStore) BulkSet(updates []domain.ApprovalUpdate) int {
	applied := 0
	for _, u := range updates {
		if err := s.Set(u.ReviewID, u.IsApproved, u.IsPublic); err == nil {
			applied++
		}
	}
	return applied
}

// Get returns the stored record, if any. A missing record means "apply the
// review's provider defaults".
func (s *ApprovalStore) Get(reviewID string) (domain.ApprovalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[reviewID]
	return rec, ok
}

// MergeOntoReviews overlays stored decisions onto a normalized collection.
// The input slice is not mutated.
func (s *ApprovalStore) MergeOntoReviews(reviews []domain.NormalizedReview) []domain.NormalizedReview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NormalizedReview, len(reviews))
	copy(out, reviews)
	for i := range out {
		if rec, ok := s.records[out[i].ID]; ok {
			out[i].IsApproved = rec.IsApproved
			out[i].IsPublic = rec.IsPublic
		}
	}
	return out
}
