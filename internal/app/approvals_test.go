package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

func pb(b bool) *bool { return &b }

func TestApprovalStore_SetDefaultsOnCreate(t *testing.T) {
	s := NewApprovalStore()

	// only isApproved specified: isPublic takes the creation default (false)
	if err := s.Set("r1", pb(true), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rec, ok := s.Get("r1")
	if !ok || !rec.IsApproved || rec.IsPublic {
		t.Fatalf("record = %+v ok=%v", rec, ok)
	}

	// nothing specified: approve-by-default semantics
	if err := s.Set("r2", nil, nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rec, _ = s.Get("r2")
	if !rec.IsApproved || rec.IsPublic {
		t.Fatalf("creation defaults wrong: %+v", rec)
	}
}

func TestApprovalStore_PartialUpdateRetainsPrior(t *testing.T) {
	s := NewApprovalStore()
	if err := s.Set("r1", pb(false), pb(true)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// update only isApproved; isPublic must keep its stored value
	if err := s.Set("r1", pb(true), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rec, _ := s.Get("r1")
	if !rec.IsApproved || !rec.IsPublic {
		t.Fatalf("partial update lost state: %+v", rec)
	}
}

func TestApprovalStore_EmptyIDRejected(t *testing.T) {
	s := NewApprovalStore()
	err := s.Set("", pb(true), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, ok := s.Get(""); ok {
		t.Fatalf("no record should exist after rejected Set")
	}
}

func TestApprovalStore_BulkSkipsInvalidEntries(t *testing.T) {
	s := NewApprovalStore()
	applied := s.BulkSet([]domain.ApprovalUpdate{
		{ReviewID: "a", IsApproved: pb(true)},
		{ReviewID: ""}, // skipped, must not abort the batch
		{ReviewID: "b", IsPublic: pb(true)},
	})
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}
	if _, ok := s.Get("a"); !ok {
		t.Fatalf("entry a missing")
	}
	if rec, ok := s.Get("b"); !ok || !rec.IsPublic || !rec.IsApproved {
		t.Fatalf("entry b = %+v ok=%v", rec, ok)
	}
}

func TestApprovalStore_MergePrecedence(t *testing.T) {
	s := NewApprovalStore()
	reviews := []domain.NormalizedReview{
		{ID: "r1", IsApproved: false, IsPublic: false},
		{ID: "r2", IsApproved: true, IsPublic: false}, // untouched: defaults stand
	}

	if err := s.Set("r1", pb(true), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}

	merged := s.MergeOntoReviews(reviews)
	if !merged[0].IsApproved {
		t.Fatalf("stored approval must override the review default")
	}
	if merged[0].IsPublic {
		t.Fatalf("isPublic came from the creation default (false), got true")
	}
	if !merged[1].IsApproved || merged[1].IsPublic {
		t.Fatalf("review without a record must keep provider defaults: %+v", merged[1])
	}
	// input must not be mutated
	if reviews[0].IsApproved {
		t.Fatalf("MergeOntoReviews mutated its input")
	}
}

func TestApprovalStore_ConcurrentAccess(t *testing.T) {
	s := NewApprovalStore()
	reviews := []domain.NormalizedReview{{ID: "r1"}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(approve bool) {
			defer wg.Done()
			_ = s.Set("r1", pb(approve), nil)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			_ = s.MergeOntoReviews(reviews)
		}()
	}
	wg.Wait()

	if _, ok := s.Get("r1"); !ok {
		t.Fatalf("record lost under concurrent writes")
	}
}
