package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/app"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// ---- fakes ----

type fakeHostaway struct {
	reviews []domain.HostawayReview
	err     error
}

func (f *fakeHostaway) GetReviews(ctx context.Context) ([]domain.HostawayReview, error) {
	return f.reviews, f.err
}

type fakePlaces struct {
	match   *domain.PlaceMatch
	details *domain.PlaceDetails
	findErr error
	detsErr error
}

func (f *fakePlaces) FindPlace(ctx context.Context, name, address string) (*domain.PlaceMatch, error) {
	return f.match, f.findErr
}

func (f *fakePlaces) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	return f.details, f.detsErr
}

func pbool(b bool) *bool        { return &b }
func pfloat(f float64) *float64 { return &f }

func sampleRaw() []domain.HostawayReview {
	return []domain.HostawayReview{
		{
			ID: 1, Type: "guest-to-host", Status: "published", Rating: pfloat(5),
			PublicReview: "great", SubmittedAt: "2024-01-01 10:00:00",
			GuestName: "A", ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID: 2, Type: "guest-to-host", Status: "pending", Rating: pfloat(2),
			PublicReview: "bad", SubmittedAt: "2024-01-02 10:00:00",
			GuestName: "B", ListingName: "1B S2 B - 15 Canary Wharf Luxury",
		},
		{
			ID: 3, Type: "guest-to-host", Status: "published", Rating: pfloat(4),
			PublicReview: "good", SubmittedAt: "2024-01-03 10:00:00",
			GuestName: "C", ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
	}
}

func newService(h domain.HostawayClient, p domain.PlacesClient) *app.ReviewService {
	return app.NewReviewService(h, p, app.NewApprovalStore())
}

// ---- tests ----

func TestListReviews_NoFilter(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})

	reviews, analytics, err := svc.ListReviews(context.Background(), app.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("reviews = %d, want 3", len(reviews))
	}
	if analytics.TotalReviews != 3 {
		t.Fatalf("analytics.TotalReviews = %d", analytics.TotalReviews)
	}
}

func TestListReviews_Filters(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})
	ctx := context.Background()

	byProperty, _, err := svc.ListReviews(ctx, app.Filters{Property: "2b_n1_a"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(byProperty) != 2 {
		t.Fatalf("property filter: %d reviews, want 2", len(byProperty))
	}

	byName, _, _ := svc.ListReviews(ctx, app.Filters{Property: "canary wharf"})
	if len(byName) != 1 || byName[0].ID != "2" {
		t.Fatalf("name substring filter: %+v", byName)
	}

	byRating, _, _ := svc.ListReviews(ctx, app.Filters{MinRating: 4})
	if len(byRating) != 2 {
		t.Fatalf("rating filter: %d reviews, want 2", len(byRating))
	}

	pending, _, _ := svc.ListReviews(ctx, app.Filters{Status: "pending"})
	if len(pending) != 1 || pending[0].ID != "2" {
		t.Fatalf("status filter: %+v", pending)
	}
}

func TestListReviews_AnalyticsIgnoreFilters(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})

	filtered, analytics, err := svc.ListReviews(context.Background(), app.Filters{MinRating: 4.5})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("filtered = %d, want 1", len(filtered))
	}
	// top-line stats stay pinned to the whole merged collection
	if analytics.TotalReviews != 3 {
		t.Fatalf("analytics.TotalReviews = %d, want 3", analytics.TotalReviews)
	}
}

func TestListReviews_MergesApprovalState(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})

	if err := svc.Reject("1"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	reviews, _, err := svc.ListReviews(context.Background(), app.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, r := range reviews {
		if r.ID == "1" && r.IsApproved {
			t.Fatalf("rejection not merged onto review 1")
		}
	}
}

func TestListPublicReviews_RequiresApprovedAndPublic(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})
	ctx := context.Background()

	pub, err := svc.ListPublicReviews(ctx, "2b_n1_a")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(pub) != 0 {
		t.Fatalf("nothing is public before a manager action, got %d", len(pub))
	}

	if err := svc.SetPublic("1", true); err != nil {
		t.Fatalf("SetPublic: %v", err)
	}
	pub, _ = svc.ListPublicReviews(ctx, "2b_n1_a")
	if len(pub) != 1 || pub[0].ID != "1" {
		t.Fatalf("public listing = %+v", pub)
	}
}

func TestSearchPlacesReviews_NoMatchIsEmpty(t *testing.T) {
	svc := newService(&fakeHostaway{}, &fakePlaces{match: nil})

	out, err := svc.SearchPlacesReviews(context.Background(), "Unknown Property", "")
	if err != nil {
		t.Fatalf("zero matches must not be an error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestSearchPlacesReviews_PlaceWithoutReviewsIsEmpty(t *testing.T) {
	svc := newService(&fakeHostaway{}, &fakePlaces{
		match:   &domain.PlaceMatch{PlaceID: "p1", Name: "Somewhere"},
		details: &domain.PlaceDetails{PlaceID: "p1", Name: "Somewhere"},
	})

	out, err := svc.SearchPlacesReviews(context.Background(), "Somewhere", "")
	if err != nil || len(out) != 0 {
		t.Fatalf("out=%v err=%v", out, err)
	}
}

func TestSearchPlacesReviews_Normalizes(t *testing.T) {
	svc := newService(&fakeHostaway{}, &fakePlaces{
		match: &domain.PlaceMatch{PlaceID: "p1", Name: "Shoreditch Heights"},
		details: &domain.PlaceDetails{
			PlaceID: "p1",
			Reviews: []domain.GoogleReview{{AuthorName: "Alice", Rating: 4, Text: "nice", Time: 1700000000}},
		},
	})

	out, err := svc.SearchPlacesReviews(context.Background(), "Shoreditch Heights", "London")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ID != "google_p1_0" || out[0].Source != domain.SourceGoogle {
		t.Fatalf("out = %+v", out)
	}
}

func TestSearchPlacesReviews_PropagatesClassifiedErrors(t *testing.T) {
	svc := newService(&fakeHostaway{}, &fakePlaces{findErr: domain.ErrQuotaExceeded})

	_, err := svc.SearchPlacesReviews(context.Background(), "X", "")
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestBulkApprove(t *testing.T) {
	svc := newService(&fakeHostaway{reviews: sampleRaw()}, &fakePlaces{})

	applied := svc.BulkApprove([]domain.ApprovalUpdate{
		{ReviewID: "1", IsApproved: pbool(true), IsPublic: pbool(true)},
		{ReviewID: "3", IsApproved: pbool(false)},
		{ReviewID: ""},
	})
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}

	reviews, _, _ := svc.ListReviews(context.Background(), app.Filters{})
	for _, r := range reviews {
		switch r.ID {
		case "1":
			if !r.IsApproved || !r.IsPublic {
				t.Fatalf("review 1 = %+v", r)
			}
		case "3":
			if r.IsApproved {
				t.Fatalf("review 3 should be rejected")
			}
		}
	}
}
