package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// Filters narrows the dashboard review listing. Zero values mean "no filter".
type Filters struct {
	Property  string  // property id, or substring of the property name
	MinRating float64 // inclusive lower bound
	Status    string  // approved | pending
}

// ReviewService is the read/write surface consumed by the HTTP layer: fetch,
// normalize, merge approvals, filter, aggregate.
type ReviewService struct {
	hostaway  domain.HostawayClient
	places    domain.PlacesClient
	approvals *ApprovalStore
}

func NewReviewService(h domain.HostawayClient, p domain.PlacesClient, a *ApprovalStore) *ReviewService {
	return &ReviewService{hostaway: h, places: p, approvals: a}
}

// ListReviews returns the filtered management-provider reviews plus analytics.
// Analytics are computed over the full merged collection, not the filtered
// view, so top-line dashboard stats don't shift as filters change.
func (s *ReviewService) ListReviews(ctx context.Context, f Filters) ([]domain.NormalizedReview, domain.ReviewAnalytics, error) {
	merged, err := s.listMerged(ctx)
	if err != nil {
		return nil, domain.ReviewAnalytics{}, err
	}
	return applyFilters(merged, f), BuildAnalytics(merged), nil
}

// ListAllReviews returns every normalized review merged with approval state.
func (s *ReviewService) ListAllReviews(ctx context.Context) ([]domain.NormalizedReview, error) {
	return s.listMerged(ctx)
}

// ListPublicReviews returns the reviews a property's public page may show:
// approved by a manager and explicitly made public.
func (s *ReviewService) ListPublicReviews(ctx context.Context, propertyID string) ([]domain.NormalizedReview, error) {
	merged, err := s.listMerged(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NormalizedReview, 0, len(merged))
	for _, r := range merged {
		if r.PropertyID == propertyID && r.IsApproved && r.IsPublic {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReviewService) listMerged(ctx context.Context) ([]domain.NormalizedReview, error) {
	raw, err := s.hostaway.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return s.approvals.MergeOntoReviews(NormalizeHostawayReviews(raw)), nil
}

// SearchPlacesReviews fetches and normalizes google reviews for one property.
// Zero matches and review-less places are empty results, not errors.
func (s *ReviewService) SearchPlacesReviews(ctx context.Context, propertyName, address string) ([]domain.NormalizedReview, error) {
	match, err := s.places.FindPlace(ctx, propertyName, address)
	if err != nil {
		return nil, err
	}
	if match == nil {
		log.Info().Str("property", propertyName).Msg("no place found for property")
		return []domain.NormalizedReview{}, nil
	}

	details, err := s.places.GetPlaceDetails(ctx, match.PlaceID)
	if err != nil {
		return nil, err
	}
	if details == nil || len(details.Reviews) == 0 {
		log.Info().Str("property", propertyName).Str("placeId", match.PlaceID).
			Msg("place has no reviews")
		return []domain.NormalizedReview{}, nil
	}

	name := match.Name
	if name == "" {
		name = propertyName
	}
	return NormalizeGoogleReviews(details.Reviews, name, match.PlaceID), nil
}

// Manager actions. Approve/Reject/SetPublic are partial updates: the field
// the caller didn't touch keeps its stored value.

func (s *ReviewService) Approve(reviewID string) error {
	return s.approvals.Set(reviewID, ptrBool(true), nil)
}

func (s *ReviewService) Reject(reviewID string) error {
	return s.approvals.Set(reviewID, ptrBool(false), nil)
}

func (s *ReviewService) SetPublic(reviewID string, public bool) error {
	return s.approvals.Set(reviewID, nil, ptrBool(public))
}

func (s *ReviewService) SetApproval(reviewID string, isApproved, isPublic *bool) error {
	return s.approvals.Set(reviewID, isApproved, isPublic)
}

func (s *ReviewService) BulkApprove(updates []domain.ApprovalUpdate) int {
	return s.approvals.BulkSet(updates)
}

func (s *ReviewService) GetApproval(reviewID string) (domain.ApprovalRecord, bool) {
	return s.approvals.Get(reviewID)
}

func applyFilters(reviews []domain.NormalizedReview, f Filters) []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, 0, len(reviews))
	for _, r := range reviews {
		if f.Property != "" &&
			r.PropertyID != f.Property &&
			!strings.Contains(strings.ToLower(r.PropertyName), strings.ToLower(f.Property)) {
			continue
		}
		if f.MinRating > 0 && r.Rating < f.MinRating {
			continue
		}
		switch f.Status {
		case "approved":
			if !r.IsApproved {
				continue
			}
		case "pending":
			if r.IsApproved {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func ptrBool(b bool) *bool { return &b }
