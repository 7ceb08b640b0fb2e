package app

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

const hostawayTimeLayout = "2006-01-02 15:04:05"

// tenToFiveScale projects a 0-10 category score onto the public 1-5 scale.
// Single source for the conversion; the aggregator uses it too.
func tenToFiveScale(v float64) float64 { return v / 2 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

var whitespaceRun = regexp.MustCompile(`\s+`)

// DerivePropertyID extracts the property code from a listing name:
// "2B N1 A - 29 Shoreditch Heights" -> "2b_n1_a". Names without a hyphen
// cannot carry a code and map to "unknown".
func DerivePropertyID(listingName string) string {
	code, _, found := strings.Cut(listingName, "-")
	if !found {
		return "unknown"
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "unknown"
	}
	return strings.ToLower(whitespaceRun.ReplaceAllString(code, "_"))
}

// NormalizeHostawayReviews maps raw Hostaway records onto the canonical shape.
// Pure and deterministic; no I/O.
func NormalizeHostawayReviews(in []domain.HostawayReview) []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, 0, len(in))
	for _, r := range in {
		out = append(out, normalizeHostawayReview(r))
	}
	return out
}

func normalizeHostawayReview(r domain.HostawayReview) domain.NormalizedReview {
	kind := domain.TypeHostReview
	if r.Type == "guest-to-host" {
		kind = domain.TypeGuestReview
	}

	submitted, err := time.ParseInLocation(hostawayTimeLayout, r.SubmittedAt, time.UTC)
	if err != nil {
		log.Warn().Err(err).Int64("id", r.ID).Str("submittedAt", r.SubmittedAt).
			Msg("unparseable hostaway timestamp")
	}

	return domain.NormalizedReview{
		ID:           strconv.FormatInt(r.ID, 10),
		Source:       domain.SourceHostaway,
		PropertyID:   DerivePropertyID(r.ListingName),
		PropertyName: r.ListingName,
		GuestName:    r.GuestName,
		Rating:       hostawayRating(r),
		Comment:      r.PublicReview,
		SubmittedAt:  submitted,
		Categories:   r.ReviewCategory,
		Channel:      "Hostaway",
		IsApproved:   r.Status == "published",
		IsPublic:     false, // public display always requires a manager decision
		Type:         kind,
	}
}

// hostawayRating derives the 1-5 rating: the direct overall rating when the
// guest gave one, else the category mean projected from the 0-10 scale.
// Reviews with neither signal default to 5.0. Out-of-range raw values pass
// through unclamped.
func hostawayRating(r domain.HostawayReview) float64 {
	if r.Rating != nil {
		return *r.Rating
	}
	if len(r.ReviewCategory) == 0 {
		log.Debug().Int64("id", r.ID).Msg("review has no rating signal; defaulting to 5.0")
		return 5.0
	}
	var sum float64
	for _, c := range r.ReviewCategory {
		sum += c.Rating
	}
	return round1(tenToFiveScale(sum / float64(len(r.ReviewCategory))))
}

// NormalizeGoogleReviews maps place reviews onto the canonical shape. Review
// ids are positional within one details response and are not stable across
// fetches if the provider reorders or rotates its (max 5) reviews.
func NormalizeGoogleReviews(in []domain.GoogleReview, placeName, placeID string) []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, 0, len(in))
	for i, r := range in {
		out = append(out, domain.NormalizedReview{
			ID:           fmt.Sprintf("google_%s_%d", placeID, i),
			Source:       domain.SourceGoogle,
			PropertyID:   placeID,
			PropertyName: placeName,
			GuestName:    r.AuthorName,
			Rating:       r.Rating, // already on the 1-5 scale
			Comment:      r.Text,
			SubmittedAt:  time.Unix(r.Time, 0).UTC(),
			Categories:   []domain.ReviewCategory{}, // no category breakdowns on this provider
			Channel:      "Google Reviews",
			IsApproved:   true, // already public on the provider's own surface
			IsPublic:     false,
			Type:         domain.TypeGuestReview,
		})
	}
	return out
}
