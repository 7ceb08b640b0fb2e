package domain

import "context"

// HostawayClient fetches raw reviews for the whole account. Implementations
// degrade to a fixed sample dataset on transport failure instead of erroring.
type HostawayClient interface {
	GetReviews(ctx context.Context) ([]HostawayReview, error)
}

// PlacesClient resolves a property to a place and fetches its details.
// FindPlace returns (nil, nil) when no strategy produced a candidate.
type PlacesClient interface {
	FindPlace(ctx context.Context, name, address string) (*PlaceMatch, error)
	GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
