package domain

import "time"

// Review sources. Source identifies the provider a review came from and is
// immutable once a review is normalized.
const (
	SourceHostaway = "hostaway"
	SourceGoogle   = "google"
	SourceAirbnb   = "airbnb"
)

// Review direction from the property's point of view.
const (
	TypeGuestReview = "guest-review"
	TypeHostReview  = "host-review"
)

// ReviewCategory is a provider-supplied sub-score (cleanliness, communication,
// ...) on the provider's native scale. Hostaway uses 0-10; Google has none.
type ReviewCategory struct {
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// NormalizedReview is the canonical provider-agnostic review shape. Instances
// are rebuilt on every fetch cycle; IsApproved/IsPublic carry provider
// defaults until the approval store overrides them at read time.
type NormalizedReview struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	PropertyID   string           `json:"propertyId"`
	PropertyName string           `json:"propertyName"`
	GuestName    string           `json:"guestName"`
	Rating       float64          `json:"rating"`
	Comment      string           `json:"comment"`
	SubmittedAt  time.Time        `json:"submittedAt"`
	Categories   []ReviewCategory `json:"categories"`
	Channel      string           `json:"channel"`
	IsApproved   bool             `json:"isApproved"`
	IsPublic     bool             `json:"isPublic"`
	Type         string           `json:"type"`
}

// HostawayReview is the raw record shape returned by the Hostaway reviews
// endpoint. Rating is nil when the guest skipped the overall score.
type HostawayReview struct {
	ID             int64            `json:"id"`
	Type           string           `json:"type"`   // host-to-guest | guest-to-host
	Status         string           `json:"status"` // published | pending | draft
	Rating         *float64         `json:"rating"`
	PublicReview   string           `json:"publicReview"`
	ReviewCategory []ReviewCategory `json:"reviewCategory"`
	SubmittedAt    string           `json:"submittedAt"` // "2006-01-02 15:04:05"
	GuestName      string           `json:"guestName"`
	ListingName    string           `json:"listingName"`
}

// GoogleReview is the raw review shape embedded in a Place Details result.
type GoogleReview struct {
	AuthorName              string  `json:"author_name"`
	AuthorURL               string  `json:"author_url,omitempty"`
	Language                string  `json:"language"`
	ProfilePhotoURL         string  `json:"profile_photo_url"`
	Rating                  float64 `json:"rating"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Text                    string  `json:"text"`
	Time                    int64   `json:"time"` // unix seconds
}

// PlaceMatch is the outcome of resolving a property to a place id.
type PlaceMatch struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
	Address string `json:"formatted_address,omitempty"`
}

// PlaceDetails carries the review-relevant slice of a Place Details result.
// The provider returns at most 5 reviews per place.
type PlaceDetails struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	Rating           float64        `json:"rating"`
	Reviews          []GoogleReview `json:"reviews"`
	UserRatingsTotal int            `json:"user_ratings_total"`
}
