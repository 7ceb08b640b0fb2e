package hostaway

import "github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"

func pf(f float64) *float64 { return &f }

// SampleReviews returns a fresh copy of the sandbox dataset, shaped exactly
// like the live reviews endpoint. Returned on every degrade path so callers
// downstream can be exercised without live credentials.
func SampleReviews() []domain.HostawayReview {
	return []domain.HostawayReview{
		{
			ID:           7453,
			Type:         "host-to-guest",
			Status:       "published",
			Rating:       nil,
			PublicReview: "Shane and family are wonderful! Would definitely host again :)",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 10},
				{Category: "respect_house_rules", Rating: 10},
			},
			SubmittedAt: "2020-08-21 22:45:14",
			GuestName:   "Shane Finkelstein",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:           7454,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(5),
			PublicReview: "Amazing stay at this beautiful property. The location was perfect and the apartment was spotlessly clean. Sarah was an excellent host and very responsive to all our needs.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 9},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 10},
				{Category: "value", Rating: 8},
			},
			SubmittedAt: "2024-01-15 14:30:22",
			GuestName:   "Maria Rodriguez",
			ListingName: "1B S2 B - 15 Canary Wharf Luxury",
		},
		{
			ID:           7455,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(4),
			PublicReview: "Great location and comfortable stay. The check-in process was smooth and the property had all necessary amenities. Only minor issue was the Wi-Fi speed.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 8},
				{Category: "communication", Rating: 9},
				{Category: "location", Rating: 10},
				{Category: "amenities", Rating: 7},
			},
			SubmittedAt: "2024-02-03 09:15:33",
			GuestName:   "James Mitchell",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:           7456,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(5),
			PublicReview: "Exceptional property with stunning views. The interior design is modern and stylish. Host was incredibly helpful and provided great local recommendations.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 9},
				{Category: "design", Rating: 10},
			},
			SubmittedAt: "2024-01-28 16:45:12",
			GuestName:   "Emma Thompson",
			ListingName: "3B W1 C - 42 Notting Hill Garden",
		},
		{
			ID:           7457,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(3),
			PublicReview: "Decent property but had some maintenance issues. The heating wasn't working properly during our stay. Location is convenient though.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 7},
				{Category: "communication", Rating: 8},
				{Category: "location", Rating: 9},
				{Category: "maintenance", Rating: 4},
			},
			SubmittedAt: "2024-01-10 11:20:45",
			GuestName:   "David Chen",
			ListingName: "1B S2 B - 15 Canary Wharf Luxury",
		},
		{
			ID:           7458,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(5),
			PublicReview: "Perfect for our business trip. The workspace was excellent and the location made it easy to get around London. Will definitely stay again!",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 9},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 10},
				{Category: "business_amenities", Rating: 10},
			},
			SubmittedAt: "2024-02-12 13:55:18",
			GuestName:   "Sophie Laurent",
			ListingName: "2B EC1 D - 8 City Financial District",
		},
		{
			ID:           7459,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(4),
			PublicReview: "Beautiful apartment in a great neighborhood. The kitchen was well-equipped and the bed was very comfortable. Check-in was seamless.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 9},
				{Category: "communication", Rating: 9},
				{Category: "comfort", Rating: 9},
				{Category: "amenities", Rating: 8},
			},
			SubmittedAt: "2024-01-22 19:30:56",
			GuestName:   "Michael Johnson",
			ListingName: "3B W1 C - 42 Notting Hill Garden",
		},
		{
			ID:           7460,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       pf(2),
			PublicReview: "Had some issues during our stay. The property wasn't as clean as expected and there were noise issues from construction nearby. Host was responsive but couldn't resolve all issues.",
			ReviewCategory: []domain.ReviewCategory{
				{Category: "cleanliness", Rating: 4},
				{Category: "communication", Rating: 8},
				{Category: "location", Rating: 6},
				{Category: "noise", Rating: 2},
			},
			SubmittedAt: "2024-01-05 08:42:33",
			GuestName:   "Anna Williams",
			ListingName: "1B E2 E - 23 Brick Lane Modern",
		},
	}
}
