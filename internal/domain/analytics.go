package domain

// TrendPoint is one calendar-day bucket of review activity.
type TrendPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// ReviewAnalytics is the derived dashboard summary. It is computed on demand
// from a review collection and never stored.
type ReviewAnalytics struct {
	TotalReviews             int                `json:"totalReviews"`
	AverageRating            float64            `json:"averageRating"`
	RatingDistribution       map[int]int        `json:"ratingDistribution"`
	CategoryAverages         map[string]float64 `json:"categoryAverages"`
	TrendsOverTime           []TrendPoint       `json:"trendsOverTime"`
	TopIssues                []string           `json:"topIssues"`
	BestPerformingProperties []string           `json:"bestPerformingProperties"`
}

// ApprovalRecord is a manager decision for one review id.
type ApprovalRecord struct {
	IsApproved bool `json:"isApproved"`
	IsPublic   bool `json:"isPublic"`
}

// ApprovalUpdate is one entry of a bulk approval request. Nil fields mean
// "not specified by the caller".
type ApprovalUpdate struct {
	ReviewID   string `json:"reviewId"`
	IsApproved *bool  `json:"isApproved"`
	IsPublic   *bool  `json:"isPublic"`
}
