package app

import (
	"math"
	"sort"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// BuildAnalytics reduces a review collection to the dashboard summary. Pure
// function of its input; the clock is never consulted.
func BuildAnalytics(reviews []domain.NormalizedReview) domain.ReviewAnalytics {
	a := domain.ReviewAnalytics{
		TotalReviews:       len(reviews),
		RatingDistribution: map[int]int{},
		CategoryAverages:   map[string]float64{},
		TrendsOverTime:     []domain.TrendPoint{},
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
		a.RatingDistribution[int(math.Floor(r.Rating))]++
	}
	if len(reviews) > 0 {
		a.AverageRating = round1(sum / float64(len(reviews)))
	}

	a.CategoryAverages = categoryAverages(reviews)
	a.TrendsOverTime = trendsOverTime(reviews)
	a.TopIssues = topIssues(a.CategoryAverages)
	a.BestPerformingProperties = bestProperties(reviews)
	return a
}

// categoryAverages flattens category samples across all reviews and projects
// each group's mean from the provider's 0-10 scale onto 1-5.
func categoryAverages(reviews []domain.NormalizedReview) map[string]float64 {
	type acc struct {
		total float64
		count int
	}
	groups := map[string]*acc{}
	for _, r := range reviews {
		for _, c := range r.Categories {
			g, ok := groups[c.Category]
			if !ok {
				g = &acc{}
				groups[c.Category] = g
			}
			g.total += c.Rating
			g.count++
		}
	}
	out := make(map[string]float64, len(groups))
	for label, g := range groups {
		out[label] = round1(tenToFiveScale(g.total / float64(g.count)))
	}
	return out
}

// trendsOverTime buckets reviews by calendar date (UTC) and emits one point
// per date, ascending by date string.
func trendsOverTime(reviews []domain.NormalizedReview) []domain.TrendPoint {
	type bucket struct {
		sum   float64
		count int
	}
	byDate := map[string]*bucket{}
	for _, r := range reviews {
		d := r.SubmittedAt.UTC().Format("2006-01-02")
		b, ok := byDate[d]
		if !ok {
			b = &bucket{}
			byDate[d] = b
		}
		b.sum += r.Rating
		b.count++
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.TrendPoint, 0, len(dates))
	for _, d := range dates {
		b := byDate[d]
		out = append(out, domain.TrendPoint{
			Date:   d,
			Rating: round1(b.sum / float64(b.count)),
			Count:  b.count,
		})
	}
	return out
}

// topIssues lists up to three category labels averaging below 4.0 on the
// 5-scale, worst first.
func topIssues(averages map[string]float64) []string {
	type scored struct {
		label string
		avg   float64
	}
	var low []scored
	for label, avg := range averages {
		if avg < 4.0 {
			low = append(low, scored{label, avg})
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].avg != low[j].avg {
			return low[i].avg < low[j].avg
		}
		return low[i].label < low[j].label
	})
	if len(low) > 3 {
		low = low[:3]
	}
	out := make([]string, 0, len(low))
	for _, s := range low {
		out = append(out, s.label)
	}
	return out
}

// bestProperties lists up to two property names by highest average rating.
func bestProperties(reviews []domain.NormalizedReview) []string {
	type acc struct {
		name  string
		sum   float64
		count int
	}
	byProp := map[string]*acc{}
	for _, r := range reviews {
		g, ok := byProp[r.PropertyID]
		if !ok {
			g = &acc{name: r.PropertyName}
			byProp[r.PropertyID] = g
		}
		g.sum += r.Rating
		g.count++
	}
	all := make([]*acc, 0, len(byProp))
	for _, g := range byProp {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool {
		ai, aj := all[i].sum/float64(all[i].count), all[j].sum/float64(all[j].count)
		if ai != aj {
			return ai > aj
		}
		return all[i].name < all[j].name
	})
	if len(all) > 2 {
		all = all[:2]
	}
	out := make([]string, 0, len(all))
	for _, g := range all {
		out = append(out, g.name)
	}
	return out
}
