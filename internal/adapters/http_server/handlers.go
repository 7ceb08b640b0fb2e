package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/app"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

type Handlers struct{ S *app.ReviewService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// envelope is the success payload shape the dashboard frontend expects.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/reviews/hostaway", h.listHostawayReviews)
	s.mux.Get("/v1/reviews/manage", h.listManagedReviews)
	s.mux.Post("/v1/reviews/manage", h.setApproval)
	s.mux.Put("/v1/reviews/manage", h.bulkSetApproval)
	s.mux.Get("/v1/reviews/google", h.searchGoogleReviews)
	s.mux.Get("/v1/properties/{id}/reviews", h.listPublicReviews)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(envelope{Success: true, Data: v})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// upstreamProblem maps the provider error taxonomy onto response statuses.
func upstreamProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		writeProblem(w, http.StatusNotImplemented, "Not Configured",
			"GOOGLE_PLACES_API_KEY environment variable is required")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeProblem(w, http.StatusTooManyRequests, "Quota Exceeded",
			"provider quota exceeded; try again later")
	case errors.Is(err, domain.ErrAccessDenied):
		writeProblem(w, http.StatusForbidden, "Access Denied",
			"provider rejected the configured credentials")
	case errors.Is(err, domain.ErrInvalidRequest):
		writeProblem(w, http.StatusBadRequest, "Invalid Request",
			"provider rejected the request parameters")
	default:
		writeProblem(w, http.StatusBadGateway, "Upstream Failure", err.Error())
	}
}

func (h *Handlers) listHostawayReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := app.Filters{
		Property: q.Get("property"),
		Status:   q.Get("status"),
	}
	if rs := q.Get("rating"); rs != "" {
		min, err := strconv.ParseFloat(rs, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid rating", "rating must be a number")
			return
		}
		f.MinRating = min
	}

	reviews, analytics, err := h.S.ListReviews(r.Context(), f)
	if err != nil {
		upstreamProblem(w, err)
		return
	}
	writeCached(w, r, map[string]any{
		"reviews":   reviews,
		"analytics": analytics,
		"total":     len(reviews),
		"filters": map[string]string{
			"property": f.Property,
			"rating":   q.Get("rating"),
			"status":   f.Status,
		},
	})
}

func (h *Handlers) listManagedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.S.ListAllReviews(r.Context())
	if err != nil {
		upstreamProblem(w, err)
		return
	}
	writeCached(w, r, reviews)
}

type approvalRequest struct {
	ReviewID   string `json:"reviewId"`
	IsApproved *bool  `json:"isApproved"`
	IsPublic   *bool  `json:"isPublic"`
}

func (h *Handlers) setApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON")
		return
	}
	if req.ReviewID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "reviewId is required")
		return
	}
	if err := h.S.SetApproval(req.ReviewID, req.IsApproved, req.IsPublic); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	rec, _ := h.S.GetApproval(req.ReviewID)
	writeJSON(w, http.StatusOK, map[string]any{
		"reviewId":   req.ReviewID,
		"isApproved": rec.IsApproved,
		"isPublic":   rec.IsPublic,
	})
}

type bulkApprovalRequest struct {
	Updates json.RawMessage `json:"updates"`
}

func (h *Handlers) bulkSetApproval(w http.ResponseWriter, r *http.Request) {
	var req bulkApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON")
		return
	}

	// shape check first: a non-array payload must not mutate anything
	var updates []domain.ApprovalUpdate
	if err := json.Unmarshal(req.Updates, &updates); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "updates must be an array")
		return
	}

	applied := h.S.BulkApprove(updates)
	writeJSON(w, http.StatusOK, map[string]any{
		"updated": applied,
		"total":   len(updates),
	})
}

func (h *Handlers) searchGoogleReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	property := q.Get("property")
	if property == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Parameter",
			"provide a property name to search for google reviews")
		return
	}
	address := q.Get("address")

	reviews, err := h.S.SearchPlacesReviews(r.Context(), property, address)
	if err != nil {
		upstreamProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews":  reviews,
		"total":    len(reviews),
		"property": property,
		"address":  address,
		"source":   "google_places_api",
	})
}

func (h *Handlers) listPublicReviews(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	reviews, err := h.S.ListPublicReviews(r.Context(), propertyID)
	if err != nil {
		upstreamProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"propertyId": propertyID,
		"reviews":    reviews,
		"total":      len(reviews),
	})
}
