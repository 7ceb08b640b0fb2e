package domain

import "errors"

// Upstream and input error taxonomy. Adapters translate transport-level
// failures into these so handlers can pick a status without string matching.
var (
	// ErrNotConfigured means a provider credential is absent; callers should
	// render setup instructions rather than a generic failure.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrQuotaExceeded means the upstream rate/quota limit was hit; the user
	// may retry later. Never retried automatically.
	ErrQuotaExceeded = errors.New("provider quota exceeded")

	// ErrAccessDenied means the credential was rejected; operator action is
	// required before a retry can succeed.
	ErrAccessDenied = errors.New("provider access denied")

	// ErrInvalidRequest means the upstream rejected the request parameters.
	ErrInvalidRequest = errors.New("invalid provider request")

	// ErrInvalidInput marks malformed caller payloads (e.g. an approval update
	// without a review id). No state is mutated when it is returned.
	ErrInvalidInput = errors.New("invalid input")
)
