package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrSessionNotFound = errors.New("session not found")

	// Workflow errors
	ErrInvalidTransition   = errors.New("operation not allowed in current state")
	ErrNoHazardsSelected   = errors.New("at least one hazard must be selected")
	ErrUnknownHazard       = errors.New("hazard is not in the catalog or selection")
	ErrNotAcknowledged     = errors.New("accuracy acknowledgment is required")
	ErrAllAnswersDefault   = errors.New("at least one hazard must have a non-default answer")
	ErrWardsUnavailable    = errors.New("ward boundaries are not configured")
	ErrArtifactUnavailable = errors.New("artifact is not available for this session")

	// Access control errors
	ErrInvalidCredentials = errors.New("invalid access secret")
	ErrTokenExpired       = errors.New("token is expired")
	ErrAdminRequired      = errors.New("admin access required")
)

// Context keys for error values
const (
	SessionIDKey = "session_id"
	HazardKey    = "hazard"
)
