package types

import "fmt"

// SessionState represents the workflow state of a survey session
type SessionState string

const (
	StateSelectingHazards SessionState = "SELECTING_HAZARDS"
	StateRespondentInfo   SessionState = "RESPONDENT_INFO"
	StateHazardEvaluation SessionState = "HAZARD_EVALUATION"
	StateSubmitted        SessionState = "SUBMITTED"
)

// AllSessionStates returns all valid session states
func AllSessionStates() []SessionState {
	return []SessionState{
		StateSelectingHazards,
		StateRespondentInfo,
		StateHazardEvaluation,
		StateSubmitted,
	}
}

// IsValid checks if the session state is valid
func (s SessionState) IsValid() bool {
	switch s {
	case StateSelectingHazards,
		StateRespondentInfo,
		StateHazardEvaluation,
		StateSubmitted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the state allows no further transitions
func (s SessionState) IsTerminal() bool {
	return s == StateSubmitted
}

// CanTransitionTo reports whether a transition from s to next is allowed.
// The back transition from HazardEvaluation to RespondentInfo is explicit
// and non-destructive.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	switch s {
	case StateSelectingHazards:
		return next == StateRespondentInfo
	case StateRespondentInfo:
		return next == StateHazardEvaluation
	case StateHazardEvaluation:
		return next == StateRespondentInfo || next == StateSubmitted
	default:
		return false
	}
}

// String returns the string representation of the session state
func (s SessionState) String() string {
	return string(s)
}

// ParseSessionState parses a string into a SessionState
func ParseSessionState(s string) (SessionState, error) {
	state := SessionState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid session state: %s", s)
	}
	return state, nil
}
