package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionID identifies one survey session (one state machine instance)
type SessionID string

// NewSessionID generates a new random session ID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// Validate checks if the SessionID is a well-formed UUID
func (id SessionID) Validate() error {
	if id == "" {
		return goerr.New("session ID cannot be empty", goerr.T(ErrTagValidation))
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "session ID must be a UUID", goerr.T(ErrTagValidation), goerr.V("id", id))
	}
	return nil
}

// String returns the string representation of SessionID
func (id SessionID) String() string {
	return string(id)
}

// TokenID identifies an issued authentication token
type TokenID string

// NewTokenID generates a new random token ID
func NewTokenID() TokenID {
	return TokenID(uuid.New().String())
}

// String returns the string representation of TokenID
func (id TokenID) String() string {
	return string(id)
}

// SubmissionID identifies one persisted submission in the index
type SubmissionID string

// NewSubmissionID generates a new random submission ID
func NewSubmissionID() SubmissionID {
	return SubmissionID(uuid.New().String())
}

// String returns the string representation of SubmissionID
func (id SubmissionID) String() string {
	return string(id)
}
