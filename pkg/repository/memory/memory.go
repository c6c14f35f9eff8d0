package memory

import (
	"errors"

	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	session    *sessionRepository
	submission *submissionRepository
	tokens     *tokenStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		session:    newSessionRepository(),
		submission: newSubmissionRepository(),
		tokens:     newTokenStore(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

func (m *Memory) Submission() interfaces.SubmissionRepository {
	return m.submission
}

func (m *Memory) Close() error {
	return nil
}
