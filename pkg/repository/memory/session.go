package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.Session
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[types.SessionID]*model.Session),
	}
}

func copySession(s *model.Session) *model.Session {
	copied := &model.Session{
		ID:                   s.ID,
		State:                s.State,
		CustomHazard:         s.CustomHazard,
		ResolvedWard:         s.ResolvedWard,
		AccuracyAcknowledged: s.AccuracyAcknowledged,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
		ScoredAnswers:        make(map[string]*model.ScoredAnswer, len(s.ScoredAnswers)),
		DescriptiveAnswers:   make(map[model.AnswerKey]types.Level, len(s.DescriptiveAnswers)),
	}

	copied.SelectedHazards = make([]string, len(s.SelectedHazards))
	copy(copied.SelectedHazards, s.SelectedHazards)

	for hazard, a := range s.ScoredAnswers {
		answer := *a
		copied.ScoredAnswers[hazard] = &answer
	}
	for key, level := range s.DescriptiveAnswers {
		copied.DescriptiveAnswers[key] = level
	}

	if s.Respondent != nil {
		respondent := *s.Respondent
		copied.Respondent = &respondent
	}
	if s.Artifacts != nil {
		artifacts := *s.Artifacts
		copied.Artifacts = &artifacts
	}

	return copied
}

func (r *sessionRepository) Create(ctx context.Context, s *model.Session) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID]; exists {
		return nil, goerr.New("session already exists", goerr.V("id", s.ID))
	}

	created := copySession(s)
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.sessions[created.ID] = created
	return copySession(created), nil
}

func (r *sessionRepository) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	return copySession(s), nil
}

func (r *sessionRepository) Update(ctx context.Context, s *model.Session) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sessions[s.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", s.ID))
	}

	updated := copySession(s)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.sessions[updated.ID] = updated
	return copySession(updated), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	delete(r.sessions, id)
	return nil
}
