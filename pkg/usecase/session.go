package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
	"github.com/umlindi-lab/wardrisk/pkg/service/geo"
	"github.com/umlindi-lab/wardrisk/pkg/service/notify"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// SessionUseCase drives the survey state machine. Every mutation loads the
// session, checks the state guard, applies the change and writes it back.
type SessionUseCase struct {
	repo     interfaces.Repository
	catalog  *config.Catalog
	store    *export.Store
	notifier *notify.Service
	wards    *geo.Resolver
}

func NewSessionUseCase(repo interfaces.Repository, catalog *config.Catalog, store *export.Store, notifier *notify.Service, wards *geo.Resolver) *SessionUseCase {
	return &SessionUseCase{
		repo:     repo,
		catalog:  catalog,
		store:    store,
		notifier: notifier,
		wards:    wards,
	}
}

// Create starts a fresh session in the hazard selection state
func (uc *SessionUseCase) Create(ctx context.Context) (*model.Session, error) {
	session, err := uc.repo.Session().Create(ctx, model.NewSession())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	logging.From(ctx).Info("session created", "sessionID", session.ID)

	return session, nil
}

// Get retrieves a session by ID
func (uc *SessionUseCase) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	session, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrSessionNotFound, "failed to get session", goerr.V(SessionIDKey, id))
	}
	return session, nil
}

// SelectHazards stores the hazard selection and advances the session to
// respondent info. At least one cataloged hazard or a custom hazard is
// required.
func (uc *SessionUseCase) SelectHazards(ctx context.Context, id types.SessionID, hazards []string, customHazard string) (*model.Session, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != types.StateSelectingHazards {
		return nil, goerr.Wrap(ErrInvalidTransition, "hazard selection is closed",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}

	var selected []string
	for _, h := range hazards {
		if !uc.catalog.HasHazard(h) {
			return nil, goerr.Wrap(ErrUnknownHazard, "unknown hazard",
				goerr.T(types.ErrTagValidation), goerr.V(HazardKey, h))
		}
		if !slices.Contains(selected, h) {
			selected = append(selected, h)
		}
	}

	if len(selected) == 0 && customHazard == "" {
		return nil, goerr.Wrap(ErrNoHazardsSelected, "empty selection", goerr.T(types.ErrTagValidation))
	}

	session.SelectedHazards = selected
	session.CustomHazard = customHazard
	session.State = types.StateRespondentInfo

	return uc.update(ctx, session)
}

// ResolveWard resolves a map interaction into a ward name and records it on
// the session. Manual ward entry through SetRespondent remains available.
func (uc *SessionUseCase) ResolveWard(ctx context.Context, id types.SessionID, event model.MapEvent) (*model.Session, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != types.StateRespondentInfo {
		return nil, goerr.Wrap(ErrInvalidTransition, "ward selection is only available while entering respondent info",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}

	if event.Kind == model.MapEventNone {
		return session, nil
	}

	if uc.wards == nil {
		return nil, goerr.Wrap(ErrWardsUnavailable, "no ward boundaries loaded", goerr.T(types.ErrTagValidation))
	}

	ward, ok := uc.wards.Resolve(event)
	if !ok {
		return nil, goerr.New("location is outside the known wards",
			goerr.T(types.ErrTagValidation), goerr.V("event", event.Kind))
	}

	session.ResolvedWard = ward

	return uc.update(ctx, session)
}

// SetRespondent stores the respondent details and advances the session to
// hazard evaluation. The ward falls back to the map-resolved ward when the
// respondent left it blank.
func (uc *SessionUseCase) SetRespondent(ctx context.Context, id types.SessionID, respondent *model.Respondent) (*model.Session, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != types.StateRespondentInfo {
		return nil, goerr.Wrap(ErrInvalidTransition, "respondent info is not being collected",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}

	r := *respondent
	if r.Ward == "" {
		r.Ward = session.ResolvedWard
	}
	if r.Date.IsZero() {
		r.Date = uc.store.Now()
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	session.Respondent = &r
	session.State = types.StateHazardEvaluation

	return uc.update(ctx, session)
}

// RecordScoredAnswers stores likelihood/impact/disruption choices for the
// scored schema variant. Answers may be recorded incrementally.
func (uc *SessionUseCase) RecordScoredAnswers(ctx context.Context, id types.SessionID, answers []model.ScoredAnswer) (*model.Session, error) {
	session, err := uc.evaluating(ctx, id)
	if err != nil {
		return nil, err
	}

	asked := session.HazardsToAsk()
	for i := range answers {
		a := answers[i]
		if !slices.Contains(asked, a.Hazard) {
			return nil, goerr.Wrap(ErrUnknownHazard, "hazard was not selected",
				goerr.T(types.ErrTagValidation), goerr.V(HazardKey, a.Hazard))
		}
		if err := a.Validate(uc.catalog.Levels); err != nil {
			return nil, err
		}
		session.ScoredAnswers[a.Hazard] = &a
	}

	return uc.update(ctx, session)
}

// RecordDescriptiveAnswers stores per-question option choices for the
// descriptive schema variant.
func (uc *SessionUseCase) RecordDescriptiveAnswers(ctx context.Context, id types.SessionID, answers []model.QuestionAnswer) (*model.Session, error) {
	session, err := uc.evaluating(ctx, id)
	if err != nil {
		return nil, err
	}

	asked := session.HazardsToAsk()
	for _, a := range answers {
		if !slices.Contains(asked, a.Hazard) {
			return nil, goerr.Wrap(ErrUnknownHazard, "hazard was not selected",
				goerr.T(types.ErrTagValidation), goerr.V(HazardKey, a.Hazard))
		}

		q, ok := uc.findQuestion(a.Question)
		if !ok {
			return nil, goerr.New("unknown question",
				goerr.T(types.ErrTagValidation), goerr.V("question", a.Question))
		}
		if !slices.Contains(q.Options, a.Response) {
			return nil, goerr.New("response is not one of the question options",
				goerr.T(types.ErrTagValidation), goerr.V("question", a.Question), goerr.V("response", a.Response))
		}

		session.DescriptiveAnswers[model.AnswerKey{Hazard: a.Hazard, Question: a.Question}] = a.Response
	}

	return uc.update(ctx, session)
}

// Back returns an evaluating session to the respondent info step. Recorded
// answers stay on the session.
func (uc *SessionUseCase) Back(ctx context.Context, id types.SessionID) (*model.Session, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.State.CanTransitionTo(types.StateRespondentInfo) {
		return nil, goerr.Wrap(ErrInvalidTransition, "cannot go back from this step",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}

	session.State = types.StateRespondentInfo

	return uc.update(ctx, session)
}

func (uc *SessionUseCase) evaluating(ctx context.Context, id types.SessionID) (*model.Session, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != types.StateHazardEvaluation {
		return nil, goerr.Wrap(ErrInvalidTransition, "session is not evaluating hazards",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}
	return session, nil
}

func (uc *SessionUseCase) findQuestion(text string) (config.Question, bool) {
	for _, q := range uc.catalog.HazardQuestions {
		if q.Text == text {
			return q, true
		}
	}
	for _, q := range uc.catalog.CapacityQuestions {
		if q.Text == text {
			return q, true
		}
	}
	return config.Question{}, false
}

func (uc *SessionUseCase) update(ctx context.Context, session *model.Session) (*model.Session, error) {
	session.UpdatedAt = time.Now().UTC()

	updated, err := uc.repo.Session().Update(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update session", goerr.V(SessionIDKey, session.ID))
	}
	return updated, nil
}
