package http

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
	"github.com/umlindi-lab/wardrisk/pkg/utils/errutil"
	"github.com/umlindi-lab/wardrisk/pkg/utils/safe"
)

const dateLayout = "2006-01-02"

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

type scoredAnswerDTO struct {
	Hazard     string `json:"hazard"`
	Likelihood string `json:"likelihood"`
	Impact     string `json:"impact"`
	Disruption string `json:"disruption"`
}

type descriptiveAnswerDTO struct {
	Hazard   string `json:"hazard"`
	Question string `json:"question"`
	Response string `json:"response"`
}

type respondentDTO struct {
	Name                 string `json:"name"`
	Email                string `json:"email,omitempty"`
	DistrictMunicipality string `json:"districtMunicipality,omitempty"`
	LocalMunicipality    string `json:"localMunicipality,omitempty"`
	Ward                 string `json:"ward,omitempty"`
	ExtraInfo            string `json:"extraInfo,omitempty"`
	Date                 string `json:"date,omitempty"`
}

type sessionResponse struct {
	ID                 string                 `json:"id"`
	State              string                 `json:"state"`
	SelectedHazards    []string               `json:"selectedHazards,omitempty"`
	CustomHazard       string                 `json:"customHazard,omitempty"`
	ResolvedWard       string                 `json:"resolvedWard,omitempty"`
	Respondent         *respondentDTO         `json:"respondent,omitempty"`
	ScoredAnswers      []scoredAnswerDTO      `json:"scoredAnswers,omitempty"`
	DescriptiveAnswers []descriptiveAnswerDTO `json:"descriptiveAnswers,omitempty"`
	Artifacts          []string               `json:"artifacts,omitempty"`
}

func toSessionResponse(s *model.Session, cat *config.Catalog) sessionResponse {
	resp := sessionResponse{
		ID:              s.ID.String(),
		State:           s.State.String(),
		SelectedHazards: s.SelectedHazards,
		CustomHazard:    s.CustomHazard,
		ResolvedWard:    s.ResolvedWard,
	}

	if s.Respondent != nil {
		resp.Respondent = &respondentDTO{
			Name:                 s.Respondent.Name,
			Email:                s.Respondent.Email,
			DistrictMunicipality: s.Respondent.DistrictMunicipality,
			LocalMunicipality:    s.Respondent.LocalMunicipality,
			Ward:                 s.Respondent.Ward,
			ExtraInfo:            s.Respondent.ExtraInfo,
			Date:                 s.Respondent.Date.Format(dateLayout),
		}
	}

	// Answers follow catalog order so identical sessions render identically
	for _, hazard := range s.HazardsToAsk() {
		if a, ok := s.ScoredAnswers[hazard]; ok {
			resp.ScoredAnswers = append(resp.ScoredAnswers, scoredAnswerDTO{
				Hazard:     a.Hazard,
				Likelihood: a.Likelihood.String(),
				Impact:     a.Impact.String(),
				Disruption: a.Disruption.String(),
			})
		}
		for _, q := range cat.AllQuestions() {
			level, ok := s.DescriptiveAnswers[model.AnswerKey{Hazard: hazard, Question: q.Text}]
			if !ok {
				continue
			}
			resp.DescriptiveAnswers = append(resp.DescriptiveAnswers, descriptiveAnswerDTO{
				Hazard:   hazard,
				Question: q.Text,
				Response: level.String(),
			})
		}
	}

	if s.State == types.StateSubmitted {
		for _, kind := range []types.ArtifactKind{types.ArtifactCSV, types.ArtifactDOCX, types.ArtifactPDF, types.ArtifactZip} {
			if s.Artifacts.Path(kind) != "" {
				resp.Artifacts = append(resp.Artifacts, string(kind))
			}
		}
	}

	return resp
}

func sessionID(r *http.Request) (types.SessionID, error) {
	id := types.SessionID(chi.URLParam(r, "sessionID"))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// catalogHandler serves the question catalog for form rendering
func catalogHandler(uc *usecase.UseCases) http.HandlerFunc {
	type question struct {
		Text    string   `json:"text"`
		Options []string `json:"options"`
	}
	type response struct {
		Variant           string     `json:"variant"`
		Hazards           []string   `json:"hazards"`
		Levels            []string   `json:"levels"`
		HazardQuestions   []question `json:"hazardQuestions,omitempty"`
		CapacityQuestions []question `json:"capacityQuestions,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		cat := uc.Catalog()

		resp := response{
			Variant: string(cat.Variant),
			Hazards: cat.Hazards,
		}
		for _, l := range cat.Levels {
			resp.Levels = append(resp.Levels, l.String())
		}
		for _, q := range cat.HazardQuestions {
			opts := make([]string, len(q.Options))
			for i, o := range q.Options {
				opts[i] = o.String()
			}
			resp.HazardQuestions = append(resp.HazardQuestions, question{Text: q.Text, Options: opts})
		}
		for _, q := range cat.CapacityQuestions {
			opts := make([]string, len(q.Options))
			for i, o := range q.Options {
				opts[i] = o.String()
			}
			resp.CapacityQuestions = append(resp.CapacityQuestions, question{Text: q.Text, Options: opts})
		}

		respondJSON(w, r, http.StatusOK, resp)
	}
}

func createSessionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := uc.Session.Create(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusCreated, toSessionResponse(session, uc.Catalog()))
	}
}

func getSessionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		session, err := uc.Session.Get(r.Context(), id)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func selectHazardsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Hazards      []string `json:"hazards"`
		CustomHazard string   `json:"customHazard"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid hazard selection", goerr.T(types.ErrTagValidation)))
			return
		}

		session, err := uc.Session.SelectHazards(r.Context(), id, req.Hazards, req.CustomHazard)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func resolveWardHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Kind      string  `json:"kind"`
		Lat       float64 `json:"lat"`
		Lng       float64 `json:"lng"`
		FeatureID string  `json:"featureId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid map event", goerr.T(types.ErrTagValidation)))
			return
		}

		var event model.MapEvent
		switch model.MapEventKind(req.Kind) {
		case model.MapEventPoint:
			event = model.PointClicked(req.Lat, req.Lng)
		case model.MapEventFeature:
			event = model.FeatureSelected(req.FeatureID)
		case model.MapEventNone, "":
			event = model.NoSelection()
		default:
			errutil.HandleHTTP(r.Context(), w, goerr.New("unknown map event kind", goerr.T(types.ErrTagValidation), goerr.V("kind", req.Kind)))
			return
		}

		session, err := uc.Session.ResolveWard(r.Context(), id, event)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func setRespondentHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		var req respondentDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid respondent info", goerr.T(types.ErrTagValidation)))
			return
		}

		respondent := &model.Respondent{
			Name:                 req.Name,
			Email:                req.Email,
			DistrictMunicipality: req.DistrictMunicipality,
			LocalMunicipality:    req.LocalMunicipality,
			Ward:                 req.Ward,
			ExtraInfo:            req.ExtraInfo,
		}
		if req.Date != "" {
			date, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid date", goerr.T(types.ErrTagValidation), goerr.V("date", req.Date)))
				return
			}
			respondent.Date = date
		}

		session, err := uc.Session.SetRespondent(r.Context(), id, respondent)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func recordAnswersHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Scored      []scoredAnswerDTO      `json:"scored"`
		Descriptive []descriptiveAnswerDTO `json:"descriptive"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid answers", goerr.T(types.ErrTagValidation)))
			return
		}

		var session *model.Session
		switch uc.Catalog().Variant {
		case types.VariantScored:
			answers := make([]model.ScoredAnswer, len(req.Scored))
			for i, a := range req.Scored {
				answers[i] = model.ScoredAnswer{
					Hazard:     a.Hazard,
					Likelihood: types.Level(a.Likelihood),
					Impact:     types.Level(a.Impact),
					Disruption: types.Level(a.Disruption),
				}
			}
			session, err = uc.Session.RecordScoredAnswers(r.Context(), id, answers)

		case types.VariantDescriptive:
			answers := make([]model.QuestionAnswer, len(req.Descriptive))
			for i, a := range req.Descriptive {
				answers[i] = model.QuestionAnswer{
					Hazard:   a.Hazard,
					Question: a.Question,
					Response: types.Level(a.Response),
				}
			}
			session, err = uc.Session.RecordDescriptiveAnswers(r.Context(), id, answers)

		default:
			errutil.HandleHTTP(r.Context(), w, goerr.New("unsupported schema variant",
				goerr.T(types.ErrTagValidation),
				goerr.V("variant", uc.Catalog().Variant),
			))
			return
		}

		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func backHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		session, err := uc.Session.Back(r.Context(), id)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toSessionResponse(session, uc.Catalog()))
	}
}

func submitHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Acknowledged bool `json:"acknowledged"`
	}
	type response struct {
		sessionResponse
		Warning string `json:"warning,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid submit request", goerr.T(types.ErrTagValidation)))
			return
		}

		result, err := uc.Session.Submit(r.Context(), id, req.Acknowledged)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		resp := response{sessionResponse: toSessionResponse(result.Session, uc.Catalog())}
		if result.NotifyError != nil {
			resp.Warning = "submission saved, but the notification email could not be sent"
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

func artifactHandler(uc *usecase.SessionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		kind, err := types.ParseArtifactKind(chi.URLParam(r, "kind"))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid artifact kind", goerr.T(types.ErrTagValidation)))
			return
		}

		path, err := uc.Artifact(r.Context(), id, kind)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		f, err := os.Open(path) // #nosec G304 - path comes from the session's artifact set
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to open artifact",
				goerr.T(types.ErrTagPersistence), goerr.V("path", path)))
			return
		}
		defer safe.Close(r.Context(), f)

		w.Header().Set("Content-Type", kind.ContentType())
		w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(path)+"\"")
		safe.Copy(r.Context(), w, f)
	}
}
