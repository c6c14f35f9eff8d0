package http

import (
	"encoding/csv"
	"net/http"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/umlindi-lab/wardrisk/pkg/usecase"
	"github.com/umlindi-lab/wardrisk/pkg/utils/errutil"
)

// masterHandler streams the master dataset as CSV
func masterHandler(uc *usecase.AdminUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.Master(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}
		if rows == nil {
			http.Error(w, "no submissions yet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(uc.MasterPath())+"\"")

		cw := csv.NewWriter(w)
		if err := cw.WriteAll(rows); err != nil {
			errutil.Handle(r.Context(), goerr.Wrap(err, "failed to stream master dataset"), "master download aborted") //nolint:errcheck
		}
	}
}

// submissionsHandler lists the submission index as JSON
func submissionsHandler(uc *usecase.AdminUseCase) http.HandlerFunc {
	type summary struct {
		ID                string `json:"id"`
		RespondentName    string `json:"respondentName"`
		Ward              string `json:"ward"`
		LocalMunicipality string `json:"localMunicipality,omitempty"`
		Email             string `json:"email,omitempty"`
		Variant           string `json:"variant"`
		HazardCount       int    `json:"hazardCount"`
		RecordCount       int    `json:"recordCount"`
		MaxRiskScore      int    `json:"maxRiskScore"`
		CreatedAt         string `json:"createdAt"`
	}
	type response struct {
		Submissions []summary `json:"submissions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := uc.Submissions(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err)
			return
		}

		resp := response{Submissions: make([]summary, len(summaries))}
		for i, s := range summaries {
			resp.Submissions[i] = summary{
				ID:                s.ID.String(),
				RespondentName:    s.RespondentName,
				Ward:              s.Ward,
				LocalMunicipality: s.LocalMunicipality,
				Email:             s.Email,
				Variant:           string(s.Variant),
				HazardCount:       s.HazardCount,
				RecordCount:       s.RecordCount,
				MaxRiskScore:      s.MaxRiskScore,
				CreatedAt:         s.CreatedAt.Format(time.RFC3339),
			}
		}

		respondJSON(w, r, http.StatusOK, resp)
	}
}
