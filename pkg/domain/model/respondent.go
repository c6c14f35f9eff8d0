package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Respondent holds the identity block of one submission. It is created
// once at the respondent-info step and is immutable after submit.
type Respondent struct {
	Name                 string
	Email                string
	DistrictMunicipality string
	LocalMunicipality    string
	Ward                 string
	ExtraInfo            string
	Date                 time.Time
}

// Validate checks the required respondent fields. Name and Ward are the
// only mandatory fields; everything else is optional.
func (r *Respondent) Validate() error {
	if r == nil {
		return goerr.New("respondent info is required", goerr.T(types.ErrTagValidation))
	}
	if r.Name == "" {
		return goerr.New("respondent name is required", goerr.T(types.ErrTagValidation))
	}
	if r.Ward == "" {
		return goerr.New("ward is required", goerr.T(types.ErrTagValidation))
	}
	return nil
}
