package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures across the workflow. Handlers map them to
// user-facing behavior: validation errors re-prompt without a state change,
// persistence errors abort the submit pipeline before notification, and
// notification errors are warnings that never roll back persisted data.
var (
	ErrTagValidation   = goerr.NewTag("validation")
	ErrTagPersistence  = goerr.NewTag("persistence")
	ErrTagNotification = goerr.NewTag("notification")
	ErrTagDataLoad     = goerr.NewTag("data_load")
)
