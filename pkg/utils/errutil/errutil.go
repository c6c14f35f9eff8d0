package errutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// Handle logs the error with its structured context and returns it
// unchanged so callers can keep propagating it.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	return err
}

// StatusCode maps an error to an HTTP status using its tags. Untagged
// errors are treated as internal failures.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var ge *goerr.Error
	if errors.As(err, &ge) {
		switch {
		case ge.HasTag(types.ErrTagValidation):
			return http.StatusBadRequest
		case ge.HasTag(types.ErrTagDataLoad):
			return http.StatusUnprocessableEntity
		case ge.HasTag(types.ErrTagPersistence),
			ge.HasTag(types.ErrTagNotification):
			return http.StatusInternalServerError
		}
	}

	return http.StatusInternalServerError
}

// HandleHTTP logs the error and writes an HTTP error response. Server-side
// failures log at error level, client mistakes at warn.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	statusCode := StatusCode(err)
	logger := logging.From(ctx)

	attrs := []any{"status", statusCode, "error", err.Error()}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		attrs = append(attrs, "values", ge.Values())
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("HTTP error", attrs...)
	} else {
		logger.Warn("HTTP error", attrs...)
	}

	http.Error(w, err.Error(), statusCode)
}
