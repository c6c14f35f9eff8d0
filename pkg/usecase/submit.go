package usecase

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/archive"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// SubmitResult carries the submitted session plus a non-fatal notification
// error. NotifyError being set means the files are durable but the emails
// did not go out; callers surface it as a warning.
type SubmitResult struct {
	Session     *model.Session
	NotifyError error
}

// Submit finalizes an evaluating session. Pipeline order is build records,
// persist artifacts, append to the master dataset, bundle, index, notify.
// Any persistence failure aborts before notifications go out; notification
// failures never roll back persisted data.
func (uc *SessionUseCase) Submit(ctx context.Context, id types.SessionID, acknowledged bool) (*SubmitResult, error) {
	session, err := uc.evaluating(ctx, id)
	if err != nil {
		return nil, err
	}

	session.AccuracyAcknowledged = acknowledged
	if !session.AccuracyAcknowledged {
		return nil, goerr.Wrap(ErrNotAcknowledged, "submission rejected", goerr.T(types.ErrTagValidation))
	}
	if session.Respondent == nil {
		return nil, goerr.Wrap(ErrInvalidTransition, "respondent info is missing", goerr.T(types.ErrTagValidation))
	}
	if uc.catalog.Variant == types.VariantScored && !session.HasNonDefaultAnswer(uc.catalog.Levels) {
		return nil, goerr.Wrap(ErrAllAnswersDefault, "submission rejected", goerr.T(types.ErrTagValidation))
	}

	records, err := export.BuildRecords(uc.catalog, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build records", goerr.V(SessionIDKey, id))
	}

	sub := &model.Submission{
		ID:         types.NewSubmissionID(),
		Respondent: session.Respondent,
		Variant:    uc.catalog.Variant,
		Records:    records,
	}

	artifacts, err := uc.store.Persist(ctx, sub)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to persist submission artifacts", goerr.V(SessionIDKey, id))
	}

	if err := uc.store.Append(ctx, sub); err != nil {
		return nil, goerr.Wrap(err, "failed to append to master dataset", goerr.V(SessionIDKey, id))
	}

	label := sub.Respondent.LocalMunicipality
	if label == "" {
		label = sub.Respondent.Ward
	}
	zipPath, err := archive.Bundle(ctx, filepath.Dir(artifacts.CSVPath), label, uc.store.Now(), artifacts.Paths())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bundle artifacts", goerr.V(SessionIDKey, id))
	}
	artifacts.ZipPath = zipPath

	summary := model.Summarize(sub, artifacts, uc.store.Now())
	if _, err := uc.repo.Submission().Create(ctx, summary); err != nil {
		return nil, goerr.Wrap(err, "failed to index submission", goerr.V(SessionIDKey, id))
	}

	var notifyErr error
	if uc.notifier != nil {
		if notifyErr = uc.notifier.NotifySubmission(ctx, sub, zipPath); notifyErr != nil {
			logging.From(ctx).Warn("submission notification failed",
				"sessionID", id, "submissionID", sub.ID, "error", notifyErr.Error())
		}
	}

	session.Artifacts = artifacts
	session.State = types.StateSubmitted

	updated, err := uc.update(ctx, session)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("submission completed",
		"sessionID", id,
		"submissionID", sub.ID,
		"ward", sub.Respondent.Ward,
		"hazards", len(sub.Hazards()),
		"records", len(sub.Records))

	return &SubmitResult{Session: updated, NotifyError: notifyErr}, nil
}

// Artifact returns a persisted artifact path for a submitted session
func (uc *SessionUseCase) Artifact(ctx context.Context, id types.SessionID, kind types.ArtifactKind) (string, error) {
	session, err := uc.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if session.State != types.StateSubmitted {
		return "", goerr.Wrap(ErrArtifactUnavailable, "session is not submitted",
			goerr.T(types.ErrTagValidation), goerr.V("state", session.State))
	}

	path := session.Artifacts.Path(kind)
	if path == "" {
		return "", goerr.Wrap(ErrArtifactUnavailable, "artifact missing",
			goerr.T(types.ErrTagValidation), goerr.V("kind", kind))
	}

	return path, nil
}
