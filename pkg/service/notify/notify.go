package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/async"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// Service fans out the per-submission notifications: one message to the
// respondent when an email was given, one to the admin list, and an
// optional best-effort Slack post. Dispatch failures never roll back
// persisted data.
type Service struct {
	notifier     interfaces.Notifier
	adminEmails  []string
	slackClient  *slack.Client
	slackChannel string
}

// Option is a functional option for Service
type Option func(*Service)

// WithSlack enables the admin Slack post
func WithSlack(token, channel string) Option {
	return func(s *Service) {
		s.slackClient = slack.New(token)
		s.slackChannel = channel
	}
}

// New creates a notification service
func New(notifier interfaces.Notifier, adminEmails []string, opts ...Option) *Service {
	s := &Service{
		notifier:    notifier,
		adminEmails: adminEmails,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NotifySubmission sends the submission notifications with the zip bundle
// attached. Email failures are returned so the caller can surface a
// warning; the Slack post is dispatched asynchronously and only logged.
func (s *Service) NotifySubmission(ctx context.Context, sub *model.Submission, zipPath string) error {
	s.postSlack(ctx, sub)

	if s.notifier == nil {
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)

	if sub.Respondent.Email != "" {
		eg.Go(func() error {
			return s.notifier.Notify(egCtx, interfaces.Notification{
				Subject:     "Your Ward Hazard Survey Submission",
				Body:        "Thank you for completing the survey. Your files are attached as a ZIP archive.",
				Recipients:  []string{sub.Respondent.Email},
				Attachments: []string{zipPath},
			})
		})
	}

	if len(s.adminEmails) > 0 {
		eg.Go(func() error {
			return s.notifier.Notify(egCtx, interfaces.Notification{
				Subject:     "New Ward Hazard Survey Submission",
				Body:        fmt.Sprintf("A new survey has been submitted for ward %s. See attached ZIP file.", sub.Respondent.Ward),
				Recipients:  s.adminEmails,
				Attachments: []string{zipPath},
			})
		})
	}

	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to dispatch submission notification", goerr.T(types.ErrTagNotification))
	}
	return nil
}

func (s *Service) postSlack(ctx context.Context, sub *model.Submission) {
	if s.slackClient == nil || s.slackChannel == "" {
		return
	}

	text := fmt.Sprintf("New hazard survey submission: ward %s, %d hazards",
		sub.Respondent.Ward, len(sub.Hazards()))

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, _, err := s.slackClient.PostMessageContext(ctx, s.slackChannel,
			slack.MsgOptionText(text, false))
		if err != nil {
			return goerr.Wrap(err, "failed to post Slack notification", goerr.T(types.ErrTagNotification))
		}
		logging.From(ctx).Debug("Slack notification posted", "channel", s.slackChannel)
		return nil
	})
}
