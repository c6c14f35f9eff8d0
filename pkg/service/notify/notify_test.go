package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/notify"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []interfaces.Notification
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, notification interfaces.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

func testSubmission(email string) *model.Submission {
	return &model.Submission{
		ID:         types.NewSubmissionID(),
		Respondent: &model.Respondent{Name: "Jane Doe", Ward: "Ward 12", Email: email},
		Variant:    types.VariantScored,
		Records:    []model.Record{{Hazard: "Flood", RiskScore: 6}},
	}
}

func TestNotifySubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("respondent and admins both get the zip", func(t *testing.T) {
		recorder := &recordingNotifier{}
		svc := notify.New(recorder, []string{"admin@example.com"})

		err := svc.NotifySubmission(ctx, testSubmission("jane@example.com"), "/tmp/bundle.zip")
		gt.NoError(t, err).Required()

		gt.Array(t, recorder.sent).Length(2)
		for _, n := range recorder.sent {
			gt.Array(t, n.Attachments).Length(1)
			gt.Value(t, n.Attachments[0]).Equal("/tmp/bundle.zip")
		}
	})

	t.Run("no respondent email means admin mail only", func(t *testing.T) {
		recorder := &recordingNotifier{}
		svc := notify.New(recorder, []string{"admin@example.com"})

		err := svc.NotifySubmission(ctx, testSubmission(""), "/tmp/bundle.zip")
		gt.NoError(t, err).Required()

		gt.Array(t, recorder.sent).Length(1)
		gt.Array(t, recorder.sent[0].Recipients).Length(1)
		gt.Value(t, recorder.sent[0].Recipients[0]).Equal("admin@example.com")
	})

	t.Run("dispatch failure is returned", func(t *testing.T) {
		recorder := &recordingNotifier{err: errors.New("smtp down")}
		svc := notify.New(recorder, []string{"admin@example.com"})

		err := svc.NotifySubmission(ctx, testSubmission("jane@example.com"), "/tmp/bundle.zip")
		gt.Error(t, err)
	})

	t.Run("nil notifier is a no-op", func(t *testing.T) {
		svc := notify.New(nil, nil)
		gt.NoError(t, svc.NotifySubmission(ctx, testSubmission("jane@example.com"), "/tmp/bundle.zip"))
	})
}
