package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Notifier sends notifications over SMTP
type Notifier struct {
	client *gomail.Client
	from   string
}

var _ interfaces.Notifier = &Notifier{}

// New creates an SMTP notifier. TLS is negotiated opportunistically;
// servers on the submission port (465) use implicit TLS.
func New(host string, port int, username, password, from string) (*Notifier, error) {
	if host == "" {
		return nil, goerr.New("SMTP host is required")
	}
	if from == "" {
		return nil, goerr.New("sender address is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if port == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	}
	if username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client", goerr.V("host", host))
	}

	return &Notifier{client: client, from: from}, nil
}

// Notify sends one message with attachments to all recipients
func (n *Notifier) Notify(ctx context.Context, notification interfaces.Notification) error {
	if len(notification.Recipients) == 0 {
		return goerr.New("notification has no recipients", goerr.T(types.ErrTagNotification))
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return goerr.Wrap(err, "invalid sender address", goerr.T(types.ErrTagNotification), goerr.V("from", n.from))
	}
	if err := msg.To(notification.Recipients...); err != nil {
		return goerr.Wrap(err, "invalid recipient address", goerr.T(types.ErrTagNotification))
	}
	msg.Subject(notification.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, notification.Body)
	for _, attachment := range notification.Attachments {
		msg.AttachFile(attachment)
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to send mail", goerr.T(types.ErrTagNotification),
			goerr.V("subject", notification.Subject))
	}
	return nil
}
