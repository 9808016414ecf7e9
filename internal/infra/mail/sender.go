package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/admitly/lead-capture-api/internal/usecase"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

var reportTemplate = template.Must(template.New("reconcile-report").Parse(`Reconciliation sweep finished with failures.

Attempted: {{.Attempted}}
Synced:    {{.Synced}}
Failed:    {{.Failed}}

Failures:
{{range .Failures}}  - lead {{.LeadID}} ({{.Email}}): {{.Reason}}
{{end}}`))

// NotifyReconcileReport mails the sweep summary to the configured admin
// address. Only called for sweeps that had failures.
func (s *EmailSender) NotifyReconcileReport(summary *usecase.ReconcileSummary) error {
	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, summary); err != nil {
		return fmt.Errorf("rendering reconcile report: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Lead sheet sync: %d leads failed to sync", summary.Failed))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending report mail: %w", err)
	}

	return nil
}
