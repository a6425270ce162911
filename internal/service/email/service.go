package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"facilitrack/internal/config"
	"facilitrack/internal/domain"
)

type Service interface {
	SendReadingDecisionEmail(ctx context.Context, toEmail, recipientName, taskName string, status domain.ReadingStatus, comment *string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var decisionTemplate = template.Must(template.New("decision").Parse(`
<p>Hi {{.Name}},</p>
<p>Your reading for <strong>{{.Task}}</strong> was <strong>{{.Verdict}}</strong>.</p>
{{if .Comment}}<p>Reviewer comment: {{.Comment}}</p>{{end}}
<p>&mdash; Facilitrack</p>
`))

func (s *service) SendReadingDecisionEmail(ctx context.Context, toEmail, recipientName, taskName string, status domain.ReadingStatus, comment *string) error {
	verdict := "approved"
	subject := "Your reading was approved"
	if status == domain.ReadingRejected {
		verdict = "rejected"
		subject = "Your reading was rejected"
	}

	data := struct {
		Name    string
		Task    string
		Verdict string
		Comment string
	}{
		Name:    recipientName,
		Task:    taskName,
		Verdict: verdict,
	}
	if comment != nil {
		data.Comment = *comment
	}

	var body bytes.Buffer
	if err := decisionTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Facilitrack <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
