package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/contactform/contactapi/models"
)

const subjectPrefix = "New Contact Message"

var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1976d2;">New Contact Form Submission</h2>
  <hr style="border: none; border-top: 2px solid #e0e0e0;">
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  {{- if .Subject}}
  <p><strong>Subject:</strong> {{.Subject}}</p>
  {{- end}}
  <hr style="border: none; border-top: 2px solid #e0e0e0; margin: 20px 0;">
  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 8px;">
    <h3 style="margin-top: 0;">Message:</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
  </div>
  <hr style="border: none; border-top: 2px solid #e0e0e0; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Sent from {{.Source}}</p>
</div>
`))

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`Name: {{.Name}}
Email: {{.Email}}
{{- if .Subject}}
Subject: {{.Subject}}
{{- end}}

Message:
{{.Message}}
`))

type templateData struct {
	models.NotificationTask
	Source string
}

// Composer turns a submission into the email the site owner receives. The
// mailbox is both sender and recipient, replies go to the submitter.
type Composer struct {
	Mailbox string
	Source  string
}

func NewComposer(mailbox string) Composer {
	return Composer{Mailbox: mailbox, Source: "Contact Form"}
}

func (c Composer) Compose(task models.NotificationTask) (Email, error) {
	data := templateData{NotificationTask: task, Source: c.Source}

	var html, text bytes.Buffer
	if err := htmlBody.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("failed to render html body: %w", err)
	}
	if err := textBody.Execute(&text, data); err != nil {
		return Email{}, fmt.Errorf("failed to render text body: %w", err)
	}

	return Email{
		To:       c.Mailbox,
		From:     c.Mailbox,
		ReplyTo:  task.Email,
		Subject:  Subject(task.Subject),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}

func Subject(subject string) string {
	if subject == "" {
		return subjectPrefix
	}
	return subjectPrefix + " – " + subject
}
