package careers

import (
	"fmt"
	"html"
	"strings"

	"github.com/meeraai/site-backend/internal/mailer"
)

// operatorMessage builds the notification sent to the fixed operator
// address: an HTML table of all submitted fields with the resume attached.
func operatorMessage(app JobApplication, to, resumePath string) mailer.Message {
	rows := []struct{ label, value string }{
		{"Position", app.Position},
		{"Name", app.Name},
		{"Email", app.Email},
		{"Phone", app.Phone},
		{"Experience", app.Experience + " years"},
		{"Current Company", orNA(app.CurrentCompany)},
		{"Expected Salary", orNA(app.ExpectedSalary)},
		{"Notice Period", orNA(app.NoticePeriod)},
	}
	var b strings.Builder
	b.WriteString("<h2>New Job Application Received</h2>\n<table>\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><td><strong>%s:</strong></td><td>%s</td></tr>\n",
			r.label, html.EscapeString(r.value))
	}
	b.WriteString("</table>\n")
	return mailer.Message{
		To:             to,
		Subject:        "New Job Application: " + app.Position,
		HTML:           b.String(),
		AttachmentPath: resumePath,
	}
}

// applicantMessage builds the confirmation sent to the applicant.
func applicantMessage(app JobApplication) mailer.Message {
	name := html.EscapeString(app.Name)
	position := html.EscapeString(app.Position)
	body := fmt.Sprintf(`<h2>Thank you for your application!</h2>
<p>Dear %s,</p>
<p>We have received your application for the %s position at MeeraAI Tech Solutions.</p>
<p>Our team will review your application and get back to you soon.</p>
<p>Best regards,<br>MeeraAI Tech Solutions Team</p>`, name, position)
	return mailer.Message{
		To:      app.Email,
		Subject: "Application Received - MeeraAI Tech Solutions",
		HTML:    body,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
