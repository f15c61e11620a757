package templates

import (
	"fmt"
	"html"
	"strings"
)

// NotificationEmailData holds the fields rendered into a notification email. Every
// field except Message is optional; empty detail fields are left out.
type NotificationEmailData struct {
	RecipientName string
	Subject       string
	Message       string
	CaseNumber    string
	Date          string // already human readable
	Time          string
	Location      string
	CTAURL        string
	CTAText       string
	SupportEmail  string
	Year          int
}

func (d NotificationEmailData) hasDetails() bool {
	return d.CaseNumber != "" || d.Date != "" || d.Time != "" || d.Location != ""
}

func (d NotificationEmailData) subject() string {
	if d.Subject == "" {
		return "Notification"
	}
	return d.Subject
}

func (d NotificationEmailData) ctaText() string {
	if d.CTAText == "" {
		return "View details"
	}
	return d.CTAText
}

// RenderNotificationEmail generates the HTML body of a notification email.
// All user supplied values are HTML-escaped and newlines in the message become <br>.
func RenderNotificationEmail(d NotificationEmailData) string {
	esc := html.EscapeString
	message := strings.ReplaceAll(esc(d.Message), "\n", "<br>")

	var details strings.Builder
	if d.hasDetails() {
		details.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" class="details"><tr><td style="padding: 14px;">`)
		if d.CaseNumber != "" {
			fmt.Fprintf(&details, `<div class="case">Case: %s</div>`, esc(d.CaseNumber))
		}
		details.WriteString(`<div class="rows">`)
		for _, row := range [][2]string{{"Date", d.Date}, {"Time", d.Time}, {"Location", d.Location}} {
			if row[1] != "" {
				fmt.Fprintf(&details, `<div><strong>%s:</strong> %s</div>`, row[0], esc(row[1]))
			}
		}
		details.WriteString(`</div></td></tr></table>`)
	}

	var cta string
	if d.CTAURL != "" {
		cta = fmt.Sprintf(`<div style="margin-top: 22px;"><a class="cta-button" href="%s">%s</a></div>`, esc(d.CTAURL), esc(d.ctaText()))
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: Inter, system-ui, -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; margin: 0; padding: 0; background-color: #f8fafc; }
    .container { max-width: 700px; margin: 24px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 6px 30px rgba(16,24,40,0.08); }
    .header { padding: 20px 28px; border-bottom: 1px solid #eef2ff; }
    .logo { display: inline-block; padding: 6px 12px; border-radius: 8px; background: #2563eb; color: #fff; font-weight: 700; }
    .subject { float: right; color: #6b7280; font-size: 13px; line-height: 32px; }
    .content { padding: 28px; }
    .content h1 { margin: 0; font-size: 20px; line-height: 28px; color: #0f172a; }
    .message { margin: 12px 0 20px; color: #6b7280; font-size: 15px; line-height: 22px; }
    .details { width: 100%%; border-radius: 8px; border: 1px solid #eef2ff; background: #fbfbff; }
    .case { font-size: 13px; color: #334155; font-weight: 600; }
    .rows { margin-top: 8px; font-size: 13px; color: #6b7280; }
    .rows strong { color: #0f172a; font-weight: 600; }
    .cta-button { display: inline-block; background: #2563eb; color: #fff; text-decoration: none; padding: 10px 18px; border-radius: 8px; font-weight: 600; font-size: 15px; }
    .help { margin-top: 20px; color: #6b7280; font-size: 13px; }
    .help a { color: #2563eb; text-decoration: none; }
    .footer { padding: 18px 28px; background: #fafafa; border-top: 1px solid #eef2ff; color: #94a3b8; font-size: 13px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <span class="logo">L-A</span>
      <span class="subject">%s</span>
    </div>
    <div class="content">
      <h1>Hi %s,</h1>
      <p class="message">%s</p>
      %s
      %s
      <p class="help">If you have questions, reply to this email or contact <a href="mailto:%s">%s</a>.</p>
    </div>
    <div class="footer">
      &copy; %d Legal Aid Platform | Trusted access to justice
    </div>
  </div>
</body>
</html>`, esc(d.subject()), esc(d.subject()), esc(d.RecipientName), message, details.String(), cta,
		esc(d.SupportEmail), esc(d.SupportEmail), d.Year)
}

// RenderNotificationText generates the plain text alternative of a notification email
func RenderNotificationText(d NotificationEmailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n%s\n", d.RecipientName, d.Message)
	if d.hasDetails() {
		b.WriteString("\n")
		for _, row := range [][2]string{{"Case", d.CaseNumber}, {"Date", d.Date}, {"Time", d.Time}, {"Location", d.Location}} {
			if row[1] != "" {
				fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
			}
		}
	}
	if d.CTAURL != "" {
		fmt.Fprintf(&b, "\n%s: %s\n", d.ctaText(), d.CTAURL)
	}
	if d.SupportEmail != "" {
		fmt.Fprintf(&b, "\nQuestions? Contact %s\n", d.SupportEmail)
	}
	return b.String()
}
