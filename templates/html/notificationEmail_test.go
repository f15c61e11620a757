package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNotificationEmail(t *testing.T) {
	out := RenderNotificationEmail(NotificationEmailData{
		RecipientName: "Ada",
		Subject:       "Court hearing scheduled",
		Message:       "A hearing was scheduled.\nPlease attend.",
		CaseNumber:    "HO-1A2B3C4D",
		Date:          "Monday, March 4, 2024",
		Time:          "10:00",
		Location:      "High Court <Ikeja>",
		CTAURL:        "https://app.legalaid.ng/dashboard",
		SupportEmail:  "support@legalaid.ng",
		Year:          2024,
	})

	assert.Contains(t, out, "<h1>Hi Ada,</h1>")
	assert.Contains(t, out, "A hearing was scheduled.<br>Please attend.")
	assert.Contains(t, out, "Case: HO-1A2B3C4D")
	assert.Contains(t, out, "<strong>Date:</strong> Monday, March 4, 2024")
	assert.Contains(t, out, "High Court &lt;Ikeja&gt;")
	assert.Contains(t, out, `href="https://app.legalaid.ng/dashboard">View details</a>`)
	assert.Contains(t, out, "&copy; 2024 Legal Aid Platform")
	assert.Contains(t, out, "width: 100%;")
}

func TestRenderNotificationEmail_NoDetails(t *testing.T) {
	out := RenderNotificationEmail(NotificationEmailData{RecipientName: "Ada", Message: "Hello"})

	assert.Contains(t, out, "<title>Notification</title>")
	assert.NotContains(t, out, "Case:")
	assert.NotContains(t, out, `class="cta-button" href`)
}

func TestRenderNotificationText(t *testing.T) {
	out := RenderNotificationText(NotificationEmailData{
		RecipientName: "Ada",
		Message:       "Lawyer assigned",
		CaseNumber:    "HO-1A2B3C4D",
		CTAURL:        "https://app.legalaid.ng/dashboard",
		CTAText:       "Open dashboard",
	})

	assert.True(t, strings.HasPrefix(out, "Hi Ada,\n\nLawyer assigned\n"))
	assert.Contains(t, out, "Case: HO-1A2B3C4D\n")
	assert.NotContains(t, out, "Date:")
	assert.Contains(t, out, "Open dashboard: https://app.legalaid.ng/dashboard")
}
