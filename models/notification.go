package models

import "time"

// EmailStatus tracks the best-effort email that accompanies a notification
type EmailStatus string

// Email delivery states
const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
	EmailSkipped EmailStatus = "skipped"
)

// Notification holds the structure for the notifications collection
type Notification struct {
	ID      string              `json:"_id" bson:"_id"`
	Details NotificationDetails `json:"notification" bson:"notification"`
}

// NotificationDetails is addressed to exactly one account, either a litigant or a
// lawyer, identified by RecipientID and RecipientRole.
type NotificationDetails struct {
	RecipientID   string        `json:"recipientId" bson:"recipientId"`
	RecipientRole Role          `json:"recipientRole" bson:"recipientRole"`
	Subject       string        `json:"subject" bson:"subject"`
	Message       string        `json:"message" bson:"message"`
	CaseID        string        `json:"caseId,omitempty" bson:"caseId,omitempty"`
	Read          bool          `json:"read" bson:"read"`
	ReadAt        *time.Time    `json:"readAt,omitempty" bson:"readAt,omitempty"`
	Email         EmailEnvelope `json:"-" bson:"email"`
	EmailStatus   EmailStatus   `json:"emailStatus" bson:"emailStatus"`
	EmailAttempts int           `json:"-" bson:"emailAttempts"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// EmailEnvelope keeps the structured fields of the email so a failed delivery can be
// retried with the same content.
type EmailEnvelope struct {
	CaseNumber string    `bson:"caseNumber,omitempty"`
	Date       time.Time `bson:"date,omitempty"`
	Time       string    `bson:"time,omitempty"`
	Location   string    `bson:"location,omitempty"`
	CTAURL     string    `bson:"ctaUrl,omitempty"`
	CTAText    string    `bson:"ctaText,omitempty"`
}

// IsRead reports whether the recipient has seen the notification
func (n Notification) IsRead() bool {
	return n.Details.Read
}
