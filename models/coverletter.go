package models

import "time"

// CoverLetter holds the structure for the coverletters collection
type CoverLetter struct {
	ID      string             `json:"_id" bson:"_id"`
	Details CoverLetterDetails `json:"coverLetter" bson:"coverLetter"`
}

// CoverLetterDetails holds a lawyer's application to an open case
type CoverLetterDetails struct {
	CaseID     string    `json:"caseId" bson:"caseId"`
	CaseNumber string    `json:"caseNumber" bson:"caseNumber"`
	LawyerID   string    `json:"lawyerId" bson:"lawyerId"`
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
