package models

import "time"

// CourtHearing holds the structure for the hearings collection
type CourtHearing struct {
	ID      string         `json:"_id" bson:"_id"`
	Details HearingDetails `json:"hearing" bson:"hearing"`
}

// HearingDetails holds the inner court hearing structure
type HearingDetails struct {
	CaseID     string    `json:"caseId" bson:"caseId"`
	CaseNumber string    `json:"caseNumber" bson:"caseNumber"`
	Date       time.Time `json:"date" bson:"date"`
	Time       string    `json:"time" bson:"time"`
	Location   string    `json:"location" bson:"location"`
	Type       string    `json:"type" bson:"type"`
	CreatedBy  string    `json:"createdBy" bson:"createdBy"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// HearingFilter narrows hearing listings. Results are ordered by date ascending.
// A nil CaseIDs matches every case, an empty non-nil slice matches none.
type HearingFilter struct {
	CaseIDs []string
	From    time.Time
	To      time.Time
	Limit   int64
}
