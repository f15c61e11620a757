package models

import "time"

// CaseStatus is the lifecycle state of a case
type CaseStatus string

// Case statuses. A case moves open -> assigned -> closed.
const (
	CaseStatusOpen     CaseStatus = "open"
	CaseStatusAssigned CaseStatus = "assigned"
	CaseStatusClosed   CaseStatus = "closed"
)

// Case holds the structure for the cases collection
type Case struct {
	ID      string      `json:"_id" bson:"_id"`
	Details CaseDetails `json:"case" bson:"case"`
}

// CaseDetails holds the inner case structure
type CaseDetails struct {
	CaseNumber  string     `json:"caseNumber" bson:"caseNumber"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	CaseType    string     `json:"caseType" bson:"caseType"`
	Status      CaseStatus `json:"status" bson:"status"`
	UserID      string     `json:"userId" bson:"userId"`     // owning litigant, always set
	LawyerID    string     `json:"lawyerId" bson:"lawyerId"` // empty while open
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}

// CaseFilter narrows case listings. Zero values are ignored. Results are ordered
// newest first; Page is 1-based and only applies when Limit is set.
type CaseFilter struct {
	UserID   string
	LawyerID string
	Statuses []CaseStatus
	Limit    int64
	Page     int64
}
