package models

import (
	"strings"
	"time"
)

// Role discriminates what an account is allowed to do
type Role string

// Account roles
const (
	RoleUser   Role = "user"
	RoleLawyer Role = "lawyer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleLawyer, RoleAdmin:
		return true
	}
	return false
}

// Account holds the structure for the accounts collection. Litigants, lawyers and
// admins share one identity space; lawyer specific fields live in Details.Lawyer.
type Account struct {
	ID      string         `json:"_id" bson:"_id"`
	Details AccountDetails `json:"account" bson:"account"`
}

// AccountDetails holds the inner account structure
type AccountDetails struct {
	Email               string         `json:"email" bson:"email"`
	Password            string         `json:"-" bson:"password"`
	Role                Role           `json:"role" bson:"role"`
	Name                string         `json:"name" bson:"name"`
	FirstName           string         `json:"firstName" bson:"firstName"`
	LastName            string         `json:"lastName" bson:"lastName"`
	PhoneNumber         string         `json:"phoneNumber" bson:"phoneNumber"`
	Address             string         `json:"address" bson:"address"`
	City                string         `json:"city" bson:"city"`
	State               string         `json:"state" bson:"state"`
	ZipCode             string         `json:"zipCode" bson:"zipCode"`
	IsIndigent          bool           `json:"isIndigent" bson:"isIndigent"`
	ProofOfIndigencyURL string         `json:"proofOfIndigencyUrl" bson:"proofOfIndigencyUrl"`
	Lawyer              *LawyerProfile `json:"lawyer,omitempty" bson:"lawyer,omitempty"`
	CreatedAt           time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// LawyerProfile holds the bar credentials and public profile of a lawyer
type LawyerProfile struct {
	EnrollmentNumber string `json:"enrollmentNumber" bson:"enrollmentNumber"`
	CallToBarYear    int    `json:"callToBarYear" bson:"callToBarYear"`
	StateOfCall      string `json:"stateOfCall" bson:"stateOfCall"`
	Location         string `json:"location" bson:"location"`
	Specialization   string `json:"specialization" bson:"specialization"`
	Bio              string `json:"bio" bson:"bio"`
	AvatarURL        string `json:"avatarUrl" bson:"avatarUrl"`
}

// DisplayName returns the name used to greet the account holder. It falls back to
// the local part of the email address when no name is stored.
func (a Account) DisplayName() string {
	if n := strings.TrimSpace(a.Details.Name); n != "" {
		return n
	}
	if n := strings.TrimSpace(a.Details.FirstName + " " + a.Details.LastName); n != "" {
		return n
	}
	local, _, _ := strings.Cut(a.Details.Email, "@")
	return local
}
