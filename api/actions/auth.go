package actions

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/legalaid-ng/legalaid-api/api/credentials"
	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// MinPasswordLength is the shortest password accepted at signup
const MinPasswordLength = 8

const invalidLogin = "Invalid email or password"

// Credentials is the input of Login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignedIn is returned by Login and SignUp
type SignedIn struct {
	ID       string      `json:"id"`
	Role     models.Role `json:"role"`
	Redirect string      `json:"redirect"`
}

// UserSignUp is the input of SignUp. Only Email and Password are required.
type UserSignUp struct {
	Email               string `json:"email"`
	Password            string `json:"password"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	PhoneNumber         string `json:"phoneNumber"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
	IsIndigent          bool   `json:"isIndigent"`
	ProofOfIndigencyURL string `json:"proofOfIndigencyUrl"`
}

// LawyerSignUp is the input of RegisterLawyer
type LawyerSignUp struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"fullName"`
	PhoneNumber      string `json:"phoneNumber"`
	EnrollmentNumber string `json:"nbaNumber"`
	CallToBarYear    string `json:"callToBarYear"`
	StateOfCall      string `json:"stateOfCall"`
	Location         string `json:"location"`
	Specialization   string `json:"specialization"`
	Bio              string `json:"bio"`
	AvatarURL        string `json:"avatar"`
}

// Login checks credentials with a single lookup by email. Unknown emails and wrong
// passwords get the same answer. When roles are given the account must hold one of
// them. The returned session is nil unless the login succeeded.
func (a *Actions) Login(ctx context.Context, in Credentials, roles ...models.Role) (models.ActionResult, *session.Session) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return models.Fail(models.KindValidation, "Email and password are required"), nil
	}

	account, err := a.store.Accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, databases.ErrNotFound) {
		return internal("There's an error somewhere", err, "email", email), nil
	}
	var hash string
	if account != nil {
		hash = account.Details.Password
	}
	if err := credentials.Verify(hash, in.Password); err != nil || account == nil {
		return models.Fail(models.KindUnauthorized, invalidLogin), nil
	}
	if len(roles) > 0 && !hasRole(account.Details.Role, roles) {
		return models.Fail(models.KindUnauthorized, invalidLogin), nil
	}

	s := session.FromAccount(*account)
	return models.Ok("Sign in successfully", signedIn(s)), s
}

// SignUp registers a litigant and signs them in. The account is stored before the
// session is returned.
func (a *Actions) SignUp(ctx context.Context, in UserSignUp) (models.ActionResult, *session.Session) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return models.Fail(models.KindValidation, "Email and password are required"), nil
	}
	if len(in.Password) < MinPasswordLength {
		return models.Fail(models.KindValidation, "Password must be at least 8 characters"), nil
	}

	now := a.now()
	account := &models.Account{
		ID: a.newID(),
		Details: models.AccountDetails{
			Email:               email,
			Role:                models.RoleUser,
			FirstName:           strings.TrimSpace(in.FirstName),
			LastName:            strings.TrimSpace(in.LastName),
			PhoneNumber:         strings.TrimSpace(in.PhoneNumber),
			Address:             strings.TrimSpace(in.Address),
			City:                strings.TrimSpace(in.City),
			State:               strings.TrimSpace(in.State),
			ZipCode:             strings.TrimSpace(in.ZipCode),
			IsIndigent:          in.IsIndigent,
			ProofOfIndigencyURL: strings.TrimSpace(in.ProofOfIndigencyURL),
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
	account.Details.Name = strings.TrimSpace(account.Details.FirstName + " " + account.Details.LastName)

	if res, ok := a.register(ctx, account, in.Password); !ok {
		return res, nil
	}
	s := session.FromAccount(*account)
	return models.Ok("User created successfully", signedIn(s)), s
}

// RegisterLawyer stores a lawyer account with its bar credentials. The lawyer signs in
// separately afterwards.
func (a *Actions) RegisterLawyer(ctx context.Context, in LawyerSignUp) models.ActionResult {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return models.Fail(models.KindValidation, "Email and password are required")
	}
	if !required(in.FullName, in.EnrollmentNumber, in.CallToBarYear, in.StateOfCall) {
		return models.Fail(models.KindValidation, "Name and bar credentials are required")
	}
	if len(in.Password) < MinPasswordLength {
		return models.Fail(models.KindValidation, "Password must be at least 8 characters")
	}
	year, err := strconv.Atoi(strings.TrimSpace(in.CallToBarYear))
	if err != nil || year < 1900 || year > a.now().Year() {
		return models.Fail(models.KindValidation, "Call to bar year must be a valid year")
	}

	now := a.now()
	account := &models.Account{
		ID: a.newID(),
		Details: models.AccountDetails{
			Email:       email,
			Role:        models.RoleLawyer,
			Name:        strings.TrimSpace(in.FullName),
			PhoneNumber: strings.TrimSpace(in.PhoneNumber),
			Lawyer: &models.LawyerProfile{
				EnrollmentNumber: strings.TrimSpace(in.EnrollmentNumber),
				CallToBarYear:    year,
				StateOfCall:      strings.TrimSpace(in.StateOfCall),
				Location:         strings.TrimSpace(in.Location),
				Specialization:   strings.TrimSpace(in.Specialization),
				Bio:              strings.TrimSpace(in.Bio),
				AvatarURL:        strings.TrimSpace(in.AvatarURL),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	res, _ := a.register(ctx, account, in.Password)
	return res
}

// CreateAdmin stores an admin account. It has no session check and is only reachable
// from the operator tool.
func (a *Actions) CreateAdmin(ctx context.Context, email, name, password string) models.ActionResult {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.Fail(models.KindValidation, "Email and password are required")
	}
	if len(password) < MinPasswordLength {
		return models.Fail(models.KindValidation, "Password must be at least 8 characters")
	}
	now := a.now()
	account := &models.Account{
		ID: a.newID(),
		Details: models.AccountDetails{
			Email:     email,
			Role:      models.RoleAdmin,
			Name:      strings.TrimSpace(name),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	res, _ := a.register(ctx, account, password)
	return res
}

// register rejects taken emails, hashes password and inserts account
func (a *Actions) register(ctx context.Context, account *models.Account, password string) (models.ActionResult, bool) {
	email := account.Details.Email
	existing, err := a.store.Accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, databases.ErrNotFound) {
		return internal("Failed to create a user", err, "email", email), false
	}
	if existing != nil {
		return models.Fail(models.KindConflict, "Email already in use"), false
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return internal("Failed to create a user", err, "email", email), false
	}
	account.Details.Password = hash

	err = a.store.Accounts.Insert(ctx, account)
	if errors.Is(err, databases.ErrDuplicate) {
		return models.Fail(models.KindConflict, "Email already in use"), false
	}
	if err != nil {
		return internal("Failed to create a user", err, "email", email), false
	}
	return models.Ok("User created successfully", SignedIn{ID: account.ID, Role: account.Details.Role}), true
}

// redirectFor is where a freshly signed in account lands within its segment
func redirectFor(role models.Role) string {
	if role == models.RoleAdmin {
		return "/"
	}
	return "/dashboard"
}

func signedIn(s *session.Session) SignedIn {
	return SignedIn{ID: s.AccountID, Role: s.Role, Redirect: redirectFor(s.Role)}
}

func hasRole(role models.Role, roles []models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
