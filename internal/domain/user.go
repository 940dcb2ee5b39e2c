package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the application.
// Email is stored normalized to lower case so that uniqueness and lookups
// are case-insensitive.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used only during registration
	HashedPassword string    `json:"-"` // Never expose the password hash
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given names, email, and password.
// It generates a new UUID for the user ID, normalizes the email, and sets
// the creation/update timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password (and clearing
// the plaintext) before storing the user.
func NewUser(firstName, lastName, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     NormalizeEmail(email),
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail lowercases and trims an email address. All email comparisons
// in the system go through this normalization.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.FirstName == "" {
		return ErrEmptyFirstName
	}

	if u.LastName == "" {
		return ErrEmptyLastName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// During creation/update we validate the provided plaintext password.
	// Existing users carry only the hash.
	if u.Password != "" {
		if len(u.Password) < 6 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 { // bcrypt's practical limit
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// The expected shape is local@domain.tld: exactly one non-leading,
// non-trailing @, and a dot inside the domain part.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}
	if strings.IndexByte(email[atIndex+1:], '@') != -1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}
	if domainPart[0] == '.' || domainPart[len(domainPart)-1] == '.' {
		return false
	}
	if strings.IndexByte(domainPart, '.') == -1 {
		return false
	}

	if strings.ContainsAny(email, " \t") {
		return false
	}

	return true
}
