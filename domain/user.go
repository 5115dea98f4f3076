package domain

import (
	"context"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// DeletedUserMask is the placeholder username rendered for rows whose owner
// reference was nulled out when the user account was removed.
const DeletedUserMask = "**pengguna telah dihapus**"

// User represents a registered account.
type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash
	Fullname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	validate        = validator.New()
	usernamePattern = regexp.MustCompile(`^\w+$`)
)

// RegisterUser is the validated payload for registering an account.
// Password holds the plain text here; the use case hashes it before storage.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// RegisterUserFromPayload validates the raw request payload: required string
// fields, username at most 50 characters and free of restricted characters.
func RegisterUserFromPayload(payload Payload) (RegisterUser, error) {
	values, err := requireStrings(payload, EntityRegisterUser, "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}
	username := values[0]
	if err := validate.Var(username, "max=50"); err != nil {
		return RegisterUser{}, ValidationError{EntityRegisterUser, UsernameLimitChar}
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, ValidationError{EntityRegisterUser, UsernameRestrictedChar}
	}
	return RegisterUser{Username: username, Password: values[1], Fullname: values[2]}, nil
}

// AddedUser is the persistence acknowledgement for a registered account.
type AddedUser struct {
	ID       string
	Username string
	Fullname string
}

// UserLogin is the validated credential payload.
type UserLogin struct {
	Username string
	Password string
}

func UserLoginFromPayload(payload Payload) (UserLogin, error) {
	values, err := requireStrings(payload, EntityUserLogin, "username", "password")
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: values[0], Password: values[1]}, nil
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	// Create stores a new account. Returns ErrConflict when the username is
	// already taken.
	Create(ctx context.Context, user RegisterUser) (AddedUser, error)

	// GetByUsername retrieves an account for credential verification.
	// Returns ErrNotFound if the account doesn't exist.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByID retrieves an account by its id.
	GetByID(ctx context.Context, id string) (User, error)
}
