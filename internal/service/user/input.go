package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the registration input against the column limits.
func (i RegisterInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.RuneLength(1, 80)),
		validation.Field(&i.Email, validation.Required, validation.RuneLength(3, 120)),
		validation.Field(&i.Password, validation.Required, validation.Length(1, 72)),
	))
}

// Credentials identify a user by id or name together with a password.
// A nil identifier was not supplied. UserID is checked first and kept raw so
// an unparsable id fails authentication rather than validation.
type Credentials struct {
	UserID   *string
	Username *string
	Password string
}
