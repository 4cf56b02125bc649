package song

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// CreateInput holds parameters for creating a song.
type CreateInput struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// Validate checks the input against the column limits. Empty strings are
// allowed: presence is enforced by the transport.
func (i CreateInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Artist, validation.RuneLength(0, 200)),
		validation.Field(&i.Title, validation.RuneLength(0, 200)),
	))
}
