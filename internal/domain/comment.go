package domain

import "time"

// Comment is a user's remark on a blip. Blip is populated by the repository.
type Comment struct {
	ID        int64     `db:"id"`
	BlipID    int64     `db:"blip_id"`
	UserID    int64     `db:"user_id"`
	Text      string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`

	Blip Blip `db:"blip"`
}
