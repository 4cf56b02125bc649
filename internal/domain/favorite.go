package domain

// Favorite is a user's bookmark of a blip. Unique per (UserID, BlipID).
type Favorite struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	BlipID int64 `db:"blip_id"`
}
