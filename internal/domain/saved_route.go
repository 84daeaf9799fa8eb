package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedRoute is a route bookmark owned by a user.
type SavedRoute struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Start       string    `json:"start" db:"start_location"`
	Destination string    `json:"destination" db:"destination"`
	Stops       []Stop    `json:"stops" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
