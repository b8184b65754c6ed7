package models

import (
	"time"

	"github.com/google/uuid"
)

// TravelVlog is a video entry attached to a destination. Media lives behind
// external URLs; this service only tracks metadata and counters.
type TravelVlog struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	Type          string    `json:"type" db:"type"` // local-insider | budget-travel | food-tour | adventure | cultural
	AuthorID      uuid.UUID `json:"author_id" db:"author_id"`

	Thumbnail string `json:"thumbnail" db:"thumbnail"`
	VideoURL  string `json:"video_url" db:"video_url"`
	Duration  string `json:"duration" db:"duration"` // e.g., 12:34

	Views int `json:"views" db:"views"`
	Likes int `json:"likes" db:"likes"`

	Tags       []string  `json:"tags" db:"tags"`
	Featured   bool      `json:"featured" db:"featured"`
	UploadDate time.Time `json:"upload_date" db:"upload_date"`
}
