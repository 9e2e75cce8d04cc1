package moderation

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusClean      = "clean"
	StatusBorderline = "borderline"
	StatusFlagged    = "flagged"
)

// Result summarizes one moderation request: the submitted content, the key
// that submitted it and the single dominant flag. Rows are insert-only.
type Result struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content  string    `json:"content"`
	APIKeyID uuid.UUID `json:"api_key_id" gorm:"type:uuid;index"`
	// UserID is reserved for future attribution and is persisted as null.
	UserID    *string   `json:"user_id"`
	Flag      string    `json:"flag"`
	Score     float64   `json:"score"`
	Flagged   bool      `json:"flagged"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Result) TableName() string {
	return "public.moderation_results"
}
