package entity

import (
	"time"

	"github.com/google/uuid"
)

// DrugSearchLog records one drug search performed by an authenticated user.
// Rows are append-only, never updated or deleted.
type DrugSearchLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_drug_search_logs_user_recency,priority:1" json:"user_id"`
	Query       string    `gorm:"type:text;not null;index" json:"query"`
	ResultCount int       `gorm:"not null;default:0" json:"result_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_drug_search_logs_user_recency,priority:2,sort:desc" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DrugSearchLog) TableName() string {
	return "drug_search_logs"
}
