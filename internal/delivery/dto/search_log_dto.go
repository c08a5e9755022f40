package dto

import (
	"time"
)

type SearchLogResponse struct {
	ID          int64         `json:"id"`
	Query       string        `json:"query"`
	ResultCount int           `json:"resultCount"`
	CreatedAt   time.Time     `json:"createdAt"`
	User        *UserResponse `json:"user,omitempty"`
}

type SearchLogListResponse struct {
	Success  bool                `json:"success"`
	Total    int                 `json:"total"`
	Searches []SearchLogResponse `json:"searches"`
}

// CurrentUserResponse is the wire shape for GET /api/auth/me.
type CurrentUserResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
