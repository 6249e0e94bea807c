package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// NotificationRequest struct - Domain request DTO
	NotificationRequest struct {
		RecordID   *string `json:"record_id"`
		Title      *string `json:"title"`
		ResultsURL *string `json:"results_url"`
		TestHealth *string `json:"test_health"`
	}

	// NotificationResponse struct - Domain response DTO
	NotificationResponse struct {
		ID         *uuid.UUID      `json:"id,omitempty"`
		RecordID   *string         `json:"record_id,omitempty"`
		Title      *string         `json:"title,omitempty"`
		ResultsURL *string         `json:"results_url,omitempty"`
		TestHealth *string         `json:"test_health,omitempty"`
		PostID     *string         `json:"post_id,omitempty"`
		CreatedAt  *time.Time      `json:"created_at,omitempty"`
		UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
		DeletedAt  *gorm.DeletedAt `json:"deleted_at,omitempty"`
	}

	// NotificationListResponse struct - Domain response DTO for history listing
	NotificationListResponse struct {
		Notifications []NotificationResponse `json:"notifications,omitempty"`

		CurrentPage *int   `json:"current_page,omitempty"`
		PerPage     *int   `json:"per_page,omitempty"`
		TotalItem   *int64 `json:"total_item,omitempty"`
	}

	// QueryNotificationRequest struct - Domain query DTO
	QueryNotificationRequest struct {
		ID       *uuid.UUID `json:"id"`
		RecordID *string    `json:"record_id"`

		Limit      *int        `json:"limit,omitempty"`
		Page       *int        `json:"page,omitempty"`
		Pagination *Pagination `json:"-"`
	}
)

// Pagination struct
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
