package http

import "github.com/google/uuid"

type (
	// NotificationRequest struct - HTTP request DTO for posting a build result
	NotificationRequest struct {
		RecordID   *string `json:"record_id" validate:"omitempty,max=18" form:"record_id" query:"record_id"`
		Title      *string `json:"title" validate:"required,max=255" form:"title" query:"title"`
		ResultsURL *string `json:"results_url" validate:"required,url" form:"results_url" query:"results_url"`
		TestHealth *string `json:"test_health" validate:"omitempty" form:"test_health" query:"test_health"`
	}

	// QueryNotificationRequest struct - HTTP query request DTO for history listing
	QueryNotificationRequest struct {
		ID       *uuid.UUID `json:"id" form:"id" query:"id"`
		RecordID *string    `json:"record_id" form:"record_id" query:"record_id"`

		Limit *int `json:"limit,omitempty" form:"limit" query:"limit" validate:"omitempty,gte=1,lte=100"`
		Page  *int `json:"page,omitempty" form:"page" query:"page" validate:"omitempty,gte=1"`
	}
)
