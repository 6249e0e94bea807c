package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// BadGateway response - the Chatter service rejected or failed the call
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The Chatter service did not accept the request"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// NotificationResponse struct - HTTP response DTO for a recorded notification
type NotificationResponse struct {
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
