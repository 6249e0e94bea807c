package output

import (
	"chatter-notify/internal/domain"

	"github.com/google/uuid"
)

// NotificationRepository interface - Output port
// Defines what the application needs for recording posted notifications
type NotificationRepository interface {
	// CreateNotification records a notification that was posted to Chatter
	CreateNotification(request domain.NotificationRequest, postID string) (*domain.NotificationResponse, error)

	// GetNotification retrieves a recorded notification by its id,
	// or nil if no row exists
	GetNotification(id uuid.UUID) (*domain.NotificationResponse, error)

	// DeleteNotification marks a recorded notification as deleted (soft delete)
	DeleteNotification(id uuid.UUID) (*domain.NotificationResponse, error)

	// ListNotifications retrieves recorded notifications with filtering and pagination
	ListNotifications(condition domain.QueryNotificationRequest) (*domain.NotificationListResponse, error)
}
