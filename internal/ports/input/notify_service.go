package input

import (
	"context"

	"chatter-notify/internal/domain"

	"github.com/google/uuid"
)

// NotifyService interface - Input port (use case)
// Defines what the application can do with build notifications
type NotifyService interface {
	// PostBuildResult posts a build status to Chatter and records it in history
	PostBuildResult(ctx context.Context, request domain.NotificationRequest) (*domain.NotificationResponse, error)

	// DeleteNotification deletes the feed post on Chatter and marks the history row
	DeleteNotification(ctx context.Context, id uuid.UUID) (*domain.NotificationResponse, error)

	// ListNotifications returns the notification history with pagination
	ListNotifications(condition domain.QueryNotificationRequest) (*domain.NotificationListResponse, error)
}
