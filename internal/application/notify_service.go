package application

import (
	"context"

	"chatter-notify/internal/domain"
	"chatter-notify/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotifyService struct - Application service implementing build notification use cases
type NotifyService struct {
	chatter output.ChatterClient
	repo    output.NotificationRepository
}

// NewNotifyService func - Creates new notify service
func NewNotifyService(chatter output.ChatterClient, repo output.NotificationRepository) *NotifyService {
	return &NotifyService{
		chatter: chatter,
		repo:    repo,
	}
}

// PostBuildResult func - Use case: Post a build status to Chatter and record it
func (s *NotifyService) PostBuildResult(ctx context.Context, request domain.NotificationRequest) (*domain.NotificationResponse, error) {
	notification := domain.BuildNotification{
		RecordID:   deref(request.RecordID),
		Title:      deref(request.Title),
		ResultsURL: deref(request.ResultsURL),
		TestHealth: deref(request.TestHealth),
	}

	postID, err := s.chatter.PostBuild(ctx, notification)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	response, err := s.repo.CreateNotification(request, postID)
	if err != nil {
		// The feed post exists on Chatter even though recording it failed
		logrus.Errorf("Feed post %s was created but recording it failed: %v", postID, err)
		return nil, err
	}
	return response, nil
}

// DeleteNotification func - Use case: Delete the feed post and mark the history row
func (s *NotifyService) DeleteNotification(ctx context.Context, id uuid.UUID) (*domain.NotificationResponse, error) {
	record, err := s.repo.GetNotification(id)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if record == nil || record.PostID == nil {
		return nil, domain.ErrNotificationNotFound
	}

	if err := s.chatter.Delete(ctx, *record.PostID); err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	return s.repo.DeleteNotification(id)
}

// ListNotifications func - Use case: Notification history with pagination defaults
func (s *NotifyService) ListNotifications(condition domain.QueryNotificationRequest) (*domain.NotificationListResponse, error) {
	var (
		page    int
		perPage int
	)
	if condition.Page != nil {
		page = *condition.Page
	} else {
		page = 1
		condition.Page = &page
	}
	if condition.Limit != nil {
		perPage = *condition.Limit
	} else {
		perPage = 100
		condition.Limit = &perPage
	}
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	return s.repo.ListNotifications(condition)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
