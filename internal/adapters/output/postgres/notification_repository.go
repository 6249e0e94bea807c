package postgres

import (
	"errors"

	"chatter-notify/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationRepository struct - Secondary/Driven adapter for PostgreSQL
type NotificationRepository struct {
	dbGorm *gorm.DB
}

// NewNotificationRepository func - Creates new PostgreSQL repository
func NewNotificationRepository(dbGorm *gorm.DB) *NotificationRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &NotificationRepository{
		dbGorm: dbGorm,
	}
}

// CreateNotification func - Records a notification that was posted to Chatter
func (p *NotificationRepository) CreateNotification(request domain.NotificationRequest, postID string) (*domain.NotificationResponse, error) {
	record := domain.NotificationRecord{
		RecordID:   request.RecordID,
		Title:      request.Title,
		ResultsURL: request.ResultsURL,
		TestHealth: request.TestHealth,
		PostID:     &postID,
	}
	if err := p.dbGorm.Create(&record).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := toResponse(&record)
	return &response, nil
}

// GetNotification func - Retrieves a recorded notification by id
func (p *NotificationRepository) GetNotification(id uuid.UUID) (*domain.NotificationResponse, error) {
	var record domain.NotificationRecord
	err := p.dbGorm.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := toResponse(&record)
	return &response, nil
}

// DeleteNotification func - Marks a recorded notification as deleted (soft delete)
func (p *NotificationRepository) DeleteNotification(id uuid.UUID) (*domain.NotificationResponse, error) {
	var record domain.NotificationRecord
	if err := p.dbGorm.Where("id = ?", id).First(&record).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	tx := p.dbGorm.Begin()
	defer func() {
		tx.Rollback()
	}()
	tx.Delete(&record)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}
	tx.Commit()
	response := toResponse(&record)
	return &response, nil
}

// ListNotifications func - Retrieves recorded notifications with filtering and pagination
func (p *NotificationRepository) ListNotifications(condition domain.QueryNotificationRequest) (*domain.NotificationListResponse, error) {
	var (
		record  domain.NotificationRecord
		records []domain.NotificationRecord
	)
	tx := p.dbGorm.Model(&record)
	if condition.ID != nil {
		tx = tx.Where("id = ?", *condition.ID)
	}
	if condition.RecordID != nil {
		tx = tx.Where("record_id = ?", *condition.RecordID)
	}

	var totalItem int64
	tx.Count(&totalItem)

	if condition.Pagination != nil {
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}
	tx = tx.Order("created_at DESC")

	if err := tx.Find(&records).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.NotificationListResponse{
		Notifications: []domain.NotificationResponse{},
	}
	result.CurrentPage = condition.Page
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	result.TotalItem = &totalItem
	for i := range records {
		result.Notifications = append(result.Notifications, toResponse(&records[i]))
	}
	return &result, nil
}

func toResponse(record *domain.NotificationRecord) domain.NotificationResponse {
	return domain.NotificationResponse{
		ID:         record.ID,
		RecordID:   record.RecordID,
		Title:      record.Title,
		ResultsURL: record.ResultsURL,
		TestHealth: record.TestHealth,
		PostID:     record.PostID,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
		DeletedAt:  record.DeletedAt,
	}
}
