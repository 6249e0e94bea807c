package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Feed post bodies are capped by the service's display limit. Longer bodies
// are cut to 998 runes plus a single ellipsis, 999 runes total.
const (
	maxBodyRunes      = 1000
	truncatedBodyRune = 998
	ellipsis          = "…"
)

// BuildNotification struct - Core domain value: one build status update to post
type BuildNotification struct {
	RecordID   string // target record; empty means the authenticated user's own feed
	Title      string
	ResultsURL string
	TestHealth string // optional second line of the post body
}

// Body composes the feed post body: the title, plus test health on a second
// line when present, truncated to the service's display limit.
func (n BuildNotification) Body() string {
	body := n.Title
	if n.TestHealth != "" {
		body = n.Title + "\n" + n.TestHealth
	}
	runes := []rune(body)
	if len(runes) > maxBodyRunes {
		body = string(runes[:truncatedBodyRune]) + ellipsis
	}
	return body
}

// NotificationRecord struct - Core domain entity: a build notification that was
// posted to Chatter, kept so the feed post can be deleted later by its id
type NotificationRecord struct {
	ID         *uuid.UUID      `gorm:"type:uuid;primary_key;"`
	RecordID   *string         `gorm:"type:varchar(18)"`
	Title      *string         `gorm:"type:varchar(255);not null;"`
	ResultsURL *string         `gorm:"type:text"`
	TestHealth *string         `gorm:"type:text"`
	PostID     *string         `gorm:"type:varchar(18);not null;"`
	CreatedAt  *time.Time      `gorm:"type:timestamp"`
	UpdatedAt  *time.Time      `gorm:"type:timestamp"`
	DeletedAt  *gorm.DeletedAt `gorm:"type:timestamp"`
}

// TableName func
func (n *NotificationRecord) TableName() string {
	return "notifications"
}

// BeforeCreate hook - generates UUID before creating
func (n *NotificationRecord) BeforeCreate(tx *gorm.DB) (err error) {
	logrus.Info("BeforeCreate")
	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	n.ID = &uuid
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&NotificationRecord{})
	if err != nil {
		panic(err)
	}
}
