package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "servicecredit_backend/internals/features/notifications/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

const fetchLimit = 20

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Create appends a single message for a user.
func (s *NotificationService) Create(userID uuid.UUID, message string) error {
	n := notificationModel.NotificationModel{UserID: userID, Message: message}
	return s.DB.Create(&n).Error
}

// CreateMany appends one message per recipient in a single insert.
func (s *NotificationService) CreateMany(userIDs []uuid.UUID, message string) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]notificationModel.NotificationModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, notificationModel.NotificationModel{UserID: id, Message: message})
	}
	return s.DB.Create(&rows).Error
}

// Fetch returns the user's most recent notifications, newest first.
func (s *NotificationService) Fetch(userID uuid.UUID) ([]notificationModel.NotificationModel, error) {
	notifications := make([]notificationModel.NotificationModel, 0, fetchLimit)
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(fetchLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips is_read for one of the caller's own notifications. Idempotent;
// a foreign or unknown id yields ErrNotificationNotFound.
func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	var n notificationModel.NotificationModel
	if err := s.DB.First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	return s.DB.Model(&n).Update("is_read", true).Error
}

// MarkAllRead flips is_read on all currently-unread rows for the user.
// Already-read rows are untouched; running it twice is a no-op.
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.DB.Model(&notificationModel.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
