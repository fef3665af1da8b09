package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	notificationService "servicecredit_backend/internals/features/notifications/service"
	activityDTO "servicecredit_backend/internals/features/school/activities/dto"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

var (
	ErrProfileIncomplete = errors.New("teacher profile incomplete")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrCategoryNotFound  = errors.New("service category not found")
	ErrInvalidStatus     = errors.New("status must be APPROVED or REJECTED")
)

// LifecycleService owns activity submission and the review decision flow.
// The durable writes run in one transaction; notification fan-out is a
// best-effort phase after commit and never fails the primary operation.
type LifecycleService struct {
	DB            *gorm.DB
	Notifications *notificationService.NotificationService
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{
		DB:            db,
		Notifications: notificationService.NewNotificationService(db),
	}
}

// Submit creates a PENDING activity plus its attachment rows atomically, then
// notifies all reviewers. submitterName comes from the token claims and is only
// used in the notification text.
func (s *LifecycleService) Submit(
	teacherUserID uuid.UUID,
	submitterName string,
	req activityDTO.SubmitActivityRequest,
	attachments []activityDTO.AttachmentInput,
) (*activityModel.ActivityModel, error) {
	profile, err := s.findProfile(teacherUserID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&referenceModel.ServiceCategoryModel{}).
		Where("id = ?", req.CategoryID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCategoryNotFound
	}

	activity := req.ToModel(profile.ID)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		if len(attachments) == 0 {
			return nil
		}
		rows := make([]activityModel.AttachmentModel, 0, len(attachments))
		for _, a := range attachments {
			rows = append(rows, activityModel.AttachmentModel{
				FilePath:   a.Path,
				FileType:   a.Type,
				ActivityID: activity.ID,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyReviewers(submitterName, activity.Title)
	return activity, nil
}

// ListMine returns the teacher's own activities, newest first. A missing
// profile yields an empty list, not an error.
func (s *LifecycleService) ListMine(teacherUserID uuid.UUID) ([]activityModel.ActivityModel, error) {
	profile, err := s.findProfile(teacherUserID)
	if err != nil {
		if errors.Is(err, ErrProfileIncomplete) {
			return []activityModel.ActivityModel{}, nil
		}
		return nil, err
	}

	var activities []activityModel.ActivityModel
	err = s.DB.
		Preload("Category").
		Preload("Attachments").
		Where("teacher_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ListAll is the reviewer view: every activity with teacher identity,
// department, category and attachments joined in.
func (s *LifecycleService) ListAll(status string, limit int) ([]activityModel.ActivityModel, error) {
	tx := s.DB.
		Preload("Teacher.User").
		Preload("Teacher.Department").
		Preload("Category").
		Preload("Attachments").
		Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", strings.ToUpper(status))
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var activities []activityModel.ActivityModel
	if err := tx.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// Decide records a reviewer decision: the status update is the durable write,
// the submitter notification and the approval audit row are appended
// best-effort afterwards. A terminal activity may be re-decided; that simply
// overwrites the status and adds another approval row.
func (s *LifecycleService) Decide(
	activityID, approverUserID uuid.UUID,
	status activityModel.ActivityStatus,
	remarks string,
) (*activityModel.ActivityModel, error) {
	if !status.Terminal() {
		return nil, ErrInvalidStatus
	}

	var activity activityModel.ActivityModel
	if err := s.DB.Preload("Teacher").First(&activity, "id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&activity).Update("status", status).Error; err != nil {
		return nil, err
	}

	if activity.Teacher != nil {
		message := fmt.Sprintf("Your activity %q has been %s.", activity.Title, strings.ToLower(string(status)))
		if remarks != "" {
			message += " Remarks: " + remarks
		}
		if err := s.Notifications.Create(activity.Teacher.UserID, message); err != nil {
			log.Printf("[WARN] failed to notify submitter for activity %s: %v", activity.ID, err)
		}
	}

	approval := activityModel.ApprovalModel{
		ActivityID: activity.ID,
		ApproverID: approverUserID,
		Status:     status,
	}
	if remarks != "" {
		approval.Comments = &remarks
	}
	if err := s.DB.Create(&approval).Error; err != nil {
		log.Printf("[WARN] failed to record approval for activity %s: %v", activity.ID, err)
	}

	return &activity, nil
}

func (s *LifecycleService) findProfile(userID uuid.UUID) (*userModel.TeacherProfileModel, error) {
	var profile userModel.TeacherProfileModel
	if err := s.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	return &profile, nil
}

// notifyReviewers fans a submission notice out to every admin and supervisor.
// Failures are logged and swallowed; the submission already committed.
func (s *LifecycleService) notifyReviewers(submitterName, title string) {
	if submitterName == "" {
		submitterName = "A teacher"
	}

	var reviewers []userModel.UserModel
	err := s.DB.
		Select("id").
		Where("role IN ?", constants.Reviewers).
		Find(&reviewers).Error
	if err != nil {
		log.Printf("[WARN] failed to look up reviewers: %v", err)
		return
	}

	ids := make([]uuid.UUID, 0, len(reviewers))
	for _, r := range reviewers {
		ids = append(ids, r.ID)
	}
	message := fmt.Sprintf("%s submitted a new activity: %q.", submitterName, title)
	if err := s.Notifications.CreateMany(ids, message); err != nil {
		log.Printf("[WARN] failed to notify reviewers: %v", err)
	}
}
