package service

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	activityDTO "servicecredit_backend/internals/features/school/activities/dto"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	userModel "servicecredit_backend/internals/features/users/user/model"
	helper "servicecredit_backend/internals/helpers"
)

var ErrTeacherNotFound = errors.New("teacher not found")

const topTeacherCount = 5

// StatsService computes the dashboard counters and report rollups.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{DB: db} }

// DashboardStats feeds the admin/supervisor dashboard. activeReports is a
// placeholder, not computed from data.
func (s *StatsService) DashboardStats() (*activityDTO.DashboardStats, error) {
	var out activityDTO.DashboardStats

	err := s.DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleTeacher).
		Count(&out.TotalTeachers).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&activityModel.ActivityModel{}).
		Where("status = ?", activityModel.StatusPending).
		Count(&out.PendingApprovals).Error
	if err != nil {
		return nil, err
	}

	total, err := s.sumApprovedCredits(s.DB)
	if err != nil {
		return nil, err
	}
	out.TotalCredits = helper.Round2(total)
	out.ActiveReports = 0
	return &out, nil
}

// TeacherStats is the admin drill-down for one teacher (by user id). A teacher
// without a profile gets zero stats and an empty activity list.
func (s *StatsService) TeacherStats(teacherUserID uuid.UUID) (*activityDTO.TeacherStats, error) {
	var user userModel.UserModel
	err := s.DB.
		Preload("TeacherProfile.Department").
		First(&user, "id = ?", teacherUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	out := activityDTO.TeacherStats{
		Teacher: activityDTO.TeacherSummary{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Department: "N/A",
			Status:     activeLabel(user.IsActive),
		},
		Activities: []activityModel.ActivityModel{},
	}
	if user.TeacherProfile == nil {
		return &out, nil
	}
	if user.TeacherProfile.Department != nil {
		out.Teacher.Department = user.TeacherProfile.Department.Name
	}

	err = s.DB.
		Preload("Category").
		Where("teacher_id = ?", user.TeacherProfile.ID).
		Order("created_at DESC").
		Find(&out.Activities).Error
	if err != nil {
		return nil, err
	}

	for _, a := range out.Activities {
		switch a.Status {
		case activityModel.StatusApproved:
			out.Stats.Approved++
			out.Stats.TotalCredits += a.DurationHours
		case activityModel.StatusPending:
			out.Stats.Pending++
		case activityModel.StatusRejected:
			out.Stats.Rejected++
		}
	}
	out.Stats.TotalCredits = helper.Round2(out.Stats.TotalCredits)
	return &out, nil
}

// MyStats feeds the teacher's own dashboard. The trend window is everything
// whose updated_at falls on/after the first calendar day of the current month
// in server local time, which approximates "approved this month".
func (s *StatsService) MyStats(teacherUserID uuid.UUID) (*activityDTO.MyStats, error) {
	var out activityDTO.MyStats

	var profile userModel.TeacherProfileModel
	if err := s.DB.First(&profile, "user_id = ?", teacherUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &out, nil
		}
		return nil, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	mine := s.DB.Model(&activityModel.ActivityModel{}).Where("teacher_id = ?", profile.ID)

	total, err := s.sumApprovedCredits(s.DB.Where("teacher_id = ?", profile.ID))
	if err != nil {
		return nil, err
	}
	out.TotalCredits = helper.Round2(total)

	trend, err := s.sumApprovedCredits(
		s.DB.Where("teacher_id = ? AND updated_at >= ?", profile.ID, firstOfMonth))
	if err != nil {
		return nil, err
	}
	out.CreditTrend = helper.Round2(trend)

	if err := mine.Session(&gorm.Session{}).
		Where("status = ?", activityModel.StatusPending).
		Count(&out.PendingSubmissions).Error; err != nil {
		return nil, err
	}
	if err := mine.Session(&gorm.Session{}).
		Where("status = ?", activityModel.StatusApproved).
		Count(&out.ApprovedActivities).Error; err != nil {
		return nil, err
	}
	if err := mine.Session(&gorm.Session{}).
		Where("status = ? AND updated_at >= ?", activityModel.StatusApproved, firstOfMonth).
		Count(&out.ApprovedTrend).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportData builds the three report widgets: department rollup, category pie
// and the top five teachers by approved credits.
func (s *StatsService) ReportData() (*activityDTO.ReportData, error) {
	out := activityDTO.ReportData{
		DepartmentData: []activityDTO.DepartmentReport{},
		PieData:        []activityDTO.PieSlice{},
		TopTeachers:    []activityDTO.TopTeacher{},
	}

	// Department rollup over every activity regardless of status.
	var activities []activityModel.ActivityModel
	err := s.DB.
		Preload("Teacher.Department").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	deptIndex := map[string]int{}
	for _, a := range activities {
		name := "Unknown"
		if a.Teacher != nil && a.Teacher.Department != nil {
			name = a.Teacher.Department.Name
		}
		i, ok := deptIndex[name]
		if !ok {
			i = len(out.DepartmentData)
			deptIndex[name] = i
			out.DepartmentData = append(out.DepartmentData, activityDTO.DepartmentReport{Name: name})
		}
		switch a.Status {
		case activityModel.StatusApproved:
			out.DepartmentData[i].Approved++
		case activityModel.StatusPending:
			out.DepartmentData[i].Pending++
		case activityModel.StatusRejected:
			out.DepartmentData[i].Rejected++
		}
	}
	sort.Slice(out.DepartmentData, func(i, j int) bool {
		return out.DepartmentData[i].Name < out.DepartmentData[j].Name
	})

	// Approved credits per category; zero-sum categories are excluded.
	var categories []referenceModel.ServiceCategoryModel
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	catSums := map[uuid.UUID]float64{}
	for _, a := range activities {
		if a.Status == activityModel.StatusApproved {
			catSums[a.CategoryID] += a.DurationHours
		}
	}
	for _, cat := range categories {
		if sum := catSums[cat.ID]; sum > 0 {
			out.PieData = append(out.PieData, activityDTO.PieSlice{
				Name:  cat.Name,
				Value: helper.Round2(sum),
			})
		}
	}

	// Top performers by approved credits; ties break on teacher id so the
	// ranking is deterministic.
	type teacherSum struct {
		id  uuid.UUID
		sum float64
	}
	teacherSums := map[uuid.UUID]float64{}
	for _, a := range activities {
		if a.Status == activityModel.StatusApproved {
			teacherSums[a.TeacherID] += a.DurationHours
		}
	}
	ranked := make([]teacherSum, 0, len(teacherSums))
	for id, sum := range teacherSums {
		ranked = append(ranked, teacherSum{id: id, sum: sum})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].sum != ranked[j].sum {
			return ranked[i].sum > ranked[j].sum
		}
		return ranked[i].id.String() < ranked[j].id.String()
	})
	if len(ranked) > topTeacherCount {
		ranked = ranked[:topTeacherCount]
	}

	for i, ts := range ranked {
		entry := activityDTO.TopTeacher{
			Rank:       i + 1,
			Name:       "Unknown",
			Department: "N/A",
			Credits:    helper.Round2(ts.sum),
		}
		var profile userModel.TeacherProfileModel
		err := s.DB.
			Preload("User").
			Preload("Department").
			First(&profile, "id = ?", ts.id).Error
		if err == nil {
			if profile.User != nil {
				entry.Name = profile.User.Name
			}
			if profile.Department != nil {
				entry.Department = profile.Department.Name
			}
		}
		out.TopTeachers = append(out.TopTeachers, entry)
	}

	return &out, nil
}

func (s *StatsService) sumApprovedCredits(tx *gorm.DB) (float64, error) {
	var total float64
	err := tx.Model(&activityModel.ActivityModel{}).
		Where("status = ?", activityModel.StatusApproved).
		Select("COALESCE(SUM(duration_hours), 0)").
		Scan(&total).Error
	return total, err
}

func activeLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Inactive"
}
