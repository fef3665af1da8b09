package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicecredit_backend/internals/constants"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	_, profileA := createTeacher(t, db, "John Doe", "john@school.edu", "Science")
	_, profileB := createTeacher(t, db, "Jane Roe", "jane@school.edu", "Arts")
	createUser(t, db, "Admin", "admin@school.edu", constants.RoleAdmin)
	cat := createCategory(t, db, "Training")

	now := time.Now()
	seedActivity(t, db, profileA.ID, cat.ID, "A", 1.2, activityModel.StatusApproved, now)
	seedActivity(t, db, profileB.ID, cat.ID, "B", 2.3, activityModel.StatusApproved, now)
	seedActivity(t, db, profileA.ID, cat.ID, "C", 4, activityModel.StatusPending, now)
	seedActivity(t, db, profileB.ID, cat.ID, "D", 8, activityModel.StatusRejected, now)

	out, err := stats.DashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.TotalTeachers) // admin not counted
	assert.EqualValues(t, 1, out.PendingApprovals)
	assert.Equal(t, 3.5, out.TotalCredits) // only APPROVED hours
	assert.Zero(t, out.ActiveReports)
}

func TestTeacherStats(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	teacher, profile := createTeacher(t, db, "John Doe", "john@school.edu", "Science")
	cat := createCategory(t, db, "Training")

	now := time.Now()
	seedActivity(t, db, profile.ID, cat.ID, "A", 2.5, activityModel.StatusApproved, now.Add(-3*time.Hour))
	seedActivity(t, db, profile.ID, cat.ID, "B", 1.5, activityModel.StatusApproved, now.Add(-2*time.Hour))
	seedActivity(t, db, profile.ID, cat.ID, "C", 3, activityModel.StatusPending, now.Add(-time.Hour))
	seedActivity(t, db, profile.ID, cat.ID, "D", 9, activityModel.StatusRejected, now)

	out, err := stats.TeacherStats(teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", out.Teacher.Name)
	assert.Equal(t, "Science", out.Teacher.Department)
	assert.Equal(t, "Active", out.Teacher.Status)
	assert.Equal(t, 2, out.Stats.Approved)
	assert.Equal(t, 1, out.Stats.Pending)
	assert.Equal(t, 1, out.Stats.Rejected)
	assert.Equal(t, 4.0, out.Stats.TotalCredits)
	require.Len(t, out.Activities, 4)
	assert.Equal(t, "D", out.Activities[0].Title) // newest first
}

func TestTeacherStatsWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	user := createUser(t, db, "No Profile", "np@school.edu", constants.RoleTeacher)

	out, err := stats.TeacherStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/A", out.Teacher.Department)
	assert.Zero(t, out.Stats.Approved)
	assert.Zero(t, out.Stats.TotalCredits)
	assert.Empty(t, out.Activities)
}

func TestTeacherStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	_, err := stats.TeacherStats(newTestUUID(t))
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestMyStats(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	teacher, profile := createTeacher(t, db, "John Doe", "john@school.edu", "")
	cat := createCategory(t, db, "Training")

	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-15 * 24 * time.Hour)

	thisMonth := seedActivity(t, db, profile.ID, cat.ID, "Recent", 2.5, activityModel.StatusApproved, now)
	older := seedActivity(t, db, profile.ID, cat.ID, "Older", 4, activityModel.StatusApproved, lastMonth)
	seedActivity(t, db, profile.ID, cat.ID, "Pending", 1, activityModel.StatusPending, now)
	_ = thisMonth

	// Pin updated_at so the trend window splits the two approved rows.
	backdate(t, db, "activities", older.ID, lastMonth)

	out, err := stats.MyStats(teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.5, out.TotalCredits)
	assert.EqualValues(t, 1, out.PendingSubmissions)
	assert.EqualValues(t, 2, out.ApprovedActivities)
	assert.Equal(t, 2.5, out.CreditTrend)
	assert.EqualValues(t, 1, out.ApprovedTrend)
}

func TestMyStatsWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)
	user := createUser(t, db, "No Profile", "np@school.edu", constants.RoleTeacher)

	out, err := stats.MyStats(user.ID)
	require.NoError(t, err)
	assert.Zero(t, out.TotalCredits)
	assert.Zero(t, out.PendingSubmissions)
	assert.Zero(t, out.ApprovedActivities)
	assert.Zero(t, out.CreditTrend)
	assert.Zero(t, out.ApprovedTrend)
}

func TestReportData(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	_, science := createTeacher(t, db, "John Doe", "john@school.edu", "Science")
	_, arts := createTeacher(t, db, "Jane Roe", "jane@school.edu", "Arts")
	_, noDept := createTeacher(t, db, "Max Poe", "max@school.edu", "")

	training := createCategory(t, db, "Training")
	committee := createCategory(t, db, "Committee")

	now := time.Now()
	seedActivity(t, db, science.ID, training.ID, "A", 4, activityModel.StatusApproved, now)
	seedActivity(t, db, science.ID, training.ID, "B", 2, activityModel.StatusPending, now)
	seedActivity(t, db, arts.ID, training.ID, "C", 1.5, activityModel.StatusApproved, now)
	seedActivity(t, db, arts.ID, training.ID, "D", 9, activityModel.StatusRejected, now)
	seedActivity(t, db, noDept.ID, training.ID, "E", 3, activityModel.StatusApproved, now)
	// Committee has only a pending activity: excluded from the pie.
	seedActivity(t, db, noDept.ID, committee.ID, "F", 5, activityModel.StatusPending, now)

	out, err := stats.ReportData()
	require.NoError(t, err)

	// Department rollup, sorted by name: Arts, Science, Unknown.
	require.Len(t, out.DepartmentData, 3)
	assert.Equal(t, "Arts", out.DepartmentData[0].Name)
	assert.Equal(t, 1, out.DepartmentData[0].Approved)
	assert.Equal(t, 1, out.DepartmentData[0].Rejected)
	assert.Equal(t, "Science", out.DepartmentData[1].Name)
	assert.Equal(t, 1, out.DepartmentData[1].Approved)
	assert.Equal(t, 1, out.DepartmentData[1].Pending)
	assert.Equal(t, "Unknown", out.DepartmentData[2].Name)
	assert.Equal(t, 1, out.DepartmentData[2].Approved)
	assert.Equal(t, 1, out.DepartmentData[2].Pending)

	// Only Training has approved credits.
	require.Len(t, out.PieData, 1)
	assert.Equal(t, "Training", out.PieData[0].Name)
	assert.Equal(t, 8.5, out.PieData[0].Value)

	// Top teachers ranked by approved credits.
	require.Len(t, out.TopTeachers, 3)
	assert.Equal(t, 1, out.TopTeachers[0].Rank)
	assert.Equal(t, "John Doe", out.TopTeachers[0].Name)
	assert.Equal(t, "Science", out.TopTeachers[0].Department)
	assert.Equal(t, 4.0, out.TopTeachers[0].Credits)
	assert.Equal(t, 2, out.TopTeachers[1].Rank)
	assert.Equal(t, "Max Poe", out.TopTeachers[1].Name)
	assert.Equal(t, "N/A", out.TopTeachers[1].Department)
	assert.Equal(t, 3, out.TopTeachers[2].Rank)
	assert.Equal(t, "Jane Roe", out.TopTeachers[2].Name)
}

// End-to-end scenario: submit, approve, and watch every aggregate move.
func TestApprovalMovesAggregates(t *testing.T) {
	db := newTestDB(t)
	lifecycle := NewLifecycleService(db)
	stats := NewStatsService(db)

	teacher, _ := createTeacher(t, db, "John Doe", "john@school.edu", "Science")
	cat := createCategory(t, db, "Training")
	admin := createUser(t, db, "Admin", "admin@school.edu", constants.RoleAdmin)

	before, err := stats.DashboardStats()
	require.NoError(t, err)

	activity, err := lifecycle.Submit(teacher.ID, teacher.Name, submitRequest(cat.ID.String()), nil)
	require.NoError(t, err)
	_, err = lifecycle.Decide(activity.ID, admin.ID, activityModel.StatusApproved, "Good")
	require.NoError(t, err)

	after, err := stats.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, before.TotalCredits+2.5, after.TotalCredits)

	teacherStats, err := stats.TeacherStats(teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, teacherStats.Stats.Approved)
	assert.Equal(t, 2.5, teacherStats.Stats.TotalCredits)
}
