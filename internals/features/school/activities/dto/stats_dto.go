package dto

import (
	"github.com/google/uuid"

	activityModel "servicecredit_backend/internals/features/school/activities/model"
)

// Stats shapes keep the camelCase keys the dashboards consume.

type DashboardStats struct {
	TotalTeachers    int64   `json:"totalTeachers"`
	PendingApprovals int64   `json:"pendingApprovals"`
	TotalCredits     float64 `json:"totalCredits"`
	ActiveReports    int     `json:"activeReports"`
}

type TeacherSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
}

type TeacherStatCounters struct {
	TotalCredits float64 `json:"totalCredits"`
	Pending      int     `json:"pending"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
}

type TeacherStats struct {
	Teacher    TeacherSummary                `json:"teacher"`
	Stats      TeacherStatCounters           `json:"stats"`
	Activities []activityModel.ActivityModel `json:"activities"`
}

type MyStats struct {
	TotalCredits       float64 `json:"totalCredits"`
	PendingSubmissions int64   `json:"pendingSubmissions"`
	ApprovedActivities int64   `json:"approvedActivities"`
	CreditTrend        float64 `json:"creditTrend"`
	ApprovedTrend      int64   `json:"approvedTrend"`
}

type DepartmentReport struct {
	Name     string `json:"name"`
	Approved int    `json:"approved"`
	Pending  int    `json:"pending"`
	Rejected int    `json:"rejected"`
}

type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TopTeacher struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Credits    float64 `json:"credits"`
}

type ReportData struct {
	DepartmentData []DepartmentReport `json:"departmentData"`
	PieData        []PieSlice         `json:"pieData"`
	TopTeachers    []TopTeacher       `json:"topTeachers"`
}
