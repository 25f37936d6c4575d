package models

import (
	"time"
)

const BootcampActive = "active"

type BootcampAssignment struct {
	ID             int64      `db:"id"`
	UserID         int64      `db:"user_id"`
	Cohort         string     `db:"cohort"`
	CohortYear     int        `db:"cohort_year"`
	Attendance     int        `db:"attendance"`
	TotalSessions  int        `db:"total_sessions"`
	BootcampStatus string     `db:"bootcamp_status"`
	AssignedDate   *time.Time `db:"assigned_date"`
}

// CohortRow joins an assignment with the assigned entrepreneur for the admin
// cohort listing.
type CohortRow struct {
	ID             int64      `db:"id"`
	Cohort         string     `db:"cohort"`
	CohortYear     int        `db:"cohort_year"`
	AssignedDate   *time.Time `db:"assigned_date"`
	Attendance     int        `db:"attendance"`
	TotalSessions  int        `db:"total_sessions"`
	BootcampStatus string     `db:"bootcamp_status"`
	UserID         int64      `db:"user_id"`
	Name           string     `db:"name"`
	Surname        string     `db:"surname"`
	Email          string     `db:"email"`
	Phone          *string    `db:"phone"`
	Hub            *string    `db:"hub"`
}
